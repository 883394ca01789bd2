package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tfidf/internal/domain"
)

var (
	transformInput string
	transformTexts []string
)

var transformCmd = &cobra.Command{
	Use:   "transform [path]",
	Short: "Print TF-IDF vectors",
	Long: `Fit the vectorizer on the corpus below path, then print the TF-IDF matrix of
a collection. The collection is the corpus itself unless --input or --text
is given.

Examples:
  tfidf transform ./reviews
  tfidf transform ./reviews --input ./new-reviews --l2
  tfidf transform ./reviews -t "This was a wonderful stay" -f json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().StringVarP(&transformInput, "input", "i", "", "directory holding the collection to transform")
	transformCmd.Flags().StringArrayVarP(&transformTexts, "text", "t", nil, "literal document to transform (repeatable)")
	transformCmd.MarkFlagsMutuallyExclusive("input", "text")
}

func runTransform(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	path, err := corpusPath(args)
	if err != nil {
		return err
	}

	uc, _, err := newVectorizeUseCase(cfg)
	if err != nil {
		return err
	}

	corpus, err := loadCorpus(uc, path)
	if err != nil {
		return err
	}
	if _, err := uc.Fit(corpus); err != nil {
		return fmt.Errorf("fit failed: %w", err)
	}

	var collection []domain.Document
	switch {
	case len(transformTexts) > 0:
		collection = textDocuments(transformTexts)
	case transformInput != "":
		inputPath, err := corpusPath([]string{transformInput})
		if err != nil {
			return err
		}
		collection, err = loadCorpus(uc, inputPath)
		if err != nil {
			return err
		}
	default:
		collection = corpus
	}

	result, err := uc.Transform(collection)
	if err != nil {
		return fmt.Errorf("transform failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		return writeJSON(out, result)
	}

	headers := append([]string{"Document"}, result.Vocabulary...)
	aligns := make([]columnAlignment, len(headers))
	for i := 1; i < len(aligns); i++ {
		aligns[i] = alignRight
	}
	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		cells := make([]string, 0, len(headers))
		cells = append(cells, row.ID)
		for _, v := range row.Values {
			cells = append(cells, formatFloat(v, cfg.Output.Precision))
		}
		rows[i] = cells
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	return nil
}
