package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab [path]",
	Short: "Fit a corpus and print its vocabulary",
	Long: `Fit the vectorizer on every corpus file below path and print the sorted
vocabulary with the IDF weight of each term.

Examples:
  tfidf vocab ./reviews
  tfidf vocab ./reviews --ngrams 2 --max-vocab 15 -f json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVocab,
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	path, err := corpusPath(args)
	if err != nil {
		return err
	}

	uc, _, err := newVectorizeUseCase(cfg)
	if err != nil {
		return err
	}

	docs, err := loadCorpus(uc, path)
	if err != nil {
		return err
	}

	result, err := uc.Fit(docs)
	if err != nil {
		return fmt.Errorf("fit failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		return writeJSON(out, result)
	}

	rows := make([][]string, len(result.Vocabulary))
	for i, term := range result.Vocabulary {
		rows[i] = []string{strconv.Itoa(i), term, formatFloat(result.IDF[i], cfg.Output.Precision)}
	}
	fmt.Fprintln(out, renderTable([]string{"#", "Term", "IDF"}, rows, []columnAlignment{alignRight, alignLeft, alignRight}))
	fmt.Fprintf(out, "%d documents, %d terms\n", result.Documents, len(result.Vocabulary))
	return nil
}
