package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tfidf/internal/adapter/retriever"
	"tfidf/internal/usecase"
)

var (
	rankQuery string
	rankTopK  int
	rankNoMMR bool
)

var rankCmd = &cobra.Command{
	Use:   "rank [path]",
	Short: "Rank corpus documents by similarity to a query",
	Long: `Fit the vectorizer on the corpus below path and rank its documents by the
cosine similarity of their TF-IDF vectors to the query, diversified with MMR.

Examples:
  tfidf rank -q "great destination" ./reviews
  tfidf rank -q "wonderful stay" ./reviews --split-lines -k 5 -f json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().StringVarP(&rankQuery, "query", "q", "", "query text (required)")
	rankCmd.Flags().IntVarP(&rankTopK, "top-k", "k", 0, "number of results (default from config)")
	rankCmd.Flags().BoolVar(&rankNoMMR, "no-mmr", false, "disable MMR reranking")
	rankCmd.MarkFlagRequired("query")
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	path, err := corpusPath(args)
	if err != nil {
		return err
	}

	uc, v, err := newVectorizeUseCase(cfg)
	if err != nil {
		return err
	}

	docs, err := loadCorpus(uc, path)
	if err != nil {
		return err
	}
	if _, err := uc.Fit(docs); err != nil {
		return fmt.Errorf("fit failed: %w", err)
	}

	cosine := retriever.NewCosineRetriever(v)
	if err := cosine.Index(docs); err != nil {
		return err
	}

	var mmr *retriever.MMRReranker
	if !rankNoMMR {
		mmr = retriever.NewMMRReranker(cfg.Rank.MMRLambda, cfg.Rank.DedupJaccard)
	}
	rankUC := usecase.NewRankUseCase(cosine, mmr, cfg.Rank.MinScore)

	topK := cfg.Rank.TopK
	if rankTopK > 0 {
		topK = rankTopK
	}

	results, err := rankUC.Rank(rankQuery, topK)
	if err != nil {
		return fmt.Errorf("rank failed: %w", err)
	}
	ranked := usecase.ToRankedResults(results)

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		return writeJSON(out, ranked)
	}

	if len(ranked) == 0 {
		fmt.Fprintln(out, "No matching documents.")
		return nil
	}

	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		loc := r.Path
		if r.Line > 0 {
			loc = fmt.Sprintf("%s:%d", r.Path, r.Line)
		}
		rows[i] = []string{strconv.Itoa(i + 1), formatFloat(r.Score, cfg.Output.Precision), loc, truncate(r.Text, 60)}
	}
	fmt.Fprintln(out, renderTable([]string{"#", "Score", "Location", "Text"}, rows, []columnAlignment{alignRight, alignRight, alignLeft, alignLeft}))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
