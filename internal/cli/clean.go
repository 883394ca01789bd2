package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [text...]",
	Short: "Remove configured characters from text",
	Long: `Delete every character matching the bad-characters pattern from each
argument, or from each line of standard input when no arguments are given.

Examples:
  tfidf clean "This is a test: What do you want from me?"
  cat reviews.txt | tfidf clean --bad-chars '[.,!?]'`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	v, err := newVectorizer(cfg, logger)
	if err != nil {
		return err
	}

	docs := args
	if len(docs) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			docs = append(docs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	cleaned := v.RemoveBadChars(docs)
	if cfg.Output.Format == "json" {
		return writeJSON(out, cleaned)
	}
	for _, doc := range cleaned {
		fmt.Fprintln(out, doc)
	}
	return nil
}
