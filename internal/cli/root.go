package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tfidf/config"
	"tfidf/internal/adapter/analyzer"
	"tfidf/internal/adapter/vectorizer"
	"tfidf/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	logger  *logging.Logger
	verbose bool
	quiet   bool

	flagLowercase        bool
	flagBadChars         string
	flagMaxVocabulary    int
	flagL2               bool
	flagNGrams           int
	flagStopWords        []string
	flagDefaultStopWords bool
	flagSplitLines       bool
	flagFormat           string
)

var rootCmd = &cobra.Command{
	Use:   "tfidf",
	Short: "TF-IDF feature extraction for small text corpora",
	Long: `tfidf fits a vocabulary and inverse document frequencies on a corpus of text
files and maps documents onto it as TF-IDF vectors, with optional stop-word
removal, n-grams, vocabulary truncation and L2 normalization.

Example usage:
  tfidf vocab ./reviews                   # Fit and print the vocabulary
  tfidf transform ./reviews --l2          # Print the TF-IDF matrix
  tfidf rank -q "great stay" ./reviews    # Rank documents by similarity
  tfidf clean "mickey mouse!@.,#"         # Strip configured punctuation`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile == "" {
			cfgFile = os.Getenv(config.EnvConfigPath)
		}
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		applyFlags(cmd)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid settings: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.FromConfig(os.Stderr, level, cfg.Logging.Format)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}

		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./tfidf.yaml, or $"+config.EnvConfigPath+")")
	pf.StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&quiet, "quiet", false, "hide progress output")

	pf.BoolVar(&flagLowercase, "lowercase", true, "lowercase documents before tokenizing")
	pf.StringVar(&flagBadChars, "bad-chars", analyzer.DefaultBadChars, "regex of characters to delete")
	pf.IntVar(&flagMaxVocabulary, "max-vocab", 0, "keep only the N most frequent terms (0 = unbounded)")
	pf.BoolVar(&flagL2, "l2", false, "L2-normalize TF-IDF rows")
	pf.IntVarP(&flagNGrams, "ngrams", "n", 1, "n-gram size")
	pf.StringSliceVar(&flagStopWords, "stop-words", nil, "comma-separated stop words")
	pf.BoolVar(&flagDefaultStopWords, "default-stop-words", false, "remove built-in English stop words")
	pf.BoolVar(&flagSplitLines, "split-lines", false, "treat each non-blank line as a document")
	pf.StringVarP(&flagFormat, "format", "f", "", "output format: table or json (default from config)")
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("lowercase") {
		cfg.Vectorizer.Lowercase = flagLowercase
	}
	if flags.Changed("bad-chars") {
		cfg.Vectorizer.BadChars = flagBadChars
	}
	if flags.Changed("max-vocab") {
		cfg.Vectorizer.MaxVocabulary = flagMaxVocabulary
	}
	if flags.Changed("l2") {
		cfg.Vectorizer.L2 = flagL2
	}
	if flags.Changed("ngrams") {
		cfg.Vectorizer.NGrams = flagNGrams
	}
	if flags.Changed("stop-words") {
		cfg.Vectorizer.StopWords = flagStopWords
	}
	if flags.Changed("default-stop-words") {
		cfg.Vectorizer.DefaultStopWords = flagDefaultStopWords
	}
	if flags.Changed("split-lines") {
		cfg.Corpus.SplitLines = flagSplitLines
	}
	if flagFormat != "" {
		cfg.Output.Format = flagFormat
	}
}

// vectorizerConfig maps file configuration onto vectorizer settings.
func vectorizerConfig(c config.VectorizerConfig) vectorizer.Config {
	vc := vectorizer.Config{
		Lowercase:     c.Lowercase,
		BadChars:      c.BadChars,
		MaxVocabulary: c.MaxVocabulary,
		L2:            c.L2,
		NGrams:        c.NGrams,
	}
	if len(c.StopWords) > 0 || c.DefaultStopWords {
		words := append([]string{}, c.StopWords...)
		if c.DefaultStopWords {
			words = append(words, analyzer.DefaultStopWords()...)
		}
		vc.StopWords = words
	}
	return vc
}

func newVectorizer(c *config.Config, l *logging.Logger) (*vectorizer.Vectorizer, error) {
	v, err := vectorizer.New(
		vectorizer.WithConfig(vectorizerConfig(c.Vectorizer)),
		vectorizer.WithLogger(l),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create vectorizer: %w", err)
	}
	return v, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// GetRootDir returns the working root directory.
func GetRootDir() string {
	return rootDir
}
