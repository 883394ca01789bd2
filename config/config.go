package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names an environment variable pointing at a config file.
const EnvConfigPath = "TFIDF_CONFIG"

// Config holds all configuration for the tfidf tool.
type Config struct {
	Vectorizer VectorizerConfig `yaml:"vectorizer"`
	Corpus     CorpusConfig     `yaml:"corpus"`
	Rank       RankConfig       `yaml:"rank"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// VectorizerConfig holds preprocessing and weighting settings.
type VectorizerConfig struct {
	Lowercase        bool     `yaml:"lowercase"`
	BadChars         string   `yaml:"bad_chars"`      // regex, matches are deleted
	MaxVocabulary    int      `yaml:"max_vocabulary"` // 0 = unbounded
	L2               bool     `yaml:"l2"`
	NGrams           int      `yaml:"ngrams"`
	StopWords        []string `yaml:"stop_words"`
	DefaultStopWords bool     `yaml:"default_stop_words"` // add the built-in English list
}

// CorpusConfig controls how documents are discovered on disk.
type CorpusConfig struct {
	Includes   []string `yaml:"includes"`
	Excludes   []string `yaml:"excludes"`
	SplitLines bool     `yaml:"split_lines"` // one document per non-blank line
}

// RankConfig holds similarity ranking settings.
type RankConfig struct {
	TopK         int     `yaml:"top_k"`
	MMRLambda    float64 `yaml:"mmr_lambda"`
	DedupJaccard float64 `yaml:"dedup_jaccard"`
	MinScore     float64 `yaml:"min_score"` // 0 = disabled
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"` // "table" or "json"
	Precision int    `yaml:"precision"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Vectorizer: VectorizerConfig{
			Lowercase:     true,
			BadChars:      `[.,?:;]`,
			MaxVocabulary: 0,
			L2:            false,
			NGrams:        1,
		},
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/.tfidf/**", "**/node_modules/**"},
		},
		Rank: RankConfig{
			TopK:         10,
			MMRLambda:    0.7,
			DedupJaccard: 0.9,
		},
		Output: OutputConfig{
			Format:    "table",
			Precision: 3,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file. Missing files yield defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for tfidf.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "tfidf.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".tfidf", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Validate checks settings that do not belong to the vectorizer itself.
func (c *Config) Validate() error {
	if c.Vectorizer.NGrams < 1 {
		return fmt.Errorf("vectorizer.ngrams must be at least 1, got %d", c.Vectorizer.NGrams)
	}
	if c.Rank.MMRLambda < 0 || c.Rank.MMRLambda > 1 {
		return fmt.Errorf("rank.mmr_lambda must be within [0, 1], got %v", c.Rank.MMRLambda)
	}
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("unknown output.format: %s", c.Output.Format)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
