package vectorizer

import (
	"tfidf/internal/adapter/analyzer"
	"tfidf/internal/logging"
)

// Config holds the settings a Vectorizer is built with.
type Config struct {
	// Lowercase converts documents to lower case before tokenizing.
	Lowercase bool
	// BadChars is a regular expression; every match is deleted from documents.
	BadChars string
	// MaxVocabulary caps the vocabulary to the most frequent terms.
	// Zero or negative means unbounded.
	MaxVocabulary int
	// L2 scales every transformed row to unit length.
	L2 bool
	// NGrams is the number of consecutive words combined into one term.
	NGrams int
	// StopWords are removed before cleaning. Nil disables the stage.
	StopWords []string
}

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		BadChars: analyzer.DefaultBadChars,
		NGrams:   1,
	}
}

type options struct {
	cfg    Config
	logger *logging.Logger
}

// Option configures a Vectorizer.
type Option func(*options)

// WithConfig replaces all settings at once.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithLowercase enables or disables lowercasing.
func WithLowercase(enabled bool) Option {
	return func(o *options) {
		o.cfg.Lowercase = enabled
	}
}

// WithBadChars sets the pattern of characters deleted from documents.
func WithBadChars(pattern string) Option {
	return func(o *options) {
		o.cfg.BadChars = pattern
	}
}

// WithMaxVocabulary caps the vocabulary size. Zero or negative means unbounded.
func WithMaxVocabulary(n int) Option {
	return func(o *options) {
		o.cfg.MaxVocabulary = n
	}
}

// WithL2 enables or disables L2 normalization of transformed rows.
func WithL2(enabled bool) Option {
	return func(o *options) {
		o.cfg.L2 = enabled
	}
}

// WithNGrams sets the n-gram size.
func WithNGrams(n int) Option {
	return func(o *options) {
		o.cfg.NGrams = n
	}
}

// WithStopWords enables stop-word removal. Passing nil disables it.
func WithStopWords(words []string) Option {
	return func(o *options) {
		if words == nil {
			o.cfg.StopWords = nil
			return
		}
		o.cfg.StopWords = append([]string{}, words...)
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logging.NoopLogger()
		}
		o.logger = l
	}
}
