package analyzer

import (
	"fmt"
	"strings"

	"tfidf/internal/domain"
)

// Tokenizer splits documents on whitespace and optionally joins
// neighbouring words into n-grams.
type Tokenizer struct {
	ngrams int
}

// NewTokenizer creates a Tokenizer producing n-grams of the given size.
// Size 1 yields plain words.
func NewTokenizer(ngrams int) (*Tokenizer, error) {
	if ngrams < 1 {
		return nil, fmt.Errorf("%w: n-gram size must be at least 1, got %d", domain.ErrInvalidConfiguration, ngrams)
	}
	return &Tokenizer{ngrams: ngrams}, nil
}

// NGrams returns the configured n-gram size.
func (t *Tokenizer) NGrams() int {
	return t.ngrams
}

// Tokenize splits a single document into tokens.
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	words := strings.Fields(text)
	if t.ngrams == 1 {
		return words, nil
	}
	if len(words) < t.ngrams {
		return nil, fmt.Errorf("%w: n-gram size %d exceeds %d tokens", domain.ErrInvalidConfiguration, t.ngrams, len(words))
	}
	return NGrams(words, t.ngrams), nil
}

// TokenizeAll tokenizes every document, preserving order.
func (t *Tokenizer) TokenizeAll(docs []string) ([][]string, error) {
	out := make([][]string, len(docs))
	for i, doc := range docs {
		tokens, err := t.Tokenize(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out[i] = tokens
	}
	return out, nil
}

// NGrams joins every window of n consecutive words with a single space.
// It returns nil when there are fewer than n words.
func NGrams(words []string, n int) []string {
	if n <= 0 || len(words) < n {
		return nil
	}
	out := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		out = append(out, strings.Join(words[i:i+n], " "))
	}
	return out
}
