package domain

import "time"

// Document is one entry of a corpus: a whole file or a single line of one.
type Document struct {
	ID      string
	Path    string
	Line    int
	ModTime time.Time
	Text    string
}

// ScoredDocument pairs a document with its similarity to a query.
type ScoredDocument struct {
	Document Document
	Tokens   []string
	Score    float64
}

// RankedResult is a simplified ranking result for CLI output.
type RankedResult struct {
	Path  string  `json:"path"`
	Line  int     `json:"line,omitempty"`
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}
