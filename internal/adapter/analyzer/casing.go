package analyzer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lowercaser converts documents to lower case.
type Lowercaser struct{}

// NewLowercaser creates a new Lowercaser.
func NewLowercaser() *Lowercaser {
	return &Lowercaser{}
}

// Apply returns a lowercased copy of docs.
func (l *Lowercaser) Apply(docs []string) []string {
	// A Caser keeps state between calls and is not safe for concurrent use.
	caser := cases.Lower(language.Und)
	out := make([]string, len(docs))
	for i, doc := range docs {
		out[i] = caser.String(doc)
	}
	return out
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
