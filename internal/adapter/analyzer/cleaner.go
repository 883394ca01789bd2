package analyzer

import (
	"fmt"
	"regexp"

	"tfidf/internal/domain"
)

// DefaultBadChars matches the punctuation removed from documents by default.
const DefaultBadChars = `[.,?:;]`

// Cleaner deletes every character matched by a pattern.
type Cleaner struct {
	pattern *regexp.Regexp
}

// NewCleaner compiles pattern into a Cleaner. An empty pattern removes nothing.
func NewCleaner(pattern string) (*Cleaner, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: bad characters pattern %q: %v", domain.ErrInvalidConfiguration, pattern, err)
	}
	return &Cleaner{pattern: re}, nil
}

// Pattern returns the source of the compiled pattern.
func (c *Cleaner) Pattern() string {
	return c.pattern.String()
}

// Apply returns a copy of docs with all matched characters removed.
// Matches are deleted, not replaced, so case and spacing are left as is.
func (c *Cleaner) Apply(docs []string) []string {
	out := make([]string, len(docs))
	for i, doc := range docs {
		out[i] = c.pattern.ReplaceAllString(doc, "")
	}
	return out
}
