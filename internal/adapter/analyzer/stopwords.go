package analyzer

import "strings"

// StopWordFilter drops whitespace-delimited words found in a stop-word set.
// Membership is case-insensitive.
type StopWordFilter struct {
	words map[string]struct{}
}

// NewStopWordFilter creates a filter for the given words.
func NewStopWordFilter(words []string) *StopWordFilter {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[lower(w)] = struct{}{}
	}
	return &StopWordFilter{words: m}
}

// Contains reports whether word is a stop word.
func (f *StopWordFilter) Contains(word string) bool {
	_, ok := f.words[lower(word)]
	return ok
}

// Words returns the stop words in no particular order.
func (f *StopWordFilter) Words() []string {
	out := make([]string, 0, len(f.words))
	for w := range f.words {
		out = append(out, w)
	}
	return out
}

// Apply removes stop words from every document and rejoins the remaining
// words with single spaces.
func (f *StopWordFilter) Apply(docs []string) []string {
	out := make([]string, len(docs))
	for i, doc := range docs {
		words := strings.Fields(doc)
		kept := words[:0]
		for _, w := range words {
			if f.Contains(w) {
				continue
			}
			kept = append(kept, w)
		}
		out[i] = strings.Join(kept, " ")
	}
	return out
}

// DefaultStopWords returns a set of common English stop words.
func DefaultStopWords() []string {
	return []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "she", "her", "his", "if", "or", "so",
		"no", "can", "do", "does", "did", "been", "being", "would",
		"could", "should", "may", "might", "must", "shall", "which",
		"who", "whom", "what", "when", "where", "why", "how", "all",
		"each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "also",
	}
}
