package vectorizer

import (
	"sort"

	"tfidf/internal/adapter/analyzer"
)

// buildVocabulary collects distinct tokens and sorts them.
func buildVocabulary(docs [][]string) []string {
	seen := make(map[string]struct{})
	var vocab []string
	for _, doc := range docs {
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			vocab = append(vocab, tok)
		}
	}
	sort.Strings(vocab)
	return vocab
}

// truncateVocabulary keeps the entries of vocab that are among the limit most
// frequent tokens of docs. Frequency ties go to the term seen first.
// The sorted order of vocab is preserved.
func truncateVocabulary(vocab []string, docs [][]string, limit int) []string {
	if limit <= 0 || len(vocab) <= limit {
		return vocab
	}
	counts := analyzer.WordCount(docs)
	allowed := make(map[string]struct{}, limit)
	for _, tc := range counts[:limit] {
		allowed[tc.Term] = struct{}{}
	}
	out := make([]string, 0, limit)
	for _, term := range vocab {
		if _, ok := allowed[term]; ok {
			out = append(out, term)
		}
	}
	return out
}
