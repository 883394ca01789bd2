package analyzer

import "sort"

// TermCount is the number of occurrences of a term across a collection.
type TermCount struct {
	Term  string
	Count int
}

// WordCount counts every token of a tokenized collection. The result is
// ordered from most to least frequent; equal counts keep the order in which
// terms were first seen while scanning documents front to back.
func WordCount(docs [][]string) []TermCount {
	index := make(map[string]int)
	var counts []TermCount
	for _, doc := range docs {
		for _, tok := range doc {
			if i, ok := index[tok]; ok {
				counts[i].Count++
				continue
			}
			index[tok] = len(counts)
			counts = append(counts, TermCount{Term: tok, Count: 1})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
