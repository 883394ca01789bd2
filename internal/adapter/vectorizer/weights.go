package vectorizer

import (
	"math"
	"strconv"
)

// precision is the number of decimals IDF weights and normalized rows are rounded to.
const precision = 3

// inverseDocumentFrequency computes the smoothed IDF ln((1+N)/(1+df)) + 1
// for every term of vocab.
func inverseDocumentFrequency(vocab []string, docs [][]string) []float64 {
	df := make(map[string]int, len(vocab))
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = round(math.Log((1+n)/(1+float64(df[term])))+1, precision)
	}
	return idf
}

// termFrequencies counts the vocabulary terms of every document.
func termFrequencies(snap *Snapshot, docs [][]string) [][]float64 {
	rows := make([][]float64, len(docs))
	for i, doc := range docs {
		row := make([]float64, snap.Size())
		for _, tok := range doc {
			if j, ok := snap.Index(tok); ok {
				row[j]++
			}
		}
		rows[i] = row
	}
	return rows
}

// weigh multiplies every row position-wise by idf in place.
func weigh(rows [][]float64, idf []float64) {
	for _, row := range rows {
		for j := range row {
			row[j] *= idf[j]
		}
	}
}

// normalizeL2 scales every row to unit Euclidean length in place.
// Rows with a zero norm are left untouched.
func normalizeL2(rows [][]float64) {
	for _, row := range rows {
		sum := 0.0
		for _, v := range row {
			sum += v * v
		}
		norm := math.Sqrt(sum)
		if norm == 0 {
			continue
		}
		for j := range row {
			row[j] = round(row[j]/norm, precision)
		}
	}
}

// round rounds v to the given number of decimals, halves to even, based on
// the exact decimal value of v.
func round(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}
