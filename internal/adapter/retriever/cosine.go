package retriever

import (
	"fmt"
	"math"
	"sort"

	"tfidf/internal/domain"
	"tfidf/internal/port"
)

// CosineRetriever ranks indexed documents by the cosine similarity of their
// TF-IDF rows to the row of a query.
type CosineRetriever struct {
	vectorizer port.Vectorizer
	docs       []domain.Document
	rows       [][]float64
	tokens     [][]string
}

// NewCosineRetriever creates a retriever over a fitted vectorizer.
func NewCosineRetriever(vectorizer port.Vectorizer) *CosineRetriever {
	return &CosineRetriever{vectorizer: vectorizer}
}

// Index transforms docs and keeps their rows for searching.
func (r *CosineRetriever) Index(docs []domain.Document) error {
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}

	rows, err := r.vectorizer.Transform(texts)
	if err != nil {
		return fmt.Errorf("failed to transform documents: %w", err)
	}
	tokens, err := r.vectorizer.Tokenize(texts)
	if err != nil {
		return fmt.Errorf("failed to tokenize documents: %w", err)
	}

	r.docs = docs
	r.rows = rows
	r.tokens = tokens
	return nil
}

// Search returns up to k documents with a positive similarity to query,
// best first.
func (r *CosineRetriever) Search(query string, k int) ([]domain.ScoredDocument, error) {
	rows, err := r.vectorizer.Transform([]string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to transform query: %w", err)
	}
	q := rows[0]

	results := make([]domain.ScoredDocument, 0, len(r.docs))
	for i, row := range r.rows {
		score := CosineSimilarity(q, row)
		if score <= 0 {
			continue
		}
		results = append(results, domain.ScoredDocument{
			Document: r.docs[i],
			Tokens:   r.tokens[i],
			Score:    score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0
// when either is a zero vector or their lengths differ.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
