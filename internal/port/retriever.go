package port

import "tfidf/internal/domain"

// Retriever finds the documents most similar to a query.
type Retriever interface {
	Search(query string, k int) ([]domain.ScoredDocument, error)
}
