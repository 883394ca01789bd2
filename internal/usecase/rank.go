package usecase

import (
	"tfidf/internal/adapter/retriever"
	"tfidf/internal/domain"
	"tfidf/internal/port"
)

// RankUseCase ranks corpus documents by similarity to a query.
type RankUseCase struct {
	retriever   port.Retriever
	mmrReranker *retriever.MMRReranker
	minScore    float64 // drop results below this score (0 = disabled)
}

// NewRankUseCase creates a new rank use case. mmrReranker may be nil.
func NewRankUseCase(
	retriever port.Retriever,
	mmrReranker *retriever.MMRReranker,
	minScore float64,
) *RankUseCase {
	return &RankUseCase{
		retriever:   retriever,
		mmrReranker: mmrReranker,
		minScore:    minScore,
	}
}

// Rank returns up to topK documents for query.
func (u *RankUseCase) Rank(query string, topK int) ([]domain.ScoredDocument, error) {
	if u.mmrReranker == nil {
		results, err := u.retriever.Search(query, topK)
		if err != nil {
			return nil, err
		}
		return u.filterByThreshold(results), nil
	}

	candidates, err := u.retriever.Search(query, topK*2)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	return u.filterByThreshold(u.mmrReranker.Rerank(candidates, topK)), nil
}

func (u *RankUseCase) filterByThreshold(results []domain.ScoredDocument) []domain.ScoredDocument {
	if u.minScore <= 0 {
		return results
	}
	filtered := make([]domain.ScoredDocument, 0, len(results))
	for _, r := range results {
		if r.Score >= u.minScore {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ToRankedResults converts scored documents for CLI output.
func ToRankedResults(results []domain.ScoredDocument) []domain.RankedResult {
	out := make([]domain.RankedResult, len(results))
	for i, r := range results {
		out[i] = domain.RankedResult{
			Path:  r.Document.Path,
			Line:  r.Document.Line,
			Score: r.Score,
			Text:  r.Document.Text,
		}
	}
	return out
}
