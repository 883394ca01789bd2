package retriever

import (
	"tfidf/internal/domain"
)

// MMRReranker implements Maximal Marginal Relevance for result diversification.
type MMRReranker struct {
	lambda       float64
	dedupJaccard float64
}

// NewMMRReranker creates a new MMR reranker.
func NewMMRReranker(lambda, dedupJaccard float64) *MMRReranker {
	return &MMRReranker{
		lambda:       lambda,
		dedupJaccard: dedupJaccard,
	}
}

// Rerank applies MMR to diversify the results.
// MMR(d) = λ * relevance(d) - (1-λ) * max_similarity(d, selected)
func (r *MMRReranker) Rerank(candidates []domain.ScoredDocument, k int) []domain.ScoredDocument {
	if len(candidates) == 0 {
		return nil
	}

	if k <= 0 || k > len(candidates) {
		k = len(candidates)
	}

	maxScore := candidates[0].Score
	for _, c := range candidates {
		if c.Score > maxScore {
			maxScore = c.Score
		}
	}
	if maxScore == 0 {
		maxScore = 1
	}

	selected := make([]domain.ScoredDocument, 0, k)
	remaining := make([]domain.ScoredDocument, len(candidates))
	copy(remaining, candidates)

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := -1
		bestMMR := -1e9

		for i, candidate := range remaining {
			relevance := candidate.Score / maxScore

			maxSim := 0.0
			for _, sel := range selected {
				sim := jaccardSimilarity(candidate.Tokens, sel.Tokens)
				if sim > maxSim {
					maxSim = sim
				}
			}

			// Near duplicates of something already selected are dropped.
			if maxSim > r.dedupJaccard {
				continue
			}

			mmr := r.lambda*relevance - (1-r.lambda)*maxSim
			if mmr > bestMMR {
				bestMMR = mmr
				bestIdx = i
			}
		}

		if bestIdx == -1 {
			break
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

// jaccardSimilarity computes the Jaccard similarity between two token sets.
func jaccardSimilarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}

	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, exists := setB[t]; exists {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// JaccardSimilarity is exported for testing.
func JaccardSimilarity(a, b []string) float64 {
	return jaccardSimilarity(a, b)
}
