package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfidf/internal/adapter/fs"
	"tfidf/internal/adapter/retriever"
	"tfidf/internal/adapter/vectorizer"
	"tfidf/internal/domain"
)

var hotelCorpus = []string{
	"The hotel and the stay were great",
	"This was a great stay",
	"Great stay in a great destination",
	"Great destination",
}

func writeCorpus(t *testing.T, lines []string) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, "reviews.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return root
}

func newUseCase(t *testing.T, opts ...vectorizer.Option) *VectorizeUseCase {
	t.Helper()
	v, err := vectorizer.New(opts...)
	require.NoError(t, err)
	return NewVectorizeUseCase(fs.NewWalker([]string{"**/*.txt"}, nil), fs.NewLoader(true), v, nil)
}

func TestVectorizeUseCase_FitTransform(t *testing.T) {
	root := writeCorpus(t, hotelCorpus)
	uc := newUseCase(t, vectorizer.WithLowercase(true))

	var progressCalls int
	docs, err := uc.LoadCorpus(root, func(processed, total int, path string) {
		progressCalls++
	})
	require.NoError(t, err)
	require.Len(t, docs, 4)
	assert.Equal(t, 1, progressCalls)

	fit, err := uc.Fit(docs)
	require.NoError(t, err)
	assert.Equal(t, 4, fit.Documents)
	assert.Len(t, fit.Vocabulary, 11)
	assert.Len(t, fit.IDF, 11)

	res, err := uc.Transform(docs)
	require.NoError(t, err)
	require.Len(t, res.Rows, 4)
	assert.Equal(t, docs[3].ID, res.Rows[3].ID)
	assert.InDeltaSlice(t, []float64{0, 0, 1.511, 1.0, 0, 0, 0, 0, 0, 0, 0}, res.Rows[3].Values, 1e-9)
}

func TestVectorizeUseCase_EmptyDirectory(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.LoadCorpus(t.TempDir(), nil)
	assert.Error(t, err)
}

func TestVectorizeUseCase_TransformBeforeFit(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Transform([]domain.Document{{Text: "great"}})
	assert.ErrorIs(t, err, domain.ErrNotFitted)
}

func TestRankUseCase(t *testing.T) {
	root := writeCorpus(t, hotelCorpus)
	v, err := vectorizer.New(vectorizer.WithLowercase(true))
	require.NoError(t, err)
	uc := NewVectorizeUseCase(fs.NewWalker(nil, nil), fs.NewLoader(true), v, nil)

	docs, err := uc.LoadCorpus(root, nil)
	require.NoError(t, err)
	_, err = uc.Fit(docs)
	require.NoError(t, err)

	r := retriever.NewCosineRetriever(v)
	require.NoError(t, r.Index(docs))

	rank := NewRankUseCase(r, retriever.NewMMRReranker(0.7, 0.9), 0)
	results, err := rank.Rank("great destination", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Great destination", results[0].Document.Text)

	out := ToRankedResults(results)
	assert.Equal(t, 4, out[0].Line)
	assert.Equal(t, results[0].Score, out[0].Score)
}

func TestRankUseCase_MinScore(t *testing.T) {
	root := writeCorpus(t, hotelCorpus)
	v, err := vectorizer.New(vectorizer.WithLowercase(true))
	require.NoError(t, err)
	uc := NewVectorizeUseCase(fs.NewWalker(nil, nil), fs.NewLoader(true), v, nil)

	docs, err := uc.LoadCorpus(root, nil)
	require.NoError(t, err)
	_, err = uc.Fit(docs)
	require.NoError(t, err)

	r := retriever.NewCosineRetriever(v)
	require.NoError(t, r.Index(docs))

	results, err := NewRankUseCase(r, nil, 0.99).Rank("great destination", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Great destination", results[0].Document.Text)
}
