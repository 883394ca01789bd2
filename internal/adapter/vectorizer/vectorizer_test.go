package vectorizer

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfidf/internal/domain"
)

var hotelCorpus = []string{
	"The hotel and the stay were great",
	"This was a great stay",
	"Great stay in a great destination",
	"Great destination",
}

var reviewCollection = []string{
	"This was a wonderful stay",
	"Dear customer thanks for your review",
}

var hotelStopWords = []string{"and", "a", "the", "it", "he", "she", "where", "was", "for"}

func assertMatrix(t *testing.T, want, got [][]float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDeltaSlice(t, want[i], got[i], 1e-9, "row %d", i)
	}
}

func TestFit_LowercaseUnigrams(t *testing.T) {
	v, err := New(WithLowercase(true))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	assert.Equal(t, []string{"a", "and", "destination", "great", "hotel", "in", "stay", "the", "this", "was", "were"}, v.Vocabulary())
	assert.InDeltaSlice(t, []float64{1.511, 1.916, 1.511, 1.0, 1.916, 1.916, 1.223, 1.916, 1.916, 1.916, 1.916}, v.IDF(), 1e-9)
	assert.Equal(t, 11, v.Size())
}

func TestFit_KeepsCase(t *testing.T) {
	v, err := New()
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	assert.Equal(t, []string{"Great", "The", "This", "a", "and", "destination", "great", "hotel", "in", "stay", "the", "was", "were"}, v.Vocabulary())
}

func TestTransform_SameCorpus(t *testing.T) {
	v, err := New(WithLowercase(true))
	require.NoError(t, err)

	rows, err := v.FitTransform(hotelCorpus)
	require.NoError(t, err)
	assertMatrix(t, [][]float64{
		{0, 1.916, 0, 1.0, 1.916, 0, 1.223, 3.832, 0, 0, 1.916},
		{1.511, 0, 0, 1.0, 0, 0, 1.223, 0, 1.916, 1.916, 0},
		{1.511, 0, 1.511, 2.0, 0, 1.916, 1.223, 0, 0, 0, 0},
		{0, 0, 1.511, 1.0, 0, 0, 0, 0, 0, 0, 0},
	}, rows)
}

func TestTransform_NewCollection(t *testing.T) {
	v, err := New(WithLowercase(true))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	rows, err := v.Transform(reviewCollection)
	require.NoError(t, err)
	assertMatrix(t, [][]float64{
		{1.511, 0, 0, 0, 0, 0, 1.223, 0, 1.916, 1.916, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}, rows)
}

func TestTransform_L2(t *testing.T) {
	v, err := New(WithLowercase(true), WithL2(true))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	rows, err := v.Transform(hotelCorpus)
	require.NoError(t, err)
	assertMatrix(t, [][]float64{
		{0, 0.361, 0, 0.188, 0.361, 0, 0.23, 0.722, 0, 0, 0.361},
		{0.434, 0, 0, 0.287, 0, 0, 0.351, 0, 0.55, 0.55, 0},
		{0.408, 0, 0.408, 0.54, 0, 0.517, 0.33, 0, 0, 0, 0},
		{0, 0, 0.834, 0.552, 0, 0, 0, 0, 0, 0, 0},
	}, rows)
}

func TestTransform_L2KeepsZeroRows(t *testing.T) {
	v, err := New(WithLowercase(true), WithL2(true))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	rows, err := v.Transform(reviewCollection)
	require.NoError(t, err)
	assertMatrix(t, [][]float64{
		{0.453, 0, 0, 0, 0, 0, 0.367, 0, 0.575, 0.575, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}, rows)
}

func TestTransform_RowWidth(t *testing.T) {
	v, err := New(WithLowercase(true))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	rows, err := v.Transform([]string{"", "great", "completely unrelated words only", "stay stay stay"})
	require.NoError(t, err)
	for i, row := range rows {
		assert.Len(t, row, len(v.Vocabulary()), "row %d", i)
	}
}

func TestFit_Bigrams(t *testing.T) {
	v, err := New(WithLowercase(true), WithNGrams(2))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	assert.Equal(t, []string{
		"a great", "and the", "great destination", "great stay", "hotel and", "in a",
		"stay in", "stay were", "the hotel", "the stay", "this was", "was a", "were great",
	}, v.Vocabulary())
	assert.InDeltaSlice(t, []float64{1.511, 1.916, 1.511, 1.511, 1.916, 1.916, 1.916, 1.916, 1.916, 1.916, 1.916, 1.916, 1.916}, v.IDF(), 1e-9)
}

func TestFit_NGramTooLarge(t *testing.T) {
	v, err := New(WithNGrams(2))
	require.NoError(t, err)

	err = v.Fit([]string{"two words", "single"})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	assert.Nil(t, v.Snapshot())
}

func TestTransform_NGramTooLarge(t *testing.T) {
	v, err := New(WithNGrams(2))
	require.NoError(t, err)
	require.NoError(t, v.Fit([]string{"two words"}))

	_, err = v.Transform([]string{"single"})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	assert.Equal(t, []string{"two words"}, v.Vocabulary())
}

func TestFit_FailureResetsState(t *testing.T) {
	v, err := New(WithNGrams(2))
	require.NoError(t, err)
	require.NoError(t, v.Fit([]string{"two words"}))

	require.Error(t, v.Fit([]string{"single"}))
	_, err = v.Transform([]string{"two words"})
	assert.ErrorIs(t, err, domain.ErrNotFitted)
}

func TestTransform_NotFitted(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	_, err = v.Transform(hotelCorpus)
	assert.ErrorIs(t, err, domain.ErrNotFitted)
	assert.Nil(t, v.Vocabulary())
	assert.Equal(t, 0, v.Size())
}

func TestFit_MaxVocabulary(t *testing.T) {
	v, err := New(WithLowercase(true), WithMaxVocabulary(4))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	// great(5) and stay(3) lead; the, a and destination tie at 2 and the
	// first two seen while scanning win.
	assert.Equal(t, []string{"a", "great", "stay", "the"}, v.Vocabulary())
	assert.InDeltaSlice(t, []float64{1.511, 1.0, 1.223, 1.916}, v.IDF(), 1e-9)
}

func TestFit_MaxVocabularyLargerThanCandidates(t *testing.T) {
	v, err := New(WithLowercase(true), WithMaxVocabulary(100))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	assert.Equal(t, 11, v.Size())
}

func TestFit_Refit(t *testing.T) {
	v, err := New(WithLowercase(true))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))
	first := v.Snapshot()

	require.NoError(t, v.Fit([]string{"Great destination"}))

	assert.Equal(t, []string{"destination", "great"}, v.Vocabulary())
	assert.Equal(t, 11, first.Size(), "earlier snapshot must not change")
}

func TestStopWords(t *testing.T) {
	v, err := New(WithLowercase(true), WithStopWords(hotelStopWords))
	require.NoError(t, err)
	require.NoError(t, v.Fit(hotelCorpus))

	assert.Equal(t, []string{"destination", "great", "hotel", "in", "stay", "this", "were"}, v.Vocabulary())
	assert.InDeltaSlice(t, []float64{1.511, 1.0, 1.916, 1.916, 1.223, 1.916, 1.916}, v.IDF(), 1e-9)

	rows, err := v.Transform(hotelCorpus)
	require.NoError(t, err)
	assertMatrix(t, [][]float64{
		{0, 1.0, 1.916, 0, 1.223, 0, 1.916},
		{0, 1.0, 0, 0, 1.223, 1.916, 0},
		{1.511, 2.0, 0, 1.916, 1.223, 0, 0},
		{1.511, 1.0, 0, 0, 0, 0, 0},
	}, rows)
}

func TestStopWords_SetDifference(t *testing.T) {
	full, err := New(WithLowercase(true))
	require.NoError(t, err)
	require.NoError(t, full.Fit(hotelCorpus))

	filtered, err := New(WithLowercase(true), WithStopWords(hotelStopWords))
	require.NoError(t, err)
	require.NoError(t, filtered.Fit(hotelCorpus))

	stop := make(map[string]struct{}, len(hotelStopWords))
	for _, w := range hotelStopWords {
		stop[w] = struct{}{}
	}
	var want []string
	for _, term := range full.Vocabulary() {
		if _, ok := stop[term]; !ok {
			want = append(want, term)
		}
	}
	assert.Equal(t, want, filtered.Vocabulary())
}

func TestRemoveBadChars(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.Equal(t, []string{"mickey mouse!@#"}, v.RemoveBadChars([]string{"mickey mouse!@.,#"}))
	assert.Equal(t,
		[]string{"This is a test What do you want from me", "nothing to clean here", "mickey mouse!@#"},
		v.RemoveBadChars([]string{"This is a test: What do you want from me?", "nothing to clean here", ":?:mickey mouse!@.,#"}),
	)
}

func TestNew_InvalidConfiguration(t *testing.T) {
	_, err := New(WithBadChars("[."))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = New(WithNGrams(0))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestVocabularySoundness(t *testing.T) {
	corpora := [][]string{
		hotelCorpus,
		reviewCollection,
		{"b a b a", "c", ""},
		{"Zebra apple Äpfel zebra"},
	}
	for _, corpus := range corpora {
		v, err := New(WithLowercase(true))
		require.NoError(t, err)
		require.NoError(t, v.Fit(corpus))

		vocab := v.Vocabulary()
		assert.True(t, sort.StringsAreSorted(vocab), "%v not sorted", vocab)

		seen := make(map[string]bool, len(vocab))
		for _, term := range vocab {
			assert.False(t, seen[term], "duplicate term %q", term)
			seen[term] = true
		}

		docs, err := v.Tokenize(corpus)
		require.NoError(t, err)
		for _, doc := range docs {
			for _, tok := range doc {
				assert.True(t, seen[tok], "token %q missing from vocabulary", tok)
			}
		}

		for _, w := range v.IDF() {
			assert.Greater(t, w, 0.0)
		}
		assert.Len(t, v.IDF(), len(vocab))
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.9162907318741551, 1.916},
		{1.5108256237659907, 1.511},
		{0.0005, 0.001},
		{0.0015, 0.002},
		{2.0, 2.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round(tt.in, 3), "round(%v)", tt.in)
	}
}
