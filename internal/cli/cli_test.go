package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfidf/config"
	"tfidf/internal/domain"
	"tfidf/internal/usecase"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVocabCommand_JSON(t *testing.T) {
	root := t.TempDir()
	corpus := "The hotel and the stay were great\nThis was a great stay\nGreat stay in a great destination\nGreat destination\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "reviews.txt"), []byte(corpus), 0644))

	out := execute(t, "", "vocab", root, "-d", root, "--split-lines", "--quiet", "-f", "json")

	var result usecase.FitResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 4, result.Documents)
	assert.Equal(t, []string{"a", "and", "destination", "great", "hotel", "in", "stay", "the", "this", "was", "were"}, result.Vocabulary)
	assert.Len(t, result.IDF, len(result.Vocabulary))
}

func TestRankCommand_JSON(t *testing.T) {
	root := t.TempDir()
	corpus := "The hotel and the stay were great\nThis was a great stay\nGreat stay in a great destination\nGreat destination\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "reviews.txt"), []byte(corpus), 0644))

	out := execute(t, "", "rank", root, "-d", root, "--split-lines", "--quiet", "-f", "json", "-q", "great destination", "-k", "2")

	var results []domain.RankedResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, 4, results[0].Line)
	assert.Equal(t, "Great destination", results[0].Text)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestCleanCommand_Stdin(t *testing.T) {
	root := t.TempDir()

	out := execute(t, "mickey mouse!@.,#\nnothing to clean here\n", "clean", "-d", root, "-f", "table")
	assert.Equal(t, "mickey mouse!@#\nnothing to clean here\n", out)
}

func TestVectorizerConfig(t *testing.T) {
	c := config.DefaultConfig().Vectorizer
	vc := vectorizerConfig(c)
	assert.Nil(t, vc.StopWords)
	assert.Equal(t, 1, vc.NGrams)
	assert.True(t, vc.Lowercase)

	c.StopWords = []string{"hotel"}
	c.DefaultStopWords = true
	vc = vectorizerConfig(c)
	assert.Contains(t, vc.StopWords, "hotel")
	assert.Contains(t, vc.StopWords, "the")
}
