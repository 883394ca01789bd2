//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"
	"time"

	"tfidf/internal/adapter/analyzer"
	"tfidf/internal/adapter/cache"
	"tfidf/internal/adapter/retriever"
	"tfidf/internal/adapter/vectorizer"
	"tfidf/internal/domain"
	"tfidf/internal/usecase"
)

// fitOptions mirrors the vectorizer settings accepted from JavaScript.
type fitOptions struct {
	Lowercase     *bool    `json:"lowercase"`
	BadChars      *string  `json:"badChars"`
	MaxVocabulary int      `json:"maxVocabulary"`
	L2            bool     `json:"l2"`
	NGrams        int      `json:"ngrams"`
	StopWords     []string `json:"stopWords"`
	DefaultStops  bool     `json:"defaultStopWords"`
}

var (
	docs       []domain.Document
	vec        *vectorizer.Vectorizer
	queryCache = cache.NewQueryCache(100, 5*time.Minute)
	ranker     *usecase.RankUseCase
)

func main() {
	c := make(chan struct{})

	js.Global().Set("tfidfAdd", js.FuncOf(addContent))
	js.Global().Set("tfidfFit", js.FuncOf(fitCorpus))
	js.Global().Set("tfidfTransform", js.FuncOf(transformTexts))
	js.Global().Set("tfidfRank", js.FuncOf(rankQuery))
	js.Global().Set("tfidfClear", js.FuncOf(clearCorpus))

	<-c
}

// addContent adds every non-blank line of content as a document.
func addContent(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: tfidfAdd(filename, content)")
	}

	filename := args[0].String()
	added := 0
	for n, line := range strings.Split(args[1].String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		docs = append(docs, domain.Document{
			ID:      fmt.Sprintf("%s:%d", filename, n+1),
			Path:    filename,
			Line:    n + 1,
			ModTime: time.Now(),
			Text:    line,
		})
		added++
	}

	return makeResult(map[string]interface{}{
		"added":     added,
		"documents": len(docs),
	})
}

// fitCorpus fits a new vectorizer on all added documents.
func fitCorpus(this js.Value, args []js.Value) interface{} {
	cfg := vectorizer.DefaultConfig()
	cfg.Lowercase = true
	if len(args) > 0 && args[0].Type() == js.TypeString {
		var opts fitOptions
		if err := json.Unmarshal([]byte(args[0].String()), &opts); err != nil {
			return makeError("invalid options: " + err.Error())
		}
		if opts.Lowercase != nil {
			cfg.Lowercase = *opts.Lowercase
		}
		if opts.BadChars != nil {
			cfg.BadChars = *opts.BadChars
		}
		if opts.NGrams > 0 {
			cfg.NGrams = opts.NGrams
		}
		cfg.MaxVocabulary = opts.MaxVocabulary
		cfg.L2 = opts.L2
		cfg.StopWords = opts.StopWords
		if opts.DefaultStops {
			cfg.StopWords = append(cfg.StopWords, analyzer.DefaultStopWords()...)
		}
	}

	v, err := vectorizer.New(vectorizer.WithConfig(cfg))
	if err != nil {
		return makeError(err.Error())
	}
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	if err := v.Fit(texts); err != nil {
		return makeError("fit failed: " + err.Error())
	}

	cosine := retriever.NewCosineRetriever(v)
	if err := cosine.Index(docs); err != nil {
		return makeError(err.Error())
	}

	queryCache.Invalidate()
	vec = v
	ranker = usecase.NewRankUseCase(
		cache.NewCachedRetriever(cosine, queryCache),
		retriever.NewMMRReranker(0.7, 0.9),
		0,
	)

	return makeResult(map[string]interface{}{
		"documents":  len(docs),
		"vocabulary": v.Vocabulary(),
		"idf":        v.IDF(),
	})
}

// transformTexts maps a JSON array of strings onto the fitted vocabulary.
func transformTexts(this js.Value, args []js.Value) interface{} {
	if vec == nil {
		return makeError(domain.ErrNotFitted.Error())
	}
	if len(args) < 1 {
		return makeError("usage: tfidfTransform(jsonArrayOfTexts)")
	}

	var texts []string
	if err := json.Unmarshal([]byte(args[0].String()), &texts); err != nil {
		return makeError("invalid texts: " + err.Error())
	}

	rows, err := vec.Transform(texts)
	if err != nil {
		return makeError("transform failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"vocabulary": vec.Vocabulary(),
		"rows":       rows,
	})
}

func rankQuery(this js.Value, args []js.Value) interface{} {
	if ranker == nil {
		return makeError(domain.ErrNotFitted.Error())
	}
	if len(args) < 1 {
		return makeError("usage: tfidfRank(query, [topK])")
	}

	query := args[0].String()
	topK := 5
	if len(args) > 1 {
		topK = args[1].Int()
	}

	results, err := ranker.Rank(query, topK)
	if err != nil {
		return makeError("rank failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"results": usecase.ToRankedResults(results),
		"query":   query,
	})
}

func clearCorpus(this js.Value, args []js.Value) interface{} {
	docs = nil
	vec = nil
	ranker = nil
	queryCache.Invalidate()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
