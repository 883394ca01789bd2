// Package vectorizer turns text corpora into TF-IDF matrices.
//
// A Vectorizer is fitted once on a corpus, which fixes its vocabulary and
// IDF weights, and can then transform any number of collections against it.
package vectorizer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tfidf/internal/adapter/analyzer"
	"tfidf/internal/domain"
	"tfidf/internal/logging"
	"tfidf/internal/port"
)

var _ port.Vectorizer = (*Vectorizer)(nil)

// Vectorizer computes TF-IDF vectors against a fitted vocabulary.
type Vectorizer struct {
	cfg      Config
	cleaner  *analyzer.Cleaner
	pipeline port.Preprocessor
	logger   *logging.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// New creates an unfitted Vectorizer. Settings that can be checked up front,
// the bad-characters pattern and the n-gram size, fail with
// domain.ErrInvalidConfiguration.
func New(opts ...Option) (*Vectorizer, error) {
	o := options{
		cfg:    DefaultConfig(),
		logger: logging.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cleaner, err := analyzer.NewCleaner(o.cfg.BadChars)
	if err != nil {
		return nil, err
	}
	tokenizer, err := analyzer.NewTokenizer(o.cfg.NGrams)
	if err != nil {
		return nil, err
	}

	var stages []port.Stage
	if o.cfg.StopWords != nil {
		stages = append(stages, analyzer.NewStopWordFilter(o.cfg.StopWords))
	}
	stages = append(stages, cleaner)
	if o.cfg.Lowercase {
		stages = append(stages, analyzer.NewLowercaser())
	}

	return &Vectorizer{
		cfg:      o.cfg,
		cleaner:  cleaner,
		pipeline: analyzer.NewPipeline(tokenizer, stages...),
		logger:   o.logger,
	}, nil
}

// Config returns the vectorizer settings.
func (v *Vectorizer) Config() Config {
	cfg := v.cfg
	if cfg.StopWords != nil {
		cfg.StopWords = append([]string{}, cfg.StopWords...)
	}
	return cfg
}

// RemoveBadChars deletes every character matching the configured pattern
// from each document.
func (v *Vectorizer) RemoveBadChars(corpus []string) []string {
	return v.cleaner.Apply(corpus)
}

// Tokenize runs the preprocessing pipeline on collection.
func (v *Vectorizer) Tokenize(collection []string) ([][]string, error) {
	return v.pipeline.Preprocess(collection)
}

// Fit builds the vocabulary and IDF weights from corpus, replacing any
// previous fit. If Fit fails the vectorizer is left unfitted.
func (v *Vectorizer) Fit(corpus []string) error {
	start := time.Now()

	v.mu.Lock()
	defer v.mu.Unlock()

	v.snap = nil

	docs, err := v.pipeline.Preprocess(corpus)
	if err != nil {
		err = fmt.Errorf("fit: %w", err)
		v.logger.LogFit(context.Background(), len(corpus), 0, time.Since(start), err)
		return err
	}

	vocab := buildVocabulary(docs)
	vocab = truncateVocabulary(vocab, docs, v.cfg.MaxVocabulary)
	idf := inverseDocumentFrequency(vocab, docs)

	v.snap = newSnapshot(vocab, idf, v.Config())
	v.logger.LogFit(context.Background(), len(corpus), len(vocab), time.Since(start), nil)
	return nil
}

// Transform returns one TF-IDF row per document of collection, each as wide
// as the fitted vocabulary. It fails with domain.ErrNotFitted before the
// first successful Fit.
func (v *Vectorizer) Transform(collection []string) ([][]float64, error) {
	start := time.Now()

	snap := v.Snapshot()
	if snap == nil {
		return nil, domain.ErrNotFitted
	}

	docs, err := v.pipeline.Preprocess(collection)
	if err != nil {
		err = fmt.Errorf("transform: %w", err)
		v.logger.LogTransform(context.Background(), len(collection), snap.Size(), time.Since(start), err)
		return nil, err
	}

	rows := termFrequencies(snap, docs)
	weigh(rows, snap.idf)
	if v.cfg.L2 {
		normalizeL2(rows)
	}

	v.logger.LogTransform(context.Background(), len(collection), snap.Size(), time.Since(start), nil)
	return rows, nil
}

// FitTransform fits on corpus and transforms it.
func (v *Vectorizer) FitTransform(corpus []string) ([][]float64, error) {
	if err := v.Fit(corpus); err != nil {
		return nil, err
	}
	return v.Transform(corpus)
}

// Snapshot returns the current fitted state, or nil when unfitted.
func (v *Vectorizer) Snapshot() *Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap
}

// Vocabulary returns the fitted vocabulary, or nil when unfitted.
func (v *Vectorizer) Vocabulary() []string {
	snap := v.Snapshot()
	if snap == nil {
		return nil
	}
	return snap.Vocabulary()
}

// IDF returns the fitted IDF weights, or nil when unfitted.
func (v *Vectorizer) IDF() []float64 {
	snap := v.Snapshot()
	if snap == nil {
		return nil
	}
	return snap.IDF()
}

// Size returns the fitted vocabulary size.
func (v *Vectorizer) Size() int {
	snap := v.Snapshot()
	if snap == nil {
		return 0
	}
	return snap.Size()
}
