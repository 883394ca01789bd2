package usecase

import (
	"context"
	"fmt"

	"tfidf/internal/adapter/fs"
	"tfidf/internal/adapter/vectorizer"
	"tfidf/internal/domain"
	"tfidf/internal/logging"
	"tfidf/internal/port"
)

// VectorizeUseCase loads corpora from disk and runs them through a vectorizer.
type VectorizeUseCase struct {
	walker     port.FileWalker
	loader     *fs.Loader
	vectorizer *vectorizer.Vectorizer
	logger     *logging.Logger
}

// NewVectorizeUseCase creates a new vectorize use case.
func NewVectorizeUseCase(
	walker port.FileWalker,
	loader *fs.Loader,
	vectorizer *vectorizer.Vectorizer,
	logger *logging.Logger,
) *VectorizeUseCase {
	if logger == nil {
		logger = logging.NoopLogger()
	}
	return &VectorizeUseCase{
		walker:     walker,
		loader:     loader,
		vectorizer: vectorizer,
		logger:     logger,
	}
}

// FitResult summarizes a fitted vocabulary.
type FitResult struct {
	Documents  int       `json:"documents"`
	Vocabulary []string  `json:"vocabulary"`
	IDF        []float64 `json:"idf"`
}

// TransformResult is a TF-IDF matrix with its column and row labels.
type TransformResult struct {
	Vocabulary []string `json:"vocabulary"`
	Rows       []Row    `json:"rows"`
}

// Row is the TF-IDF vector of one document.
type Row struct {
	ID     string    `json:"id"`
	Values []float64 `json:"values"`
}

// LoadCorpus walks root and loads every matching file. progress may be nil.
func (u *VectorizeUseCase) LoadCorpus(root string, progress fs.ProgressFunc) ([]domain.Document, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no corpus files found in %s", root)
	}

	docs, err := u.loader.Load(files, progress)
	if err != nil {
		return nil, err
	}

	u.logger.WithCount(len(docs)).InfoContext(context.Background(), "corpus loaded",
		"root", root,
		"files", len(files),
	)
	return docs, nil
}

// Fit fits the vectorizer on docs.
func (u *VectorizeUseCase) Fit(docs []domain.Document) (*FitResult, error) {
	if err := u.vectorizer.Fit(fs.Texts(docs)); err != nil {
		return nil, err
	}
	return &FitResult{
		Documents:  len(docs),
		Vocabulary: u.vectorizer.Vocabulary(),
		IDF:        u.vectorizer.IDF(),
	}, nil
}

// Transform maps docs onto the fitted vocabulary.
func (u *VectorizeUseCase) Transform(docs []domain.Document) (*TransformResult, error) {
	matrix, err := u.vectorizer.Transform(fs.Texts(docs))
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(docs))
	for i, d := range docs {
		rows[i] = Row{ID: d.ID, Values: matrix[i]}
	}
	return &TransformResult{
		Vocabulary: u.vectorizer.Vocabulary(),
		Rows:       rows,
	}, nil
}
