package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"

	"tfidf/config"
	"tfidf/internal/adapter/fs"
	"tfidf/internal/adapter/vectorizer"
	"tfidf/internal/domain"
	"tfidf/internal/usecase"
)

// corpusPath resolves the optional path argument against the root directory.
func corpusPath(args []string) (string, error) {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", path)
	}
	return path, nil
}

// newVectorizeUseCase wires the walker, loader and vectorizer from config.
func newVectorizeUseCase(c *config.Config) (*usecase.VectorizeUseCase, *vectorizer.Vectorizer, error) {
	v, err := newVectorizer(c, logger)
	if err != nil {
		return nil, nil, err
	}
	walker := fs.NewWalker(c.Corpus.Includes, c.Corpus.Excludes)
	loader := fs.NewLoader(c.Corpus.SplitLines)
	return usecase.NewVectorizeUseCase(walker, loader, v, logger), v, nil
}

// loadCorpus loads documents below path, drawing a progress bar on stderr.
func loadCorpus(uc *usecase.VectorizeUseCase, path string) ([]domain.Document, error) {
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex

	progress := func(processed, total int, file string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetVisibility(!quiet),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Loading[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(processed)
	}

	docs, err := uc.LoadCorpus(path, progress)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	return docs, nil
}

// textDocuments wraps literal texts given on the command line.
func textDocuments(texts []string) []domain.Document {
	docs := make([]domain.Document, len(texts))
	for i, text := range texts {
		docs[i] = domain.Document{
			ID:   fmt.Sprintf("text:%d", i+1),
			Text: text,
		}
	}
	return docs
}
