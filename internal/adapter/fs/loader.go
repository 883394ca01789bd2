package fs

import (
	"fmt"
	"strings"
	"time"

	"tfidf/internal/domain"
	"tfidf/internal/port"
)

// ProgressFunc is called after each file is loaded.
type ProgressFunc func(processed, total int, path string)

// Loader reads corpus files into documents.
type Loader struct {
	reader     port.FileReader
	splitLines bool
}

type osReader struct{}

func (osReader) ReadFile(path string) (string, error) { return ReadFile(path) }

// NewLoader creates a Loader reading from the local filesystem. With
// splitLines every non-blank line becomes its own document, otherwise each
// file is one document.
func NewLoader(splitLines bool) *Loader {
	return &Loader{reader: osReader{}, splitLines: splitLines}
}

// Load reads files in order. progress may be nil.
func (l *Loader) Load(files []port.FileInfo, progress ProgressFunc) ([]domain.Document, error) {
	var docs []domain.Document
	for i, f := range files {
		text, err := l.reader.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
		}
		modTime := time.Unix(f.ModTime, 0)

		if !l.splitLines {
			docs = append(docs, domain.Document{
				ID:      f.Path,
				Path:    f.Path,
				ModTime: modTime,
				Text:    text,
			})
		} else {
			for n, line := range strings.Split(text, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				docs = append(docs, domain.Document{
					ID:      fmt.Sprintf("%s:%d", f.Path, n+1),
					Path:    f.Path,
					Line:    n + 1,
					ModTime: modTime,
					Text:    line,
				})
			}
		}

		if progress != nil {
			progress(i+1, len(files), f.Path)
		}
	}
	return docs, nil
}

// Texts returns the text of every document, in order.
func Texts(docs []domain.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Text
	}
	return out
}
