package port

// Vectorizer learns a vocabulary from a corpus and maps documents onto it.
type Vectorizer interface {
	Fit(corpus []string) error
	Transform(collection []string) ([][]float64, error)
	Vocabulary() []string
	Tokenize(collection []string) ([][]string, error)
}
