package port

// Stage transforms raw documents before tokenization.
// Implementations must return a slice of the same length and order.
type Stage interface {
	Apply(docs []string) []string
}

// Preprocessor turns raw documents into token sequences.
type Preprocessor interface {
	Preprocess(docs []string) ([][]string, error)
}
