package vectorizer

// Snapshot is the immutable result of one Fit. A new Fit replaces the
// vectorizer's snapshot as a whole; existing snapshots are never modified.
type Snapshot struct {
	vocabulary []string
	idf        []float64
	config     Config
	index      map[string]int
}

func newSnapshot(vocabulary []string, idf []float64, cfg Config) *Snapshot {
	index := make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		index[term] = i
	}
	return &Snapshot{
		vocabulary: vocabulary,
		idf:        idf,
		config:     cfg,
		index:      index,
	}
}

// Vocabulary returns a copy of the sorted vocabulary.
func (s *Snapshot) Vocabulary() []string {
	return append([]string{}, s.vocabulary...)
}

// IDF returns a copy of the IDF weights, aligned with Vocabulary.
func (s *Snapshot) IDF() []float64 {
	return append([]float64{}, s.idf...)
}

// Config returns the settings the snapshot was fitted with.
func (s *Snapshot) Config() Config {
	cfg := s.config
	if cfg.StopWords != nil {
		cfg.StopWords = append([]string{}, cfg.StopWords...)
	}
	return cfg
}

// Size returns the number of vocabulary terms.
func (s *Snapshot) Size() int {
	return len(s.vocabulary)
}

// Index returns the column of term, or false if term is not in the vocabulary.
func (s *Snapshot) Index(term string) (int, bool) {
	i, ok := s.index[term]
	return i, ok
}
