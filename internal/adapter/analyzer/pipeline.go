package analyzer

import "tfidf/internal/port"

// Pipeline runs documents through a series of stages and then tokenizes them.
type Pipeline struct {
	stages    []port.Stage
	tokenizer *Tokenizer
}

// NewPipeline creates a pipeline. Stages run in the order given.
func NewPipeline(tokenizer *Tokenizer, stages ...port.Stage) *Pipeline {
	return &Pipeline{
		stages:    stages,
		tokenizer: tokenizer,
	}
}

// Preprocess applies every stage and returns one token sequence per document.
func (p *Pipeline) Preprocess(docs []string) ([][]string, error) {
	for _, stage := range p.stages {
		docs = stage.Apply(docs)
	}
	return p.tokenizer.TokenizeAll(docs)
}
