package gateway

import (
	"context"
	"fmt"
	"path"
)

const tokenizerArtifact = "tokenizer.json"

// Model is a loaded translation model: its vocabulary plus a generator that
// has already been asked to load the weights.
type Model struct {
	ID        string
	Tokenizer *Tokenizer
	Generator Generator
}

type Loader interface {
	Load(ctx context.Context, modelID string) (*Model, error)
}

// ArtifactLoader reads the tokenizer from an ArtifactStore and warms the
// model on the generator.
type ArtifactLoader struct {
	store     ArtifactStore
	generator Generator
}

func NewArtifactLoader(store ArtifactStore, generator Generator) *ArtifactLoader {
	return &ArtifactLoader{store: store, generator: generator}
}

func (l *ArtifactLoader) Load(ctx context.Context, modelID string) (*Model, error) {
	rc, err := l.store.Open(ctx, path.Join(modelID, tokenizerArtifact))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	tok, err := ParseTokenizer(rc)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", modelID, err)
	}

	if err := l.generator.Load(ctx, modelID); err != nil {
		return nil, fmt.Errorf("model %s: %w", modelID, err)
	}

	return &Model{ID: modelID, Tokenizer: tok, Generator: l.generator}, nil
}
