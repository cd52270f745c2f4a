package gateway

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactStore serves model files by key, e.g. "<model id>/tokenizer.json".
type ArtifactStore interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// DirStore reads artifacts from a local directory laid out as
// <root>/<model id>/<file>.
type DirStore struct {
	root string
}

func NewDirStore(root string) *DirStore {
	return &DirStore{root: root}
}

func (s *DirStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	if strings.Contains(key, "..") {
		return nil, fmt.Errorf("invalid artifact key %q", key)
	}
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact %s: %w", key, err)
	}
	return f, nil
}
