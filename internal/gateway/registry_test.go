package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry(DefaultModels)

	tests := []struct {
		name     string
		src, tgt string
		wantKey  string
		wantErr  error
	}{
		{"ar to fr", "ar-TD", "fr", "ar-TD_to_fr", nil},
		{"fr to ar", "fr", "ar-TD", "fr_to_ar-TD", nil},
		{"case sensitive", "FR", "ar-TD", "", ErrUnsupportedPair},
		{"same language", "fr", "fr", "", ErrUnsupportedPair},
		{"unknown", "en", "fr", "", ErrUnsupportedPair},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := r.Resolve(tt.src, tt.tgt)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, cfg.Key)
		})
	}
}

func TestRegistry_DuplicatePairReplaced(t *testing.T) {
	r := NewRegistry([]ModelConfig{
		{Key: "a", ModelID: "m1", SourceTag: "x", TargetTag: "y"},
		{Key: "b", ModelID: "m2", SourceTag: "y", TargetTag: "x"},
		{Key: "c", ModelID: "m1", SourceTag: "x", TargetTag: "y"},
	})

	cfg, err := r.Resolve("x", "y")
	require.NoError(t, err)
	assert.Equal(t, "c", cfg.Key)
	assert.Len(t, r.Pairs(), 2)
	assert.Equal(t, []string{"m1", "m2"}, r.ModelIDs())
}

func TestRegistry_PairsIsACopy(t *testing.T) {
	r := NewRegistry(DefaultModels)
	p := r.Pairs()
	p[0].Key = "mutated"

	cfg, err := r.Resolve("ar-TD", "fr")
	require.NoError(t, err)
	assert.Equal(t, "ar-TD_to_fr", cfg.Key)
}
