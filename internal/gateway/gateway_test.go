package gateway

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	sequences [][]int
	err       error
	last      GenerateRequest
}

func (f *fakeGenerator) Load(context.Context, string) error { return nil }

func (f *fakeGenerator) Generate(_ context.Context, req GenerateRequest) ([][]int, error) {
	f.last = req
	return f.sequences, f.err
}

type fakeLoader struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
	model   *Model
}

func (f *fakeLoader) Load(_ context.Context, modelID string) (*Model, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	m := *f.model
	m.ID = modelID
	return &m, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestGateway(t *testing.T, gen *fakeGenerator) (*Gateway, *fakeLoader) {
	t.Helper()
	loader := &fakeLoader{model: &Model{Tokenizer: testTokenizer(t), Generator: gen}}
	return NewGateway(NewRegistry(DefaultModels), loader, 0, quietLogger()), loader
}

func TestGateway_Translate(t *testing.T) {
	gen := &fakeGenerator{sequences: [][]int{{2, 10, 3, 4, 5, 2}, {3}}}
	gw, _ := newTestGateway(t, gen)

	out, err := gw.Translate(context.Background(), "m", "salam", "acm_Latn", "fra_Latn")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour le monde", out)

	assert.Equal(t, "m", gen.last.ModelID)
	assert.Equal(t, "salam", gen.last.Inputs)
	assert.Equal(t, "acm_Latn", gen.last.SourceLang)
	assert.Equal(t, 10, gen.last.ForcedBOSTokenID)
	assert.Equal(t, DefaultMaxNewTokens, gen.last.MaxNewTokens)
	assert.False(t, gen.last.DoSample)
}

func TestGateway_TranslateErrors(t *testing.T) {
	t.Run("missing target token", func(t *testing.T) {
		gw, _ := newTestGateway(t, &fakeGenerator{sequences: [][]int{{3}}})
		_, err := gw.Translate(context.Background(), "m", "x", "fra_Latn", "deu_Latn")
		assert.ErrorIs(t, err, ErrTargetTokenMissing)
	})

	t.Run("only special tokens", func(t *testing.T) {
		gw, _ := newTestGateway(t, &fakeGenerator{sequences: [][]int{{2, 10, 2}}})
		_, err := gw.Translate(context.Background(), "m", "x", "acm_Latn", "fra_Latn")
		assert.ErrorIs(t, err, ErrEmptyOutput)
	})

	t.Run("no sequences", func(t *testing.T) {
		gw, _ := newTestGateway(t, &fakeGenerator{})
		_, err := gw.Translate(context.Background(), "m", "x", "acm_Latn", "fra_Latn")
		assert.ErrorIs(t, err, ErrEmptyOutput)
	})

	t.Run("generator failure", func(t *testing.T) {
		boom := errors.New("boom")
		gw, _ := newTestGateway(t, &fakeGenerator{err: boom})
		_, err := gw.Translate(context.Background(), "m", "x", "acm_Latn", "fra_Latn")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrModelUnavailable)
	})
}

func TestGateway_ConcurrentFirstUseLoadsOnce(t *testing.T) {
	gen := &fakeGenerator{sequences: [][]int{{3}}}
	loader := &fakeLoader{
		model:   &Model{Tokenizer: testTokenizer(t), Generator: gen},
		release: make(chan struct{}),
	}
	gw := NewGateway(NewRegistry(DefaultModels), loader, 10, quietLogger())

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gw.model(context.Background(), "shared")
			errs <- err
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(loader.release)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), loader.calls.Load())

	_, err := gw.model(context.Background(), "shared")
	require.NoError(t, err)
	assert.Equal(t, int32(1), loader.calls.Load(), "served from cache")
}

func TestGateway_FailedLoadIsNotCached(t *testing.T) {
	gw, loader := newTestGateway(t, &fakeGenerator{sequences: [][]int{{3}}})
	loader.err = errors.New("weights missing")

	_, err := gw.Translate(context.Background(), "m", "x", "acm_Latn", "fra_Latn")
	require.ErrorIs(t, err, ErrModelUnavailable)
	assert.Contains(t, err.Error(), "weights missing")

	loader.err = nil
	out, err := gw.Translate(context.Background(), "m", "x", "acm_Latn", "fra_Latn")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", out)
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestGateway_CancelledWaiter(t *testing.T) {
	gen := &fakeGenerator{sequences: [][]int{{3}}}
	loader := &fakeLoader{
		model:   &Model{Tokenizer: testTokenizer(t), Generator: gen},
		release: make(chan struct{}),
	}
	gw := NewGateway(NewRegistry(DefaultModels), loader, 10, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gw.model(ctx, "slow")
	assert.ErrorIs(t, err, ErrModelUnavailable)

	close(loader.release)
	require.Eventually(t, func() bool {
		_, ok := gw.cached("slow")
		return ok
	}, time.Second, 10*time.Millisecond, "load completes for later callers")
}

func TestGateway_Warmup(t *testing.T) {
	gw, loader := newTestGateway(t, &fakeGenerator{})
	gw.Warmup(context.Background())

	assert.Equal(t, int32(2), loader.calls.Load())
	for _, id := range NewRegistry(DefaultModels).ModelIDs() {
		_, ok := gw.cached(id)
		assert.True(t, ok, id)
	}
}

func TestArtifactLoader(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "org/model/tokenizer.json", testTokenizerJSON)

	gen := &recordingGenerator{}
	m, err := NewArtifactLoader(NewDirStore(dir), gen).Load(context.Background(), "org/model")
	require.NoError(t, err)
	assert.Equal(t, "org/model", m.ID)
	assert.Equal(t, []string{"org/model"}, gen.loaded)

	_, err = NewArtifactLoader(NewDirStore(dir), gen).Load(context.Background(), "org/missing")
	assert.Error(t, err)
}

type recordingGenerator struct {
	fakeGenerator
	loaded []string
}

func (r *recordingGenerator) Load(_ context.Context, modelID string) error {
	r.loaded = append(r.loaded, modelID)
	return nil
}

func TestDirStore_RejectsTraversal(t *testing.T) {
	_, err := NewDirStore(t.TempDir()).Open(context.Background(), "../etc/passwd")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid artifact key"))
}
