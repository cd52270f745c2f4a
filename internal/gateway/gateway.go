package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxNewTokens bounds generation length.
const DefaultMaxNewTokens = 200

// Gateway resolves language pairs and runs translations through a
// process-wide model cache. Each model id is loaded at most once at a time;
// a successful load is kept for the life of the process.
type Gateway struct {
	registry     *Registry
	loader       Loader
	maxNewTokens int
	logger       *logrus.Logger

	mu     sync.RWMutex
	models map[string]*Model
	group  singleflight.Group
}

func NewGateway(registry *Registry, loader Loader, maxNewTokens int, logger *logrus.Logger) *Gateway {
	if maxNewTokens <= 0 {
		maxNewTokens = DefaultMaxNewTokens
	}
	return &Gateway{
		registry:     registry,
		loader:       loader,
		maxNewTokens: maxNewTokens,
		logger:       logger,
		models:       make(map[string]*Model),
	}
}

func (g *Gateway) Resolve(sourceTag, targetTag string) (ModelConfig, error) {
	return g.registry.Resolve(sourceTag, targetTag)
}

func (g *Gateway) Pairs() []ModelConfig {
	return g.registry.Pairs()
}

// Translate runs text through modelID, forcing the first generated token to
// the target language marker, and returns the decoded first sequence.
func (g *Gateway) Translate(ctx context.Context, modelID, text, sourceCode, targetCode string) (string, error) {
	model, err := g.model(ctx, modelID)
	if err != nil {
		return "", err
	}

	bos, ok := model.Tokenizer.LanguageTokenID(targetCode)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTargetTokenMissing, targetCode)
	}

	sequences, err := model.Generator.Generate(ctx, GenerateRequest{
		ModelID:          modelID,
		Inputs:           text,
		SourceLang:       sourceCode,
		ForcedBOSTokenID: bos,
		MaxNewTokens:     g.maxNewTokens,
		DoSample:         false,
	})
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if len(sequences) == 0 {
		return "", ErrEmptyOutput
	}

	out := strings.TrimSpace(model.Tokenizer.Decode(sequences[0], true))
	if out == "" {
		return "", ErrEmptyOutput
	}
	return out, nil
}

// Warmup loads every configured model. Failures are logged and left for the
// first request to retry.
func (g *Gateway) Warmup(ctx context.Context) {
	for _, id := range g.registry.ModelIDs() {
		if _, err := g.model(ctx, id); err != nil {
			continue
		}
		g.logger.WithField("model", id).Info("Model warmed up")
	}
}

func (g *Gateway) cached(modelID string) (*Model, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.models[modelID]
	return m, ok
}

func (g *Gateway) model(ctx context.Context, modelID string) (*Model, error) {
	if m, ok := g.cached(modelID); ok {
		return m, nil
	}

	ch := g.group.DoChan(modelID, func() (any, error) {
		if m, ok := g.cached(modelID); ok {
			return m, nil
		}

		// Shared by every waiter, so one caller hanging up must not abort it.
		m, err := g.loader.Load(context.WithoutCancel(ctx), modelID)
		if err != nil {
			g.logger.WithError(err).WithField("model", modelID).Error("Failed to load model")
			return nil, err
		}

		g.mu.Lock()
		g.models[modelID] = m
		g.mu.Unlock()

		g.logger.WithField("model", modelID).Info("Model loaded")
		return m, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, res.Err)
		}
		return res.Val.(*Model), nil
	}
}
