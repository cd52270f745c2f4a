package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GenerateRequest is one beam-search call against a loaded model.
type GenerateRequest struct {
	ModelID          string `json:"model_id"`
	Inputs           string `json:"inputs"`
	SourceLang       string `json:"src_lang"`
	ForcedBOSTokenID int    `json:"forced_bos_token_id"`
	MaxNewTokens     int    `json:"max_new_tokens"`
	DoSample         bool   `json:"do_sample"`
}

// Generator produces output token ids for text. Load is called once per
// model id before the first Generate.
type Generator interface {
	Load(ctx context.Context, modelID string) error
	Generate(ctx context.Context, req GenerateRequest) ([][]int, error)
}

// HTTPGenerator talks to an inference runtime that hosts the seq2seq models.
type HTTPGenerator struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGenerator(baseURL string, timeout time.Duration) *HTTPGenerator {
	return &HTTPGenerator{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type loadRequest struct {
	ModelID string `json:"model_id"`
}

type generateResponse struct {
	Sequences [][]int `json:"sequences"`
}

func (g *HTTPGenerator) Load(ctx context.Context, modelID string) error {
	return g.post(ctx, "/models/load", loadRequest{ModelID: modelID}, nil)
}

func (g *HTTPGenerator) Generate(ctx context.Context, req GenerateRequest) ([][]int, error) {
	var resp generateResponse
	if err := g.post(ctx, "/generate", req, &resp); err != nil {
		return nil, err
	}
	return resp.Sequences, nil
}

func (g *HTTPGenerator) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("inference request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("inference %s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode inference response: %w", err)
	}
	return nil
}
