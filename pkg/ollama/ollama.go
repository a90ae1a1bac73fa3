package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type ollamaImpl struct {
	baseURL        string
	model          string
	embeddingModel string
	httpClient     *http.Client
}

func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		model:          cfg.Model,
		embeddingModel: cfg.EmbeddingModel,
		httpClient:     cfg.HTTPClient,
	}
}

// Chat sends a chat request to /api/chat
func (o *ollamaImpl) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	req.Model = o.model
	req.Stream = false

	var resp ChatResponse
	if err := o.post(ctx, "/api/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Embed generates embeddings via /api/embed
func (o *ollamaImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("ollama: no texts provided")
	}

	var resp EmbedResponse
	if err := o.post(ctx, "/api/embed", EmbedRequest{Model: o.embeddingModel, Input: texts}, &resp); err != nil {
		return nil, err
	}
	return resp.Embeddings, nil
}

// Model returns the model being used
func (o *ollamaImpl) Model() string {
	return o.model
}

func (o *ollamaImpl) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("ollama: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("ollama: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("ollama: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if json.Unmarshal(bodyBytes, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("ollama: API error %d: %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("ollama: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ollama: failed to decode response: %w", err)
	}
	return nil
}
