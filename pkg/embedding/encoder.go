// Package embedding turns text into vectors and compares them.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agentforge/pkg/metrics"
)

var (
	ErrNoTexts        = errors.New("embedding: no texts provided")
	ErrResultMismatch = errors.New("embedding: result count does not match input count")
)

// Vector is an embedding produced by an Encoder. Treat it as read-only.
type Vector []float32

// Encoder encodes texts into vectors. Output order matches input order.
// For a fixed model the result is deterministic; different models are not comparable.
type Encoder interface {
	Encode(ctx context.Context, texts []string) ([]Vector, error)
	Model() string
}

// Backend is the raw batch embedding call exposed by the API clients
// (voyage.Client, gemini.Client, ollama.Client).
type Backend interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

type backendEncoder struct {
	backend Backend
	model   string
}

// New adapts an API client to the Encoder interface.
// model is reported by Model() so callers can tell encoders apart.
func New(backend Backend, model string) Encoder {
	return &backendEncoder{backend: backend, model: model}
}

func (e *backendEncoder) Model() string {
	return e.model
}

func (e *backendEncoder) Encode(ctx context.Context, texts []string) ([]Vector, error) {
	if len(texts) == 0 {
		return nil, ErrNoTexts
	}

	start := time.Now()
	raw, err := e.backend.Embed(ctx, texts)
	metrics.EmbeddingLatency.WithLabelValues(e.model).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("embedding %s: %w", e.model, err)
	}
	if len(raw) != len(texts) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrResultMismatch, len(raw), len(texts))
	}

	out := make([]Vector, len(raw))
	for i, v := range raw {
		out[i] = Vector(v)
	}
	return out, nil
}

// EncodeOne encodes a single text.
func EncodeOne(ctx context.Context, enc Encoder, text string) (Vector, error) {
	vecs, err := enc.Encode(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("%w: got %d, want 1", ErrResultMismatch, len(vecs))
	}
	return vecs[0], nil
}
