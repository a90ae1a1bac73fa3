package embedding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agentforge/pkg/gemini"
	"agentforge/pkg/ollama"
	"agentforge/pkg/voyage"
)

const (
	ProviderVoyage = "voyage"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// ProviderConfig selects and configures an embedding backend.
type ProviderConfig struct {
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	CacheSize int
	CacheTTL  time.Duration
	// DisableCache skips the LRU wrapper. Tests use it to count backend calls.
	DisableCache bool
}

// NewFromConfig builds a cached Encoder for the configured provider.
func NewFromConfig(ctx context.Context, cfg ProviderConfig) (Encoder, error) {
	var (
		backend Backend
		model   string
	)

	switch strings.ToLower(cfg.Provider) {
	case ProviderVoyage, "":
		model = cfg.Model
		if model == "" {
			model = voyage.DefaultModel
		}
		client, err := voyage.New(voyage.Config{
			APIKey:  cfg.APIKey,
			Model:   model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		backend = client

	case ProviderGemini:
		model = cfg.Model
		if model == "" {
			model = gemini.DefaultEmbeddingModel
		}
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:         cfg.APIKey,
			EmbeddingModel: model,
			BaseURL:        cfg.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		backend = client

	case ProviderOllama:
		model = cfg.Model
		if model == "" {
			model = ollama.DefaultEmbeddingModel
		}
		client, err := ollama.New(ollama.Config{
			BaseURL:        cfg.BaseURL,
			EmbeddingModel: model,
		})
		if err != nil {
			return nil, err
		}
		backend = client

	default:
		return nil, fmt.Errorf("embedding: unsupported provider %q", cfg.Provider)
	}

	enc := New(backend, model)
	if cfg.DisableCache {
		return enc, nil
	}
	return NewCached(enc, cfg.CacheSize, cfg.CacheTTL), nil
}
