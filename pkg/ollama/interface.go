package ollama

import (
	"context"
	"net/http"
)

// IOllama defines the interface for a local Ollama server.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Chat sends a non-streaming chat request. req.Model is overwritten.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Embed returns one embedding per text using the embedding model
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the chat model being used
	Model() string
}

// Config holds Ollama client configuration. No API key is needed.
type Config struct {
	BaseURL        string
	Model          string
	EmbeddingModel string
	HTTPClient     *http.Client
}

// Validate fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = DefaultEmbeddingModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
