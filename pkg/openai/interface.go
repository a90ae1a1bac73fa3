package openai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
)

// IOpenAI defines the interface for OpenAI-compatible chat completion APIs.
// The same client serves OpenAI, Qwen (DashScope) and DeepSeek by switching the base URL.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// CreateChatCompletion sends params to the configured model. params.Model is overwritten.
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)

	// Model returns the model being used
	Model() string
}

// Config holds client configuration.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
