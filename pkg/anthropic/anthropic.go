package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicImpl struct {
	client anthropic.Client
	model  string
}

func newAnthropicImpl(cfg Config) *anthropicImpl {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(cfg.HTTPClient),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &anthropicImpl{
		client: anthropic.NewClient(opts...),
		model:  cfg.Model,
	}
}

// CreateMessage sends a Messages API request
func (a *anthropicImpl) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	params.Model = anthropic.Model(a.model)
	if params.MaxTokens == 0 {
		params.MaxTokens = DefaultMaxTokens
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: create message: %w", err)
	}
	return resp, nil
}

// Model returns the model being used
func (a *anthropicImpl) Model() string {
	return a.model
}

// Text concatenates the text blocks of a message.
func Text(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text
}
