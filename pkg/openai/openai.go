package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAIImpl struct {
	client openai.Client
	model  string
}

func newOpenAIImpl(cfg Config) *openAIImpl {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(cfg.HTTPClient),
		// Retries are owned by llmprovider.Manager.
		option.WithMaxRetries(0),
	)
	return &openAIImpl{
		client: client,
		model:  cfg.Model,
	}
}

// CreateChatCompletion sends a chat completion request
func (o *openAIImpl) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	params.Model = openai.ChatModel(o.model)

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: returned no choices")
	}
	return resp, nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}
