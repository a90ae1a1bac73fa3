package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"agentforge/pkg/ollama"
)

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface.
// Tools are not forwarded; tool results in the history are inlined as text.
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chat := ollama.ChatRequest{}
	if req.SystemInstruction != nil {
		chat.Messages = append(chat.Messages, ollama.Message{Role: "system", Content: req.SystemInstruction.Text()})
	}
	for _, msg := range req.Messages {
		chat.Messages = append(chat.Messages, convertToOllamaMessage(msg))
	}
	if req.Temperature != nil || req.MaxTokens > 0 {
		chat.Options = &ollama.Options{Temperature: req.Temperature, NumPredict: req.MaxTokens}
	}

	resp, err := a.client.Chat(ctx, chat)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      TextMessage(RoleModel, resp.Message.Content),
		ProviderName: "ollama",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

// Name returns the provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns the model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

func convertToOllamaMessage(msg Message) ollama.Message {
	role := "user"
	if isModelRole(msg.Role) {
		role = "assistant"
	}

	content := msg.Text()
	for _, p := range msg.Parts {
		if p.FunctionResponse != nil {
			body, _ := json.Marshal(p.FunctionResponse.Response)
			content += fmt.Sprintf("\n[%s result] %s", p.FunctionResponse.Name, body)
		}
	}
	return ollama.Message{Role: role, Content: content}
}
