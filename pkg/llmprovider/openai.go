package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	oai "agentforge/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// It serves every OpenAI-compatible endpoint (OpenAI, Qwen, DeepSeek) under its own name.
type OpenAIAdapter struct {
	client oai.IOpenAI
	name   string
}

// NewOpenAIAdapter creates a new adapter reported as name
func NewOpenAIAdapter(client oai.IOpenAI, name string) *OpenAIAdapter {
	if name == "" {
		name = "openai"
	}
	return &OpenAIAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages, err := convertToOpenAIMessages(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Tools:    convertToOpenAITools(req.Tools),
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := a.client.CreateChatCompletion(ctx, params)
	if err != nil {
		return nil, err
	}

	return convertFromOpenAIResponse(a.name, resp), nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIMessages(req *Request) ([]openai.ChatCompletionMessageParamUnion, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		messages = append(messages, openai.SystemMessage(req.SystemInstruction.Text()))
	}

	for _, msg := range req.Messages {
		switch {
		case isFunctionRole(msg.Role):
			for _, p := range msg.Parts {
				if p.FunctionResponse == nil {
					continue
				}
				body, err := json.Marshal(p.FunctionResponse.Response)
				if err != nil {
					return nil, fmt.Errorf("marshal tool result %s: %w", p.FunctionResponse.Name, err)
				}
				messages = append(messages, openai.ToolMessage(string(body), toolCallID(p.FunctionResponse.ID, p.FunctionResponse.Name)))
			}

		case isModelRole(msg.Role):
			calls := msg.FunctionCalls()
			if len(calls) == 0 {
				messages = append(messages, openai.AssistantMessage(msg.Text()))
				continue
			}
			assistant := &openai.ChatCompletionAssistantMessageParam{}
			if text := msg.Text(); text != "" {
				assistant.Content.OfString = openai.String(text)
			}
			for _, fc := range calls {
				args, err := json.Marshal(fc.Args)
				if err != nil {
					return nil, fmt.Errorf("marshal tool call %s: %w", fc.Name, err)
				}
				assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallParam{
					ID: toolCallID(fc.ID, fc.Name),
					Function: openai.ChatCompletionMessageToolCallFunctionParam{
						Name:      fc.Name,
						Arguments: string(args),
					},
				})
			}
			messages = append(messages, openai.ChatCompletionMessageParamUnion{OfAssistant: assistant})

		default:
			messages = append(messages, openai.UserMessage(msg.Text()))
		}
	}
	return messages, nil
}

func toolCallID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}

func convertToOpenAITools(tools []Tool) []openai.ChatCompletionToolParam {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.ChatCompletionToolParam, len(tools))
	for i, t := range tools {
		out[i] = openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  shared.FunctionParameters(t.Parameters),
			},
		}
	}
	return out
}

func convertFromOpenAIResponse(name string, resp *openai.ChatCompletion) *Response {
	parts := []Part{}
	if len(resp.Choices) > 0 {
		msg := resp.Choices[0].Message
		if msg.Content != "" {
			parts = append(parts, Part{Text: msg.Content})
		}
		for _, tc := range msg.ToolCalls {
			var args map[string]interface{}
			// Malformed arguments surface as an empty call; the tool reports missing params.
			_ = json.Unmarshal([]byte(tc.Function.Arguments), &args)
			parts = append(parts, Part{FunctionCall: &FunctionCall{
				ID:   tc.ID,
				Name: tc.Function.Name,
				Args: args,
			}})
		}
	}

	return &Response{
		Content:      Message{Role: RoleModel, Parts: parts},
		ProviderName: name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}
}
