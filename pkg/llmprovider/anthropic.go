package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	anth "agentforge/pkg/anthropic"
)

// AnthropicAdapter adapts pkg/anthropic to llmprovider.Provider interface
type AnthropicAdapter struct {
	client anth.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anth.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages, err := convertToAnthropicMessages(req.Messages)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	params := anthropic.MessageNewParams{
		Messages: messages,
		Tools:    convertToAnthropicTools(req.Tools),
	}
	if req.SystemInstruction != nil {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemInstruction.Text()}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = int64(req.MaxTokens)
	}

	resp, err := a.client.CreateMessage(ctx, params)
	if err != nil {
		return nil, err
	}

	parts := []Part{}
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			parts = append(parts, Part{Text: block.Text})
		case "tool_use":
			var args map[string]interface{}
			_ = json.Unmarshal(block.Input, &args)
			parts = append(parts, Part{FunctionCall: &FunctionCall{
				ID:   block.ID,
				Name: block.Name,
				Args: args,
			}})
		}
	}

	return &Response{
		Content:      Message{Role: RoleModel, Parts: parts},
		ProviderName: "anthropic",
		ModelName:    string(resp.Model),
		Usage: &Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
			TotalTokens:  int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}, nil
}

// Name returns the provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns the model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}

func convertToAnthropicMessages(msgs []Message) ([]anthropic.MessageParam, error) {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, msg := range msgs {
		blocks := make([]anthropic.ContentBlockParamUnion, 0, len(msg.Parts))
		for _, p := range msg.Parts {
			switch {
			case p.FunctionCall != nil:
				blocks = append(blocks, anthropic.NewToolUseBlock(toolCallID(p.FunctionCall.ID, p.FunctionCall.Name), p.FunctionCall.Args, p.FunctionCall.Name))
			case p.FunctionResponse != nil:
				body, err := json.Marshal(p.FunctionResponse.Response)
				if err != nil {
					return nil, fmt.Errorf("marshal tool result %s: %w", p.FunctionResponse.Name, err)
				}
				blocks = append(blocks, anthropic.NewToolResultBlock(toolCallID(p.FunctionResponse.ID, p.FunctionResponse.Name), string(body), false))
			case p.Text != "":
				blocks = append(blocks, anthropic.NewTextBlock(p.Text))
			}
		}
		if len(blocks) == 0 {
			continue
		}

		// Tool results travel in user turns on the Messages API.
		if isModelRole(msg.Role) {
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		} else {
			out = append(out, anthropic.NewUserMessage(blocks...))
		}
	}
	return out, nil
}

func convertToAnthropicTools(tools []Tool) []anthropic.ToolUnionParam {
	if len(tools) == 0 {
		return nil
	}
	out := make([]anthropic.ToolUnionParam, len(tools))
	for i, t := range tools {
		schema := anthropic.ToolInputSchemaParam{
			Properties: t.Parameters["properties"],
			Required:   requiredFields(t.Parameters["required"]),
		}
		tool := anthropic.ToolUnionParamOfTool(schema, t.Name)
		tool.OfTool.Description = anthropic.String(t.Description)
		out[i] = tool
	}
	return out
}

func requiredFields(v interface{}) []string {
	switch req := v.(type) {
	case []string:
		return req
	case []interface{}:
		out := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
