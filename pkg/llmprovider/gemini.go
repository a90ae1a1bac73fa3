package llmprovider

import (
	"context"

	"google.golang.org/genai"

	"agentforge/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	cfg := &genai.GenerateContentConfig{
		Tools: convertToGeminiTools(req.Tools),
	}
	if req.SystemInstruction != nil {
		cfg.SystemInstruction = convertToGeminiContent(*req.SystemInstruction)
	}
	if req.Temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	contents := make([]*genai.Content, len(req.Messages))
	for i, msg := range req.Messages {
		contents[i] = convertToGeminiContent(msg)
	}

	resp, err := a.client.GenerateContent(ctx, contents, cfg)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: RoleModel},
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		out.Content = convertFromGeminiContent(resp.Candidates[0].Content)
	}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg Message) *genai.Content {
	role := genai.RoleUser
	if isModelRole(msg.Role) {
		role = genai.RoleModel
	}

	parts := make([]*genai.Part, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		switch {
		case p.FunctionCall != nil:
			parts = append(parts, &genai.Part{FunctionCall: &genai.FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}})
		case p.FunctionResponse != nil:
			parts = append(parts, &genai.Part{FunctionResponse: &genai.FunctionResponse{
				ID:       p.FunctionResponse.ID,
				Name:     p.FunctionResponse.Name,
				Response: responseMap(p.FunctionResponse.Response),
			}})
		default:
			parts = append(parts, genai.NewPartFromText(p.Text))
		}
	}
	return &genai.Content{Role: role, Parts: parts}
}

// responseMap wraps non-object tool results since Gemini requires a JSON object.
func responseMap(v interface{}) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{"result": v}
}

func convertToGeminiTools(tools []Tool) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}
	decls := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		decls[i] = &genai.FunctionDeclaration{
			Name:                 t.Name,
			Description:          t.Description,
			ParametersJsonSchema: t.Parameters,
		}
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

func convertFromGeminiContent(content *genai.Content) Message {
	parts := make([]Part, 0, len(content.Parts))
	for _, p := range content.Parts {
		if p == nil || p.Thought {
			continue
		}
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{
				ID:   p.FunctionCall.ID,
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		parts = append(parts, part)
	}
	return Message{Role: RoleModel, Parts: parts}
}
