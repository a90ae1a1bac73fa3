package orchestrator

import (
	"context"
	"errors"
	"testing"

	"agentforge/internal/agent"
	"agentforge/pkg/llmprovider"
)

type mockTool struct {
	calls int
	err   error
}

func (m *mockTool) Name() string        { return "mock_tool" }
func (m *mockTool) Description() string { return "A mock tool" }
func (m *mockTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"foo": map[string]interface{}{"type": "string"},
		},
	}
}
func (m *mockTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return map[string]interface{}{"result": "executed", "foo": params["foo"]}, nil
}

// scriptedLLM replays responses in order and records every request it saw.
type scriptedLLM struct {
	responses []*llmprovider.Response
	err       error
	requests  []llmprovider.Request
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	clone := *req
	clone.Messages = append([]llmprovider.Message(nil), req.Messages...)
	s.requests = append(s.requests, clone)
	if s.err != nil {
		return nil, s.err
	}
	i := len(s.requests) - 1
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return s.responses[i], nil
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.TextMessage(llmprovider.RoleModel, text),
		Usage:   &llmprovider.Usage{InputTokens: 10, OutputTokens: 2, TotalTokens: 12},
	}
}

func toolCallResponse(id string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role: llmprovider.RoleModel,
			Parts: []llmprovider.Part{{
				FunctionCall: &llmprovider.FunctionCall{ID: id, Name: "mock_tool", Args: map[string]interface{}{"foo": "bar"}},
			}},
		},
		Usage: &llmprovider.Usage{InputTokens: 5, OutputTokens: 1, TotalTokens: 6},
	}
}

func userRequest(text string) *llmprovider.Request {
	return &llmprovider.Request{
		Messages: []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, text)},
	}
}

func TestOrchestrator_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("simple text response", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{textResponse("Hello there!")}}
		o := New(llm, nil, nil)

		out, err := o.Run(ctx, userRequest("test query"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Text != "Hello there!" || out.Steps != 1 || out.ToolCalls != 0 {
			t.Errorf("unexpected outcome: %+v", out)
		}
		if len(llm.requests[0].Tools) != 0 {
			t.Errorf("expected no tools without a registry")
		}
	})

	t.Run("tool call then answer", func(t *testing.T) {
		tool := &mockTool{}
		llm := &scriptedLLM{responses: []*llmprovider.Response{toolCallResponse("call_1"), textResponse("final")}}
		req := userRequest("test query with tool")
		o := New(llm, agent.NewToolRegistry(tool), nil)

		out, err := o.Run(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Text != "final" || out.Steps != 2 || out.ToolCalls != 1 || tool.calls != 1 {
			t.Errorf("unexpected outcome: %+v (tool calls %d)", out, tool.calls)
		}
		if out.Usage.TotalTokens != 18 {
			t.Errorf("expected summed usage 18, got %d", out.Usage.TotalTokens)
		}
		if len(req.Messages) != 1 {
			t.Errorf("caller request was modified: %d messages", len(req.Messages))
		}

		second := llm.requests[1]
		if len(second.Tools) != 1 || second.Tools[0].Name != "mock_tool" {
			t.Errorf("expected tool definitions, got %+v", second.Tools)
		}
		if len(second.Messages) != 3 {
			t.Fatalf("expected user, model, function turns; got %d", len(second.Messages))
		}
		fn := second.Messages[2]
		if fn.Role != llmprovider.RoleFunction || fn.Parts[0].FunctionResponse.ID != "call_1" {
			t.Errorf("unexpected function turn: %+v", fn)
		}
	})

	t.Run("tool failure is reported to the model", func(t *testing.T) {
		tool := &mockTool{err: errors.New("boom")}
		llm := &scriptedLLM{responses: []*llmprovider.Response{toolCallResponse("c"), textResponse("recovered")}}
		o := New(llm, agent.NewToolRegistry(tool), nil)

		out, err := o.Run(ctx, userRequest("q"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Text != "recovered" {
			t.Errorf("unexpected text %q", out.Text)
		}
		resp := llm.requests[1].Messages[2].Parts[0].FunctionResponse.Response.(map[string]string)
		if resp["error"] != "boom" {
			t.Errorf("expected error payload, got %+v", resp)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{toolCallResponse("c"), textResponse("ok")}}
		o := New(llm, nil, nil)

		if _, err := o.Run(ctx, userRequest("q")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp := llm.requests[1].Messages[2].Parts[0].FunctionResponse.Response.(map[string]string)
		if resp["error"] != ErrMsgToolNotFound {
			t.Errorf("expected not found payload, got %+v", resp)
		}
	})

	t.Run("max steps", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{toolCallResponse("c")}}
		o := New(llm, agent.NewToolRegistry(&mockTool{}), nil)

		out, err := o.Run(ctx, userRequest("loop"))
		if !errors.Is(err, ErrMaxSteps) {
			t.Fatalf("expected ErrMaxSteps, got %v", err)
		}
		if out.Text != "" || out.Steps != MaxAgentSteps || len(llm.requests) != MaxAgentSteps {
			t.Errorf("unexpected outcome: %+v after %d calls", out, len(llm.requests))
		}
	})

	t.Run("empty response", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{textResponse("  ")}}
		o := New(llm, nil, nil)

		_, err := o.Run(ctx, userRequest("q"))
		if !errors.Is(err, agent.ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("llm error", func(t *testing.T) {
		cause := errors.New("unavailable")
		o := New(&scriptedLLM{err: cause}, nil, nil)

		_, err := o.Run(ctx, userRequest("q"))
		if !errors.Is(err, cause) {
			t.Errorf("expected wrapped cause, got %v", err)
		}
	})
}
