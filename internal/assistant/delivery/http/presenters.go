package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"agentforge/internal/agent"
	"agentforge/internal/assistant"
	"agentforge/internal/evaluation"
	"agentforge/internal/router"
	"agentforge/pkg/response"
)

// --- Request DTOs ---

type routeReq struct {
	Text string `json:"text" binding:"required"`
}

func (r routeReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return assistant.ErrEmptyText
	}
	return nil
}

func (r routeReq) toInput() assistant.RouteInput {
	return assistant.RouteInput{Text: r.Text}
}

// ---

type executeReq struct {
	UserID   string `json:"user_id"`
	Text     string `json:"text"     binding:"required"`
	Category string `json:"category"`
	Context  string `json:"context"`
}

func (r executeReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return assistant.ErrEmptyText
	}
	return nil
}

func (r executeReq) toInput() assistant.ExecuteInput {
	return assistant.ExecuteInput{
		UserID:   r.UserID,
		Text:     r.Text,
		Category: r.Category,
		Context:  r.Context,
	}
}

// ---

type judgeReq struct {
	Task   string `json:"task"   binding:"required"`
	Output string `json:"output" binding:"required"`
}

func (r judgeReq) validate() error { return nil }

func (r judgeReq) toInput() evaluation.JudgeInput {
	return evaluation.JudgeInput{Task: r.Task, Output: r.Output}
}

// ---

// rating accepts 7 as well as "7".
type rating string

func (r *rating) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = rating(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("rating: %w", err)
	}
	*r = rating(n.String())
	return nil
}

type feedbackReq struct {
	Task     string `json:"task"     binding:"required"`
	Output   string `json:"output"   binding:"required"`
	Rating   rating `json:"rating"   swaggertype:"string"`
	Feedback string `json:"feedback"`
}

func (r feedbackReq) validate() error { return nil }

func (r feedbackReq) toInput() evaluation.FeedbackInput {
	return evaluation.FeedbackInput{
		Task:     r.Task,
		Output:   r.Output,
		Rating:   string(r.Rating),
		Feedback: r.Feedback,
	}
}

// --- Response DTOs ---

type decisionResp struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedPhrase  string  `json:"matched_phrase,omitempty"`
	FallbackReason string  `json:"fallback_reason,omitempty"`
}

func newDecisionResp(d router.Decision) decisionResp {
	return decisionResp{
		Category:       string(d.Category),
		Method:         string(d.Method),
		Confidence:     d.Confidence,
		MatchedPhrase:  d.MatchedPhrase,
		FallbackReason: d.FallbackReason,
	}
}

type routeResp struct {
	Decision decisionResp `json:"decision"`
}

func (h *handler) newRouteResp(out assistant.RouteOutput) routeResp {
	return routeResp{Decision: newDecisionResp(out.Decision)}
}

type executeResp struct {
	Decision *decisionResp `json:"decision,omitempty"`
	Result   agent.Result  `json:"result" swaggertype:"object"`
}

func (h *handler) newExecuteResp(out assistant.ExecuteOutput) executeResp {
	resp := executeResp{Result: out.Result}
	if out.Decision != nil {
		d := newDecisionResp(*out.Decision)
		resp.Decision = &d
	}
	return resp
}

type judgeResp struct {
	Valid   bool           `json:"valid"`
	Verdict map[string]any `json:"verdict"`
}

func (h *handler) newJudgeResp(out evaluation.JudgeOutput) judgeResp {
	return judgeResp{Valid: out.Valid, Verdict: out.Verdict}
}

type feedbackResp struct {
	Recorded  bool               `json:"recorded"`
	Message   string             `json:"message"`
	ID        int64              `json:"id,omitempty"`
	Rating    int                `json:"rating,omitempty"`
	CreatedAt *response.DateTime `json:"created_at,omitempty" swaggertype:"string" example:"2026-03-01 09:30:00"`
}

func (h *handler) newFeedbackResp(out evaluation.FeedbackOutput) feedbackResp {
	resp := feedbackResp{Recorded: out.Recorded, Message: out.Message}
	if out.Recorded {
		resp.ID = out.Feedback.ID
		resp.Rating = out.Feedback.Rating
		resp.CreatedAt = response.NewDateTime(out.Feedback.CreatedAt)
	}
	return resp
}
