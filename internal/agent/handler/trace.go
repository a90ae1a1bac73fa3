package handler

import (
	"context"
	"time"

	"agentforge/internal/agent"
)

func (h *implHandler) trace(ctx context.Context, input string, res agent.Result) {
	h.l.Info(ctx, TraceEvent,
		"agent", res.Agent,
		"input_preview", preview(input, inputPreviewRunes),
		"output_preview", preview(res.Output, outputPreviewRunes),
		"input_tokens", res.Usage.InputTokens,
		"output_tokens", res.Usage.OutputTokens,
		"tokens", res.Usage.Total(),
		"overall", res.Quality.Overall,
		"timestamp", h.now().UTC().Format(time.RFC3339),
	)
}

// preview truncates s to n runes and marks the cut with "...".
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
