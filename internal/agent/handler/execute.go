package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agentforge/internal/agent"
	"agentforge/internal/conversation"
	"agentforge/pkg/llmprovider"
	"agentforge/pkg/metrics"
	"agentforge/pkg/tokencount"
)

// Execute renders the persona prompt with recent history, runs the model, stores
// both turns and scores the reply. No retries happen here. A tool loop that never
// answers fails with agent.ErrGenerationFailed and nothing is stored.
func (h *implHandler) Execute(ctx context.Context, userID, task, extraContext string) (agent.Result, error) {
	start := h.now()
	category := h.persona.Category.String()

	if strings.TrimSpace(task) == "" {
		return agent.Result{}, agent.ErrEmptyTask
	}
	if strings.TrimSpace(userID) == "" {
		userID = DefaultUserID
	}

	history, err := h.conv.RecentContext(ctx, userID)
	if err != nil {
		h.l.Warnf(ctx, "%s: recent context for %s: %v", LogPrefixExecute, userID, err)
		history = ""
	}

	system := llmprovider.Message{Parts: []llmprovider.Part{{Text: h.systemInstruction(history, extraContext)}}}
	req := &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, task)},
		Temperature:       h.cfg.Temperature,
		MaxTokens:         h.cfg.MaxTokens,
	}

	genCtx, cancel := context.WithTimeout(ctx, h.cfg.Timeout)
	out, err := h.orch.Run(genCtx, req)
	cancel()
	if err != nil {
		metrics.HandlerErrors.WithLabelValues(category).Inc()
		h.l.Errorf(ctx, "%s: %s: %v", LogPrefixExecute, h.persona.Name, err)
		if errors.Is(err, agent.ErrEmptyResponse) {
			return agent.Result{}, fmt.Errorf("%s: %w", h.persona.Name, agent.ErrEmptyResponse)
		}
		return agent.Result{}, fmt.Errorf("%w: %w", agent.ErrGenerationFailed, err)
	}

	h.remember(ctx, userID, task, out.Text)

	res := agent.Result{
		Output:    out.Text,
		Agent:     h.persona.Name,
		Category:  h.persona.Category,
		Usage:     tokencount.Measure(task, out.Text),
		Quality:   h.scorer.Score(task, out.Text),
		ToolCalls: out.ToolCalls,
	}
	if target, ok := agent.DetectHandoff(out.Text, h.aliases); ok && target != h.persona.Category {
		res.Handoff = target
	}
	res.Latency = h.now().Sub(start)

	metrics.HandlerLatency.WithLabelValues(category).Observe(res.Latency.Seconds())
	metrics.HandlerQuality.WithLabelValues(category).Observe(res.Quality.Overall)
	h.trace(ctx, task, res)

	return res, nil
}

func (h *implHandler) systemInstruction(history, extra string) string {
	var sb strings.Builder
	sb.WriteString(h.persona.SystemPrompt())
	if history != "" {
		sb.WriteString("\n")
		sb.WriteString(headerPreviousConversation)
		sb.WriteString(history)
		sb.WriteString("\n")
	}
	if extra = strings.TrimSpace(extra); extra != "" {
		sb.WriteString("\n")
		sb.WriteString(headerExtraContext)
		sb.WriteString(extra)
		sb.WriteString("\n")
	}
	return sb.String()
}

// remember stores the exchange. A storage failure is logged; the answer is still returned.
func (h *implHandler) remember(ctx context.Context, userID, task, output string) {
	err := h.conv.AppendExchange(ctx, conversation.AppendExchangeInput{
		UserID:        userID,
		UserText:      task,
		AssistantText: output,
	})
	if err != nil {
		h.l.Warnf(ctx, "%s: append exchange for %s: %v", LogPrefixExecute, userID, err)
	}
}
