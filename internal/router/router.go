package router

import (
	"context"
	"fmt"
	"strings"

	"agentforge/internal/model"
	"agentforge/pkg/embedding"
	"agentforge/pkg/llmprovider"
	"agentforge/pkg/metrics"
)

// Route picks the category for text.
// A match above the threshold wins outright; otherwise the model is asked and
// any unusable answer resolves to the default category.
func (r *SemanticRouter) Route(ctx context.Context, text string) (Decision, error) {
	query, err := embedding.EncodeOne(ctx, r.encoder, text)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: %w", ErrEncoderUnavailable, err)
	}

	idx, sim := embedding.Nearest(query, r.embeddings)
	metrics.RouteConfidence.Observe(sim)

	var decision Decision
	if idx >= 0 && sim > r.threshold {
		decision = Decision{
			Category:      r.routes[idx].Category,
			Method:        MethodSemantic,
			Confidence:    sim,
			MatchedPhrase: r.routes[idx].Phrase,
		}
	} else {
		decision = r.fallback(ctx, text)
		decision.Confidence = sim
	}

	metrics.RouteDecisions.WithLabelValues(string(decision.Method), string(decision.Category)).Inc()
	r.l.Info(ctx, "intent.routing",
		"method", decision.Method,
		"target", decision.Category,
		"confidence", decision.Confidence,
	)
	return decision, nil
}

func (r *SemanticRouter) fallback(ctx context.Context, text string) Decision {
	decision := Decision{Method: MethodLLMFallback}

	gctx, cancel := context.WithTimeout(ctx, r.fallbackTimeout)
	defer cancel()

	resp, err := r.llm.GenerateContent(gctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, buildFallbackPrompt(text))},
		Temperature: llmprovider.Float(FallbackTemperature),
		MaxTokens:   FallbackMaxTokens,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: fallback generation failed: %v", LogPrefixRoute, err)
		metrics.RouteFallbackDefaults.WithLabelValues(ReasonGenerationFailed).Inc()
		decision.Category = r.defaultCategory
		decision.FallbackReason = fmt.Sprintf("%s: %v", ReasonGenerationFailed, err)
		return decision
	}

	reply := resp.Content.Text()
	category, ok := parseLabel(reply)
	if !ok {
		r.l.Warnf(ctx, "%s: unusable fallback reply %q", LogPrefixRoute, reply)
		metrics.RouteFallbackDefaults.WithLabelValues(ReasonMalformedReply).Inc()
		decision.Category = r.defaultCategory
		decision.FallbackReason = fmt.Sprintf("%s: %q", ReasonMalformedReply, reply)
		return decision
	}

	decision.Category = category
	return decision
}

func buildFallbackPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString(PromptFallbackHeader)
	for _, c := range model.Categories() {
		sb.WriteString("- ")
		sb.WriteString(string(c))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf(PromptFallbackFooter, text))
	return sb.String()
}
