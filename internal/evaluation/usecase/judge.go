package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agentforge/internal/evaluation"
	"agentforge/pkg/llmprovider"
	"agentforge/pkg/metrics"
)

func (uc *implUseCase) Judge(ctx context.Context, input evaluation.JudgeInput) (evaluation.JudgeOutput, error) {
	if strings.TrimSpace(input.Task) == "" {
		return evaluation.JudgeOutput{}, evaluation.ErrEmptyTask
	}
	if strings.TrimSpace(input.Output) == "" {
		return evaluation.JudgeOutput{}, evaluation.ErrEmptyOutput
	}

	ctx, cancel := context.WithTimeout(ctx, uc.judgeTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			llmprovider.TextMessage(llmprovider.RoleUser, fmt.Sprintf(promptJudge, input.Task, input.Output)),
		},
		Temperature: llmprovider.Float(judgeTemperature),
		MaxTokens:   judgeMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "evaluation.usecase.Judge: %v", err)
		metrics.JudgeVerdicts.WithLabelValues("error").Inc()
		return evaluation.JudgeOutput{}, fmt.Errorf("%w: %v", evaluation.ErrJudgeFailed, err)
	}

	out := parseVerdict(resp.Content.Text())
	if out.Valid {
		metrics.JudgeVerdicts.WithLabelValues("valid").Inc()
	} else {
		uc.l.Warnf(ctx, "evaluation.usecase.Judge: reply is not JSON")
		metrics.JudgeVerdicts.WithLabelValues("invalid_json").Inc()
	}
	return out, nil
}

// parseVerdict decodes the judge reply. Fenced replies are unwrapped first.
func parseVerdict(reply string) evaluation.JudgeOutput {
	body := stripFences(reply)

	var verdict map[string]any
	if err := json.Unmarshal([]byte(body), &verdict); err != nil || verdict == nil {
		return evaluation.JudgeOutput{
			Verdict: map[string]any{
				"raw":   reply,
				"error": msgJudgeInvalidJSON,
			},
		}
	}
	return evaluation.JudgeOutput{Verdict: verdict, Valid: true}
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
