package usecase

import (
	"context"
	"strings"

	"agentforge/internal/assistant"
	"agentforge/internal/model"
)

func (uc *implUseCase) Execute(ctx context.Context, input assistant.ExecuteInput) (assistant.ExecuteOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.ExecuteOutput{}, assistant.ErrEmptyText
	}

	var out assistant.ExecuteOutput
	var category model.Category
	if strings.TrimSpace(input.Category) != "" {
		c, err := model.ParseCategory(input.Category)
		if err != nil {
			return assistant.ExecuteOutput{}, err
		}
		category = c
	} else {
		routed, err := uc.Route(ctx, assistant.RouteInput{Text: text})
		if err != nil {
			return assistant.ExecuteOutput{}, err
		}
		out.Decision = &routed.Decision
		category = routed.Decision.Category
	}

	h, err := uc.handlers.Get(category)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Execute: %v", err)
		return assistant.ExecuteOutput{}, err
	}

	res, err := h.Execute(ctx, input.UserID, text, input.Context)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Execute %s: %v", category, err)
		return assistant.ExecuteOutput{}, err
	}
	if res.Handoff != "" {
		uc.l.Infof(ctx, "assistant.usecase.Execute: %s suggests handoff to %s", res.Agent, res.Handoff)
	}

	out.Result = res
	return out, nil
}
