package usecase

import (
	"context"
	"strings"

	"agentforge/internal/assistant"
)

func (uc *implUseCase) Route(ctx context.Context, input assistant.RouteInput) (assistant.RouteOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.RouteOutput{}, assistant.ErrEmptyText
	}

	decision, err := uc.router.Route(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Route: %v", err)
		return assistant.RouteOutput{}, err
	}
	return assistant.RouteOutput{Decision: decision}, nil
}
