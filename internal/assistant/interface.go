package assistant

import (
	"context"

	"agentforge/internal/evaluation"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Route classifies text without running a handler.
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)
	// Execute runs the handler for input.Category, routing first when it is empty.
	Execute(ctx context.Context, input ExecuteInput) (ExecuteOutput, error)

	Judge(ctx context.Context, input evaluation.JudgeInput) (evaluation.JudgeOutput, error)
	Feedback(ctx context.Context, input evaluation.FeedbackInput) (evaluation.FeedbackOutput, error)
}
