package usecase

import (
	"context"

	"agentforge/internal/evaluation"
)

func (uc *implUseCase) Judge(ctx context.Context, input evaluation.JudgeInput) (evaluation.JudgeOutput, error) {
	return uc.eval.Judge(ctx, input)
}

func (uc *implUseCase) Feedback(ctx context.Context, input evaluation.FeedbackInput) (evaluation.FeedbackOutput, error) {
	return uc.eval.RecordFeedback(ctx, input)
}
