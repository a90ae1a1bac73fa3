package repository

import (
	"context"

	"agentforge/internal/evaluation"
)

// Repository stores human feedback.
type Repository interface {
	InsertFeedback(ctx context.Context, opt InsertFeedbackOptions) (evaluation.Feedback, error)
	// ListFeedback returns the newest entries first.
	ListFeedback(ctx context.Context, limit int) ([]evaluation.Feedback, error)
}
