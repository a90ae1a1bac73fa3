package usecase

import (
	"context"
	"strconv"
	"strings"

	"agentforge/internal/evaluation"
	"agentforge/internal/evaluation/repository"
	"agentforge/pkg/metrics"
)

// RecordFeedback stores a rating. When both rating and feedback are blank the
// output is taken as accepted and nothing is written.
func (uc *implUseCase) RecordFeedback(ctx context.Context, input evaluation.FeedbackInput) (evaluation.FeedbackOutput, error) {
	if strings.TrimSpace(input.Task) == "" {
		return evaluation.FeedbackOutput{}, evaluation.ErrEmptyTask
	}
	if strings.TrimSpace(input.Output) == "" {
		return evaluation.FeedbackOutput{}, evaluation.ErrEmptyOutput
	}

	ratingText := strings.TrimSpace(input.Rating)
	note := strings.TrimSpace(input.Feedback)
	if ratingText == "" && note == "" {
		return evaluation.FeedbackOutput{Message: msgAcceptedAsIs}, nil
	}

	rating, err := parseRating(ratingText)
	if err != nil {
		return evaluation.FeedbackOutput{}, err
	}

	fb, err := uc.repo.InsertFeedback(ctx, repository.InsertFeedbackOptions{
		Task:      input.Task,
		Output:    input.Output,
		Rating:    rating,
		Feedback:  note,
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "evaluation.usecase.RecordFeedback: %v", err)
		return evaluation.FeedbackOutput{}, err
	}
	metrics.FeedbackRatings.Observe(float64(rating))

	uc.l.Infof(ctx, "evaluation.usecase.RecordFeedback: id=%d rating=%d", fb.ID, fb.Rating)
	return evaluation.FeedbackOutput{
		Recorded: true,
		Message:  msgFeedbackRecorded,
		Feedback: fb,
	}, nil
}

func (uc *implUseCase) ListFeedback(ctx context.Context, limit int) ([]evaluation.Feedback, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return uc.repo.ListFeedback(ctx, limit)
}

func parseRating(s string) (int, error) {
	if s == "" {
		return DefaultRating, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 10 {
		return 0, evaluation.ErrInvalidRating
	}
	return n, nil
}
