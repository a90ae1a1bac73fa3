package evaluation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Judge asks the model to grade an output. An unparseable verdict is returned, not raised.
	Judge(ctx context.Context, input JudgeInput) (JudgeOutput, error)
	// RecordFeedback stores a human rating. Blank rating and feedback are accepted without storing.
	RecordFeedback(ctx context.Context, input FeedbackInput) (FeedbackOutput, error)
	ListFeedback(ctx context.Context, limit int) ([]Feedback, error)
}
