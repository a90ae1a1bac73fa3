package repository

import "time"

// InsertFeedbackOptions holds parameters for storing a rating.
type InsertFeedbackOptions struct {
	Task      string
	Output    string
	Rating    int
	Feedback  string
	CreatedAt time.Time
}
