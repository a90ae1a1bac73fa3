package repository

import "time"

// InsertMessageOptions holds parameters for appending a message.
type InsertMessageOptions struct {
	UserID    string
	Role      string
	Text      string
	CreatedAt time.Time
}

// ListRecentOptions selects the tail of one user's log.
type ListRecentOptions struct {
	UserID string
	Limit  int
}
