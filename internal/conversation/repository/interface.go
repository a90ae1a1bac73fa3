package repository

import (
	"context"
	"time"

	"agentforge/internal/conversation"
)

// Repository is the conversation log store.
type Repository interface {
	InsertMessage(ctx context.Context, opt InsertMessageOptions) (conversation.Message, error)
	// ListRecent returns the newest opt.Limit messages for the user, oldest first.
	ListRecent(ctx context.Context, opt ListRecentOptions) ([]conversation.Message, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}
