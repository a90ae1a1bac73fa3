package conversation

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Append records one turn. Appends for the same user are serialized.
	Append(ctx context.Context, input AppendInput) error
	// AppendExchange records a user turn and the assistant reply back to back,
	// holding the user's lock across both so other writers cannot land in between.
	AppendExchange(ctx context.Context, input AppendExchangeInput) error
	// RecentContext renders the last turns as "<role>: <text>" lines, oldest first.
	RecentContext(ctx context.Context, userID string) (string, error)
	History(ctx context.Context, input HistoryInput) ([]Message, error)
	// Prune deletes turns older than before and returns how many were removed.
	Prune(ctx context.Context, before time.Time) (int64, error)
}
