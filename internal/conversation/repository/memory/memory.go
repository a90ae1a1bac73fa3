// Package memory is an in-process conversation store for the CLI and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"agentforge/internal/conversation"
	"agentforge/internal/conversation/repository"
)

type implRepository struct {
	mu     sync.RWMutex
	nextID int64
	byUser map[string][]conversation.Message
}

// New returns an empty store.
func New() repository.Repository {
	return &implRepository{byUser: make(map[string][]conversation.Message)}
}

func (r *implRepository) InsertMessage(_ context.Context, opt repository.InsertMessageOptions) (conversation.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m := conversation.Message{
		ID:        r.nextID,
		UserID:    opt.UserID,
		Role:      opt.Role,
		Text:      opt.Text,
		CreatedAt: opt.CreatedAt,
	}
	r.byUser[opt.UserID] = append(r.byUser[opt.UserID], m)
	return m, nil
}

func (r *implRepository) ListRecent(_ context.Context, opt repository.ListRecentOptions) ([]conversation.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.byUser[opt.UserID]
	if opt.Limit > 0 && len(msgs) > opt.Limit {
		msgs = msgs[len(msgs)-opt.Limit:]
	}
	out := make([]conversation.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (r *implRepository) DeleteBefore(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for user, msgs := range r.byUser {
		kept := msgs[:0]
		for _, m := range msgs {
			if m.CreatedAt.Before(before) {
				removed++
				continue
			}
			kept = append(kept, m)
		}
		if len(kept) == 0 {
			delete(r.byUser, user)
			continue
		}
		r.byUser[user] = kept
	}
	return removed, nil
}
