// Package memory keeps feedback in process, for the CLI and tests.
package memory

import (
	"context"
	"sync"

	"agentforge/internal/evaluation"
	"agentforge/internal/evaluation/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	items []evaluation.Feedback
}

// New returns an empty store.
func New() repository.Repository {
	return &implRepository{}
}

func (r *implRepository) InsertFeedback(_ context.Context, opt repository.InsertFeedbackOptions) (evaluation.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fb := evaluation.Feedback{
		ID:        int64(len(r.items) + 1),
		Task:      opt.Task,
		Output:    opt.Output,
		Rating:    opt.Rating,
		Feedback:  opt.Feedback,
		CreatedAt: opt.CreatedAt,
	}
	r.items = append(r.items, fb)
	return fb, nil
}

func (r *implRepository) ListFeedback(_ context.Context, limit int) ([]evaluation.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]evaluation.Feedback, 0, min(limit, len(r.items)))
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}
