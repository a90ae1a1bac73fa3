package usecase

import (
	"context"
	"time"
)

// Prune deletes turns created before the cutoff.
func (uc *implUseCase) Prune(ctx context.Context, before time.Time) (int64, error) {
	n, err := uc.repo.DeleteBefore(ctx, before)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Prune: %v", err)
		return 0, err
	}
	if n > 0 {
		uc.l.Infof(ctx, "conversation.usecase.Prune: removed %d messages older than %s", n, before.Format(time.RFC3339))
	}
	return n, nil
}
