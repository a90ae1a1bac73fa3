package usecase

import (
	"context"
	"strings"

	"agentforge/internal/conversation"
	repo "agentforge/internal/conversation/repository"
)

// RecentContext renders the user's last turns, oldest first, one "<role>: <text>" per line.
// An unknown user yields an empty string.
func (uc *implUseCase) RecentContext(ctx context.Context, userID string) (string, error) {
	msgs, err := uc.History(ctx, conversation.HistoryInput{UserID: userID, Limit: uc.maxMessages})
	if err != nil {
		return "", err
	}

	lines := make([]string, len(msgs))
	for i, m := range msgs {
		lines[i] = m.Role + ": " + m.Text
	}
	return strings.Join(lines, "\n"), nil
}

// History returns up to input.Limit recent turns, capped at the configured maximum.
func (uc *implUseCase) History(ctx context.Context, input conversation.HistoryInput) ([]conversation.Message, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return nil, conversation.ErrEmptyUserID
	}

	limit := input.Limit
	if limit <= 0 || limit > uc.maxMessages {
		limit = uc.maxMessages
	}

	msgs, err := uc.repo.ListRecent(ctx, repo.ListRecentOptions{UserID: userID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.History: %v", err)
		return nil, err
	}
	return msgs, nil
}
