package usecase

import (
	"context"
	"strings"

	"agentforge/internal/conversation"
	repo "agentforge/internal/conversation/repository"
	"agentforge/internal/model"
)

// Append stores one turn under the user's lock so concurrent writers keep their order.
func (uc *implUseCase) Append(ctx context.Context, input conversation.AppendInput) error {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return conversation.ErrEmptyUserID
	}
	if input.Role != model.RoleUser && input.Role != model.RoleAssistant {
		return conversation.ErrInvalidRole
	}

	unlock := uc.locks.Lock(userID)
	defer unlock()

	if err := uc.insert(ctx, userID, input.Role, input.Text); err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Append: %v", err)
		return err
	}
	return nil
}

// AppendExchange stores the user turn then the assistant turn under one lock hold.
// If the second insert fails the user turn stays stored.
func (uc *implUseCase) AppendExchange(ctx context.Context, input conversation.AppendExchangeInput) error {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return conversation.ErrEmptyUserID
	}

	unlock := uc.locks.Lock(userID)
	defer unlock()

	if err := uc.insert(ctx, userID, model.RoleUser, input.UserText); err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.AppendExchange: user turn: %v", err)
		return err
	}
	if err := uc.insert(ctx, userID, model.RoleAssistant, input.AssistantText); err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.AppendExchange: assistant turn: %v", err)
		return err
	}
	return nil
}

// insert writes one row. The caller holds the user's lock.
func (uc *implUseCase) insert(ctx context.Context, userID, role, text string) error {
	_, err := uc.repo.InsertMessage(ctx, repo.InsertMessageOptions{
		UserID:    userID,
		Role:      role,
		Text:      text,
		CreatedAt: uc.now(),
	})
	return err
}
