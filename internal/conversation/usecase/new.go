package usecase

import (
	"time"

	"agentforge/internal/conversation"
	"agentforge/internal/conversation/repository"
	"agentforge/pkg/log"
)

// implUseCase is the private implementation of conversation.UseCase.
type implUseCase struct {
	repo        repository.Repository
	l           log.Logger
	locks       *keyedMutex
	maxMessages int
	now         func() time.Time
}

// New creates a conversation UseCase. maxMessages <= 0 uses conversation.DefaultMaxContextMessages.
func New(repo repository.Repository, maxMessages int, l log.Logger) conversation.UseCase {
	if maxMessages <= 0 {
		maxMessages = conversation.DefaultMaxContextMessages
	}
	return &implUseCase{
		repo:        repo,
		l:           log.OrNop(l),
		locks:       newKeyedMutex(),
		maxMessages: maxMessages,
		now:         time.Now,
	}
}
