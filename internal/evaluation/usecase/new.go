package usecase

import (
	"context"
	"time"

	"agentforge/internal/evaluation"
	"agentforge/internal/evaluation/repository"
	"agentforge/pkg/llmprovider"
	"agentforge/pkg/log"
)

// Generator is the model call used by the judge.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	llm          Generator
	repo         repository.Repository
	l            log.Logger
	judgeTimeout time.Duration
	now          func() time.Time
}

// New creates the evaluation UseCase. judgeTimeout <= 0 uses DefaultJudgeTimeout.
func New(llm Generator, repo repository.Repository, judgeTimeout time.Duration, l log.Logger) evaluation.UseCase {
	if judgeTimeout <= 0 {
		judgeTimeout = DefaultJudgeTimeout
	}
	return &implUseCase{
		llm:          llm,
		repo:         repo,
		l:            log.OrNop(l),
		judgeTimeout: judgeTimeout,
		now:          time.Now,
	}
}
