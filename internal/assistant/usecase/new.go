package usecase

import (
	"agentforge/internal/agent"
	"agentforge/internal/assistant"
	"agentforge/internal/evaluation"
	"agentforge/internal/router"
	"agentforge/pkg/log"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	router   router.Router
	handlers *agent.Registry
	eval     evaluation.UseCase
	l        log.Logger
}

// New wires routing, category handlers and evaluation behind one use case.
func New(r router.Router, handlers *agent.Registry, eval evaluation.UseCase, l log.Logger) assistant.UseCase {
	return &implUseCase{
		router:   r,
		handlers: handlers,
		eval:     eval,
		l:        log.OrNop(l),
	}
}
