package orchestrator

import (
	"context"

	"agentforge/internal/agent"
	"agentforge/pkg/llmprovider"
	pkgLog "agentforge/pkg/log"
)

// Generator is the model call driven by the loop. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type Orchestrator struct {
	llm      Generator
	registry *agent.ToolRegistry
	l        pkgLog.Logger
	maxSteps int
}

// New creates an Orchestrator. A nil or empty registry makes Run a single model call.
func New(llm Generator, registry *agent.ToolRegistry, l pkgLog.Logger) *Orchestrator {
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		l:        pkgLog.OrNop(l),
		maxSteps: MaxAgentSteps,
	}
}
