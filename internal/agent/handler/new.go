package handler

import (
	"fmt"
	"time"

	"agentforge/internal/agent"
	"agentforge/internal/agent/orchestrator"
	"agentforge/internal/agent/tools"
	"agentforge/internal/conversation"
	"agentforge/internal/model"
	"agentforge/internal/scoring"
	"agentforge/pkg/llmprovider"
	"agentforge/pkg/log"
)

// Config tunes every handler. Zero values take the defaults; a nil Temperature
// means DefaultTemperature, so an explicit 0 is kept.
type Config struct {
	Timeout     time.Duration
	Temperature *float64
	MaxTokens   int
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Temperature == nil {
		c.Temperature = llmprovider.Float(DefaultTemperature)
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	return c
}

type implHandler struct {
	persona Persona
	orch    *orchestrator.Orchestrator
	conv    conversation.UseCase
	scorer  scoring.Scorer
	aliases map[string]model.Category
	cfg     Config
	l       log.Logger
	now     func() time.Time
}

// New builds the handler for one persona. registry may be nil.
func New(p Persona, llm orchestrator.Generator, conv conversation.UseCase, registry *agent.ToolRegistry, cfg Config, l log.Logger) (agent.Handler, error) {
	scorer, ok := scoring.ForCategory(p.Category)
	if !ok {
		return nil, fmt.Errorf("handler %s: %w: %q", p.Name, model.ErrUnknownCategory, p.Category)
	}
	l = log.OrNop(l)
	return &implHandler{
		persona: p,
		orch:    orchestrator.New(llm, registry, l),
		conv:    conv,
		scorer:  scorer,
		aliases: personaAliases(),
		cfg:     cfg.withDefaults(),
		l:       l,
		now:     time.Now,
	}, nil
}

// NewRegistry builds one handler per persona. The content rewriter gets the resume tools.
func NewRegistry(llm orchestrator.Generator, conv conversation.UseCase, cfg Config, l log.Logger) (*agent.Registry, error) {
	var handlers []agent.Handler
	for _, p := range Personas() {
		var registry *agent.ToolRegistry
		if p.Category == model.CategoryContentRewriter {
			registry = tools.ContentRewriterTools()
		}
		h, err := New(p, llm, conv, registry, cfg, l)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, h)
	}
	return agent.NewRegistry(handlers...), nil
}

func (h *implHandler) Category() model.Category {
	return h.persona.Category
}

func (h *implHandler) Name() string {
	return h.persona.Name
}
