package agent

import (
	"context"
	"fmt"

	"agentforge/internal/model"
)

// Handler executes one task category.
type Handler interface {
	Category() model.Category
	// Name is the persona name reported in Result metadata.
	Name() string
	Execute(ctx context.Context, userID, task, extraContext string) (Result, error)
}

// Registry maps each category to its handler.
type Registry struct {
	handlers map[model.Category]Handler
}

// NewRegistry indexes handlers by Category. A later handler for the same category wins.
func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{handlers: make(map[model.Category]Handler, len(handlers))}
	for _, h := range handlers {
		r.handlers[h.Category()] = h
	}
	return r
}

// Get returns the handler for c.
func (r *Registry) Get(c model.Category) (Handler, error) {
	h, ok := r.handlers[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrHandlerNotFound, c)
	}
	return h, nil
}

// Categories lists the registered categories in declaration order.
func (r *Registry) Categories() []model.Category {
	var out []model.Category
	for _, c := range model.Categories() {
		if _, ok := r.handlers[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
