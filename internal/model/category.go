package model

import (
	"fmt"
	"strings"
)

// Category is a task category label. The set is closed: adding one means adding
// a constant here and a handler in internal/agent/handler.
type Category string

const (
	CategoryPromptOptimizer  Category = "PromptOptimizer"
	CategoryContentRewriter  Category = "ContentRewriter"
	CategoryEmailPrioritizer Category = "EmailPrioritizer"
)

// legacySuffix is accepted on input ("EmailPrioritizerAgent").
const legacySuffix = "agent"

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryPromptOptimizer,
		CategoryContentRewriter,
		CategoryEmailPrioritizer,
	}
}

// ParseCategory resolves s case-insensitively, with or without the "Agent" suffix.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownCategory)
	}

	for _, c := range Categories() {
		name := strings.ToLower(string(c))
		if key == name || key == name+legacySuffix {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// IsValid reports whether c is a declared category.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// TaskType is the scoring family reported in handler metadata.
func (c Category) TaskType() string {
	switch c {
	case CategoryPromptOptimizer:
		return TaskTypePromptOptimization
	case CategoryContentRewriter:
		return TaskTypeContentOptimization
	case CategoryEmailPrioritizer:
		return TaskTypeEmailPrioritization
	default:
		return ""
	}
}

const (
	TaskTypePromptOptimization  = "prompt_optimization"
	TaskTypeContentOptimization = "content_optimization"
	TaskTypeEmailPrioritization = "email_prioritization"
)
