package assistant

import (
	"agentforge/internal/agent"
	"agentforge/internal/router"
)

// --- UseCase Inputs ---

type RouteInput struct {
	Text string
}

type ExecuteInput struct {
	UserID string
	Text   string
	// Category skips routing when set. Any casing and the "...Agent" form are accepted.
	Category string
	Context  string
}

// --- UseCase Outputs ---

type RouteOutput struct {
	Decision router.Decision
}

type ExecuteOutput struct {
	// Decision is nil when the caller chose the category.
	Decision *router.Decision
	Result   agent.Result
}
