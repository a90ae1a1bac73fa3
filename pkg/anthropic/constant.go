package anthropic

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-sonnet-4-20250514"

	// DefaultMaxTokens is sent when the caller does not set a limit; the API requires one
	DefaultMaxTokens = 4096

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
