package router

import "time"

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
	LogPrefixNew   = "internal.router.New"
)

// Router prompts
const (
	PromptFallbackHeader = "Given this user request, which agent should handle it?\n\nOptions:\n"
	PromptFallbackFooter = "\nUser: %s\n\nRespond with ONLY the agent name."
)

// Router configuration
const (
	DefaultThreshold       = 0.45
	DefaultFallbackTimeout = 15 * time.Second
	FallbackTemperature    = 0.0
	FallbackMaxTokens      = 20
)

// Fallback reasons recorded on Decision.FallbackReason
const (
	ReasonGenerationFailed = "generation_failed"
	ReasonMalformedReply   = "malformed_reply"
)
