package handler

import "time"

const (
	LogPrefixExecute = "internal.agent.handler.Execute"

	// TraceEvent is the message of the per-invocation trace record.
	TraceEvent = "agent.invocation"

	DefaultTimeout     = 60 * time.Second
	DefaultUserID      = "default_user"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 4096

	headerPreviousConversation = "Previous conversation:\n"
	headerExtraContext         = "Additional context:\n"

	inputPreviewRunes  = 100
	outputPreviewRunes = 120
)
