package router

import "agentforge/internal/model"

// Method tells how a Decision was reached.
type Method string

const (
	MethodSemantic    Method = "semantic"
	MethodLLMFallback Method = "llm_fallback"
)

// Decision is the outcome of routing one request.
type Decision struct {
	Category model.Category `json:"category"`
	Method   Method         `json:"method"`
	// Confidence is the best catalog similarity, also reported for fallback decisions.
	Confidence     float64 `json:"confidence"`
	MatchedPhrase  string  `json:"matched_phrase,omitempty"`
	FallbackReason string  `json:"fallback_reason,omitempty"`
}

// Route is one catalog entry.
type Route struct {
	Phrase   string         `yaml:"phrase" json:"phrase"`
	Category model.Category `yaml:"category" json:"category"`
}
