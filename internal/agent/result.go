package agent

import (
	"encoding/json"
	"time"

	"agentforge/internal/model"
	"agentforge/internal/scoring"
	"agentforge/pkg/tokencount"
)

// Result is the outcome of one handler invocation.
type Result struct {
	Output   string
	Agent    string
	Category model.Category
	Usage    tokencount.Usage
	Latency  time.Duration
	Quality  scoring.Score
	// Handoff is set when the output asks for another category.
	Handoff model.Category
	// ToolCalls counts tool executions made while answering.
	ToolCalls int
}

type resultJSON struct {
	Output   string       `json:"output"`
	Metadata metadataJSON `json:"metadata"`
}

type metadataJSON struct {
	Agent     string         `json:"agent"`
	TaskType  string         `json:"task_type"`
	Metrics   map[string]any `json:"metrics"`
	Handoff   string         `json:"handoff,omitempty"`
	ToolCalls int            `json:"tool_calls,omitempty"`
}

// Metrics flattens token counts, latency and quality sub-scores.
func (r Result) Metrics() map[string]any {
	m := map[string]any{
		"input_tokens":  r.Usage.InputTokens,
		"output_tokens": r.Usage.OutputTokens,
		"latency_ms":    scoring.Round(float64(r.Latency)/float64(time.Millisecond), 2),
	}
	for k, v := range r.Quality.Map() {
		m[k] = v
	}
	return m
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Output: r.Output,
		Metadata: metadataJSON{
			Agent:     r.Agent,
			TaskType:  r.Category.TaskType(),
			Metrics:   r.Metrics(),
			Handoff:   string(r.Handoff),
			ToolCalls: r.ToolCalls,
		},
	})
}
