package orchestrator

import "agentforge/pkg/llmprovider"

// Outcome is the final answer of a tool loop.
type Outcome struct {
	Text      string
	Steps     int
	ToolCalls int
	// Usage sums the usage reported by every model call.
	Usage        llmprovider.Usage
	ProviderName string
	ModelName    string
}

func (o *Outcome) addUsage(u *llmprovider.Usage) {
	if u == nil {
		return
	}
	o.Usage.InputTokens += u.InputTokens
	o.Usage.OutputTokens += u.OutputTokens
	o.Usage.TotalTokens += u.TotalTokens
}
