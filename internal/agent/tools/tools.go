// Package tools holds the functions the content rewriter may call while answering.
package tools

import "agentforge/internal/agent"

// ContentRewriterTools returns the registry given to the content rewriter.
func ContentRewriterTools() *agent.ToolRegistry {
	return agent.NewToolRegistry(
		NewExtractKeywordsTool(),
		NewJobMatchScoreTool(),
		NewParseResumeSectionsTool(),
	)
}

// intParam reads a numeric parameter. JSON numbers decode as float64.
func intParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return def
}
