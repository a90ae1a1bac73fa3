package agent

import (
	"regexp"
	"strings"

	"agentforge/internal/model"
)

var handoffPattern = regexp.MustCompile(`(?mi)^\s*ROUTING TO:\s*\[?\s*([A-Za-z]+)\s*\]?`)

// DetectHandoff returns the first category named on a "ROUTING TO: X" line.
// X may be a category label or a persona name listed in aliases (keys lowercase).
// Unknown names are skipped.
func DetectHandoff(output string, aliases map[string]model.Category) (model.Category, bool) {
	for _, m := range handoffPattern.FindAllStringSubmatch(output, -1) {
		if c, err := model.ParseCategory(m[1]); err == nil {
			return c, true
		}
		if c, ok := aliases[strings.ToLower(m[1])]; ok {
			return c, true
		}
	}
	return "", false
}
