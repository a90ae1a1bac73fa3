package router

import (
	"strings"

	"agentforge/internal/model"
)

const replyTrimSet = " \t\r\n\"'`.,;:!?*-[]()"

// parseLabel reads a category out of a model reply.
// The trimmed reply must name a category, or mention exactly one.
func parseLabel(reply string) (model.Category, bool) {
	trimmed := strings.Trim(reply, replyTrimSet)
	if trimmed == "" {
		return "", false
	}
	if c, err := model.ParseCategory(trimmed); err == nil {
		return c, true
	}

	lower := strings.ToLower(reply)
	var found []model.Category
	for _, c := range model.Categories() {
		if strings.Contains(lower, strings.ToLower(string(c))) {
			found = append(found, c)
		}
	}
	if len(found) != 1 {
		return "", false
	}
	return found[0], true
}
