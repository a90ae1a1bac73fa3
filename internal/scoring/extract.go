package scoring

import (
	"encoding/json"
	"strings"
)

func containsQuotedKey(text, key string) bool {
	return strings.Contains(text, `"`+key+`"`)
}

// stripFences removes a surrounding ``` or ```json fence.
func stripFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 && !strings.ContainsAny(t[:nl], "{[") {
		t = t[nl+1:]
	}
	if end := strings.LastIndex(t, "```"); end >= 0 {
		t = t[:end]
	}
	return strings.TrimSpace(t)
}

// jsonSpan returns the widest open..close span of text, e.g. the outermost {...}.
// ok is false when no such span holds valid JSON.
func jsonSpan(text string, open, close byte) (string, bool) {
	t := stripFences(text)
	start := strings.IndexByte(t, open)
	end := strings.LastIndexByte(t, close)
	if start < 0 || end <= start {
		return "", false
	}
	span := t[start : end+1]
	return span, json.Valid([]byte(span))
}

// stringField decodes the first JSON object in text and returns field as a string.
func stringField(text, field string) (string, bool) {
	span, ok := jsonSpan(text, '{', '}')
	if !ok {
		return "", false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return "", false
	}
	s, ok := obj[field].(string)
	return s, ok
}
