package tools

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"agentforge/internal/agent"
)

// DefaultTopK is how many phrases extract_keywords returns when top_k is omitted.
const DefaultTopK = 10

var (
	phraseDelimiters = regexp.MustCompile(`[!?,;:()\[\]{}"\n\t|/\\]+|\.(?:\s|$)|\s-+\s`)
	wordPattern      = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'+#.-]*[\p{L}\p{N}+#]|[\p{L}\p{N}]`)
)

// ExtractKeywords ranks candidate phrases RAKE-style: stop words split phrases,
// each word scores degree/frequency, and a phrase scores the sum of its words.
// Ties keep first-occurrence order.
func ExtractKeywords(text string, topK int) []string {
	if topK <= 0 {
		topK = DefaultTopK
	}

	phrases := candidatePhrases(text)
	if len(phrases) == 0 {
		return []string{}
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, p := range phrases {
		for _, w := range p {
			freq[w]++
			degree[w] += len(p)
		}
	}

	type ranked struct {
		phrase string
		score  float64
	}
	seen := make(map[string]bool)
	var list []ranked
	for _, p := range phrases {
		key := strings.Join(p, " ")
		if seen[key] {
			continue
		}
		seen[key] = true

		var score float64
		for _, w := range p {
			score += float64(degree[w]) / float64(freq[w])
		}
		list = append(list, ranked{phrase: key, score: score})
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].score > list[j].score })

	out := make([]string, 0, min(topK, len(list)))
	for _, r := range list[:min(topK, len(list))] {
		out = append(out, r.phrase)
	}
	return out
}

// candidatePhrases splits text at punctuation and stop words.
func candidatePhrases(text string) [][]string {
	var phrases [][]string
	for _, fragment := range phraseDelimiters.Split(strings.ToLower(text), -1) {
		var current []string
		for _, w := range wordPattern.FindAllString(fragment, -1) {
			if isStopWord(w) {
				if len(current) > 0 {
					phrases = append(phrases, current)
					current = nil
				}
				continue
			}
			current = append(current, w)
		}
		if len(current) > 0 {
			phrases = append(phrases, current)
		}
	}
	return phrases
}

type extractKeywordsTool struct{}

// NewExtractKeywordsTool returns the extract_keywords tool.
func NewExtractKeywordsTool() agent.Tool {
	return extractKeywordsTool{}
}

func (extractKeywordsTool) Name() string {
	return "extract_keywords"
}

func (extractKeywordsTool) Description() string {
	return "Extract top keywords/phrases from any text. Use before rewriting content."
}

func (extractKeywordsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to extract keywords from",
			},
			"top_k": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of phrases (default 10)",
			},
		},
		"required": []string{"text"},
	}
}

func (extractKeywordsTool) Execute(_ context.Context, params map[string]interface{}) (interface{}, error) {
	text, ok := params["text"].(string)
	if !ok || strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text parameter is required")
	}

	return map[string]interface{}{
		"keywords": ExtractKeywords(text, intParam(params, "top_k", DefaultTopK)),
	}, nil
}
