package tools

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"agentforge/internal/agent"
)

var termPattern = regexp.MustCompile(`\b\w\w+\b`)

// MatchScore is the TF-IDF cosine similarity of two documents over unigrams
// and bigrams, with English stop words removed. IDF is smoothed over the pair:
// ln(3/(1+df)) + 1. The result lies in [0,1]; an empty document scores 0.
func MatchScore(resume, jobDescription string) float64 {
	docs := []map[string]float64{termCounts(resume), termCounts(jobDescription)}
	if len(docs[0]) == 0 || len(docs[1]) == 0 {
		return 0
	}

	df := make(map[string]int)
	for _, d := range docs {
		for term := range d {
			df[term]++
		}
	}
	n := float64(len(docs))
	for _, d := range docs {
		var norm float64
		for term, tf := range d {
			w := tf * (math.Log((1+n)/(1+float64(df[term]))) + 1)
			d[term] = w
			norm += w * w
		}
		norm = math.Sqrt(norm)
		for term := range d {
			d[term] /= norm
		}
	}

	var dot float64
	for term, w := range docs[0] {
		dot += w * docs[1][term]
	}
	return math.Min(1, math.Max(0, dot))
}

func termCounts(text string) map[string]float64 {
	var words []string
	for _, w := range termPattern.FindAllString(strings.ToLower(text), -1) {
		if !isStopWord(w) {
			words = append(words, w)
		}
	}

	counts := make(map[string]float64, 2*len(words))
	for i, w := range words {
		counts[w]++
		if i > 0 {
			counts[words[i-1]+" "+w]++
		}
	}
	return counts
}

type jobMatchScoreTool struct{}

// NewJobMatchScoreTool returns the job_match_score tool.
func NewJobMatchScoreTool() agent.Tool {
	return jobMatchScoreTool{}
}

func (jobMatchScoreTool) Name() string {
	return "job_match_score"
}

func (jobMatchScoreTool) Description() string {
	return "Returns cosine similarity score between resume and job description (0.0 to 1.0)"
}

func (jobMatchScoreTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "Resume or career summary",
			},
			"job_description": map[string]interface{}{
				"type":        "string",
				"description": "Job posting text",
			},
		},
		"required": []string{"resume_text", "job_description"},
	}
}

func (jobMatchScoreTool) Execute(_ context.Context, params map[string]interface{}) (interface{}, error) {
	resume, _ := params["resume_text"].(string)
	job, _ := params["job_description"].(string)
	if strings.TrimSpace(resume) == "" || strings.TrimSpace(job) == "" {
		return nil, fmt.Errorf("resume_text and job_description parameters are required")
	}

	return map[string]interface{}{
		"score": math.Round(MatchScore(resume, job)*1000) / 1000,
	}, nil
}
