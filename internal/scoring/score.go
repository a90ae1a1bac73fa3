// Package scoring rates a model response against the request that produced it.
// Each category has its own heuristics; all of them report sub-scores in [0,1]
// and an unweighted mean.
package scoring

import (
	"math"

	"agentforge/internal/model"
)

// DimJSONCompliance is shared by every category: the expected keys are present.
const DimJSONCompliance = "json_compliance"

// Dimension is one named sub-score.
type Dimension struct {
	Name  string
	Value float64
}

// Score is an ordered set of sub-scores plus their mean.
type Score struct {
	Dimensions []Dimension
	Overall    float64
}

// Scorer rates a (request, response) pair. It never fails.
type Scorer interface {
	Score(request, response string) Score
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(request, response string) Score

func (f ScorerFunc) Score(request, response string) Score {
	return f(request, response)
}

// NewScore clamps every dimension to [0,1] and recomputes Overall from the clamped values.
func NewScore(dims ...Dimension) Score {
	out := make([]Dimension, len(dims))
	var sum float64
	for i, d := range dims {
		v := Clamp(d.Value)
		out[i] = Dimension{Name: d.Name, Value: v}
		sum += v
	}

	var overall float64
	if len(out) > 0 {
		overall = sum / float64(len(out))
	}
	return Score{Dimensions: out, Overall: overall}
}

// Get returns the named sub-score.
func (s Score) Get(name string) (float64, bool) {
	for _, d := range s.Dimensions {
		if d.Name == name {
			return d.Value, true
		}
	}
	return 0, false
}

// Map flattens the score for JSON output, rounded to 3 decimals.
func (s Score) Map() map[string]float64 {
	m := make(map[string]float64, len(s.Dimensions)+1)
	for _, d := range s.Dimensions {
		m[d.Name] = Round(d.Value, 3)
	}
	m["overall"] = Round(s.Overall, 3)
	return m
}

// Clamp limits v to [0,1]. NaN becomes 0.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// ForCategory returns the scorer for c.
func ForCategory(c model.Category) (Scorer, bool) {
	switch c {
	case model.CategoryPromptOptimizer:
		return ScorerFunc(ScorePrompt), true
	case model.CategoryContentRewriter:
		return ScorerFunc(ScoreContent), true
	case model.CategoryEmailPrioritizer:
		return ScorerFunc(ScoreEmail), true
	default:
		return nil, false
	}
}

// countKeys counts how many of keys appear quoted ("key") in text.
func countKeys(text string, keys []string) int {
	hits := 0
	for _, k := range keys {
		if containsQuotedKey(text, k) {
			hits++
		}
	}
	return hits
}
