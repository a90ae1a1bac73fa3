package scoring

import (
	"regexp"
	"strings"
)

// Content rewriting dimensions.
const (
	DimAchievementsSignal = "achievements_signal"
	DimMetricDensity      = "metric_density"
	DimTailoringAlignment = "tailoring_alignment"
)

var (
	actionVerbs = []string{
		"led", "built", "designed", "shipped", "delivered", "optimized",
		"architected", "improved", "automated", "launched", "reduced", "increased",
		"enhanced", "streamlined", "developed", "managed",
	}
	impactWords = []string{"impact", "resulted", "outcome", "growth", "savings", "revenue", "efficiency"}

	resumeKeys = []string{"professional_summary", "experience", "skills", "education", "tailoring_notes"}

	numberPattern  = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	percentPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*%`)
	rolePattern    = regexp.MustCompile(`\b(data|ml|machine learning|engineer|developer|product|ai)\b`)
)

// ScoreContent rates a resume rewrite.
// Verb and impact words count once each when they appear anywhere in the output.
func ScoreContent(request, response string) Score {
	lowerIn := strings.ToLower(request)
	lowerOut := strings.ToLower(response)

	verbHits := countContained(lowerOut, actionVerbs)
	impactHits := countContained(lowerOut, impactWords)
	achievements := min(1, 0.05*float64(verbHits)+0.07*float64(impactHits)+0.4)

	numbers := len(numberPattern.FindAllString(lowerOut, -1))
	percents := len(percentPattern.FindAllString(lowerOut, -1))
	metricDensity := min(1, 0.05*float64(numbers)+0.1*float64(percents)+0.3)

	roles := make(map[string]struct{})
	for _, m := range rolePattern.FindAllString(lowerIn, -1) {
		roles[m] = struct{}{}
	}
	roleHits := 0
	for r := range roles {
		if strings.Contains(lowerOut, r) {
			roleHits++
		}
	}
	tailoring := min(1, 0.25*float64(roleHits)+0.4)

	jsonCompliance := 0.2 + 0.15*float64(countKeys(response, resumeKeys))

	return NewScore(
		Dimension{DimAchievementsSignal, achievements},
		Dimension{DimMetricDensity, metricDensity},
		Dimension{DimTailoringAlignment, tailoring},
		Dimension{DimJSONCompliance, jsonCompliance},
	)
}

func countContained(text string, words []string) int {
	hits := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			hits++
		}
	}
	return hits
}
