package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// Email triage dimensions.
const (
	DimUrgencyPlausibility = "urgency_plausibility"
	DimCategoryPrecision   = "category_precision"
	DimStructureSummary    = "structure_summary"
)

var (
	emailKeys = []string{
		"email_id", "sender", "subject", "urgency_score",
		"category", "recommended_action", "one_line_summary",
	}

	emailCategories = map[string]struct{}{
		"sales": {}, "hr": {}, "finance": {}, "spam": {}, "newsletter": {},
		"personal": {}, "support": {}, "legal": {}, "marketing": {},
		"operations": {}, "engineering": {}, "meeting": {}, "other": {},
	}

	urgencyPattern    = regexp.MustCompile(`"urgency_score"\s*:\s*"?(-?\d+(?:\.\d+)?)`)
	categoryPattern   = regexp.MustCompile(`"category"\s*:\s*"([^"]*)"`)
	actionListPattern = regexp.MustCompile(`(?i)do these first\s*:?\s*#?\d+`)
)

// ScoreEmail rates an inbox triage reply.
// Field values are read with patterns so a reply with broken JSON still earns partial credit.
func ScoreEmail(request, response string) Score {
	jsonCompliance := float64(countKeys(response, emailKeys)) / float64(len(emailKeys))

	var urgency float64
	if scores := urgencyPattern.FindAllStringSubmatch(response, -1); len(scores) > 0 {
		valid := 0
		for _, m := range scores {
			v, err := strconv.ParseFloat(m[1], 64)
			if err == nil && v >= 1 && v <= 10 {
				valid++
			}
		}
		urgency = float64(valid) / float64(len(scores))
	}

	var precision float64
	if cats := categoryPattern.FindAllStringSubmatch(response, -1); len(cats) > 0 {
		known := 0
		for _, m := range cats {
			if _, ok := emailCategories[strings.ToLower(strings.TrimSpace(m[1]))]; ok {
				known++
			}
		}
		precision = float64(known) / float64(len(cats))
	}

	var structure float64
	if _, ok := jsonSpan(response, '[', ']'); ok {
		structure += 0.5
	}
	if actionListPattern.MatchString(response) {
		structure += 0.5
	}

	return NewScore(
		Dimension{DimJSONCompliance, jsonCompliance},
		Dimension{DimUrgencyPlausibility, urgency},
		Dimension{DimCategoryPrecision, precision},
		Dimension{DimStructureSummary, structure},
	)
}
