package scoring

import (
	"regexp"
	"strings"
)

// Prompt optimization dimensions.
const (
	DimFrameworkCompleteness = "framework_completeness"
	DimClarity               = "clarity"
	DimSpecificity           = "specificity"
)

var (
	// CO-STAR elements, each with the spellings that count as a mention.
	costarElements = [][]string{
		{"context"},
		{"objective", "goal"},
		{"style"},
		{"tone"},
		{"audience"},
		{"response format", "format"},
	}

	promptKeys = []string{"original_prompt", "optimized_prompt", "explanation"}

	formatWords = []string{"json", "bullet", "table", "list", "markdown", "sentences", "paragraph", "words", "steps"}

	quotedPattern = regexp.MustCompile(`'[^'\n]{2,}'|"[^"\n]{2,}"`)
)

// ScorePrompt rates a CO-STAR prompt rewrite.
func ScorePrompt(request, response string) Score {
	lowerOut := strings.ToLower(response)

	elements := 0
	for _, spellings := range costarElements {
		for _, s := range spellings {
			if strings.Contains(lowerOut, s) {
				elements++
				break
			}
		}
	}
	framework := float64(elements) / float64(len(costarElements))

	optimized, ok := stringField(response, "optimized_prompt")
	if !ok {
		optimized = response
	}
	clarity := clarityBand(len(strings.Fields(optimized)))

	jsonCompliance := 0.1 + 0.3*float64(countKeys(response, promptKeys))

	lowerOpt := strings.ToLower(optimized)
	numbers := len(numberPattern.FindAllString(lowerOpt, -1))
	quoted := len(quotedPattern.FindAllString(optimized, -1))
	formats := countContained(lowerOpt, formatWords)
	specificity := 0.3 + 0.1*float64(numbers) + 0.1*float64(quoted) + 0.1*float64(formats)

	return NewScore(
		Dimension{DimFrameworkCompleteness, framework},
		Dimension{DimClarity, clarity},
		Dimension{DimJSONCompliance, jsonCompliance},
		Dimension{DimSpecificity, specificity},
	)
}

// clarityBand favours prompts long enough to carry CO-STAR detail but short enough to read.
func clarityBand(words int) float64 {
	switch {
	case words == 0:
		return 0
	case words < 10:
		return 0.2
	case words < 20:
		return 0.5
	case words <= 300:
		return 1
	case words <= 600:
		return 0.7
	default:
		return 0.4
	}
}
