package scoring

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentforge/internal/model"
)

func assertBounded(t *testing.T, s Score) {
	t.Helper()
	require.Len(t, s.Dimensions, 4)
	var sum float64
	for _, d := range s.Dimensions {
		assert.GreaterOrEqual(t, d.Value, 0.0, d.Name)
		assert.LessOrEqual(t, d.Value, 1.0, d.Name)
		sum += d.Value
	}
	assert.InDelta(t, sum/4, s.Overall, 1e-12)
}

func TestNewScore(t *testing.T) {
	s := NewScore(
		Dimension{"high", 1.5},
		Dimension{"low", -0.2},
		Dimension{"nan", math.NaN()},
	)
	assert.Equal(t, []Dimension{{"high", 1}, {"low", 0}, {"nan", 0}}, s.Dimensions)
	assert.InDelta(t, 1.0/3, s.Overall, 1e-12)

	empty := NewScore()
	assert.Equal(t, 0.0, empty.Overall)

	v, ok := s.Get("high")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
	_, ok = s.Get("missing")
	assert.False(t, ok)

	m := NewScore(Dimension{"a", 0.12345}, Dimension{"b", 0.5}).Map()
	assert.Equal(t, map[string]float64{"a": 0.123, "b": 0.5, "overall": 0.312}, m)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.123, Round(0.12345, 3))
	assert.Equal(t, 12.35, Round(12.3456, 2))
	assert.Equal(t, 1.0, Round(0.9996, 3))
}

func TestScoreContent(t *testing.T) {
	t.Run("full resume", func(t *testing.T) {
		request := "Senior data engineer role, ML focus"
		response := `{"professional_summary": "Data engineer who led 3 teams and increased revenue by 40%", ` +
			`"experience": [], "skills": [], "education": "BSc", "tailoring_notes": "ml"}`

		s := ScoreContent(request, response)
		assertBounded(t, s)

		get := func(name string) float64 {
			v, ok := s.Get(name)
			require.True(t, ok, name)
			return v
		}
		assert.InDelta(t, 0.57, get(DimAchievementsSignal), 1e-9)
		assert.InDelta(t, 0.5, get(DimMetricDensity), 1e-9)
		assert.InDelta(t, 1.0, get(DimTailoringAlignment), 1e-9)
		assert.InDelta(t, 0.95, get(DimJSONCompliance), 1e-9)
		assert.InDelta(t, 0.755, s.Overall, 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		s := ScoreContent("", "")
		assertBounded(t, s)
		assert.InDelta(t, 0.325, s.Overall, 1e-9)
	})

	t.Run("saturates", func(t *testing.T) {
		response := strings.Join(actionVerbs, " ") + " " + strings.Join(impactWords, " ") +
			" 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15"
		s := ScoreContent("", response)
		assertBounded(t, s)
		v, _ := s.Get(DimAchievementsSignal)
		assert.Equal(t, 1.0, v)
		v, _ = s.Get(DimMetricDensity)
		assert.Equal(t, 1.0, v)
	})
}

func TestScorePrompt(t *testing.T) {
	t.Run("co-star json", func(t *testing.T) {
		response := `{"original_prompt": "write a poem", "optimized_prompt": "Context: you are a poet. ` +
			`Objective: write a 12 line poem about 'autumn rain' for a children's audience. Style: playful. ` +
			`Tone: warm. Response format: markdown list of stanzas.", "explanation": "Adds CO-STAR."}`

		s := ScorePrompt("write a poem", response)
		assertBounded(t, s)

		v, _ := s.Get(DimFrameworkCompleteness)
		assert.Equal(t, 1.0, v)
		v, _ = s.Get(DimClarity)
		assert.Equal(t, 1.0, v)
		v, _ = s.Get(DimJSONCompliance)
		assert.InDelta(t, 1.0, v, 1e-9)
		v, _ = s.Get(DimSpecificity)
		assert.InDelta(t, 0.7, v, 1e-9)
		assert.InDelta(t, 0.925, s.Overall, 1e-9)
	})

	t.Run("plain text", func(t *testing.T) {
		s := ScorePrompt("x", "hello")
		assertBounded(t, s)
		assert.InDelta(t, 0.15, s.Overall, 1e-9)
	})

	t.Run("fenced json", func(t *testing.T) {
		response := "```json\n{\"optimized_prompt\": \"short\"}\n```"
		s := ScorePrompt("x", response)
		v, _ := s.Get(DimClarity)
		assert.Equal(t, 0.2, v, "clarity reads the optimized prompt, not the whole reply")
	})
}

func TestScoreEmail(t *testing.T) {
	t.Run("triage with action list", func(t *testing.T) {
		response := `[
  {"email_id": 1, "sender": "ceo@acme.com", "subject": "Board deck", "urgency_score": 9, "category": "Finance", "recommended_action": "Reply within 1h", "one_line_summary": "Needs deck"},
  {"email_id": 2, "sender": "promo@shop.com", "subject": "Sale", "urgency_score": 12, "category": "Promotions", "recommended_action": "Archive", "one_line_summary": "Spam-ish"}
]
Do these first: #1`

		s := ScoreEmail("two emails", response)
		assertBounded(t, s)

		want := map[string]float64{
			DimJSONCompliance:      1,
			DimUrgencyPlausibility: 0.5,
			DimCategoryPrecision:   0.5,
			DimStructureSummary:    1,
		}
		for name, w := range want {
			v, ok := s.Get(name)
			require.True(t, ok, name)
			assert.InDelta(t, w, v, 1e-9, name)
		}
		assert.InDelta(t, 0.75, s.Overall, 1e-9)
	})

	t.Run("broken json still scores fields", func(t *testing.T) {
		response := `[{"urgency_score": 4, "category": "hr",`
		s := ScoreEmail("", response)
		assertBounded(t, s)
		v, _ := s.Get(DimUrgencyPlausibility)
		assert.Equal(t, 1.0, v)
		v, _ = s.Get(DimStructureSummary)
		assert.Equal(t, 0.0, v)
	})

	t.Run("garbage", func(t *testing.T) {
		s := ScoreEmail("", "nothing to see")
		assertBounded(t, s)
		assert.Equal(t, 0.0, s.Overall)
	})
}

func TestForCategory(t *testing.T) {
	for _, c := range model.Categories() {
		scorer, ok := ForCategory(c)
		require.True(t, ok, c)
		assertBounded(t, scorer.Score("", "{}"))
	}
	_, ok := ForCategory("Unknown")
	assert.False(t, ok)
}

func TestScorersNeverPanic(t *testing.T) {
	inputs := []string{"", "\xff\xfe", "```", "[", "{\"", strings.Repeat("9", 5000), "```json\n[]\n```"}
	for _, in := range inputs {
		for _, c := range model.Categories() {
			scorer, _ := ForCategory(c)
			assert.NotPanics(t, func() { assertBounded(t, scorer.Score(in, in)) })
		}
	}
}
