package tools_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentforge/internal/agent/tools"
)

func TestExtractKeywords(t *testing.T) {
	t.Run("ranks multi-word phrases first", func(t *testing.T) {
		text := "Compatibility of systems of linear constraints over the set of natural numbers"
		got := tools.ExtractKeywords(text, 0)
		assert.Equal(t, []string{"linear constraints", "natural numbers", "compatibility", "systems", "set"}, got)
	})

	t.Run("top_k truncates", func(t *testing.T) {
		text := "Compatibility of systems of linear constraints over the set of natural numbers"
		assert.Equal(t, []string{"linear constraints", "natural numbers"}, tools.ExtractKeywords(text, 2))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got := tools.ExtractKeywords("Go developer. Go developer, python", 10)
		assert.Equal(t, []string{"go developer", "python"}, got)
	})

	t.Run("empty and stop words only", func(t *testing.T) {
		assert.Empty(t, tools.ExtractKeywords("", 5))
		assert.Empty(t, tools.ExtractKeywords("the and of it", 5))
	})
}

func TestMatchScore(t *testing.T) {
	resume := "Senior Go engineer building distributed systems and Kubernetes operators"
	job := "We are hiring a Go engineer to build distributed systems on Kubernetes"

	assert.InDelta(t, 1.0, tools.MatchScore(resume, resume), 1e-9)
	assert.Zero(t, tools.MatchScore("python pandas", "plumbing carpentry"))
	assert.Zero(t, tools.MatchScore("", job))
	assert.Zero(t, tools.MatchScore("the and of", job))

	partial := tools.MatchScore(resume, job)
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)
	assert.InDelta(t, partial, tools.MatchScore(job, resume), 1e-12)
}

func TestParseResumeSections(t *testing.T) {
	resume := `John Doe
Summary
Backend engineer with 8 years.
Experience
Senior Engineer at Acme 2019-2024
2019
Skills
Go, Python , SQL,
Education
BSc Computer Science`

	got := tools.ParseResumeSections(resume)
	assert.Equal(t, "Backend engineer with 8 years. ", got.Summary)
	assert.Equal(t, []string{"Senior Engineer at Acme 2019-2024"}, got.Experience)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, got.Skills)
	assert.Equal(t, "BSc Computer Science ", got.Education)

	empty := tools.ParseResumeSections("no headers here")
	assert.Empty(t, empty.Summary)
	assert.NotNil(t, empty.Experience)
	assert.NotNil(t, empty.Skills)
}

func TestContentRewriterTools(t *testing.T) {
	ctx := context.Background()
	registry := tools.ContentRewriterTools()
	require.Equal(t, 3, registry.Len())

	defs := registry.ToFunctionDefinitions()
	names := []string{defs[0].Name, defs[1].Name, defs[2].Name}
	assert.Equal(t, []string{"extract_keywords", "job_match_score", "parse_resume_sections"}, names)
	for _, d := range defs {
		assert.NotEmpty(t, d.Description)
		assert.Equal(t, "object", d.Parameters["type"])
	}

	t.Run("extract_keywords", func(t *testing.T) {
		tool, ok := registry.Get("extract_keywords")
		require.True(t, ok)

		res, err := tool.Execute(ctx, map[string]interface{}{
			"text":  "Compatibility of systems of linear constraints over the set of natural numbers",
			"top_k": float64(1),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"linear constraints"}, res.(map[string]interface{})["keywords"])

		_, err = tool.Execute(ctx, map[string]interface{}{})
		assert.Error(t, err)
	})

	t.Run("job_match_score", func(t *testing.T) {
		tool, ok := registry.Get("job_match_score")
		require.True(t, ok)

		res, err := tool.Execute(ctx, map[string]interface{}{
			"resume_text":     "go engineer",
			"job_description": "go engineer",
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, res.(map[string]interface{})["score"])

		_, err = tool.Execute(ctx, map[string]interface{}{"resume_text": "go"})
		assert.Error(t, err)
	})

	t.Run("parse_resume_sections", func(t *testing.T) {
		tool, ok := registry.Get("parse_resume_sections")
		require.True(t, ok)

		res, err := tool.Execute(ctx, map[string]interface{}{"resume_text": "Skills\nGo, Rust"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "Rust"}, res.(map[string]interface{})["skills"])

		_, err = tool.Execute(ctx, map[string]interface{}{"resume_text": 3})
		assert.Error(t, err)
	})
}
