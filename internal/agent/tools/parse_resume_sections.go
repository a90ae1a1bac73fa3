package tools

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"agentforge/internal/agent"
)

// ResumeSections is the coarse structure of a plain-text resume.
type ResumeSections struct {
	Summary    string   `json:"summary"`
	Experience []string `json:"experience"`
	Skills     []string `json:"skills"`
	Education  string   `json:"education"`
}

const (
	sectionSummary    = "summary"
	sectionExperience = "experience"
	sectionSkills     = "skills"
	sectionEducation  = "education"
)

// minExperienceLine drops short fragments such as dates.
const minExperienceLine = 10

var sectionHeaders = []struct {
	section  string
	prefixes []string
}{
	{sectionSummary, []string{"summary", "profile", "objective"}},
	{sectionExperience, []string{"experience", "work history", "employment"}},
	{sectionSkills, []string{"skills", "technical skills"}},
	{sectionEducation, []string{"education", "academic"}},
}

// ParseResumeSections walks the resume line by line. A line that starts with a
// known header switches the current section; lines before any header are ignored.
func ParseResumeSections(text string) ResumeSections {
	out := ResumeSections{Experience: []string{}, Skills: []string{}}
	var summary, education strings.Builder

	current := ""
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if s, ok := headerSection(line); ok {
			current = s
			continue
		}

		switch current {
		case sectionExperience:
			if utf8.RuneCountInString(line) > minExperienceLine {
				out.Experience = append(out.Experience, line)
			}
		case sectionSkills:
			for _, skill := range strings.Split(line, ",") {
				if skill = strings.TrimSpace(skill); skill != "" {
					out.Skills = append(out.Skills, skill)
				}
			}
		case sectionSummary:
			summary.WriteString(line + " ")
		case sectionEducation:
			education.WriteString(line + " ")
		}
	}

	out.Summary = summary.String()
	out.Education = education.String()
	return out
}

func headerSection(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, h := range sectionHeaders {
		for _, p := range h.prefixes {
			if strings.HasPrefix(lower, p) {
				return h.section, true
			}
		}
	}
	return "", false
}

type parseResumeSectionsTool struct{}

// NewParseResumeSectionsTool returns the parse_resume_sections tool.
func NewParseResumeSectionsTool() agent.Tool {
	return parseResumeSectionsTool{}
}

func (parseResumeSectionsTool) Name() string {
	return "parse_resume_sections"
}

func (parseResumeSectionsTool) Description() string {
	return "Split plain resume text into summary, experience, skills and education sections."
}

func (parseResumeSectionsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "Plain resume text with section headers on their own lines",
			},
		},
		"required": []string{"resume_text"},
	}
}

func (parseResumeSectionsTool) Execute(_ context.Context, params map[string]interface{}) (interface{}, error) {
	text, ok := params["resume_text"].(string)
	if !ok || strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("resume_text parameter is required")
	}

	s := ParseResumeSections(text)
	return map[string]interface{}{
		"summary":    s.Summary,
		"experience": s.Experience,
		"skills":     s.Skills,
		"education":  s.Education,
	}, nil
}
