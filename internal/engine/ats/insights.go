package ats

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Insights holds the four human-readable output lists. Strengths is never
// empty; the other three may legitimately be.
type Insights struct {
	Insights        []string `json:"insights"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// strengthsFallback keeps the strengths list non-empty when no rule fired.
const strengthsFallback = "Resume has relevant content"

// Resume length thresholds in runes.
const (
	shortResumeLen    = 200
	detailedResumeLen = 3000
)

// GenerateInsights runs the fixed-order rule cascade over the match result,
// section flags, and resume text. All applicable rules fire; duplicated
// keyword mentions across rules are accepted, not deduplicated.
func GenerateInsights(match MatchResult, sections SectionFlags, resumeText string) Insights {
	out := Insights{
		Insights:        []string{},
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}

	switch {
	case match.MatchPercentage >= 80:
		out.Insights = append(out.Insights, "Excellent keyword alignment with the job description")
		out.Strengths = append(out.Strengths, "Strong match with the required skills and qualifications")
	case match.MatchPercentage >= 60:
		out.Insights = append(out.Insights, "Good keyword alignment, though some gaps exist")
		if len(match.Missing) > 0 {
			out.Recommendations = append(out.Recommendations,
				"Consider adding these keywords: "+joinFirst(match.Missing, 3))
		}
	default:
		out.Insights = append(out.Insights, "Limited keyword alignment with the job description")
		out.Weaknesses = append(out.Weaknesses, "Many keywords required by the job are missing from the resume")
	}

	if !sections.HasContactInfo {
		out.Weaknesses = append(out.Weaknesses, "No contact information detected")
		out.Recommendations = append(out.Recommendations, "Add a phone number and email address so recruiters can reach you")
	}
	if !sections.HasSkills {
		out.Weaknesses = append(out.Weaknesses, "No skills section detected")
		out.Recommendations = append(out.Recommendations, "Add a dedicated skills section listing your technical and professional skills")
	}
	if !sections.HasExperience {
		out.Weaknesses = append(out.Weaknesses, "No work experience detected")
		out.Recommendations = append(out.Recommendations, "Add work experience details with roles, employers, and accomplishments")
	}

	length := utf8.RuneCountInString(resumeText)
	if length < shortResumeLen {
		out.Weaknesses = append(out.Weaknesses, "Resume is too short to convey your qualifications")
		out.Recommendations = append(out.Recommendations, "Expand your resume with more detail about your experience and skills")
	} else if length > detailedResumeLen {
		out.Insights = append(out.Insights, "Resume has a good level of detail")
	}

	if len(match.Missing) > 0 {
		out.Recommendations = append(out.Recommendations,
			fmt.Sprintf("Prioritize adding these missing keywords: %s", joinFirst(match.Missing, 5)))
	}

	if len(out.Strengths) == 0 {
		out.Strengths = append(out.Strengths, strengthsFallback)
	}
	return out
}

// joinFirst joins up to n leading items with ", ".
func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
