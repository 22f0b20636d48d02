package ats

import "math"

// Scoring constants. The raw match score rewards literal keyword overlap;
// the bonuses reward structural completeness.
const (
	sectionBonusMax    = 15
	coverageBonusHigh  = 10 // matchPercentage >= 75
	coverageBonusMid   = 5  // matchPercentage >= 50
	coverageHighCutoff = 75
	coverageMidCutoff  = 50
)

// CalculateScore converts the raw match score plus section coverage and
// keyword coverage bonuses into the final 0-100 composite.
func CalculateScore(match MatchResult, sections SectionFlags) int {
	score := float64(match.Score)
	score += float64(sections.Count()) / 5.0 * sectionBonusMax
	switch {
	case match.MatchPercentage >= coverageHighCutoff:
		score += coverageBonusHigh
	case match.MatchPercentage >= coverageMidCutoff:
		score += coverageBonusMid
	}
	return clamp100(int(math.Round(score)))
}
