package ats

import (
	"math"
	"strings"
)

// MatchResult is the outcome of comparing a resume keyword set against a
// job-description keyword set. The JD set is the universe: matched and
// missing always partition it exactly.
type MatchResult struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	MatchPercentage int      `json:"matchPercentage"`
	Score           int      `json:"score"`
}

// anyMatchBonus is the flat bonus applied when at least one keyword matched.
const anyMatchBonus = 5

// MatchKeywords set-intersects JD keywords against resume keywords.
// Comparison is case-insensitive; output preserves the extracted strings and
// the JD first-seen order, so results are deterministic for fixed inputs.
// An empty JD set yields 0 percent, never a division by zero.
func MatchKeywords(resumeKeywords, jdKeywords []string) MatchResult {
	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		resumeSet[strings.ToLower(kw)] = true
	}

	seen := make(map[string]bool, len(jdKeywords))
	matched := []string{}
	missing := []string{}
	for _, kw := range jdKeywords {
		key := strings.ToLower(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		if resumeSet[key] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	total := len(matched) + len(missing)
	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(len(matched)) / float64(total)))
	}

	score := pct
	if len(matched) > 0 {
		score += anyMatchBonus
	}

	return MatchResult{
		Matched:         matched,
		Missing:         missing,
		MatchPercentage: clamp100(pct),
		Score:           clamp100(score),
	}
}

func clamp100(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
