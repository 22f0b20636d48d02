// Package ats implements the deterministic ATS compatibility analysis engine:
// keyword extraction, resume-vs-job-description matching, section detection,
// composite scoring, and rule-based insight generation.
//
// Every function in this package is pure: no IO, no clocks, no randomness.
// The same pair of input strings always produces the same result.
package ats

import (
	"strings"
	"unicode"
)

// NormalizeTokens lowercases text, replaces every non-alphanumeric rune with
// a space, and splits on whitespace. Pure digit tokens survive; years and
// version numbers carry signal in resumes.
func NormalizeTokens(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}
