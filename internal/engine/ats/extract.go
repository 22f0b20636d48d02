package ats

import "strings"

// phraseWindows are the n-gram widths used for multi-word term extraction.
var phraseWindows = []int{2, 3}

// ExtractKeywords returns the deduplicated single-word keyword set of text:
// tokens longer than 2 runes that are not stop words, in first-seen order.
// Order is load-bearing: matched/missing lists inherit it, which keeps
// analysis output bit-identical across calls.
func ExtractKeywords(text string, stopWords map[string]bool) []string {
	if stopWords == nil {
		stopWords = DefaultStopWords
	}
	tokens := NormalizeTokens(text)
	seen := make(map[string]bool, len(tokens))
	keywords := []string{}
	for _, tok := range tokens {
		if len([]rune(tok)) <= 2 || stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}

// ExtractPhrases slides 2- and 3-token windows over the raw token stream and
// keeps windows whose boundary tokens are not stop words, so terms like
// "machine learning" survive as a unit. Runs over the pre-filtered stream:
// interior stop words are allowed ("head of engineering").
func ExtractPhrases(text string, stopWords map[string]bool) []string {
	if stopWords == nil {
		stopWords = DefaultStopWords
	}
	tokens := NormalizeTokens(text)
	seen := make(map[string]bool)
	phrases := []string{}
	for _, width := range phraseWindows {
		for i := 0; i+width <= len(tokens); i++ {
			if stopWords[tokens[i]] || stopWords[tokens[i+width-1]] {
				continue
			}
			p := strings.Join(tokens[i:i+width], " ")
			if seen[p] {
				continue
			}
			seen[p] = true
			phrases = append(phrases, p)
		}
	}
	return phrases
}

// CommonPhrases returns multi-word terms present in both texts, in
// job-description first-seen order. Display aid for reports; phrase overlap
// does not feed the match percentage.
func CommonPhrases(resumeText, jdText string, stopWords map[string]bool) []string {
	resumeSet := make(map[string]bool)
	for _, p := range ExtractPhrases(resumeText, stopWords) {
		resumeSet[p] = true
	}
	common := []string{}
	for _, p := range ExtractPhrases(jdText, stopWords) {
		if resumeSet[p] {
			common = append(common, p)
		}
	}
	return common
}
