package ats

// KeywordStats summarizes the keyword comparison for the caller.
type KeywordStats struct {
	TotalJDKeywords int `json:"totalJDKeywords"`
	MatchedCount    int `json:"matchedCount"`
	MatchPercentage int `json:"matchPercentage"`
}

// AnalysisResult is the engine's sole externally visible artifact, produced
// fresh per call. Keyword lists are never nil so they serialize as [].
type AnalysisResult struct {
	Score           int          `json:"score"`
	MatchPercentage int          `json:"matchPercentage"`
	MatchedKeywords []string     `json:"matchedKeywords"`
	MissingKeywords []string     `json:"missingKeywords"`
	KeywordStats    KeywordStats `json:"keywordStats"`
	Sections        SectionFlags `json:"sections"`
	Insights        []string     `json:"insights"`
	Strengths       []string     `json:"strengths"`
	Weaknesses      []string     `json:"weaknesses"`
	Recommendations []string     `json:"recommendations"`
}

// Opts overrides the engine's constant tables, mainly for tests.
// Zero fields fall back to the package defaults.
type Opts struct {
	StopWords map[string]bool
}

// Analyze runs the full pipeline with the default stop words: normalize,
// extract, match plus section detection, score, insights. It never fails on
// any string input; empty inputs yield a well-formed zero-score result.
func Analyze(resumeText, jobDescriptionText string) AnalysisResult {
	return AnalyzeWithOpts(resumeText, jobDescriptionText, Opts{})
}

// AnalyzeWithOpts is Analyze with overridable constant tables.
func AnalyzeWithOpts(resumeText, jobDescriptionText string, opts Opts) AnalysisResult {
	stop := opts.StopWords
	if stop == nil {
		stop = DefaultStopWords
	}

	resumeKW := ExtractKeywords(resumeText, stop)
	jdKW := ExtractKeywords(jobDescriptionText, stop)

	match := MatchKeywords(resumeKW, jdKW)
	sections := DetectSections(resumeText)
	score := CalculateScore(match, sections)
	insights := GenerateInsights(match, sections, resumeText)

	return AnalysisResult{
		Score:           score,
		MatchPercentage: match.MatchPercentage,
		MatchedKeywords: match.Matched,
		MissingKeywords: match.Missing,
		KeywordStats: KeywordStats{
			TotalJDKeywords: len(match.Matched) + len(match.Missing),
			MatchedCount:    len(match.Matched),
			MatchPercentage: match.MatchPercentage,
		},
		Sections:        sections,
		Insights:        insights.Insights,
		Strengths:       insights.Strengths,
		Weaknesses:      insights.Weaknesses,
		Recommendations: insights.Recommendations,
	}
}
