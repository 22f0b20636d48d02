package ats

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// reportData is the template payload for HTML report rendering.
type reportData struct {
	Result          AnalysisResult
	MatchedByGroup  []CategorizedKeyword
	MissingByGroup  []CategorizedKeyword
	TaxonomyVersion string
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>ATS Compatibility Report</title></head>
<body style="font-family:Arial,Helvetica,sans-serif;max-width:640px;margin:0 auto;color:#1a1a2e">
  <h1 style="font-size:22px">ATS Compatibility Report</h1>
  <p style="font-size:40px;font-weight:bold;margin:8px 0">{{.Result.Score}}<span style="font-size:18px;color:#666">/100</span></p>
  <p>Keyword match: <strong>{{.Result.MatchPercentage}}%</strong>
     ({{.Result.KeywordStats.MatchedCount}} of {{.Result.KeywordStats.TotalJDKeywords}} job keywords)</p>

  {{if .Result.MatchedKeywords}}<h2 style="font-size:16px">Matched keywords</h2>
  <p>{{range $i, $kw := .MatchedByGroup}}{{if $i}}, {{end}}{{$kw.Term}}{{if ne $kw.Category "other"}} <em style="color:#888">({{$kw.Category}})</em>{{end}}{{end}}</p>{{end}}

  {{if .Result.MissingKeywords}}<h2 style="font-size:16px">Missing keywords</h2>
  <p>{{range $i, $kw := .MissingByGroup}}{{if $i}}, {{end}}{{$kw.Term}}{{if ne $kw.Category "other"}} <em style="color:#888">({{$kw.Category}})</em>{{end}}{{end}}</p>{{end}}

  {{if .Result.Insights}}<h2 style="font-size:16px">Insights</h2>
  <ul>{{range .Result.Insights}}<li>{{.}}</li>{{end}}</ul>{{end}}

  <h2 style="font-size:16px">Strengths</h2>
  <ul>{{range .Result.Strengths}}<li>{{.}}</li>{{end}}</ul>

  {{if .Result.Weaknesses}}<h2 style="font-size:16px">Weaknesses</h2>
  <ul>{{range .Result.Weaknesses}}<li>{{.}}</li>{{end}}</ul>{{end}}

  {{if .Result.Recommendations}}<h2 style="font-size:16px">Recommendations</h2>
  <ul>{{range .Result.Recommendations}}<li>{{.}}</li>{{end}}</ul>{{end}}

  <p style="color:#aaa;font-size:11px">Keyword taxonomy {{.TaxonomyVersion}}</p>
</body>
</html>
`))

// RenderReportHTML renders the analysis result as a standalone HTML document
// suitable for email delivery. Keywords are labeled against the taxonomy;
// nil taxonomy falls back to the default dataset.
func RenderReportHTML(result AnalysisResult, taxonomy *Taxonomy) ([]byte, error) {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy
	}
	data := reportData{
		Result:          result,
		MatchedByGroup:  taxonomy.CategorizeAll(result.MatchedKeywords),
		MissingByGroup:  taxonomy.CategorizeAll(result.MissingKeywords),
		TaxonomyVersion: taxonomy.Version,
	}
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatReportText renders a compact plain-text summary of the result.
func FormatReportText(result AnalysisResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ATS score: %d/100 (keyword match %d%%, %d/%d job keywords)\n",
		result.Score, result.MatchPercentage,
		result.KeywordStats.MatchedCount, result.KeywordStats.TotalJDKeywords)
	writeList := func(header string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(header + ":\n")
		for _, item := range items {
			sb.WriteString("  - " + item + "\n")
		}
	}
	if len(result.MatchedKeywords) > 0 {
		fmt.Fprintf(&sb, "Matched: %s\n", strings.Join(result.MatchedKeywords, ", "))
	}
	if len(result.MissingKeywords) > 0 {
		fmt.Fprintf(&sb, "Missing: %s\n", strings.Join(result.MissingKeywords, ", "))
	}
	writeList("Insights", result.Insights)
	writeList("Strengths", result.Strengths)
	writeList("Weaknesses", result.Weaknesses)
	writeList("Recommendations", result.Recommendations)
	return sb.String()
}
