package ats

import (
	"strings"
	"testing"
)

func TestRenderReportHTML(t *testing.T) {
	result := Analyze(scenarioResume, scenarioJD)
	html, err := RenderReportHTML(result, nil)
	if err != nil {
		t.Fatalf("RenderReportHTML: %v", err)
	}
	out := string(html)

	for _, want := range []string{
		"ATS Compatibility Report",
		"python",
		"kubernetes",
		"(technical)", // taxonomy label on a known term
		DefaultTaxonomy.Version,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderReportHTMLCustomTaxonomy(t *testing.T) {
	tax := NewTaxonomy("custom-v1", []string{"python"}, nil, nil, nil)
	result := Analyze(scenarioResume, scenarioJD)
	html, err := RenderReportHTML(result, tax)
	if err != nil {
		t.Fatalf("RenderReportHTML: %v", err)
	}
	if !strings.Contains(string(html), "custom-v1") {
		t.Error("report did not use the provided taxonomy version")
	}
}

func TestFormatReportText(t *testing.T) {
	result := Analyze(scenarioResume, scenarioJD)
	out := FormatReportText(result)
	if !strings.Contains(out, "ATS score:") {
		t.Errorf("missing score line:\n%s", out)
	}
	if !strings.Contains(out, "Missing: ") || !strings.Contains(out, "kubernetes") {
		t.Errorf("missing keywords line:\n%s", out)
	}
	if !strings.Contains(out, "Strengths:") {
		t.Errorf("missing strengths block:\n%s", out)
	}
}
