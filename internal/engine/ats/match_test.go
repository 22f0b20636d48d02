package ats

import (
	"reflect"
	"testing"
)

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		name        string
		resume      []string
		jd          []string
		wantMatched []string
		wantMissing []string
		wantPct     int
		wantScore   int
	}{
		{
			name:        "partial overlap",
			resume:      []string{"python", "aws", "docker"},
			jd:          []string{"python", "kubernetes"},
			wantMatched: []string{"python"},
			wantMissing: []string{"kubernetes"},
			wantPct:     50,
			wantScore:   55, // 50 + flat any-match bonus
		},
		{
			name:        "no overlap no bonus",
			resume:      []string{"java"},
			jd:          []string{"python", "golang"},
			wantMatched: []string{},
			wantMissing: []string{"python", "golang"},
			wantPct:     0,
			wantScore:   0,
		},
		{
			name:        "empty jd set yields zero not panic",
			resume:      []string{"python"},
			jd:          []string{},
			wantMatched: []string{},
			wantMissing: []string{},
			wantPct:     0,
			wantScore:   0,
		},
		{
			name:        "full overlap clamps at 100",
			resume:      []string{"python", "aws"},
			jd:          []string{"python", "aws"},
			wantMatched: []string{"python", "aws"},
			wantMissing: []string{},
			wantPct:     100,
			wantScore:   100, // 100 + 5 clamped
		},
		{
			name:        "case insensitive comparison",
			resume:      []string{"Python"},
			jd:          []string{"python"},
			wantMatched: []string{"python"},
			wantMissing: []string{},
			wantPct:     100,
			wantScore:   100,
		},
		{
			name:        "jd duplicates collapse",
			resume:      []string{"python"},
			jd:          []string{"python", "python", "aws"},
			wantMatched: []string{"python"},
			wantMissing: []string{"aws"},
			wantPct:     50,
			wantScore:   55,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchKeywords(tt.resume, tt.jd)
			if !reflect.DeepEqual(got.Matched, tt.wantMatched) {
				t.Errorf("Matched = %v, want %v", got.Matched, tt.wantMatched)
			}
			if !reflect.DeepEqual(got.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
			if got.MatchPercentage != tt.wantPct {
				t.Errorf("MatchPercentage = %d, want %d", got.MatchPercentage, tt.wantPct)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
		})
	}
}

func TestMatchKeywordsPartition(t *testing.T) {
	resume := ExtractKeywords("golang postgres redis kafka grafana", nil)
	jd := ExtractKeywords("golang kafka terraform kubernetes postgres", nil)
	got := MatchKeywords(resume, jd)

	// matched ∪ missing must equal the JD set; intersection must be empty.
	union := map[string]bool{}
	for _, kw := range got.Matched {
		union[kw] = true
	}
	for _, kw := range got.Missing {
		if union[kw] {
			t.Errorf("keyword %q is both matched and missing", kw)
		}
		union[kw] = true
	}
	if len(union) != len(jd) {
		t.Fatalf("partition size %d != jd set size %d", len(union), len(jd))
	}
	for _, kw := range jd {
		if !union[kw] {
			t.Errorf("jd keyword %q missing from partition", kw)
		}
	}
}

func TestMatchKeywordsRoundsHalfUp(t *testing.T) {
	// 1 of 8 = 12.5% → rounds to 13.
	got := MatchKeywords([]string{"aws"}, []string{"aws", "gcp", "azure", "docker", "kafka", "spark", "react", "vue"})
	if got.MatchPercentage != 13 {
		t.Errorf("MatchPercentage = %d, want 13", got.MatchPercentage)
	}
}

func TestMatchKeywordsMonotonicity(t *testing.T) {
	resume := []string{"python", "aws"}
	jd := []string{"python", "kubernetes"}
	before := MatchKeywords(resume, jd).MatchPercentage

	// Adding a keyword present in both sets must not decrease the percentage.
	after := MatchKeywords(append(resume, "terraform"), append(jd, "terraform")).MatchPercentage
	if after < before {
		t.Errorf("percentage decreased from %d to %d after adding shared keyword", before, after)
	}
}
