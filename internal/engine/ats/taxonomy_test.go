package ats

import "testing"

func TestTaxonomyCategorize(t *testing.T) {
	tests := []struct {
		term string
		want KeywordCategory
	}{
		{"python", CategoryTechnical},
		{"kubernetes", CategoryTechnical},
		{"machine learning", CategoryTechnical},
		{"stakeholder", CategoryBusiness},
		{"agile", CategoryBusiness},
		{"leadership", CategorySoftSkill},
		{"problem solving", CategorySoftSkill},
		{"launched", CategoryActionVerb},
		{"zzzunknown", CategoryOther},
	}
	for _, tt := range tests {
		if got := DefaultTaxonomy.Categorize(tt.term); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestTaxonomyCategorizeAllPreservesOrder(t *testing.T) {
	terms := []string{"docker", "leadership", "unknownterm"}
	got := DefaultTaxonomy.CategorizeAll(terms)
	if len(got) != len(terms) {
		t.Fatalf("got %d entries, want %d", len(got), len(terms))
	}
	for i, ck := range got {
		if ck.Term != terms[i] {
			t.Errorf("[%d] term %q, want %q", i, ck.Term, terms[i])
		}
	}
}

func TestTaxonomyEarlierListWins(t *testing.T) {
	tax := NewTaxonomy("test",
		[]string{"shared"},
		[]string{"shared"},
		nil, nil)
	if got := tax.Categorize("shared"); got != CategoryTechnical {
		t.Errorf("duplicate term categorized as %q, want technical", got)
	}
}

func TestDefaultTaxonomyVersioned(t *testing.T) {
	if DefaultTaxonomy.Version == "" {
		t.Error("default taxonomy must carry a version")
	}
}
