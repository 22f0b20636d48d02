package ats

import "testing"

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name     string
		match    MatchResult
		sections SectionFlags
		want     int
	}{
		{
			name:     "zero everything",
			match:    MatchResult{},
			sections: SectionFlags{},
			want:     0,
		},
		{
			name:     "sections only",
			match:    MatchResult{},
			sections: SectionFlags{true, true, true, true, true},
			want:     15, // 5/5 * 15
		},
		{
			name:     "partial sections round",
			match:    MatchResult{},
			sections: SectionFlags{HasSkills: true, HasExperience: true},
			want:     6, // 2/5 * 15 = 6
		},
		{
			name:     "mid coverage bonus",
			match:    MatchResult{MatchPercentage: 50, Score: 55},
			sections: SectionFlags{},
			want:     60, // 55 + 5
		},
		{
			name:     "high coverage bonus",
			match:    MatchResult{MatchPercentage: 80, Score: 85},
			sections: SectionFlags{},
			want:     95, // 85 + 10
		},
		{
			name:     "just below mid cutoff gets nothing",
			match:    MatchResult{MatchPercentage: 49, Score: 54},
			sections: SectionFlags{},
			want:     54,
		},
		{
			name:     "full match clamps regardless of sections",
			match:    MatchResult{MatchPercentage: 100, Score: 100},
			sections: SectionFlags{true, true, true, true, true},
			want:     100, // 100 + 15 + 10 clamped
		},
		{
			name:     "odd section count rounds",
			match:    MatchResult{MatchPercentage: 60, Score: 65},
			sections: SectionFlags{HasContactInfo: true, HasSkills: true, HasExperience: true},
			want:     79, // 65 + 9 + 5
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateScore(tt.match, tt.sections)
			if got != tt.want {
				t.Errorf("CalculateScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateScoreBounds(t *testing.T) {
	for pct := 0; pct <= 100; pct += 10 {
		for count := 0; count <= 5; count++ {
			sections := SectionFlags{}
			flags := []*bool{&sections.HasContactInfo, &sections.HasEducation, &sections.HasExperience, &sections.HasSkills, &sections.HasProjects}
			for i := 0; i < count; i++ {
				*flags[i] = true
			}
			score := CalculateScore(MatchResult{MatchPercentage: pct, Score: clamp100(pct + 5)}, sections)
			if score < 0 || score > 100 {
				t.Fatalf("score %d out of bounds for pct=%d sections=%d", score, pct, count)
			}
		}
	}
}
