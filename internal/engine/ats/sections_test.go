package ats

import "testing"

func TestDetectSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want SectionFlags
	}{
		{
			name: "education via degree",
			text: "Bachelor of Science in Computer Science, MIT",
			want: SectionFlags{HasEducation: true},
		},
		{
			name: "bare name has no contact info",
			text: "John Smith",
			want: SectionFlags{},
		},
		{
			name: "phone digits run",
			text: "Reach me on 4155551234 anytime",
			want: SectionFlags{HasContactInfo: true},
		},
		{
			name: "email at-sign",
			text: "jane@example.com",
			want: SectionFlags{HasContactInfo: true},
		},
		{
			name: "github trips contact and projects",
			text: "github.com/jdoe",
			want: SectionFlags{HasContactInfo: true, HasProjects: true},
		},
		{
			name: "experience keywords",
			text: "Worked at Initech as a senior engineer",
			want: SectionFlags{HasExperience: true},
		},
		{
			name: "skills keywords",
			text: "Proficient in distributed systems",
			want: SectionFlags{HasSkills: true},
		},
		{
			name: "projects via built",
			text: "Built a real-time chat app",
			want: SectionFlags{HasProjects: true},
		},
		{
			name: "empty input all false",
			text: "",
			want: SectionFlags{},
		},
		{
			name: "case insensitive",
			text: "EDUCATION\nEXPERIENCE\nSKILLS",
			want: SectionFlags{HasEducation: true, HasExperience: true, HasSkills: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectSections(tt.text)
			if got != tt.want {
				t.Errorf("DetectSections(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSectionFlagsCount(t *testing.T) {
	if got := (SectionFlags{}).Count(); got != 0 {
		t.Errorf("empty flags Count() = %d, want 0", got)
	}
	all := SectionFlags{true, true, true, true, true}
	if got := all.Count(); got != 5 {
		t.Errorf("all flags Count() = %d, want 5", got)
	}
	if got := (SectionFlags{HasSkills: true, HasProjects: true}).Count(); got != 2 {
		t.Errorf("two flags Count() = %d, want 2", got)
	}
}
