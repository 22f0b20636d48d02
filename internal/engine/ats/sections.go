package ats

import (
	"regexp"
	"strings"
)

// SectionFlags marks which canonical resume sections were detected.
// Flags are independent; a resume can trip several with the same sentence.
type SectionFlags struct {
	HasContactInfo bool `json:"hasContactInfo"`
	HasEducation   bool `json:"hasEducation"`
	HasExperience  bool `json:"hasExperience"`
	HasSkills      bool `json:"hasSkills"`
	HasProjects    bool `json:"hasProjects"`
}

// Count returns the number of detected sections (0-5).
func (f SectionFlags) Count() int {
	n := 0
	for _, ok := range []bool{f.HasContactInfo, f.HasEducation, f.HasExperience, f.HasSkills, f.HasProjects} {
		if ok {
			n++
		}
	}
	return n
}

// One fixed pattern per section. False positives are accepted; absence
// simply yields false.
var (
	contactRe    = regexp.MustCompile(`\d{10}|phone|email|@|contact|linkedin|github`)
	educationRe  = regexp.MustCompile(`bachelor|master|phd|degree|university|college|education`)
	experienceRe = regexp.MustCompile(`experience|worked at|worked|employment|position|role`)
	skillsRe     = regexp.MustCompile(`skill|proficient|expertise|technical|tools|framework`)
	projectsRe   = regexp.MustCompile(`project|developed|created|built|github|portfolio|deployed`)
)

// DetectSections pattern-matches the lowercased resume text for the five
// canonical sections. Never fails; empty input yields all-false flags.
func DetectSections(resumeText string) SectionFlags {
	t := strings.ToLower(resumeText)
	return SectionFlags{
		HasContactInfo: contactRe.MatchString(t),
		HasEducation:   educationRe.MatchString(t),
		HasExperience:  experienceRe.MatchString(t),
		HasSkills:      skillsRe.MatchString(t),
		HasProjects:    projectsRe.MatchString(t),
	}
}
