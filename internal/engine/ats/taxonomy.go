package ats

// KeywordCategory labels where a term sits in the industry taxonomy.
type KeywordCategory string

const (
	CategoryTechnical  KeywordCategory = "technical"
	CategoryBusiness   KeywordCategory = "business"
	CategorySoftSkill  KeywordCategory = "soft_skill"
	CategoryActionVerb KeywordCategory = "action_verb"
	CategoryOther      KeywordCategory = "other"
)

// CategorizedKeyword pairs a term with its taxonomy label.
type CategorizedKeyword struct {
	Term     string          `json:"term"`
	Category KeywordCategory `json:"category"`
}

// Taxonomy is the static industry keyword reference dataset. It labels
// extracted terms for reporting; it is never a scoring input. Matching is
// resume-text vs job-description-text only.
type Taxonomy struct {
	Version     string
	Technical   []string
	Business    []string
	SoftSkills  []string
	ActionVerbs []string

	index map[string]KeywordCategory
}

// NewTaxonomy builds the lookup index. Earlier lists win on duplicates.
func NewTaxonomy(version string, technical, business, softSkills, actionVerbs []string) *Taxonomy {
	t := &Taxonomy{
		Version:     version,
		Technical:   technical,
		Business:    business,
		SoftSkills:  softSkills,
		ActionVerbs: actionVerbs,
		index:       make(map[string]KeywordCategory),
	}
	for _, group := range []struct {
		cat   KeywordCategory
		terms []string
	}{
		{CategoryTechnical, technical},
		{CategoryBusiness, business},
		{CategorySoftSkill, softSkills},
		{CategoryActionVerb, actionVerbs},
	} {
		for _, term := range group.terms {
			if _, ok := t.index[term]; !ok {
				t.index[term] = group.cat
			}
		}
	}
	return t
}

// Categorize labels a single lowercase term.
func (t *Taxonomy) Categorize(term string) KeywordCategory {
	if cat, ok := t.index[term]; ok {
		return cat
	}
	return CategoryOther
}

// CategorizeAll labels terms preserving input order.
func (t *Taxonomy) CategorizeAll(terms []string) []CategorizedKeyword {
	out := make([]CategorizedKeyword, 0, len(terms))
	for _, term := range terms {
		out = append(out, CategorizedKeyword{Term: term, Category: t.Categorize(term)})
	}
	return out
}

// DefaultTaxonomy is the built-in reference dataset. Versioned so reports can
// state which dataset labeled them.
var DefaultTaxonomy = NewTaxonomy("2025.1",
	[]string{
		"python", "java", "javascript", "typescript", "golang", "rust",
		"ruby", "php", "swift", "kotlin", "scala", "sql", "nosql", "html",
		"css", "react", "angular", "vue", "node", "django", "flask",
		"spring", "rails", "docker", "kubernetes", "terraform", "ansible",
		"aws", "azure", "gcp", "linux", "git", "jenkins", "graphql",
		"rest", "api", "apis", "grpc", "microservices", "postgresql",
		"mysql", "mongodb", "redis", "kafka", "elasticsearch", "spark",
		"hadoop", "tensorflow", "pytorch", "pandas", "numpy",
		"machine learning", "deep learning", "data analysis",
		"data engineering", "ci", "cd", "devops", "sre", "testing",
		"debugging", "security", "networking", "caching", "etl",
	},
	[]string{
		"management", "strategy", "marketing", "sales", "finance",
		"budget", "budgeting", "forecasting", "operations", "compliance",
		"procurement", "negotiation", "stakeholder", "stakeholders",
		"roadmap", "agile", "scrum", "kanban", "analytics", "reporting",
		"kpi", "okr", "revenue", "growth", "partnerships",
		"product management", "project management", "risk management",
	},
	[]string{
		"leadership", "communication", "teamwork", "collaboration",
		"adaptability", "creativity", "mentoring", "mentorship",
		"ownership", "initiative", "empathy", "organization",
		"prioritization", "problem solving", "critical thinking",
		"time management", "attention to detail", "public speaking",
	},
	[]string{
		"developed", "built", "led", "managed", "created", "designed",
		"implemented", "launched", "shipped", "improved", "optimized",
		"automated", "delivered", "migrated", "scaled", "reduced",
		"increased", "mentored", "coordinated", "architected",
		"maintained", "deployed", "refactored", "streamlined",
	},
)
