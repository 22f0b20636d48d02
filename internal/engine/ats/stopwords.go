package ats

// DefaultStopWords filters function words that add noise to keyword matching:
// conjunctions, prepositions, auxiliary and modal verbs. Content words stay.
var DefaultStopWords = map[string]bool{
	"and": true, "or": true, "but": true, "nor": true, "yet": true,
	"the": true, "for": true, "with": true, "from": true, "into": true,
	"onto": true, "over": true, "under": true, "about": true, "after": true,
	"before": true, "between": true, "through": true, "during": true,
	"are": true, "was": true, "were": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "does": true, "did": true,
	"will": true, "would": true, "can": true, "could": true, "shall": true,
	"should": true, "may": true, "might": true, "must": true, "this": true,
	"that": true, "a": true, "an": true, "in": true, "on": true, "at": true,
	"to": true, "of": true, "by": true, "as": true, "is": true, "be": true,
	"do": true,
}
