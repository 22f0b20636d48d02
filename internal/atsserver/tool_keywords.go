package atsserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// KeywordsInput is the input for ats_keywords.
type KeywordsInput struct {
	Text string `json:"text" jsonschema:"Text to extract keywords and phrases from (resume or job description)"`
}

// KeywordsOutput lists extracted terms with taxonomy labels.
type KeywordsOutput struct {
	Keywords   []string                 `json:"keywords"`
	Phrases    []string                 `json:"phrases"`
	Categories []ats.CategorizedKeyword `json:"categories"`
}

func registerKeywords(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_keywords",
		Description: "Extract the deduplicated keyword and multi-word phrase sets from free-form text, labeled against the industry keyword taxonomy (technical, business, soft_skill, action_verb).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input KeywordsInput) (*mcp.CallToolResult, KeywordsOutput, error) {
		if input.Text == "" {
			return nil, KeywordsOutput{}, errors.New("text is required")
		}
		text := engine.PrepareInput(input.Text)
		keywords := ats.ExtractKeywords(text, nil)
		return nil, KeywordsOutput{
			Keywords:   keywords,
			Phrases:    ats.ExtractPhrases(text, nil),
			Categories: ats.DefaultTaxonomy.CategorizeAll(keywords),
		}, nil
	})
}
