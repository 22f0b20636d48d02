package atsserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SectionsInput is the input for ats_sections.
type SectionsInput struct {
	Resume string `json:"resume" jsonschema:"Resume text to scan for canonical sections"`
}

func registerSections(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_sections",
		Description: "Detect which canonical resume sections are present: contact info, education, experience, skills, projects. Heuristic pattern matching; flags are independent booleans.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input SectionsInput) (*mcp.CallToolResult, ats.SectionFlags, error) {
		if input.Resume == "" {
			return nil, ats.SectionFlags{}, errors.New("resume is required")
		}
		return nil, ats.DetectSections(engine.PrepareInput(input.Resume)), nil
	})
}
