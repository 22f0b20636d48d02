package atsserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HistoryListInput is the input for ats_history_list.
type HistoryListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of entries to return (default 20, max 100)"`
}

// HistoryListOutput is the output for ats_history_list.
type HistoryListOutput struct {
	Analyses []ats.StoredAnalysis `json:"analyses"`
	Total    int                  `json:"total"`
}

// HistoryGetInput is the input for ats_history_get.
type HistoryGetInput struct {
	ID string `json:"id" jsonschema:"Analysis id returned by ats_analyze with save=true"`
}

func registerHistoryList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_history_list",
		Description: "List recent saved ATS analyses, newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input HistoryListInput) (*mcp.CallToolResult, HistoryListOutput, error) {
		h := ats.GetHistory()
		if h == nil {
			return nil, HistoryListOutput{}, errors.New("analysis history is not configured")
		}
		analyses, err := h.List(ctx, input.Limit)
		if err != nil {
			return nil, HistoryListOutput{}, err
		}
		return nil, HistoryListOutput{Analyses: analyses, Total: len(analyses)}, nil
	})
}

func registerHistoryGet(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_history_get",
		Description: "Fetch a saved ATS analysis by id, including the full result.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input HistoryGetInput) (*mcp.CallToolResult, ats.StoredAnalysis, error) {
		if input.ID == "" {
			return nil, ats.StoredAnalysis{}, errors.New("id is required")
		}
		h := ats.GetHistory()
		if h == nil {
			return nil, ats.StoredAnalysis{}, errors.New("analysis history is not configured")
		}
		stored, err := h.Get(ctx, input.ID)
		if err != nil {
			return nil, ats.StoredAnalysis{}, err
		}
		return nil, stored, nil
	})
}
