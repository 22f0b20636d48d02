package atsserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AnalyzeInput is the input for ats_analyze.
type AnalyzeInput struct {
	Resume         string `json:"resume" jsonschema:"Resume plain text (HTML is converted automatically)"`
	JobDescription string `json:"job_description" jsonschema:"Job description plain text (HTML is converted automatically)"`
	Save           bool   `json:"save,omitempty" jsonschema:"Persist the result to local analysis history"`
}

// AnalyzeOutput wraps the analysis result with its history id when saved.
// CommonPhrases lists multi-word terms shared by both texts; it is a display
// aid and does not feed the score.
type AnalyzeOutput struct {
	ID            string             `json:"id,omitempty"`
	Result        ats.AnalysisResult `json:"result"`
	CommonPhrases []string           `json:"commonPhrases"`
}

func registerAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_analyze",
		Description: "Score a resume against a job description with the deterministic ATS compatibility engine. Returns a 0-100 score, matched/missing keywords, detected resume sections, and rule-based insights, strengths, weaknesses, and recommendations.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
		if input.Resume == "" {
			return nil, AnalyzeOutput{}, errors.New("resume is required")
		}
		if input.JobDescription == "" {
			return nil, AnalyzeOutput{}, errors.New("job_description is required")
		}

		resume := engine.PrepareInput(input.Resume)
		jd := engine.PrepareInput(input.JobDescription)

		cacheKey := engine.CacheKey("ats_analyze", resume, jd)
		var result ats.AnalysisResult
		if cached, ok := toolutil.CacheLoadJSON[ats.AnalysisResult](ctx, cacheKey); ok {
			result = cached
		} else {
			engine.IncrAnalyzeRequests()
			result = ats.Analyze(resume, jd)
			toolutil.CacheStoreJSON(ctx, cacheKey, result)
		}

		out := AnalyzeOutput{
			Result:        result,
			CommonPhrases: ats.CommonPhrases(resume, jd, nil),
		}
		if input.Save {
			h := ats.GetHistory()
			if h == nil {
				return nil, AnalyzeOutput{}, errors.New("analysis history is not configured")
			}
			stored, err := h.Save(ctx, result)
			if err != nil {
				slog.Error("ats_analyze: history save failed", slog.Any("error", err))
				return nil, AnalyzeOutput{}, err
			}
			engine.IncrHistoryWrites()
			out.ID = stored.ID
		}
		return nil, out, nil
	})
}
