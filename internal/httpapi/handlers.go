package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/gin-gonic/gin"
)

// analyzeRequest is the POST /api/ats/analyze body. Field names are part of
// the public contract and must stay stable.
type analyzeRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	Save           bool   `json:"save,omitempty"`
}

// analyzeResponse is the data payload on success.
type analyzeResponse struct {
	ID     string             `json:"id,omitempty"`
	Result ats.AnalysisResult `json:"result"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, msg string) {
	engine.IncrAPIErrors()
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func analyzeHandler(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ResumeText == "" || req.JobDescription == "" {
		respondError(c, http.StatusBadRequest, "resumeText and jobDescription are required")
		return
	}

	resume := engine.PrepareInput(req.ResumeText)
	jd := engine.PrepareInput(req.JobDescription)

	cacheKey := engine.CacheKey("ats_analyze", resume, jd)
	var result ats.AnalysisResult
	cached := false
	if data, ok := engine.CacheGet(c.Request.Context(), cacheKey); ok {
		cached = json.Unmarshal(data, &result) == nil
	}
	if !cached {
		engine.IncrAnalyzeRequests()
		result = ats.Analyze(resume, jd)
		if data, err := json.Marshal(result); err == nil {
			engine.CacheSet(c.Request.Context(), cacheKey, data)
		}
	}

	resp := analyzeResponse{Result: result}
	if req.Save {
		h := ats.GetHistory()
		if h == nil {
			respondError(c, http.StatusInternalServerError, "analysis history is not configured")
			return
		}
		stored, err := h.Save(c.Request.Context(), result)
		if err != nil {
			slog.Error("analyze: history save failed", slog.Any("error", err))
			respondError(c, http.StatusInternalServerError, "failed to save analysis")
			return
		}
		engine.IncrHistoryWrites()
		resp.ID = stored.ID
	}
	respondOK(c, resp)
}

func listAnalysesHandler(c *gin.Context) {
	h := ats.GetHistory()
	if h == nil {
		respondError(c, http.StatusInternalServerError, "analysis history is not configured")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	analyses, err := h.List(c.Request.Context(), limit)
	if err != nil {
		slog.Error("list analyses failed", slog.Any("error", err))
		respondError(c, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	respondOK(c, gin.H{"analyses": analyses, "total": len(analyses)})
}

func getAnalysisHandler(c *gin.Context) {
	h := ats.GetHistory()
	if h == nil {
		respondError(c, http.StatusInternalServerError, "analysis history is not configured")
		return
	}
	stored, err := h.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ats.ErrNotFound) {
		respondError(c, http.StatusNotFound, "analysis not found")
		return
	}
	if err != nil {
		slog.Error("get analysis failed", slog.Any("error", err))
		respondError(c, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	respondOK(c, stored)
}

// reportHandler renders a stored analysis as a standalone HTML report.
// ?format=text returns the plain-text summary instead.
func reportHandler(c *gin.Context) {
	h := ats.GetHistory()
	if h == nil {
		respondError(c, http.StatusInternalServerError, "analysis history is not configured")
		return
	}
	stored, err := h.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ats.ErrNotFound) {
		respondError(c, http.StatusNotFound, "analysis not found")
		return
	}
	if err != nil {
		slog.Error("report: load failed", slog.Any("error", err))
		respondError(c, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	if c.Query("format") == "text" {
		engine.IncrReportRenders()
		c.String(http.StatusOK, ats.FormatReportText(stored.Result))
		return
	}
	html, err := ats.RenderReportHTML(stored.Result, nil)
	if err != nil {
		slog.Error("report: render failed", slog.Any("error", err))
		respondError(c, http.StatusInternalServerError, "failed to render report")
		return
	}
	engine.IncrReportRenders()
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
