// Package atsserver exposes the ATS analysis engine as MCP tools:
// ats_analyze, ats_keywords, ats_sections, and the analysis history tools.
package atsserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all ATS analysis tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerAnalyze(server)
	registerKeywords(server)
	registerSections(server)
	registerHistoryList(server)
	registerHistoryGet(server)
}
