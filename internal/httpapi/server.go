// Package httpapi is the REST boundary over the ATS analysis engine.
//
// Response envelope for /api routes: {"success": bool, "data": ..., "error": "..."}.
// 200 on success, 400 on missing inputs, 500 on internal failure.
package httpapi

import (
	"net/http"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/gin-gonic/gin"
)

// Server wraps the gin router for the REST boundary.
type Server struct {
	router *gin.Engine
}

// New builds the router with logging, recovery, and rate limiting applied
// to the /api group.
func New() *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(), recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, engine.FormatMetrics())
	})

	api := router.Group("/api", rateLimit(engine.Cfg.RateRPS, engine.Cfg.RateBurst))
	api.POST("/ats/analyze", analyzeHandler)
	api.GET("/ats/analyses", listAnalysesHandler)
	api.GET("/ats/analyses/:id", getAnalysisHandler)
	api.GET("/ats/analyses/:id/report", reportHandler)

	return &Server{router: router}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves the API on the given port. Blocks.
func (s *Server) Run(port string) error {
	return s.router.Run(":" + port)
}
