// go_ats is a deterministic ATS compatibility analysis service.
//
// Scores resumes against job descriptions with a pure rule-based engine:
// keyword extraction and matching, resume section detection, composite
// scoring, and insight generation. No model calls, no randomness; the same
// inputs always produce the same result.
//
// Three surfaces share the one engine:
//   - MCP tools (ats_analyze, ats_keywords, ats_sections, history) over
//     HTTP or stdio transport
//   - REST API (POST /api/ats/analyze and friends), enabled via API_PORT
//   - RabbitMQ worker pool for queued batch analyses, enabled via AMQP_URL
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_ats/internal/atsserver"
	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/anatolykoptev/go_ats/internal/httpapi"
	"github.com/anatolykoptev/go_ats/internal/worker"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/streadway/amqp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8895")
)

func main() {
	_ = godotenv.Load()
	initEngine()

	slog.Info("starting go_ats",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ats",
		Version: version,
	}, nil)

	atsserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 5))

	startHTTPAPI()
	startWorkerPool()

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ats",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		MaxInputChars:        env.Int("MAX_INPUT_CHARS", 50000),
		HistoryPath:          env.Str("HISTORY_PATH", filepath.Join(os.Getenv("HOME"), ".go_ats", "history.db")),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		APIPort:              env.Str("API_PORT", ""),
		RateRPS:              env.Float("RATE_RPS", 5),
		RateBurst:            env.Int("RATE_BURST", 10),
		AMQPURL:              env.Str("AMQP_URL", ""),
		AnalysisQueue:        env.Str("ANALYSIS_QUEUE", "ats_analyses"),
		ResultQueue:          env.Str("RESULT_QUEUE", "ats_results"),
		WorkerCount:          env.Int("WORKER_COUNT", 3),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	}
	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	if c.HistoryPath != "" {
		h, err := ats.OpenHistory(c.HistoryPath)
		if err != nil {
			slog.Warn("history init failed, running without local history", slog.Any("error", err))
		} else {
			ats.SetHistory(h)
			slog.Info("analysis history initialized", slog.String("path", c.HistoryPath))
		}
	}

	if c.DatabaseURL != "" {
		a, err := ats.ConnectArchive(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("archive init failed, running without archive", slog.Any("error", err))
		} else {
			ats.SetArchive(a)
		}
	}
}

// startHTTPAPI serves the REST boundary when API_PORT is set.
func startHTTPAPI() {
	port := engine.Cfg.APIPort
	if port == "" {
		return
	}
	go func() {
		slog.Info("http api listening", slog.String("port", port))
		if err := httpapi.New().Run(port); err != nil {
			slog.Error("http api failed", slog.Any("error", err))
		}
	}()
}

// startWorkerPool consumes queued analyses when AMQP_URL is set.
func startWorkerPool() {
	url := engine.Cfg.AMQPURL
	if url == "" {
		return
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		slog.Error("rabbitmq connect failed, worker pool disabled", slog.Any("error", err))
		return
	}
	wc := &worker.Config{
		Conn:          conn,
		AnalysisQueue: engine.Cfg.AnalysisQueue,
		ResultQueue:   engine.Cfg.ResultQueue,
	}
	go func() {
		slog.Info("worker pool started", slog.Int("workers", engine.Cfg.WorkerCount))
		wc.StartConsumerWorkerPool(engine.Cfg.WorkerCount)
	}()
}
