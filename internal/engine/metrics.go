package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AnalyzeRequests atomic.Int64
	APIRequests     atomic.Int64
	APIErrors       atomic.Int64
	RateLimited     atomic.Int64
	WorkerJobs      atomic.Int64
	WorkerErrors    atomic.Int64
	ReportRenders   atomic.Int64
	IngestRequests  atomic.Int64
	HistoryWrites   atomic.Int64
	ArchiveWrites   atomic.Int64
}

func IncrAnalyzeRequests() { metrics.AnalyzeRequests.Add(1) }
func IncrAPIRequests()     { metrics.APIRequests.Add(1) }
func IncrAPIErrors()       { metrics.APIErrors.Add(1) }
func IncrRateLimited()     { metrics.RateLimited.Add(1) }
func IncrWorkerJobs()      { metrics.WorkerJobs.Add(1) }
func IncrWorkerErrors()    { metrics.WorkerErrors.Add(1) }
func IncrReportRenders()   { metrics.ReportRenders.Add(1) }
func IncrIngestRequests()  { metrics.IngestRequests.Add(1) }
func IncrHistoryWrites()   { metrics.HistoryWrites.Add(1) }
func IncrArchiveWrites()   { metrics.ArchiveWrites.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"analyze_requests": metrics.AnalyzeRequests.Load(),
		"api_requests":     metrics.APIRequests.Load(),
		"api_errors":       metrics.APIErrors.Load(),
		"rate_limited":     metrics.RateLimited.Load(),
		"worker_jobs":      metrics.WorkerJobs.Load(),
		"worker_errors":    metrics.WorkerErrors.Load(),
		"report_renders":   metrics.ReportRenders.Load(),
		"ingest_requests":  metrics.IngestRequests.Load(),
		"history_writes":   metrics.HistoryWrites.Load(),
		"archive_writes":   metrics.ArchiveWrites.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"analyze_requests", "api_requests", "api_errors", "rate_limited",
		"worker_jobs", "worker_errors",
		"report_renders", "ingest_requests",
		"history_writes", "archive_writes",
		"cache_hits", "cache_misses",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
