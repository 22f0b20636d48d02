package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	// Input handling. Caps protect downstream cost, not correctness:
	// the analysis core accepts any string.
	MaxInputChars int

	// Persistence.
	HistoryPath string // SQLite history db; empty disables local history
	DatabaseURL string // Postgres archive; empty disables

	// HTTP API.
	APIPort   string // empty disables the REST boundary
	RateRPS   float64
	RateBurst int

	// Async worker.
	AMQPURL       string // empty disables the worker pool
	AnalysisQueue string
	ResultQueue   string
	WorkerCount   int

	// Cache.
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
