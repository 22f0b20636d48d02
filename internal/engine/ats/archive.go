package ats

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Archive mirrors analysis results into Postgres for the surrounding SaaS,
// keyed by the caller's session id. One row per session, upserted.
type Archive struct {
	pool *pgxpool.Pool
}

var archive *Archive

// SetArchive sets the package-level archive instance.
func SetArchive(a *Archive) { archive = a }

// GetArchive returns the package-level archive instance (may be nil).
func GetArchive() *Archive { return archive }

// ConnectArchive creates a pgx pool and runs schema migrations.
func ConnectArchive(ctx context.Context, databaseURL string) (*Archive, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	a := &Archive{pool: pool}
	if err := a.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("analysis archive connected", slog.String("addr", config.ConnConfig.Host))
	return a, nil
}

// Close releases the connection pool.
func (a *Archive) Close() { a.pool.Close() }

func (a *Archive) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		data, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := a.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("apply %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Upsert writes the analysis result for a session, replacing any prior row.
func (a *Archive) Upsert(ctx context.Context, sessionID uuid.UUID, result AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("archive: marshal result: %w", err)
	}
	_, err = a.pool.Exec(ctx,
		`INSERT INTO analyses_results (session_id, score, match_percentage, result)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (session_id) DO UPDATE SET
		   score = EXCLUDED.score,
		   match_percentage = EXCLUDED.match_percentage,
		   result = EXCLUDED.result,
		   updated_at = CURRENT_TIMESTAMP`,
		sessionID, result.Score, result.MatchPercentage, data)
	if err != nil {
		return fmt.Errorf("archive: upsert: %w", err)
	}
	return nil
}

// Get reads the stored analysis result for a session.
func (a *Archive) Get(ctx context.Context, sessionID uuid.UUID) (AnalysisResult, error) {
	var data []byte
	err := a.pool.QueryRow(ctx,
		`SELECT result FROM analyses_results WHERE session_id = $1`, sessionID).Scan(&data)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("archive: get %s: %w", sessionID, err)
	}
	var result AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return AnalysisResult{}, fmt.Errorf("archive: decode result: %w", err)
	}
	return result, nil
}
