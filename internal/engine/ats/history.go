package ats

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// StoredAnalysis is a persisted analysis with identity. The engine itself is
// stateless; persistence is a caller decision, and this store is that caller.
type StoredAnalysis struct {
	ID              string         `json:"id"`
	Score           int            `json:"score"`
	MatchPercentage int            `json:"match_percentage"`
	Result          AnalysisResult `json:"result"`
	CreatedAt       string         `json:"created_at"`
}

// History is a local SQLite store of past analysis results.
type History struct {
	db *sql.DB
}

// ErrNotFound is returned when a stored analysis id does not exist.
var ErrNotFound = errors.New("analysis not found")

var history *History

// SetHistory sets the package-level history store.
func SetHistory(h *History) { history = h }

// GetHistory returns the package-level history store (may be nil).
func GetHistory() *History { return history }

// OpenHistory opens (or creates) the SQLite history database at path,
// creating parent directories as needed.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("history: mkdir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		id               TEXT PRIMARY KEY,
		score            INTEGER NOT NULL,
		match_percentage INTEGER NOT NULL,
		result           TEXT NOT NULL,
		created_at       TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: init schema: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the underlying database.
func (h *History) Close() error { return h.db.Close() }

// Save persists a fresh analysis result and returns it with its new id.
func (h *History) Save(ctx context.Context, result AnalysisResult) (StoredAnalysis, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return StoredAnalysis{}, fmt.Errorf("history: marshal result: %w", err)
	}
	stored := StoredAnalysis{
		ID:              uuid.NewString(),
		Score:           result.Score,
		MatchPercentage: result.MatchPercentage,
		Result:          result,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	_, err = h.db.ExecContext(ctx,
		`INSERT INTO analyses (id, score, match_percentage, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		stored.ID, stored.Score, stored.MatchPercentage, string(data), stored.CreatedAt)
	if err != nil {
		return StoredAnalysis{}, fmt.Errorf("history: insert: %w", err)
	}
	return stored, nil
}

// Get returns a stored analysis by id.
func (h *History) Get(ctx context.Context, id string) (StoredAnalysis, error) {
	row := h.db.QueryRowContext(ctx,
		`SELECT id, score, match_percentage, result, created_at FROM analyses WHERE id = ?`, id)
	return scanStored(row)
}

// List returns the most recent analyses, newest first.
func (h *History) List(ctx context.Context, limit int) ([]StoredAnalysis, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, score, match_percentage, result, created_at FROM analyses
		 ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var out []StoredAnalysis
	for rows.Next() {
		stored, err := scanStored(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, rows.Err()
}

// Delete removes a stored analysis. Deleting a missing id returns ErrNotFound.
func (h *History) Delete(ctx context.Context, id string) error {
	res, err := h.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("history: delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStored(row rowScanner) (StoredAnalysis, error) {
	var stored StoredAnalysis
	var raw string
	err := row.Scan(&stored.ID, &stored.Score, &stored.MatchPercentage, &raw, &stored.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredAnalysis{}, ErrNotFound
	}
	if err != nil {
		return StoredAnalysis{}, fmt.Errorf("history: scan: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &stored.Result); err != nil {
		return StoredAnalysis{}, fmt.Errorf("history: decode result: %w", err)
	}
	return stored, nil
}
