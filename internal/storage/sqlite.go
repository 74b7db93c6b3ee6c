// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single finished session.
type RunEntry struct {
	ID        int64
	Levels    int // Levels won before the death budget ran out
	Deaths    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			levels INTEGER NOT NULL,
			deaths INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(levels DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished session. Returns the ID of the inserted record.
func (s *Store) SaveRun(levels, deaths int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (levels, deaths) VALUES (?, ?)",
		levels, deaths,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs, ordered by levels won descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, levels, deaths, created_at
		 FROM runs
		 ORDER BY levels DESC, deaths ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Levels, &e.Deaths, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestRun returns the most levels won in any recorded session.
// Returns 0 if no runs exist.
func (s *Store) BestRun() (int, error) {
	var levels sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(levels) FROM runs").Scan(&levels)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !levels.Valid {
		return 0, nil
	}

	return int(levels.Int64), nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over all recorded sessions.
type RunStats struct {
	RunsCount  int
	BestLevels int
	AvgLevels  float64
	LastPlayed time.Time
}

// Stats retrieves aggregated run statistics.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(levels), 0), COALESCE(AVG(levels), 0) FROM runs`,
	).Scan(&stats.RunsCount, &stats.BestLevels, &stats.AvgLevels)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
