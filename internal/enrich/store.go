// Package enrich runs the model-backed analysis pass over the corpus and
// persists one analysis row per study in SQLite. Rows double as the
// checkpoint: a study with a row is never re-analyzed, so an interrupted run
// resumes where it stopped.
package enrich

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/orbitalbio/litscan/internal/models"
)

// Store persists analyses in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the analysis database at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		study_id TEXT PRIMARY KEY,
		title TEXT,
		organisms TEXT,
		summary TEXT,
		relations TEXT,
		analysis_error TEXT,
		model TEXT,
		run_id TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_run_id ON analyses(run_id);
	`
	_, err := db.Exec(schema)
	return err
}

// Put inserts or replaces the analysis for a study.
func (s *Store) Put(ctx context.Context, a *models.Analysis) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO analyses
		 (study_id, title, organisms, summary, relations, analysis_error, model, run_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.StudyID, a.Title, a.Organisms, a.Summary, a.Relations, a.ParseError, a.Model, a.RunID, a.CreatedAt,
	)
	return err
}

// Get returns the analysis for a study.
func (s *Store) Get(ctx context.Context, studyID string) (*models.Analysis, error) {
	var a models.Analysis
	err := s.db.QueryRowContext(ctx,
		`SELECT study_id, title, organisms, summary, relations, analysis_error, model, run_id, created_at
		 FROM analyses WHERE study_id = ?`, studyID,
	).Scan(&a.StudyID, &a.Title, &a.Organisms, &a.Summary, &a.Relations, &a.ParseError, &a.Model, &a.RunID, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis not found: %s", studyID)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Has reports whether a study already has an analysis row.
func (s *Store) Has(ctx context.Context, studyID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM analyses WHERE study_id = ?`, studyID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all analyses ordered by study ID.
func (s *Store) List(ctx context.Context) ([]*models.Analysis, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT study_id, title, organisms, summary, relations, analysis_error, model, run_id, created_at
		 FROM analyses ORDER BY study_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Analysis
	for rows.Next() {
		var a models.Analysis
		if err := rows.Scan(&a.StudyID, &a.Title, &a.Organisms, &a.Summary, &a.Relations, &a.ParseError, &a.Model, &a.RunID, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Count returns the number of analyzed studies.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count)
	return count, err
}

// Clear drops all analysis rows, resetting the checkpoint.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM analyses`)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
