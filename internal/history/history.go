// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists batch run reports in a local SQLite database.
// Recording is observational only; a history failure never fails a batch.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/batchconv/pkg/types"
)

const (
	dbFile         = "batchconv.db"
	defaultMaxRuns = 100
)

// Store manages the run history SQLite database.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// Run is one recorded batch run with its per-file outcomes.
type Run struct {
	ID          int64               `json:"id" yaml:"id"`
	StartedAt   time.Time           `json:"started_at" yaml:"started_at"`
	Dir         string              `json:"dir" yaml:"dir"`
	Ext         string              `json:"ext" yaml:"ext"`
	TargetExt   string              `json:"target_ext" yaml:"target_ext"`
	Converted   int                 `json:"converted" yaml:"converted"`
	Unsupported int                 `json:"unsupported" yaml:"unsupported"`
	Failed      int                 `json:"failed" yaml:"failed"`
	Outcomes    []types.FileOutcome `json:"outcomes" yaml:"outcomes"`
}

// NewStore opens or creates the history database under cfg.Dir, creating
// the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = defaultMaxRuns
	}

	s := &Store{db: db, maxRuns: maxRuns}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			dir TEXT NOT NULL,
			ext TEXT NOT NULL,
			target_ext TEXT NOT NULL,
			converted INTEGER NOT NULL,
			unsupported INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outcomes (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			path TEXT NOT NULL,
			output TEXT,
			status TEXT NOT NULL,
			reason TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_run ON outcomes(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun stores one batch report with its per-file outcomes and prunes
// runs beyond the retention bound.
func (s *Store) RecordRun(ctx context.Context, startedAt time.Time, scan types.ScanConfig, report types.BatchReport) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, dir, ext, target_ext, converted, unsupported, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		startedAt.UTC().Format(time.RFC3339), scan.Dir, scan.Ext, scan.TargetExt,
		report.Converted(), report.Unsupported(), report.Failed())
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, o := range report.Outcomes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO outcomes (run_id, path, output, status, reason) VALUES (?, ?, ?, ?, ?)`,
			runID, o.Path, o.Output, string(o.Status), o.Reason)
		if err != nil {
			return 0, fmt.Errorf("inserting outcome for %s: %w", o.Path, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (SELECT id FROM runs ORDER BY id DESC LIMIT ?)`,
		s.maxRuns)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// RecentRuns returns up to limit runs, newest first, with their outcomes.
// A non-positive limit uses the store's retention bound.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxRuns
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, dir, ext, target_ext, converted, unsupported, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.Dir, &r.Ext, &r.TargetExt,
			&r.Converted, &r.Unsupported, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if ts, perr := time.Parse(time.RFC3339, started); perr == nil {
			r.StartedAt = ts
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		outcomes, err := s.runOutcomes(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Outcomes = outcomes
	}
	return runs, nil
}

func (s *Store) runOutcomes(ctx context.Context, runID int64) ([]types.FileOutcome, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, output, status, reason FROM outcomes WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes for run %d: %w", runID, err)
	}
	defer rows.Close()

	var outcomes []types.FileOutcome
	for rows.Next() {
		var o types.FileOutcome
		var status string
		if err := rows.Scan(&o.Path, &o.Output, &status, &o.Reason); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}
		o.Status = types.ConversionStatus(status)
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}
