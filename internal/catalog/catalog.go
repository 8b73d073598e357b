// Package catalog records pipeline results in a sqlite database so past
// runs can be inspected without digging through log files.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"sampleproc/internal"
	"sampleproc/internal/pipeline"
)

// Catalog is a sqlite-backed store of per-file pipeline results.
type Catalog struct {
	db *sql.DB
}

// Open opens (or creates) the catalog database at the given path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create catalog tables: %w", err)
	}

	return &Catalog{db: db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id text PRIMARY KEY,
			pipeline text NOT NULL,
			started_at text NOT NULL,
			total integer NOT NULL,
			ok integer NOT NULL,
			failed integer NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id integer PRIMARY KEY AUTOINCREMENT,
			run_id text NOT NULL,
			source text NOT NULL,
			status text NOT NULL,
			info text NOT NULL,
			duration_ms integer NOT NULL,
			created_at text NOT NULL
		)`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun stores the results of one pipeline run and returns the run ID.
func (c *Catalog) RecordRun(pipelineName string, results []pipeline.Result) (string, error) {
	runID := internal.GenerateRunID(pipelineName)
	now := time.Now().UTC().Format(time.RFC3339)
	summary := pipeline.Summarize(results)

	tx, err := c.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, pipeline, started_at, total, ok, failed) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, pipelineName, now, summary.Total, summary.OK, summary.Failed,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO results (run_id, source, status, info, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.Exec(runID, r.Source, r.Status, r.Info, r.Duration.Milliseconds(), now); err != nil {
			return "", fmt.Errorf("failed to insert result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit catalog run: %w", err)
	}
	return runID, nil
}

// RunCount returns the number of recorded runs for a pipeline.
func (c *Catalog) RunCount(pipelineName string) (int, error) {
	var n int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE pipeline = ?`, pipelineName).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// ResultCount returns the number of stored results for a run.
func (c *Catalog) ResultCount(runID string) (int, error) {
	var n int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM results WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}
