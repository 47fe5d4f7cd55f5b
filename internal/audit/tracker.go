package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/investor-registry/internal/debug"
	"github.com/investor-registry/internal/merge"
)

// Tracker persists merge runs to Postgres so every resolved investor stays
// traceable back to the standardized rows that produced it.
type Tracker struct {
	db *sql.DB
}

// NewTracker creates an audit tracker.
func NewTracker(db *sql.DB) *Tracker {
	return &Tracker{db: db}
}

// RunSummary describes one completed merge run.
type RunSummary struct {
	RunID       uuid.UUID
	StartedAt   time.Time
	RowsIn      int
	Clusters    int
	Singletons  int
	ConfigNotes string
}

// RecordRun saves a merge run and its cluster memberships in one
// transaction. Tables are created on first use.
func (t *Tracker) RecordRun(localDebug bool, summary RunSummary, result *merge.Result) error {
	defer debug.Span(localDebug, "audit record run")()

	tx, err := t.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := createTables(tx); err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO merge_run (run_id, started_at, rows_in, clusters, singletons, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, summary.RunID, summary.StartedAt, summary.RowsIn, summary.Clusters, summary.Singletons, summary.ConfigNotes)
	if err != nil {
		return fmt.Errorf("failed to insert merge run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO merge_cluster (run_id, investor_id, source_rows, member_count)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare cluster insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range result.Records {
		sourceRows, err := json.Marshal(rec.SourceRows)
		if err != nil {
			return fmt.Errorf("failed to serialize source rows: %w", err)
		}
		if _, err := stmt.Exec(summary.RunID, rec.InvestorID, sourceRows, len(rec.SourceRows)); err != nil {
			return fmt.Errorf("failed to insert cluster for investor %d: %w", rec.InvestorID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit audit transaction: %w", err)
	}

	debug.Logf(localDebug, "recorded run %s: %d rows -> %d investors", summary.RunID, summary.RowsIn, summary.Clusters)
	return nil
}

func createTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS merge_run (
			run_id      uuid PRIMARY KEY,
			started_at  timestamptz NOT NULL,
			rows_in     int NOT NULL,
			clusters    int NOT NULL,
			singletons  int NOT NULL,
			notes       text,
			created_at  timestamptz DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create merge_run table: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS merge_cluster (
			cluster_id   bigserial PRIMARY KEY,
			run_id       uuid REFERENCES merge_run(run_id),
			investor_id  int NOT NULL,
			source_rows  jsonb NOT NULL,
			member_count int NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create merge_cluster table: %w", err)
	}
	return nil
}

// RunHistory lists recorded merge runs, newest first.
func (t *Tracker) RunHistory(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := t.db.Query(`
		SELECT run_id, started_at, rows_in, clusters, singletons, COALESCE(notes, '')
		FROM merge_run
		ORDER BY started_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var history []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.RunID, &s.StartedAt, &s.RowsIn, &s.Clusters, &s.Singletons, &s.ConfigNotes); err != nil {
			return nil, fmt.Errorf("failed to scan run history: %w", err)
		}
		history = append(history, s)
	}
	return history, rows.Err()
}
