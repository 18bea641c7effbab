package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/katalvlaran/orca2d/schedule"
)

// RunStore persists periodic snapshot batches and run summaries for one
// simulation run, identified by a generated UUID.
type RunStore struct {
	db    *sql.DB
	runID uuid.UUID
}

// Open connects to the Postgres instance at dsn and starts a new run.
func Open(dsn string) (*RunStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return &RunStore{db: db, runID: uuid.New()}, nil
}

// RunID identifies this RunStore's simulation run.
func (s *RunStore) RunID() uuid.UUID {
	return s.runID
}

// Migrate creates the tables this store needs if they do not already
// exist. Safe to call on every startup.
func (s *RunStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS orca2d_snapshots (
			run_id      UUID NOT NULL,
			captured_at TIMESTAMPTZ NOT NULL,
			agent_count INT NOT NULL,
			payload     JSONB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS orca2d_runs (
			run_id       UUID PRIMARY KEY,
			started_at   TIMESTAMPTZ NOT NULL,
			finished_at  TIMESTAMPTZ,
			total_steps  INT NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// Record persists one periodic snapshot batch, suitable for direct use
// as a schedule.Sink.
func (s *RunStore) Record(ctx context.Context, batch []schedule.PositionSnapshot) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("store: marshal batch: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO orca2d_snapshots (run_id, captured_at, agent_count, payload) VALUES ($1, $2, $3, $4)`,
		s.runID, time.Now().UTC(), len(batch), payload,
	)
	if err != nil {
		return fmt.Errorf("store: insert snapshot: %w", err)
	}
	return nil
}

// Sink adapts Record to schedule.Sink, swallowing errors into a fixed
// logger callback so a transient DB hiccup never blocks a running
// simulation's periodic snapshotter.
func (s *RunStore) Sink(ctx context.Context, onError func(error)) schedule.Sink {
	return func(batch []schedule.PositionSnapshot) {
		if err := s.Record(ctx, batch); err != nil && onError != nil {
			onError(err)
		}
	}
}

// Summarize finalizes the run's row with its total step count.
func (s *RunStore) Summarize(ctx context.Context, totalSteps int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO orca2d_runs (run_id, started_at, finished_at, total_steps)
		 VALUES ($1, $2, now(), $3)
		 ON CONFLICT (run_id) DO UPDATE SET finished_at = now(), total_steps = $3`,
		s.runID, time.Now().UTC(), totalSteps,
	)
	if err != nil {
		return fmt.Errorf("store: summarize: %w", err)
	}
	return nil
}

// RunSummary reports one finalized run's recorded totals.
type RunSummary struct {
	StartedAt  time.Time
	FinishedAt sql.NullTime
	TotalSteps int
}

// Lookup fetches the summary row for runID, returning ErrRunNotFound if
// no run with that ID was ever recorded.
func (s *RunStore) Lookup(ctx context.Context, runID uuid.UUID) (RunSummary, error) {
	var out RunSummary
	err := s.db.QueryRowContext(ctx,
		`SELECT started_at, finished_at, total_steps FROM orca2d_runs WHERE run_id = $1`,
		runID,
	).Scan(&out.StartedAt, &out.FinishedAt, &out.TotalSteps)
	if errors.Is(err, sql.ErrNoRows) {
		return RunSummary{}, ErrRunNotFound
	}
	if err != nil {
		return RunSummary{}, fmt.Errorf("store: lookup %s: %w", runID, err)
	}
	return out, nil
}

// Close closes the underlying database connection.
func (s *RunStore) Close() error {
	return s.db.Close()
}
