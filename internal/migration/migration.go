package migration

import (
	"context"
	"fmt"

	"distio/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createRunsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create runs table")
	}

	if err := r.createRunValuesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create run_values table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createRunsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id UUID PRIMARY KEY,
			source TEXT NOT NULL,
			source_kind VARCHAR(10) NOT NULL,
			precision VARCHAR(10) NOT NULL DEFAULT 'double',
			schema JSONB NOT NULL DEFAULT '[]'::jsonb,
			schema_hash VARCHAR(64) NOT NULL,
			row_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createRunValuesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS run_values (
			id BIGSERIAL PRIMARY KEY,
			run_id UUID NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name VARCHAR(255) NOT NULL,
			kind VARCHAR(20) NOT NULL,
			encoded TEXT,
			representative DOUBLE PRECISION NOT NULL DEFAULT 0,
			sample_count INTEGER NOT NULL DEFAULT 0,
			stats JSONB,
			UNIQUE (run_id, position)
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_runs_source_kind ON runs(source_kind)",
		"CREATE INDEX IF NOT EXISTS idx_runs_schema_hash ON runs(schema_hash)",

		"CREATE INDEX IF NOT EXISTS idx_run_values_run_id ON run_values(run_id)",
		"CREATE INDEX IF NOT EXISTS idx_run_values_name ON run_values(name)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			fmt.Printf("Warning: failed to create index: %v\n", err)
		}
	}

	return nil
}
