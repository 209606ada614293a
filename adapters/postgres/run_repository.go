package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"distio/domain/core"
	"distio/ports"

	"github.com/jmoiron/sqlx"
)

// runRepository implements ports.RunRepository for PostgreSQL
type runRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &runRepository{db: db}
}

// SaveRun persists a run and its value rows in one transaction
func (r *runRepository) SaveRun(ctx context.Context, record *ports.RunRecord) error {
	schemaJSON, err := json.Marshal(record.Schema)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, source_kind, precision, schema, schema_hash, row_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, record.ID.String(), record.Source, record.SourceKind, record.Precision,
		schemaJSON, record.SchemaHash.String(), record.Rows, record.CreatedAt.Time())

	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for i, value := range record.Values {
		var statsJSON []byte
		if value.Stats != nil {
			statsJSON, err = json.Marshal(value.Stats)
			if err != nil {
				return fmt.Errorf("failed to marshal value stats: %w", err)
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_values (run_id, position, name, kind, encoded, representative, sample_count, stats)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, record.ID.String(), i, value.Name, value.Kind, value.Encoded,
			value.Representative, value.SampleCount, statsJSON)

		if err != nil {
			return fmt.Errorf("failed to insert run value: %w", err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run with its value rows
func (r *runRepository) GetRun(ctx context.Context, id core.RunID) (*ports.RunRecord, error) {
	var record ports.RunRecord
	var runID, schemaHash string
	var schemaJSON []byte
	var createdAt time.Time

	err := r.db.QueryRowContext(ctx, `
		SELECT id, source, source_kind, precision, schema, schema_hash, row_count, created_at
		FROM runs
		WHERE id = $1
	`, id.String()).Scan(
		&runID, &record.Source, &record.SourceKind, &record.Precision,
		&schemaJSON, &schemaHash, &record.Rows, &createdAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("run", id.String())
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	record.ID = core.RunID(runID)
	record.SchemaHash = core.SchemaHash(schemaHash)
	record.CreatedAt = core.NewTimestamp(createdAt)

	if len(schemaJSON) > 0 {
		if err := json.Unmarshal(schemaJSON, &record.Schema); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
		}
	}

	values, err := r.loadValues(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	record.Values = values

	return &record, nil
}

// ListRuns retrieves runs newest first, with their value rows
func (r *runRepository) ListRuns(ctx context.Context, limit int) ([]*ports.RunRecord, error) {
	query := `
		SELECT id, source, source_kind, precision, schema, schema_hash, row_count, created_at
		FROM runs
		ORDER BY created_at DESC
	`

	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+" LIMIT $1", limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	records, err := r.scanRuns(rows)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		values, err := r.loadValues(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		record.Values = values
	}

	return records, nil
}

// DeleteRun removes a run; its value rows go with it via ON DELETE CASCADE
func (r *runRepository) DeleteRun(ctx context.Context, id core.RunID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return core.NewNotFoundError("run", id.String())
	}

	return nil
}

// loadValues fetches the value rows of a run in schema order
func (r *runRepository) loadValues(ctx context.Context, id core.RunID) ([]ports.ValueRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, kind, COALESCE(encoded, '') as encoded, representative, sample_count, stats
		FROM run_values
		WHERE run_id = $1
		ORDER BY position
	`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query run values: %w", err)
	}
	defer rows.Close()

	var values []ports.ValueRecord
	for rows.Next() {
		var value ports.ValueRecord
		var statsJSON []byte

		err := rows.Scan(&value.Name, &value.Kind, &value.Encoded,
			&value.Representative, &value.SampleCount, &statsJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run value: %w", err)
		}

		if len(statsJSON) > 0 {
			value.Stats = &ports.ValueStats{}
			if err := json.Unmarshal(statsJSON, value.Stats); err != nil {
				return nil, fmt.Errorf("failed to unmarshal value stats: %w", err)
			}
		}

		values = append(values, value)
	}

	return values, rows.Err()
}

// scanRuns is a helper to scan multiple run rows
func (r *runRepository) scanRuns(rows *sql.Rows) ([]*ports.RunRecord, error) {
	var records []*ports.RunRecord
	for rows.Next() {
		var record ports.RunRecord
		var runID, schemaHash string
		var schemaJSON []byte
		var createdAt time.Time

		err := rows.Scan(&runID, &record.Source, &record.SourceKind, &record.Precision,
			&schemaJSON, &schemaHash, &record.Rows, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		record.ID = core.RunID(runID)
		record.SchemaHash = core.SchemaHash(schemaHash)
		record.CreatedAt = core.NewTimestamp(createdAt)

		if len(schemaJSON) > 0 {
			if err := json.Unmarshal(schemaJSON, &record.Schema); err != nil {
				return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
			}
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}
