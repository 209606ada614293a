package ports

import (
	"context"

	"distio/domain/core"
)

// RunRepository stores and retrieves ingestion run records
type RunRepository interface {
	SaveRun(ctx context.Context, record *RunRecord) error
	GetRun(ctx context.Context, id core.RunID) (*RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]*RunRecord, error)
	DeleteRun(ctx context.Context, id core.RunID) error
}

// RunRecord captures one completed ingestion run
type RunRecord struct {
	ID         core.RunID      `json:"id"`
	Source     string          `json:"source"`
	SourceKind string          `json:"source_kind"`
	Precision  string          `json:"precision"`
	Schema     []string        `json:"schema"`
	SchemaHash core.SchemaHash `json:"schema_hash"`
	Rows       int             `json:"rows"`
	Values     []ValueRecord   `json:"values"`
	CreatedAt  core.Timestamp  `json:"created_at"`
}

// ValueRecord is the persisted per-variable outcome of a run
type ValueRecord struct {
	Name           string      `json:"name"`
	Kind           string      `json:"kind"`
	Encoded        string      `json:"encoded,omitempty"`
	Representative float64     `json:"representative"`
	SampleCount    int         `json:"sample_count"`
	Stats          *ValueStats `json:"stats,omitempty"`
}

// ValueStats summarizes a numeric variable's sample population
type ValueStats struct {
	Mean       float64 `json:"mean"`
	Variance   float64 `json:"variance"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Median     float64 `json:"median"`
	Q1         float64 `json:"q1"`
	Q3         float64 `json:"q3"`
	Skewness   float64 `json:"skewness"`
	Kurtosis   float64 `json:"kurtosis"`
	IsNormal   bool    `json:"is_normal"`
	NormalityP float64 `json:"normality_p"`
}

// Source kinds stored on run records
const (
	SourceKindCSV  = "csv"
	SourceKindXLSX = "xlsx"
)

// Sample precisions stored on run records
const (
	PrecisionDouble = "double"
	PrecisionSingle = "single"
)

// Value kinds stored on value records
const (
	ValueKindNumeric = "numeric"
	ValueKindEncoded = "encoded"
)
