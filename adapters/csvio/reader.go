// Package csvio reads and writes the CSV surfaces: distribution inputs
// on the way in, variable values on the way out.
package csvio

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"distio/domain/core"
	"distio/domain/dist"
	"distio/domain/ingest"
	"distio/internal"
	"distio/ports"
)

// StdinPath is the input path that would select pipeline mode.
const StdinPath = "stdin"

// Reader ingests distribution variables from a CSV file.
type Reader[F dist.Real] struct {
	path   string
	schema dist.Schema
	fitter ports.Fitter[F]
	rows   int
}

// NewReader creates a CSV source for one input file.
func NewReader[F dist.Real](path string, schema dist.Schema, fitter ports.Fitter[F]) ports.Source[F] {
	return &Reader[F]{path: path, schema: schema, fitter: fitter}
}

// Read ingests the whole file and fits one value per schema column. An
// empty schema succeeds immediately without touching the file.
func (r *Reader[F]) Read() ([]dist.Value[F], error) {
	if r.schema.IsEmpty() {
		return nil, nil
	}

	if r.path == StdinPath {
		return nil, core.NewInputError(core.ErrPipelineMode,
			"Pipeline mode not implemented. Please use the '-i' command-line argument option.")
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, core.NewInputError(core.ErrCannotOpen, "Cannot open the file %s.", r.path)
	}
	defer f.Close()

	engine := ingest.NewEngine[F](r.schema)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), dist.MaxLineLength)

	for scanner.Scan() {
		if err := engine.ReadLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, core.NewInputError(core.ErrLineTooLong,
				"The input CSV file has a line longer than the maximum of %d bytes.", dist.MaxLineLength)
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	result := engine.Finalize()
	r.rows = result.Rows
	internal.DefaultLogger.Debug("[CSVReader] Ingested %d rows from %s", result.Rows, r.path)

	return ingest.FitValues(result, r.fitter.DistFromSamples), nil
}

// Rows reports the data rows consumed by the last successful Read.
func (r *Reader[F]) Rows() int {
	return r.rows
}
