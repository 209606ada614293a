// Package excel ingests distribution variables from xlsx workbooks. Sheet
// rows are serialized to comma-separated lines and fed through the same
// ingestion engine as the CSV surface, so validation and diagnostics match
// across both formats.
package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"distio/domain/core"
	"distio/domain/dist"
	"distio/domain/ingest"
	"distio/internal"
	"distio/ports"
)

// SheetName is the worksheet the reader ingests.
const SheetName = "Sheet1"

// Reader ingests distribution variables from an Excel workbook.
type Reader[F dist.Real] struct {
	path   string
	schema dist.Schema
	fitter ports.Fitter[F]
	rows   int
}

// NewReader creates an xlsx source for one workbook.
func NewReader[F dist.Real](path string, schema dist.Schema, fitter ports.Fitter[F]) ports.Source[F] {
	return &Reader[F]{path: path, schema: schema, fitter: fitter}
}

// Read ingests Sheet1 and fits one value per schema column. An empty
// schema succeeds immediately without touching the workbook.
func (r *Reader[F]) Read() ([]dist.Value[F], error) {
	if r.schema.IsEmpty() {
		return nil, nil
	}

	start := time.Now()
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, core.NewInputError(core.ErrCannotOpen, "Cannot open the file %s.", r.path)
	}
	defer f.Close()
	internal.DefaultLogger.Debug("[ExcelReader] Workbook opened in %.2fms",
		float64(time.Since(start).Nanoseconds())/1e6)

	readStart := time.Now()
	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SheetName, err)
	}
	internal.DefaultLogger.Debug("[ExcelReader] %s read in %.2fms (%d rows)",
		SheetName, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	engine := ingest.NewEngine[F](r.schema)
	for _, cells := range rows {
		if err := engine.ReadLine(strings.Join(cells, ",")); err != nil {
			return nil, err
		}
	}

	result := engine.Finalize()
	r.rows = result.Rows
	internal.DefaultLogger.Debug("[ExcelReader] Ingested %d rows from %s", result.Rows, r.path)

	return ingest.FitValues(result, r.fitter.DistFromSamples), nil
}

// Rows reports the data rows consumed by the last successful Read.
func (r *Reader[F]) Rows() int {
	return r.rows
}
