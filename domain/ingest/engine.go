// Package ingest implements the row engine that turns CSV-shaped input
// lines into per-column sample sets. The engine is pure: sources feed it
// lines and read the accumulated result, while file handling and
// distribution fitting stay with the callers.
package ingest

import (
	"strings"

	"distio/domain/core"
	"distio/domain/dist"
)

// Engine validates and accumulates input lines against a fixed schema.
// The first line must be the header; every later line is a data row.
// After any error the engine must be discarded: partial input never
// produces a result.
type Engine[F dist.Real] struct {
	schema  dist.Schema
	row     int
	columns []columnState[F]
}

type columnState[F dist.Real] struct {
	samples []F
	encoded string
}

// NewEngine creates an engine for the given schema.
func NewEngine[F dist.Real](schema dist.Schema) *Engine[F] {
	return &Engine[F]{
		schema:  schema,
		row:     -1,
		columns: make([]columnState[F], schema.Len()),
	}
}

// Rows returns the number of data rows consumed so far.
func (e *Engine[F]) Rows() int {
	if e.row < 0 {
		return 0
	}
	return e.row
}

// ReadLine consumes one input line, without its terminator. The first
// call validates the header; later calls accumulate data rows.
func (e *Engine[F]) ReadLine(line string) error {
	if e.row == -1 {
		if err := e.validateHeader(line); err != nil {
			return err
		}
		e.row = 0
		return nil
	}

	if e.row >= dist.MaxInputSamples {
		return core.NewInputError(core.ErrTooManyRows,
			"The input CSV file has too many rows (the maximum is %d).", dist.MaxInputSamples)
	}

	return e.readDataRow(line)
}

// validateHeader checks the header tokens against the schema position by
// position. A token matches when, after leading whitespace, it starts
// with the expected name and carries nothing but whitespace after it.
func (e *Engine[F]) validateHeader(line string) error {
	col := 0
	for _, raw := range tokenize(line) {
		if col == e.schema.Len() {
			return core.NewInputError(core.ErrHeaderMismatch,
				"The input CSV data has more than expected header values")
		}

		expected := e.schema[col].Name
		token := core.TrimLeadingSpace(raw)

		if !strings.HasPrefix(token, expected) {
			return core.NewInputError(core.ErrHeaderMismatch,
				"Column %d of the input CSV should have header '%s' but has header '%s'",
				col, expected, token)
		}
		if !core.AllSpace(token[len(expected):]) {
			return core.NewInputError(core.ErrHeaderMismatch,
				"Column %d of the input CSV should have header '%s' but has header '%s' (trailing characters)",
				col, expected, token)
		}

		col++
	}

	if col != e.schema.Len() {
		return core.NewInputError(core.ErrHeaderMismatch,
			"The input CSV data has less than expected header values")
	}

	return nil
}

func (e *Engine[F]) readDataRow(line string) error {
	col := 0
	for _, raw := range tokenize(line) {
		token := core.TrimLeadingSpace(raw)

		if col == e.schema.Len() {
			return core.NewInputError(core.ErrRowShape,
				"The input CSV data has more than the expected entries at data row %d.", e.row)
		}

		state := &e.columns[col]

		switch e.schema[col].Kind {
		case dist.KindEncoded:
			// Encoded cells are carried through verbatim; only the
			// first data row's cell is kept.
			if e.row == 0 {
				state.encoded = strings.TrimSpace(token)
			}

		case dist.KindNumeric:
			if isSkipToken(token) {
				// An explicit skip marker contributes no sample.
				break
			}
			v, err := dist.ParseReal[F](token)
			if err != nil {
				return core.NewInputError(core.ErrNotANumber,
					"The input CSV data at row %d and column %d is not a valid number (was '%s').",
					e.row, col, token)
			}
			state.samples = append(state.samples, v)
		}

		col++
	}

	if col != e.schema.Len() {
		return core.NewInputError(core.ErrRowShape,
			"The input CSV data has less than expected entries at data row %d.", e.row)
	}

	e.row++
	return nil
}

// Result carries the per-column outcome of a completed ingestion.
type Result[F dist.Real] struct {
	Columns []ColumnData[F]
	Rows    int
}

// ColumnData is the raw material one column contributed: collected
// samples for numeric columns, the first-row cell for encoded columns.
type ColumnData[F dist.Real] struct {
	Column  dist.Column
	Samples []F
	Encoded string
}

// Finalize returns the accumulated per-column data. An input with no
// lines at all finalizes successfully with zero samples per column.
func (e *Engine[F]) Finalize() Result[F] {
	columns := make([]ColumnData[F], e.schema.Len())
	for i := range e.schema {
		columns[i] = ColumnData[F]{
			Column:  e.schema[i],
			Samples: e.columns[i].samples,
			Encoded: e.columns[i].encoded,
		}
	}
	return Result[F]{Columns: columns, Rows: e.Rows()}
}

// FitValues maps a result to final values: encoded columns carry their
// text through, numeric columns are fitted from their samples by fit.
func FitValues[F dist.Real](result Result[F], fit func(samples []F) dist.Value[F]) []dist.Value[F] {
	values := make([]dist.Value[F], len(result.Columns))
	for i, col := range result.Columns {
		if col.Column.Kind == dist.KindEncoded {
			values[i] = dist.NewEncodedValue[F](col.Encoded)
		} else {
			values[i] = fit(col.Samples)
		}
	}
	return values
}

// tokenize splits a line on commas with empty segments dropped, so a
// doubled or trailing comma yields no token rather than an empty one.
// Whitespace-only segments survive.
func tokenize(line string) []string {
	parts := strings.Split(line, ",")
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// isSkipToken reports whether a cell is the explicit skip marker: a
// leading dash followed by nothing but whitespace.
func isSkipToken(s string) bool {
	if len(s) == 0 || s[0] != '-' {
		return false
	}
	return core.AllSpace(s[1:])
}
