// Package dataout writes and reads the repeated-execution benchmark
// file: the elapsed microseconds on the first line, then one line per
// iteration at twenty decimals. A single-output run writes one sample
// per line; a multi-output run writes a comma-separated row.
package dataout

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"distio/domain/core"
	"distio/domain/dist"
)

// FileName is the fixed benchmark output path.
const FileName = "data.out"

// Writer persists benchmark samples.
type Writer[F dist.Real] struct {
	path string
}

// NewWriter creates a writer for the fixed benchmark path.
func NewWriter[F dist.Real]() *Writer[F] {
	return &Writer[F]{path: FileName}
}

// NewWriterAt creates a writer for an explicit path.
func NewWriterAt[F dist.Real](path string) *Writer[F] {
	return &Writer[F]{path: path}
}

// Save writes the elapsed time and every sample, replacing any previous
// file.
func (w *Writer[F]) Save(samples []F, elapsed core.Elapsed) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to open benchmark output %s: %w", w.path, err)
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	fmt.Fprintf(out, "%d\n", elapsed.Microseconds())
	for _, s := range samples {
		fmt.Fprintf(out, "%.20f\n", float64(s))
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write benchmark output %s: %w", w.path, err)
	}
	return nil
}

// SaveMatrix writes one comma-separated row per iteration, one column
// per output variable, replacing any previous file.
func (w *Writer[F]) SaveMatrix(rows [][]F, elapsed core.Elapsed) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to open benchmark output %s: %w", w.path, err)
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	fmt.Fprintf(out, "%d\n", elapsed.Microseconds())
	for _, row := range rows {
		for j, s := range row {
			if j > 0 {
				fmt.Fprint(out, ", ")
			}
			fmt.Fprintf(out, "%.20f", float64(s))
		}
		fmt.Fprintln(out)
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write benchmark output %s: %w", w.path, err)
	}
	return nil
}

// Reader loads a benchmark file back.
type Reader struct {
	path string
}

// NewReader creates a reader for the fixed benchmark path.
func NewReader() *Reader {
	return &Reader{path: FileName}
}

// NewReaderAt creates a reader for an explicit path.
func NewReaderAt(path string) *Reader {
	return &Reader{path: path}
}

// Load returns the recorded elapsed time and the samples of a
// single-output file.
func (r *Reader) Load() (core.Elapsed, []float64, error) {
	elapsed, rows, err := r.LoadMatrix()
	if err != nil {
		return 0, nil, err
	}

	samples := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != 1 {
			return 0, nil, fmt.Errorf("benchmark output %s has %d output columns, expected 1", r.path, len(row))
		}
		samples[i] = row[0]
	}
	return elapsed, samples, nil
}

// LoadMatrix returns the recorded elapsed time and one row of samples
// per iteration.
func (r *Reader) LoadMatrix() (core.Elapsed, [][]float64, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to open benchmark output %s: %w", r.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, nil, fmt.Errorf("failed to read benchmark output %s: %w", r.path, err)
		}
		return 0, nil, fmt.Errorf("benchmark output %s is empty", r.path)
	}

	us, err := strconv.ParseUint(scanner.Text(), 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("benchmark output %s has a bad elapsed line: %w", r.path, err)
	}

	var rows [][]float64
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		row := make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return 0, nil, fmt.Errorf("benchmark output %s has a bad sample line: %w", r.path, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("failed to read benchmark output %s: %w", r.path, err)
	}

	elapsed := core.NewElapsed(time.Duration(us) * time.Microsecond)
	return elapsed, rows, nil
}
