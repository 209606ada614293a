// Package testkit generates synthetic distribution datasets for tests and
// for the sample-data command.
package testkit

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Distribution kinds the generator can draw from
const (
	DistNormal      = "normal"
	DistUniform     = "uniform"
	DistExponential = "exponential"
	DistConstant    = "constant"
)

// ColumnSpec describes one generated column
type ColumnSpec struct {
	Name        string  `json:"name"`
	Dist        string  `json:"dist"`
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"std_dev"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Rate        float64 `json:"rate"`
	Encoded     bool    `json:"encoded"`
	MissingRate float64 `json:"missing_rate"`
}

// GeneratorConfig configures the sample data generator
type GeneratorConfig struct {
	Columns []ColumnSpec `json:"columns"`
	Rows    int          `json:"rows"`
	Seed    int64        `json:"seed"`
}

// DefaultGeneratorConfig returns a small mixed dataset: a normal bias
// column, a uniform noise column, and an encoded position column.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Columns: []ColumnSpec{
			{Name: "bias", Dist: DistNormal, Mean: 0.5, StdDev: 0.1},
			{Name: "noise", Dist: DistUniform, Min: -1, Max: 1},
			{Name: "positionUx", Dist: DistNormal, Mean: 12, StdDev: 2, Encoded: true},
		},
		Rows: 100,
		Seed: 42,
	}
}

// Generator produces deterministic synthetic sample data
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator seeded from the config
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// WriteCSV emits the configured dataset as a header line plus data rows.
func (g *Generator) WriteCSV(w io.Writer) error {
	names := make([]string, len(g.config.Columns))
	for i, spec := range g.config.Columns {
		names[i] = spec.Name
	}
	if _, err := fmt.Fprintf(w, "%s\n", strings.Join(names, ", ")); err != nil {
		return err
	}

	for row := 0; row < g.config.Rows; row++ {
		cells := make([]string, len(g.config.Columns))
		for i, spec := range g.config.Columns {
			cells[i] = g.cell(spec)
		}
		if _, err := fmt.Fprintf(w, "%s\n", strings.Join(cells, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteXLSX emits the configured dataset as a Sheet1 workbook.
func (g *Generator) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(g.config.Columns))
	for i, spec := range g.config.Columns {
		header[i] = spec.Name
	}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return err
	}

	for row := 0; row < g.config.Rows; row++ {
		cells := make([]interface{}, len(g.config.Columns))
		for i, spec := range g.config.Columns {
			cells[i] = g.cell(spec)
		}
		start, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Sheet1", start, &cells); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// cell draws one cell for the given column
func (g *Generator) cell(spec ColumnSpec) string {
	if spec.Encoded {
		return g.encodedToken(g.draw(spec))
	}
	if spec.MissingRate > 0 && g.rng.Float64() < spec.MissingRate {
		return "-"
	}
	return fmt.Sprintf("%g", g.draw(spec))
}

// draw samples one value from the column's distribution
func (g *Generator) draw(spec ColumnSpec) float64 {
	switch spec.Dist {
	case DistUniform:
		return spec.Min + g.rng.Float64()*(spec.Max-spec.Min)
	case DistExponential:
		rate := spec.Rate
		if rate <= 0 {
			rate = 1
		}
		return g.rng.ExpFloat64() / rate
	case DistConstant:
		return spec.Mean
	default:
		return spec.Mean + g.rng.NormFloat64()*spec.StdDev
	}
}

// encodedToken packs a representative value into an Ux hex token, the
// format used for pre-encoded distribution columns.
func (g *Generator) encodedToken(value float64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(value))
	return fmt.Sprintf("Ux%X", buf)
}
