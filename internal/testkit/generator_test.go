package testkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"distio/domain/dist"
)

func TestGeneratorDeterministic(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.Rows = 10

	var first, second strings.Builder
	assert.NoError(t, NewGenerator(config).WriteCSV(&first))
	assert.NoError(t, NewGenerator(config).WriteCSV(&second))
	assert.Equal(t, first.String(), second.String())
}

func TestGeneratorShape(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.Rows = 5

	var out strings.Builder
	assert.NoError(t, NewGenerator(config).WriteCSV(&out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, "bias, noise, positionUx", lines[0])

	for _, line := range lines[1:] {
		cells := strings.Split(line, ", ")
		assert.Len(t, cells, 3)
		assert.True(t, strings.HasPrefix(cells[2], "Ux"))
		assert.Len(t, cells[2], 2+16)
	}
}

func TestGeneratorMissingRate(t *testing.T) {
	config := GeneratorConfig{
		Columns: []ColumnSpec{
			{Name: "gaps", Dist: DistConstant, Mean: 1, MissingRate: 1.0},
		},
		Rows: 3,
		Seed: 7,
	}

	var out strings.Builder
	assert.NoError(t, NewGenerator(config).WriteCSV(&out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	for _, line := range lines[1:] {
		assert.Equal(t, "-", line)
	}
}

func TestGeneratorUniformBounds(t *testing.T) {
	config := GeneratorConfig{
		Columns: []ColumnSpec{
			{Name: "u", Dist: DistUniform, Min: 2, Max: 3},
		},
		Rows: 50,
		Seed: 1,
	}

	g := NewGenerator(config)
	for i := 0; i < 50; i++ {
		v := g.draw(config.Columns[0])
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 3.0)
	}
}

func TestSchemaClassifiesEncodedColumns(t *testing.T) {
	schema := Schema(DefaultGeneratorConfig())

	assert.Equal(t, 3, schema.Len())
	assert.Equal(t, "positionUx", schema[2].Name)
	assert.Equal(t, dist.KindEncoded, schema[2].Kind)
	assert.Equal(t, dist.KindNumeric, schema[0].Kind)
}

func TestWriteTempCSV(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.Rows = 4

	path, err := WriteTempCSV(t.TempDir(), config)
	assert.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriteTempXLSX(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.Rows = 4

	path, err := WriteTempXLSX(t.TempDir(), config)
	assert.NoError(t, err)
	assert.FileExists(t, path)
}
