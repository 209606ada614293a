package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"distio/domain/core"
	"distio/domain/dist"
)

func TestEmitFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Emit(&buf, []string{"a", "b"}, []float64{1.5, -2.25})

	assert.NoError(t, err)
	assert.Equal(t, "a, b\n1.500000e+00, -2.250000e+00\n", buf.String())
}

func TestEmitSingleColumn(t *testing.T) {
	var buf bytes.Buffer
	err := Emit(&buf, []string{"only"}, []float64{0})

	assert.NoError(t, err)
	assert.Equal(t, "only\n0.000000e+00\n", buf.String())
}

func TestEmitNoColumns(t *testing.T) {
	var buf bytes.Buffer
	err := Emit(&buf, nil, []float64{})

	assert.NoError(t, err)
	assert.Equal(t, "\n\n", buf.String())
}

func TestEmitSinglePrecision(t *testing.T) {
	var buf bytes.Buffer
	err := Emit(&buf, []string{"v"}, []float32{1.5})

	assert.NoError(t, err)
	assert.Equal(t, "v\n1.500000e+00\n", buf.String())
}

func TestWriterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	writer := NewWriter[float64](path)

	err := writer.Write([]string{"x", "y"}, []float64{3, 4.5})
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "x, y\n3.000000e+00, 4.500000e+00\n", string(data))
}

func TestWriterUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	writer := NewWriter[float64](path)

	err := writer.Write([]string{"x"}, []float64{1})
	assert.Error(t, err)
	assert.Equal(t, "Cannot open the file "+path+".", err.Error())
	assert.ErrorIs(t, err, core.ErrCannotOpen)
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	names := []string{"x", "y", "z"}
	written := []float64{1.5, -2.25, 0.125}

	assert.NoError(t, NewWriter[float64](path).Write(names, written))

	values, err := NewReader(path, dist.NewSchema(names...), meanFitter{}).Read()
	assert.NoError(t, err)
	assert.Len(t, values, 3)
	for i, v := range values {
		assert.Equal(t, written[i], v.Representative())
		assert.Equal(t, 1, v.SampleCount())
	}
}
