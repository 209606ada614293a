package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distio/adapters/dataout"
	"distio/domain/core"
)

func TestRunDemoWritesCSVOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := runDemo(context.Background(), []string{"-o", path}, io.Discard)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sum\n3.000000e+00\n", string(content))
}

func TestRunDemoSelectsProductOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := runDemo(context.Background(), []string{"-o", path, "-S", "1"}, io.Discard)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "product\n2.000000e+00\n", string(content))
}

func TestRunDemoReadsInputFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.csv")
	outputPath := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte("x, y\n4, 8\n"), 0o644))

	err := runDemo(context.Background(), []string{"-i", inputPath, "-o", outputPath}, io.Discard)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "sum\n1.200000e+01\n", string(content))
}

func TestRunDemoRejectsStdinInput(t *testing.T) {
	err := runDemo(context.Background(), []string{"-i", "stdin"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pipeline mode not implemented")
}

func TestRunDemoRejectsOutOfRangeSelect(t *testing.T) {
	err := runDemo(context.Background(), []string{"-S", "2"}, io.Discard)
	require.Error(t, err)
	assert.Equal(t, "The selected output must be less than 2.", err.Error())
}

func TestRunDemoRejectsBadSeed(t *testing.T) {
	err := runDemo(context.Background(), []string{"--seed", "abc"}, io.Discard)
	require.Error(t, err)
	assert.Equal(t, "The random seed must be an integer.", err.Error())
}

func TestRunDemoHelp(t *testing.T) {
	require.NoError(t, runDemo(context.Background(), []string{"-h"}, io.Discard))
}

func TestRunDemoBenchmarkingLine(t *testing.T) {
	var buf bytes.Buffer

	err := runDemo(context.Background(), []string{"-b"}, &buf)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^3\.000000e\+00 \d+\n$`), buf.String())
}

func TestRunDemoJSONOutput(t *testing.T) {
	var buf bytes.Buffer

	err := runDemo(context.Background(), []string{"-j"}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"variableID": "sum"`)
	assert.Contains(t, buf.String(), `"variableSymbol": "sum"`)
	assert.Contains(t, buf.String(), `"description": "Demo kernel output."`)
}

// chdir switches the working directory for the test and restores it on
// cleanup. testing.T.Chdir requires Go 1.24, which is newer than the
// toolchain this module builds with.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
}

func TestRunDemoRepeatedExecution(t *testing.T) {
	chdir(t, t.TempDir())

	var buf bytes.Buffer
	err := runDemo(context.Background(), []string{"-M", "50", "--seed", "7"}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Monte Carlo mean of 'sum':")
	assert.Contains(t, buf.String(), "Monte Carlo variance of 'sum':")
	assert.Contains(t, buf.String(), "50 iterations took")

	_, samples, err := dataout.NewReader().Load()
	require.NoError(t, err)
	require.Len(t, samples, 50)
	for _, s := range samples {
		assert.GreaterOrEqual(t, s, 2.6)
		assert.LessOrEqual(t, s, 3.4)
	}

	// Same seed in a fresh directory reproduces the same draws.
	chdir(t, t.TempDir())
	require.NoError(t, runDemo(context.Background(), []string{"-M", "50", "--seed", "7"}, io.Discard))
	_, again, err := dataout.NewReader().Load()
	require.NoError(t, err)
	assert.Equal(t, samples, again)
}

func TestRunSummarize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.out")
	elapsed := core.NewElapsed(1500 * time.Microsecond)
	require.NoError(t, dataout.NewWriterAt[float64](path).Save([]float64{1, 2, 3, 4, 5}, elapsed))

	var buf bytes.Buffer
	require.NoError(t, runSummarize(path, 0.4, &buf))

	want := "Loaded 5 samples (kernel time 1500 microseconds).\n" +
		"mean: 3.000000e+00\n" +
		"variance: 2.000000e+00\n" +
		"quantile(0.40): 3.000000e+00\n"
	assert.Equal(t, want, buf.String())
}
