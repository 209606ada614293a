package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distio/domain/dist"
	"distio/domain/stats"
)

func sumKernel(inputs []float64) float64 {
	var sum float64
	for _, v := range inputs {
		sum += v
	}
	return sum
}

func TestMonteCarloRunnerDrawsFromPopulations(t *testing.T) {
	values := []dist.Value[float64]{
		dist.NewFittedValue(2.0, []float64{1, 2, 3}),
		dist.NewFittedValue(20.0, []float64{10, 20, 30}),
	}

	runner := NewMonteCarloRunner[float64](200, 1, 42)
	result, err := runner.Run(context.Background(), values, sumKernel)
	require.NoError(t, err)
	require.Len(t, result.Samples, 200)

	// Every output is a sum of one draw per population.
	for _, s := range result.Samples {
		assert.GreaterOrEqual(t, s, 11.0)
		assert.LessOrEqual(t, s, 33.0)
	}
}

func TestMonteCarloRunnerDeterministicAcrossParallelism(t *testing.T) {
	values := []dist.Value[float64]{
		dist.NewFittedValue(2.0, []float64{1, 2, 3, 4, 5}),
	}

	sequential := NewMonteCarloRunner[float64](100, 1, 7)
	parallel := NewMonteCarloRunner[float64](100, 8, 7)

	first, err := sequential.Run(context.Background(), values, sumKernel)
	require.NoError(t, err)
	second, err := parallel.Run(context.Background(), values, sumKernel)
	require.NoError(t, err)

	assert.Equal(t, first.Samples, second.Samples)
}

func TestMonteCarloRunnerSeedChangesDraws(t *testing.T) {
	values := []dist.Value[float64]{
		dist.NewFittedValue(0, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
	}

	first, err := NewMonteCarloRunner[float64](50, 1, 1).Run(context.Background(), values, sumKernel)
	require.NoError(t, err)
	second, err := NewMonteCarloRunner[float64](50, 1, 2).Run(context.Background(), values, sumKernel)
	require.NoError(t, err)

	assert.NotEqual(t, first.Samples, second.Samples)
}

func TestMonteCarloRunnerRepresentativeFallback(t *testing.T) {
	values := []dist.Value[float64]{
		dist.NewFittedValue(7.5, nil),
	}

	result, err := NewMonteCarloRunner[float64](10, 2, 0).Run(context.Background(), values, sumKernel)
	require.NoError(t, err)

	for _, s := range result.Samples {
		assert.Equal(t, 7.5, s)
	}
}

func TestMonteCarloResultSummary(t *testing.T) {
	result := &MonteCarloResult[float64]{Samples: []float64{1, 2, 3, 4}}

	summary := result.Summary()
	expected := stats.MeanAndVariance([]float64{1, 2, 3, 4})
	assert.Equal(t, expected, summary)
}

func productKernel(inputs []float64) float64 {
	product := 1.0
	for _, v := range inputs {
		product *= v
	}
	return product
}

func TestMonteCarloRunnerManySharesDraws(t *testing.T) {
	values := []dist.Value[float64]{
		dist.NewFittedValue(2.0, []float64{1, 2, 3}),
		dist.NewFittedValue(20.0, []float64{10, 20, 30}),
	}

	runner := NewMonteCarloRunner[float64](80, 4, 42)
	result, err := runner.RunMany(context.Background(), values,
		[]Kernel[float64]{sumKernel, productKernel})
	require.NoError(t, err)
	require.Len(t, result.Rows, 80)

	// Both columns come from the same draw, so the pair must be
	// consistent: for draws a and b, row = [a+b, a*b].
	for _, row := range result.Rows {
		require.Len(t, row, 2)
		found := false
		for _, a := range []float64{1, 2, 3} {
			for _, b := range []float64{10, 20, 30} {
				if row[0] == a+b && row[1] == a*b {
					found = true
				}
			}
		}
		assert.True(t, found, "row %v does not match any draw pair", row)
	}
}

func TestMonteCarloMatrixResultSummaries(t *testing.T) {
	result := &MonteCarloMatrixResult[float64]{Rows: [][]float64{{1, 10}, {2, 20}, {3, 30}}}

	summaries := result.Summaries()
	require.Len(t, summaries, 2)
	assert.Equal(t, stats.MeanAndVariance([]float64{1, 2, 3}), summaries[0])
	assert.Equal(t, stats.MeanAndVariance([]float64{10, 20, 30}), summaries[1])
}
