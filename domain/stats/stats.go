// Package stats implements the summary statistics used on Monte Carlo
// outputs. The formulas are fixed: two-accumulator mean and variance at
// sample precision, and a truncating quantile without interpolation.
// Results from earlier runs are only comparable if these stay unchanged.
package stats

import (
	"fmt"
	"sort"

	"distio/domain/dist"
)

// Summary holds the first two moments of a sample set.
type Summary struct {
	Mean     float64
	Variance float64
}

// MeanAndVariance computes mean and population variance with two
// accumulators kept at the sample precision F. The variance uses
// E[x^2] - E[x]^2 rather than a two-pass formula. An empty sample set
// yields NaN for both moments.
func MeanAndVariance[F dist.Real](samples []F) Summary {
	var sum, sumOfSquares F
	for _, s := range samples {
		sum += s
		sumOfSquares += s * s
	}

	n := F(len(samples))
	mean := sum / n
	variance := sumOfSquares/n - mean*mean

	return Summary{Mean: float64(mean), Variance: float64(variance)}
}

// Quantile returns the sample at rank int(p * N) of the ascending-sorted
// samples. The rank truncates toward zero and no interpolation is
// applied, so p = 0 yields the minimum and p just below 1 the maximum.
// p = 1.0 ranks one past the end and fails; callers wanting the maximum
// pass a probability below 1.
func Quantile[F dist.Real](samples []F, p float64) (F, error) {
	n := len(samples)
	rank := int(p * float64(n))
	if rank < 0 || rank >= n {
		return 0, fmt.Errorf("quantile rank %d out of range for %d samples", rank, n)
	}

	sorted := make([]F, n)
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return sorted[rank], nil
}

// ColumnSummaries computes per-column mean and variance over a row-major
// matrix, such as repeated execution outputs where each row is one run
// and each column one output variable. Column count follows the first
// row.
func ColumnSummaries[F dist.Real](rows [][]F) []Summary {
	if len(rows) == 0 {
		return nil
	}

	columns := len(rows[0])
	summaries := make([]Summary, columns)
	column := make([]F, 0, len(rows))

	for c := 0; c < columns; c++ {
		column = column[:0]
		for _, row := range rows {
			column = append(column, row[c])
		}
		summaries[c] = MeanAndVariance(column)
	}

	return summaries
}
