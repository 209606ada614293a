// Package profile computes descriptive statistics for the sample columns
// of an ingestion run. The results are persisted alongside the fitted
// values so stored runs can be inspected without the raw data.
package profile

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"distio/ports"
)

// Profiler analyzes one sample column at a time
type Profiler struct{}

// NewProfiler creates a new profiler
func NewProfiler() *Profiler {
	return &Profiler{}
}

// ProfileSamples computes the stats block persisted with a numeric value.
// Empty columns profile to nil rather than an error so callers can store
// runs with no data rows.
func (p *Profiler) ProfileSamples(data []float64) (*ports.ValueStats, error) {
	if len(data) == 0 {
		return nil, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}

	variance, err := stats.PopulationVariance(data)
	if err != nil {
		return nil, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return nil, err
	}

	q1, err := stats.Percentile(data, 25)
	if err != nil {
		q1 = median
	}

	q3, err := stats.Percentile(data, 75)
	if err != nil {
		q3 = median
	}

	stdDev := math.Sqrt(variance)
	skewness := sampleSkewness(data, mean, stdDev)
	kurtosis := sampleKurtosis(data, mean, stdDev)
	isNormal, normalityP := testNormality(skewness, kurtosis, len(data))

	return &ports.ValueStats{
		Mean:       mean,
		Variance:   variance,
		Min:        min,
		Max:        max,
		Median:     median,
		Q1:         q1,
		Q3:         q3,
		Skewness:   skewness,
		Kurtosis:   kurtosis,
		IsNormal:   isNormal,
		NormalityP: normalityP,
	}, nil
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// sampleKurtosis computes total (not excess) sample kurtosis
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	kurtosis := sumFourthDeviations / n
	excessKurtosis := kurtosis - 3

	// Bias correction for sample excess kurtosis
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excessKurtosis = excessKurtosis*correction + 6/(n+1)
	}

	return excessKurtosis + 3
}

// testNormality approximates a normality test from the shape markers. A
// proper Shapiro-Wilk test needs coefficient tables, so the combined
// skewness/kurtosis statistic is mapped through a chi-square CDF instead.
func testNormality(skewness, kurtosis float64, n int) (isNormal bool, pValue float64) {
	if n < 3 {
		return false, 1.0
	}

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}

// ProfileColumns profiles every named column of a run, skipping empties.
func (p *Profiler) ProfileColumns(columns map[string][]float64) map[string]*ports.ValueStats {
	results := make(map[string]*ports.ValueStats, len(columns))
	for name, data := range columns {
		vs, err := p.ProfileSamples(data)
		if err != nil || vs == nil {
			continue
		}
		results[name] = vs
	}
	return results
}
