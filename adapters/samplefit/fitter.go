// Package samplefit provides the native fitting provider: fitted values
// keep their sample population, the representative is the sample mean,
// and moments are computed from the retained samples.
package samplefit

import (
	"gonum.org/v1/gonum/stat"

	"distio/domain/dist"
	"distio/ports"
)

// Fitter fits distribution values from their sample statistics.
type Fitter[F dist.Real] struct{}

// NewFitter creates a native fitting provider.
func NewFitter[F dist.Real]() ports.Fitter[F] {
	return &Fitter[F]{}
}

// DistFromSamples fits a value whose representative is the sample mean.
// An empty population fits to zero.
func (f *Fitter[F]) DistFromSamples(samples []F) dist.Value[F] {
	if len(samples) == 0 {
		return dist.NewFittedValue[F](0, samples)
	}
	mean := stat.Mean(toFloat64s(samples), nil)
	return dist.NewFittedValue(F(mean), samples)
}

// NthMoment returns the first raw moment (the mean) for n = 1 and the
// nth population central moment E[(x-mean)^n] for n >= 2. Encoded
// values, empty populations and n < 1 have no moments and return 0.
func (f *Fitter[F]) NthMoment(v dist.Value[F], n int) float64 {
	if v.Kind == dist.ValueEncoded || n < 1 || len(v.Samples) == 0 {
		return 0
	}

	xs := toFloat64s(v.Samples)
	if n == 1 {
		return stat.Mean(xs, nil)
	}
	return stat.Moment(float64(n), xs, nil)
}

func toFloat64s[F dist.Real](samples []F) []float64 {
	xs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s)
	}
	return xs
}
