package ports

import (
	"distio/domain/dist"
)

// Fitter turns raw sample populations into distribution values and
// extracts statistical moments from them. Implementations decide what a
// fitted value means; callers only rely on these two operations.
type Fitter[F dist.Real] interface {
	// DistFromSamples fits one distribution value from a sample
	// population.
	DistFromSamples(samples []F) dist.Value[F]

	// NthMoment returns the nth central statistical moment of a value,
	// or 0 when the value does not support moment extraction.
	NthMoment(v dist.Value[F], n int) float64
}
