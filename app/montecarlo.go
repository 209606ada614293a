package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/semaphore"

	"distio/domain/core"
	"distio/domain/dist"
	"distio/domain/stats"
	"distio/internal"
)

// Kernel computes one output sample from one set of drawn inputs.
type Kernel[F dist.Real] func(inputs []F) F

// MonteCarloRunner repeats a kernel against per-iteration input draws.
// Each draw is keyed to its iteration index, so results do not depend on
// goroutine scheduling at any parallelism.
type MonteCarloRunner[F dist.Real] struct {
	iterations  int
	parallelism int64
	seed        int64
}

// NewMonteCarloRunner creates a runner. Parallelism below 1 runs
// sequentially.
func NewMonteCarloRunner[F dist.Real](iterations int, parallelism int64, seed int64) *MonteCarloRunner[F] {
	if parallelism < 1 {
		parallelism = 1
	}
	return &MonteCarloRunner[F]{
		iterations:  iterations,
		parallelism: parallelism,
		seed:        seed,
	}
}

// MonteCarloResult carries the output samples and the elapsed wall time
// of one repeated execution.
type MonteCarloResult[F dist.Real] struct {
	Samples []F
	Elapsed core.Elapsed
}

// Summary returns the pinned mean and variance of the output samples.
func (r *MonteCarloResult[F]) Summary() stats.Summary {
	return stats.MeanAndVariance(r.Samples)
}

// Run executes the kernel once per iteration, drawing each input from
// its sample population, and collects one output sample per iteration.
func (r *MonteCarloRunner[F]) Run(ctx context.Context, values []dist.Value[F], kernel Kernel[F]) (*MonteCarloResult[F], error) {
	start := time.Now()

	sem := semaphore.NewWeighted(r.parallelism)
	samples := make([]F, r.iterations)

	for i := 0; i < r.iterations; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("failed to acquire iteration slot: %w", err)
		}

		go func(i int) {
			defer sem.Release(1)
			rng := rand.New(rand.NewSource(r.seed + int64(i)))
			samples[i] = kernel(drawInputs(values, rng))
		}(i)
	}

	// Acquiring the full weight waits for every iteration to finish.
	if err := sem.Acquire(ctx, r.parallelism); err != nil {
		return nil, fmt.Errorf("failed to drain iterations: %w", err)
	}

	elapsed := core.NewElapsed(time.Since(start))
	internal.DefaultLogger.Debug("[MonteCarlo] %d iterations in %dus",
		r.iterations, elapsed.Microseconds())

	return &MonteCarloResult[F]{Samples: samples, Elapsed: elapsed}, nil
}

// MonteCarloMatrixResult carries one row of output samples per
// iteration, one column per kernel.
type MonteCarloMatrixResult[F dist.Real] struct {
	Rows    [][]F
	Elapsed core.Elapsed
}

// Summaries returns the pinned per-column mean and variance of the
// output rows.
func (r *MonteCarloMatrixResult[F]) Summaries() []stats.Summary {
	return stats.ColumnSummaries(r.Rows)
}

// RunMany executes every kernel against the same per-iteration input
// draw and collects one row of output samples per iteration.
func (r *MonteCarloRunner[F]) RunMany(ctx context.Context, values []dist.Value[F], kernels []Kernel[F]) (*MonteCarloMatrixResult[F], error) {
	start := time.Now()

	sem := semaphore.NewWeighted(r.parallelism)
	rows := make([][]F, r.iterations)

	for i := 0; i < r.iterations; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("failed to acquire iteration slot: %w", err)
		}

		go func(i int) {
			defer sem.Release(1)
			rng := rand.New(rand.NewSource(r.seed + int64(i)))
			draws := drawInputs(values, rng)
			row := make([]F, len(kernels))
			for k, kernel := range kernels {
				row[k] = kernel(draws)
			}
			rows[i] = row
		}(i)
	}

	if err := sem.Acquire(ctx, r.parallelism); err != nil {
		return nil, fmt.Errorf("failed to drain iterations: %w", err)
	}

	elapsed := core.NewElapsed(time.Since(start))
	internal.DefaultLogger.Debug("[MonteCarlo] %d iterations x %d outputs in %dus",
		r.iterations, len(kernels), elapsed.Microseconds())

	return &MonteCarloMatrixResult[F]{Rows: rows, Elapsed: elapsed}, nil
}

// drawInputs samples one concrete input per value. Values without a
// sample population contribute their representative instead.
func drawInputs[F dist.Real](values []dist.Value[F], rng *rand.Rand) []F {
	draws := make([]F, len(values))
	for i, v := range values {
		if len(v.Samples) == 0 {
			draws[i] = v.Representative()
			continue
		}
		draws[i] = v.Samples[rng.Intn(len(v.Samples))]
	}
	return draws
}
