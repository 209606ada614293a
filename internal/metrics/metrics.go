// Package metrics exposes the process-wide Prometheus instruments for the
// ingestion surfaces.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the instruments updated by the ingest service and the API.
type Metrics struct {
	Registry *prometheus.Registry

	RunsTotal    *prometheus.CounterVec
	RowsIngested prometheus.Counter
	ValuesFitted prometheus.Counter
	RunDuration  prometheus.Histogram
}

// New builds a registry with the runtime collectors plus the application
// instruments.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "distio_runs_total",
			Help: "Number of ingestion runs by source kind and status.",
		}, []string{"source", "status"}),
		RowsIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "distio_rows_ingested_total",
			Help: "Number of data rows ingested across all runs.",
		}),
		ValuesFitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "distio_values_fitted_total",
			Help: "Number of distribution values fitted from sample columns.",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "distio_run_duration_seconds",
			Help:    "Tracks the latencies of ingestion runs.",
			Buckets: []float64{0.001, 0.01, 0.1, 0.3, 1, 3, 10},
		}),
	}
}

// ObserveRun records one finished run in every relevant instrument.
func (m *Metrics) ObserveRun(source, status string, rows int, values int, seconds float64) {
	m.RunsTotal.WithLabelValues(source, status).Inc()
	m.RowsIngested.Add(float64(rows))
	m.ValuesFitted.Add(float64(values))
	m.RunDuration.Observe(seconds)
}
