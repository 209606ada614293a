package app

import (
	"context"
	"time"

	"distio/adapters/csvio"
	"distio/adapters/excel"
	"distio/domain/core"
	"distio/domain/dist"
	"distio/internal"
	"distio/internal/errors"
	"distio/internal/metrics"
	"distio/internal/profile"
	"distio/ports"
)

// Ingestor ingests one input file end to end, independent of the sample
// precision the implementing service carries.
type Ingestor interface {
	IngestFile(ctx context.Context, path, name, kind string, schema dist.Schema) (*ports.RunRecord, error)
}

// IngestService runs file ingestion at one sample precision: source to
// engine to fitted values, profiled and persisted as a run record.
type IngestService[F dist.Real] struct {
	fitter       ports.Fitter[F]
	repo         ports.RunRepository
	metrics      *metrics.Metrics
	profiler     *profile.Profiler
	precision    string
	profileStats bool
}

// NewIngestService creates an ingestion service
func NewIngestService[F dist.Real](
	fitter ports.Fitter[F],
	repo ports.RunRepository,
	m *metrics.Metrics,
	precision string,
	profileStats bool,
) *IngestService[F] {
	return &IngestService[F]{
		fitter:       fitter,
		repo:         repo,
		metrics:      m,
		profiler:     profile.NewProfiler(),
		precision:    precision,
		profileStats: profileStats,
	}
}

// IngestFile reads one file through the source matching its kind, fits
// one value per schema column and persists the run record.
func (s *IngestService[F]) IngestFile(ctx context.Context, path, name, kind string, schema dist.Schema) (*ports.RunRecord, error) {
	start := time.Now()

	var source ports.Source[F]
	switch kind {
	case ports.SourceKindXLSX:
		source = excel.NewReader[F](path, schema, s.fitter)
	default:
		source = csvio.NewReader[F](path, schema, s.fitter)
	}

	values, err := source.Read()
	if err != nil {
		s.metrics.ObserveRun(kind, "failed", 0, 0, time.Since(start).Seconds())
		return nil, errors.IngestFailed(err)
	}

	rows := 0
	if counter, ok := source.(ports.RowCounter); ok {
		rows = counter.Rows()
	}

	record := &ports.RunRecord{
		ID:         core.RunID(core.NewID()),
		Source:     name,
		SourceKind: kind,
		Precision:  s.precision,
		Schema:     schema.Names(),
		SchemaHash: core.ComputeSchemaHash(schema.Names()),
		Rows:       rows,
		CreatedAt:  core.Now(),
	}

	record.Values, err = s.buildValueRecords(schema, values)
	if err != nil {
		s.metrics.ObserveRun(kind, "failed", rows, len(values), time.Since(start).Seconds())
		return nil, err
	}

	if err := s.repo.SaveRun(ctx, record); err != nil {
		s.metrics.ObserveRun(kind, "failed", rows, len(values), time.Since(start).Seconds())
		return nil, errors.Wrap(err, "failed to save run")
	}

	s.metrics.ObserveRun(kind, "ok", rows, len(record.Values), time.Since(start).Seconds())
	internal.DefaultLogger.Info("[Ingest] Run %s: %d rows, %d values from %s (%s) in %.2fms",
		record.ID.String(), rows, len(record.Values), name, kind,
		float64(time.Since(start).Nanoseconds())/1e6)

	return record, nil
}

// buildValueRecords maps fitted values to persisted value rows. Encoded
// values keep a zero representative so the record stays JSON-safe.
func (s *IngestService[F]) buildValueRecords(schema dist.Schema, values []dist.Value[F]) ([]ports.ValueRecord, error) {
	records := make([]ports.ValueRecord, len(values))
	for i, v := range values {
		record := ports.ValueRecord{
			Name:        schema[i].Name,
			SampleCount: v.SampleCount(),
		}

		if v.Kind == dist.ValueEncoded {
			record.Kind = ports.ValueKindEncoded
			record.Encoded = v.Encoded
		} else {
			record.Kind = ports.ValueKindNumeric
			record.Representative = float64(v.Representative())
			if s.profileStats {
				stats, err := s.profiler.ProfileSamples(toFloat64s(v.Samples))
				if err != nil {
					return nil, errors.Wrapf(err, "failed to profile column %s", record.Name)
				}
				record.Stats = stats
			}
		}

		records[i] = record
	}
	return records, nil
}

func toFloat64s[F dist.Real](samples []F) []float64 {
	xs := make([]float64, len(samples))
	for i, v := range samples {
		xs[i] = float64(v)
	}
	return xs
}
