// Package memory provides in-memory adapter implementations used by tests
// and by the CLI when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"distio/domain/core"
	"distio/ports"
)

// RunRepository implements ports.RunRepository with in-memory storage
type RunRepository struct {
	runs map[core.RunID]*ports.RunRecord
	mu   sync.RWMutex
}

// NewRunRepository creates an empty in-memory run repository
func NewRunRepository() *RunRepository {
	return &RunRepository{
		runs: make(map[core.RunID]*ports.RunRecord),
	}
}

func (r *RunRepository) SaveRun(ctx context.Context, record *ports.RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *record
	r.runs[record.ID] = &stored
	return nil
}

func (r *RunRepository) GetRun(ctx context.Context, id core.RunID) (*ports.RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.runs[id]
	if !exists {
		return nil, core.NewNotFoundError("run", id.String())
	}

	found := *record
	return &found, nil
}

func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]*ports.RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*ports.RunRecord, 0, len(r.runs))
	for _, record := range r.runs {
		stored := *record
		records = append(records, &stored)
	}

	// Newest first, matching the database adapter's ordering.
	sort.Slice(records, func(i, j int) bool {
		return records[j].CreatedAt.Before(records[i].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *RunRepository) DeleteRun(ctx context.Context, id core.RunID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[id]; !exists {
		return core.NewNotFoundError("run", id.String())
	}
	delete(r.runs, id)
	return nil
}
