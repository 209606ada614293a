package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"distio/domain/core"
	"distio/ports"
)

func record(id string, createdAt time.Time) *ports.RunRecord {
	return &ports.RunRecord{
		ID:         core.RunID(id),
		Source:     "input.csv",
		SourceKind: ports.SourceKindCSV,
		Precision:  "double",
		Schema:     []string{"a"},
		Rows:       1,
		CreatedAt:  core.NewTimestamp(createdAt),
	}
}

func TestSaveAndGetRun(t *testing.T) {
	repo := NewRunRepository()
	ctx := context.Background()

	saved := record("run-1", time.Now())
	assert.NoError(t, repo.SaveRun(ctx, saved))

	got, err := repo.GetRun(ctx, core.RunID("run-1"))
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.Source, got.Source)
}

func TestGetRunNotFound(t *testing.T) {
	repo := NewRunRepository()

	_, err := repo.GetRun(context.Background(), core.RunID("missing"))
	assert.Error(t, err)
	assert.True(t, core.IsNotFoundError(err))
}

func TestGetRunReturnsCopy(t *testing.T) {
	repo := NewRunRepository()
	ctx := context.Background()

	assert.NoError(t, repo.SaveRun(ctx, record("run-1", time.Now())))

	first, err := repo.GetRun(ctx, core.RunID("run-1"))
	assert.NoError(t, err)
	first.Source = "mutated.csv"

	second, err := repo.GetRun(ctx, core.RunID("run-1"))
	assert.NoError(t, err)
	assert.Equal(t, "input.csv", second.Source)
}

func TestListRunsNewestFirst(t *testing.T) {
	repo := NewRunRepository()
	ctx := context.Background()
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, repo.SaveRun(ctx, record("old", base)))
	assert.NoError(t, repo.SaveRun(ctx, record("new", base.Add(time.Hour))))
	assert.NoError(t, repo.SaveRun(ctx, record("mid", base.Add(time.Minute))))

	records, err := repo.ListRuns(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, core.RunID("new"), records[0].ID)
	assert.Equal(t, core.RunID("mid"), records[1].ID)
	assert.Equal(t, core.RunID("old"), records[2].ID)

	limited, err := repo.ListRuns(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestDeleteRun(t *testing.T) {
	repo := NewRunRepository()
	ctx := context.Background()

	assert.NoError(t, repo.SaveRun(ctx, record("run-1", time.Now())))
	assert.NoError(t, repo.DeleteRun(ctx, core.RunID("run-1")))

	_, err := repo.GetRun(ctx, core.RunID("run-1"))
	assert.True(t, core.IsNotFoundError(err))

	err = repo.DeleteRun(ctx, core.RunID("run-1"))
	assert.True(t, core.IsNotFoundError(err))
}
