package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"distio/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/distio_test")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "double", cfg.Ingest.Precision)
	assert.Equal(t, int64(4), cfg.Ingest.MaxParallel)
	assert.Equal(t, "6060", cfg.Ops.Port)
	assert.True(t, cfg.Ops.Enabled)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoadRejectsUnknownPrecision(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/distio_test")
	t.Setenv("INGEST_PRECISION", "half")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/distio_test")
	t.Setenv("PORT", "9191")
	t.Setenv("INGEST_PRECISION", "single")
	t.Setenv("INGEST_MAX_PARALLEL", "8")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "single", cfg.Ingest.Precision)
	assert.Equal(t, int64(8), cfg.Ingest.MaxParallel)
}
