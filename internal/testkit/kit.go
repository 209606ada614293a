package testkit

import (
	"os"
	"path/filepath"

	"distio/adapters/memory"
	"distio/domain/dist"
	"distio/internal/metrics"
)

// Kit bundles the in-memory adapters used by service and handler tests
type Kit struct {
	Repo    *memory.RunRepository
	Metrics *metrics.Metrics
}

// NewKit creates a test kit with fresh in-memory state
func NewKit() *Kit {
	return &Kit{
		Repo:    memory.NewRunRepository(),
		Metrics: metrics.New(),
	}
}

// Schema builds the ingestion schema matching a generator config
func Schema(config GeneratorConfig) dist.Schema {
	names := make([]string, len(config.Columns))
	for i, spec := range config.Columns {
		names[i] = spec.Name
	}
	return dist.NewSchema(names...)
}

// WriteTempCSV generates a dataset into dir and returns the file path
func WriteTempCSV(dir string, config GeneratorConfig) (string, error) {
	path := filepath.Join(dir, "generated.csv")

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := NewGenerator(config).WriteCSV(f); err != nil {
		return "", err
	}
	return path, nil
}

// WriteTempXLSX generates a dataset workbook into dir and returns its path
func WriteTempXLSX(dir string, config GeneratorConfig) (string, error) {
	path := filepath.Join(dir, "generated.xlsx")
	if err := NewGenerator(config).WriteXLSX(path); err != nil {
		return "", err
	}
	return path, nil
}
