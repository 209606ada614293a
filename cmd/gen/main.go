package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"distio/internal/testkit"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		out        string
		format     string
		rows       int
		seed       int64
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "distio-gen",
		Short: "Generate synthetic distribution datasets for the demo binaries",
		Long: `Generate a synthetic sample dataset as .csv or .xlsx demo input.

Columns default to the built-in mixed set (a normal column, a uniform
column and an encoded Ux column); pass --config to describe custom
columns as JSON.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(out, format, rows, seed, configPath)
		},
	}

	cmd.Flags().StringVar(&out, "out", "demo_input.csv", "output file path")
	cmd.Flags().StringVar(&format, "format", "", "output format: csv or xlsx (default inferred from --out)")
	cmd.Flags().IntVar(&rows, "rows", 100, "number of data rows")
	cmd.Flags().Int64Var(&seed, "seed", 42, "RNG seed (deterministic)")
	cmd.Flags().StringVar(&configPath, "config", "", "JSON column spec file (overrides the built-in columns)")

	return cmd
}

func runGenerate(out, format string, rows int, seed int64, configPath string) error {
	if rows <= 0 {
		return fmt.Errorf("rows must be > 0")
	}

	config := testkit.DefaultGeneratorConfig()
	if configPath != "" {
		columns, err := loadColumns(configPath)
		if err != nil {
			return err
		}
		config.Columns = columns
	}
	config.Rows = rows
	config.Seed = seed

	name := strings.ToLower(strings.TrimSpace(format))
	if name == "" {
		if strings.ToLower(filepath.Ext(out)) == ".xlsx" {
			name = "xlsx"
		} else {
			name = "csv"
		}
	}

	generator := testkit.NewGenerator(config)

	switch name {
	case "csv":
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		if err := generator.WriteCSV(f); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	case "xlsx":
		if err := generator.WriteXLSX(out); err != nil {
			return fmt.Errorf("failed to write xlsx: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", name)
	}

	fmt.Printf("Wrote %d rows x %d columns to %s\n", config.Rows, len(config.Columns), out)
	return nil
}

func loadColumns(path string) ([]testkit.ColumnSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column spec: %w", err)
	}

	var columns []testkit.ColumnSpec
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("failed to parse column spec: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("column spec %s is empty", path)
	}
	return columns, nil
}
