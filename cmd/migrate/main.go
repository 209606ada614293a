package main

import (
	"context"
	"log"
	"os"

	"distio/internal/migration"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "distio-migrate",
		Short: "Create or update the run storage schema",
		Long: `Create or update the database schema used to persist ingestion runs.

The database URL comes from --database-url, falling back to the
DATABASE_URL environment variable (a .env file is honored).`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			runMigrations(databaseURL)
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMigrations(databaseURL string) {
	if databaseURL == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	runner := migration.NewRunner()
	if err := runner.Run(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Schema migration %s complete", runner.Version())
}
