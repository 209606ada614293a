package main

import (
	"context"
	"log"
	"net/http"

	"distio/adapters/postgres"
	"distio/adapters/samplefit"
	"distio/app"
	"distio/internal/api"
	"distio/internal/config"
	"distio/internal/errors"
	"distio/internal/metrics"
	"distio/internal/migration"
	"distio/internal/report"
	"distio/ports"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	db.SetMaxOpenConns(appConfig.Database.MaxOpenConns)
	db.SetMaxIdleConns(appConfig.Database.MaxIdleConns)
	db.SetConnMaxLifetime(appConfig.Database.ConnMaxLifetime)

	// Run migrations
	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

// newIngestor builds the ingestion service at the configured sample
// precision.
func newIngestor(appConfig *config.Config, repo ports.RunRepository, m *metrics.Metrics) app.Ingestor {
	if appConfig.Ingest.Precision == ports.PrecisionSingle {
		return app.NewIngestService[float32](
			samplefit.NewFitter[float32](), repo, m, ports.PrecisionSingle, appConfig.Ingest.Profile)
	}
	return app.NewIngestService[float64](
		samplefit.NewFitter[float64](), repo, m, ports.PrecisionDouble, appConfig.Ingest.Profile)
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	m := metrics.New()
	repo := postgres.NewRunRepository(db)
	ingestor := newIngestor(appConfig, repo, m)

	server := api.NewServer(
		appConfig.Server.GinMode,
		ingestor,
		repo,
		report.NewBuilder(appConfig.Ingest.ReportTitle),
		appConfig.Ingest.MaxParallel,
	)

	// Start the ops listener for health, metrics and profiling
	if appConfig.Ops.Enabled {
		go func() {
			log.Printf("Ops server starting on :%s", appConfig.Ops.Port)
			if err := http.ListenAndServe(":"+appConfig.Ops.Port, api.NewOpsRouter(m)); err != nil {
				log.Printf("Ops server failed: %v", err)
			}
		}()
	}

	// Start the server
	log.Printf("Starting Distio server on port %s (precision %s)", appConfig.Server.Port, appConfig.Ingest.Precision)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
