package config

import (
	"os"
	"strconv"
	"time"

	"distio/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Ingest   IngestConfig
	Ops      OpsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL             string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// IngestConfig holds defaults for the ingestion surface
type IngestConfig struct {
	Precision   string
	MaxParallel int64
	ReportTitle string
	Profile     bool
}

// OpsConfig holds the operational endpoint settings (metrics, pprof)
type OpsConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}
	config.Database = *dbConfig

	config.Server = *loadServerConfig()
	config.Ingest = *loadIngestConfig()
	config.Ops = *loadOpsConfig()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return &DatabaseConfig{
		URL:             url,
		SSLMode:         getEnvOrDefault("SSL_MODE", "disable"),
		MaxOpenConns:    getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 16),
		MaxIdleConns:    getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 4),
		ConnMaxLifetime: getEnvDurationOrDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadIngestConfig() *IngestConfig {
	return &IngestConfig{
		Precision:   getEnvOrDefault("INGEST_PRECISION", "double"),
		MaxParallel: int64(getEnvIntOrDefault("INGEST_MAX_PARALLEL", 4)),
		ReportTitle: getEnvOrDefault("REPORT_TITLE", "Ingestion Run Report"),
		Profile:     getEnvBoolOrDefault("INGEST_PROFILE", true),
	}
}

func loadOpsConfig() *OpsConfig {
	return &OpsConfig{
		Port:    getEnvOrDefault("OPS_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("OPS_ENABLED", true),
	}
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("database URL is required")
	}
	if config.Ingest.Precision != "double" && config.Ingest.Precision != "single" {
		return errors.ConfigInvalid("INGEST_PRECISION must be 'double' or 'single'")
	}
	if config.Ingest.MaxParallel < 1 {
		return errors.ConfigInvalid("INGEST_MAX_PARALLEL must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
