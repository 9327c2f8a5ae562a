package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// PostgresConfig describes one postgres connection.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the keyword/value connection string both pgx and lib/pq accept.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Config is the process configuration, loaded from the environment. The
// source database holds the raw extract tables owned by the ingestion layer;
// the warehouse holds the clean and gold tables this pipeline owns.
type Config struct {
	App struct {
		Port     string
		LogLevel string
	}
	Source    PostgresConfig
	Warehouse PostgresConfig

	MigrationsPath string
}

// Load reads configuration from the environment, optionally seeding it from
// a .env file first. A missing .env file is not an error.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: failed to load %s: %w", envPath, err)
		}
	}

	cfg := &Config{}
	cfg.App.Port = getenv("APP_PORT", "8080")
	cfg.App.LogLevel = getenv("LOG_LEVEL", "info")
	cfg.MigrationsPath = getenv("MIGRATIONS_PATH", "migrations")

	var err error
	if cfg.Source, err = postgresFromEnv("SOURCE"); err != nil {
		return nil, err
	}
	if cfg.Warehouse, err = postgresFromEnv("WAREHOUSE"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func postgresFromEnv(prefix string) (PostgresConfig, error) {
	cfg := PostgresConfig{
		Host:    getenv(prefix+"_DB_HOST", "localhost"),
		Port:    getenv(prefix+"_DB_PORT", "5432"),
		SSLMode: getenv(prefix+"_DB_SSLMODE", "disable"),
	}

	for _, req := range []struct {
		key    string
		target *string
	}{
		{prefix + "_DB_USER", &cfg.User},
		{prefix + "_DB_PASSWORD", &cfg.Password},
		{prefix + "_DB_NAME", &cfg.DBName},
	} {
		value := os.Getenv(req.key)
		if value == "" {
			return PostgresConfig{}, fmt.Errorf("config: %s is required", req.key)
		}
		*req.target = value
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
