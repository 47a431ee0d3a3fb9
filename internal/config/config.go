package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Jobs     JobsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// JobsConfig holds scheduling configuration for the background jobs.
type JobsConfig struct {
	// SnapshotTime is the local wall-clock time (HH:MM) at which the daily
	// snapshot job fires.
	SnapshotTime string
	// RefreshInterval is how often the price-refresh job runs.
	RefreshInterval time.Duration
	// QuoteRequestDelay is the minimum spacing between consecutive quote
	// requests inside a job run.
	QuoteRequestDelay time.Duration
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	refreshInterval, err := getDurationEnv("PRICE_REFRESH_INTERVAL", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	quoteDelay, err := getDurationEnv("QUOTE_REQUEST_DELAY", 350*time.Millisecond)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/firefly.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Jobs: JobsConfig{
			SnapshotTime:      getEnv("SNAPSHOT_TIME", "23:59"),
			RefreshInterval:   refreshInterval,
			QuoteRequestDelay: quoteDelay,
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDurationEnv gets a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
