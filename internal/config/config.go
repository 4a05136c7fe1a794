package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Quote    QuoteConfig
	Snapshot SnapshotConfig
	CORS     CORSConfig
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

// QuoteConfig bounds the market data lookups performed during a valuation
// pass.
type QuoteConfig struct {
	// Timeout is the per-symbol lookup budget. One slow symbol must not
	// stall a whole valuation pass.
	Timeout time.Duration
	// Concurrency caps how many symbol lookups run at once.
	Concurrency int
}

// SnapshotConfig holds the optional snapshot scheduler configuration.
type SnapshotConfig struct {
	// Schedule is a cron expression. Empty disables scheduled snapshots;
	// snapshots then only happen when a caller requests one.
	Schedule string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	quoteTimeout, err := time.ParseDuration(getEnv("QUOTE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUOTE_TIMEOUT: %w", err)
	}

	quoteConcurrency, err := strconv.Atoi(getEnv("QUOTE_CONCURRENCY", "4"))
	if err != nil || quoteConcurrency < 1 {
		return nil, fmt.Errorf("invalid QUOTE_CONCURRENCY: %q", getEnv("QUOTE_CONCURRENCY", "4"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/networth.db"),
		},
		Quote: QuoteConfig{
			Timeout:     quoteTimeout,
			Concurrency: quoteConcurrency,
		},
		Snapshot: SnapshotConfig{
			Schedule: getEnv("SNAPSHOT_SCHEDULE", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
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

// splitList splits a comma-separated environment value, trimming whitespace
// and dropping empty entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
