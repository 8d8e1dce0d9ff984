// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DatabaseURL is the Postgres connection string. Optional: when empty,
	// the catalog is loaded from CatalogPath or the embedded dataset.
	DatabaseURL string

	// CatalogPath points at a JSON catalog file on disk. Optional; ignored
	// when DatabaseURL is set. Empty means the embedded dataset.
	CatalogPath string

	// MaxSightsPerDay is the default day-size threshold for area clustering.
	// Defaults to 5; must be at least 1.
	MaxSightsPerDay int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error for values that fail to parse or validate.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
	}

	maxSights := getEnv("MAX_SIGHTS_PER_DAY", "5")
	n, err := strconv.Atoi(maxSights)
	if err != nil {
		return Config{}, fmt.Errorf("MAX_SIGHTS_PER_DAY must be an integer, got %q", maxSights)
	}
	if n < 1 {
		return Config{}, fmt.Errorf("MAX_SIGHTS_PER_DAY must be at least 1, got %d", n)
	}
	cfg.MaxSightsPerDay = n

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
