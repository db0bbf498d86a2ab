// Package config loads and validates application configuration from
// environment variables. main.go overlays a local .env file via godotenv
// before calling Load, so development values never need exporting by hand.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Source names where raw package records come from.
const (
	// SourceDB reads raw packages from the local Postgres catalog.
	SourceDB = "db"
	// SourceUpstream fetches raw packages from the upstream packages API.
	SourceUpstream = "upstream"
)

// Config holds all configuration values for the catalog server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// PackageSource selects the raw package source: "db" (default) or
	// "upstream".
	PackageSource string

	// DatabaseURL is the Postgres connection string.
	// Required when PackageSource is "db".
	DatabaseURL string

	// UpstreamURL is the base URL of the upstream packages API.
	// Required when PackageSource is "upstream".
	UpstreamURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming any required variables missing for the selected
// package source.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		PackageSource: getEnv("PACKAGE_SOURCE", SourceDB),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		UpstreamURL:   os.Getenv("UPSTREAM_URL"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	switch cfg.PackageSource {
	case SourceDB:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("required environment variables not set: DATABASE_URL")
		}
	case SourceUpstream:
		if cfg.UpstreamURL == "" {
			return Config{}, fmt.Errorf("required environment variables not set: UPSTREAM_URL")
		}
	default:
		return Config{}, fmt.Errorf("invalid PACKAGE_SOURCE %q: must be %q or %q",
			cfg.PackageSource, SourceDB, SourceUpstream)
	}

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

// splitCSV splits a comma-separated string into a trimmed slice, ignoring
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
