// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the dashboard API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// UpstreamBaseURL is the base URL of the reservations backend,
	// without a trailing slash. Required.
	UpstreamBaseURL string

	// UpstreamTimeout bounds each call to the reservations backend.
	// Defaults to 30s. A hung backend call becomes a fetch failure
	// instead of a spinner that never resolves.
	UpstreamTimeout time.Duration

	// SettleDelay is how long the assignment commit waits after the
	// booking update before the full refetch. Defaults to 1s.
	SettleDelay time.Duration

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// RedisAddr enables the dashboard snapshot cache when set.
	// Empty means no caching; the service holds the snapshot in memory only.
	RedisAddr string

	// RedisPassword is the optional Redis AUTH password.
	RedisPassword string

	// SnapshotTTL is how long a cached snapshot stays valid. Defaults to 30s.
	SnapshotTTL time.Duration

	// MaxBodyBytes limits incoming request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, plus
// any values that fail to parse.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		UpstreamTimeout: 30 * time.Second,
		SettleDelay:     time.Second,
		SnapshotTTL:     30 * time.Second,
		MaxBodyBytes:    1 << 20,
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
	}

	var problems []string

	cfg.UpstreamBaseURL = strings.TrimSuffix(os.Getenv("UPSTREAM_BASE_URL"), "/")
	if cfg.UpstreamBaseURL == "" {
		problems = append(problems, "UPSTREAM_BASE_URL is required")
	}

	parseDuration(&cfg.UpstreamTimeout, "UPSTREAM_TIMEOUT", &problems)
	parseDuration(&cfg.SettleDelay, "SETTLE_DELAY", &problems)
	parseDuration(&cfg.SnapshotTTL, "SNAPSHOT_TTL", &problems)

	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			problems = append(problems, "MAX_BODY_BYTES must be a positive integer")
		} else {
			cfg.MaxBodyBytes = n
		}
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// parseDuration overrides target with the env value when set, recording a
// problem when it does not parse as a Go duration (e.g. "500ms", "2s").
func parseDuration(target *time.Duration, key string, problems *[]string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		*problems = append(*problems, key+" must be a non-negative duration")
		return
	}
	*target = d
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
