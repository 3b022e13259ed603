// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory, when present,
// is read first; variables already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/timeline"
)

// Config holds all configuration values for the API server and the CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// JWTSecret signs and verifies bearer tokens. Required.
	JWTSecret string

	// TokenTTL is the lifetime of issued tokens. TOKEN_TTL_HOURS, default 720.
	TokenTTL time.Duration

	// ResidencyThreshold is the day count at which a country is flagged.
	// RESIDENCY_THRESHOLD_DAYS, default 183.
	ResidencyThreshold int

	// OverlapPolicy decides what happens to the uncovered part of a stay
	// that a calendar edit overlaps. OVERLAP_POLICY, "replace" or "clip".
	OverlapPolicy timeline.Policy

	// DefaultLocation fills uncovered days up to today. Set from
	// DEFAULT_CITY and DEFAULT_COUNTRY, both or neither; nil disables gap filling.
	DefaultLocation *domain.Location

	// GapFillSchedule is the cron spec of the gap-fill job. Defaults to "@daily".
	GapFillSchedule string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration and returns an error listing any required
// variables that are not set or any values that cannot be parsed.
func Load() (Config, error) {
	cfg, err := Read()
	if err != nil {
		return Config{}, err
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// Read parses configuration without enforcing required variables. The CLI
// uses it because most commands need only one of the database or the secret.
func Read() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading .env: %w", err)
	}

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		GapFillSchedule: getEnv("GAP_FILL_CRON", "@daily"),
	}

	var invalid []string

	ttlHours, err := getInt("TOKEN_TTL_HOURS", 720)
	if err != nil {
		invalid = append(invalid, err.Error())
	}
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	if cfg.ResidencyThreshold, err = getInt("RESIDENCY_THRESHOLD_DAYS", timeline.DefaultThreshold); err != nil {
		invalid = append(invalid, err.Error())
	} else if cfg.ResidencyThreshold < 1 {
		invalid = append(invalid, "RESIDENCY_THRESHOLD_DAYS must be at least 1")
	}

	maxBody, err := getInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		invalid = append(invalid, err.Error())
	}
	cfg.MaxBodyBytes = int64(maxBody)

	if cfg.OverlapPolicy, err = timeline.ParsePolicy(os.Getenv("OVERLAP_POLICY")); err != nil {
		invalid = append(invalid, "OVERLAP_POLICY: "+err.Error())
	}

	city := strings.TrimSpace(os.Getenv("DEFAULT_CITY"))
	country := strings.TrimSpace(os.Getenv("DEFAULT_COUNTRY"))
	switch {
	case city != "" && country != "":
		cfg.DefaultLocation = &domain.Location{City: city, Country: country}
	case city != "" || country != "":
		invalid = append(invalid, "DEFAULT_CITY and DEFAULT_COUNTRY must be set together")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(invalid, "; "))
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

// getInt parses the environment variable named by key as an integer.
func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
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
