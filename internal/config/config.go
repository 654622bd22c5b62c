// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
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
	// Defaults to ["http://localhost:3000"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// JWTSecret verifies the HS256 bearer tokens issued by the auth provider. Required.
	JWTSecret string

	// LLMAPIKey authenticates against the model service. Required.
	LLMAPIKey string
	// LLMBaseURL is the OpenAI-compatible endpoint. Empty means Gemini's.
	LLMBaseURL string
	// LLMModel names the model. Empty means the client default.
	LLMModel string

	// GenerationTimeout bounds one model call. Defaults to 90s.
	GenerationTimeout time.Duration
	// GenerationRatePerMinute is the per-user budget for the generation routes.
	GenerationRatePerMinute int

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// RedisURL enables the shared image cache. Empty means in-process caching.
	RedisURL string
	// NATSURL enables the share-by-email queue. Empty means emails are only logged.
	NATSURL string
	// UnsplashAccessKey enables destination photos. Empty means placeholders.
	UnsplashAccessKey string

	// AutoMigrate applies pending migrations at startup. Defaults to true.
	AutoMigrate bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, and any
// optional ones that do not parse.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		LLMBaseURL:        os.Getenv("LLM_BASE_URL"),
		LLMModel:          os.Getenv("LLM_MODEL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		NATSURL:           os.Getenv("NATS_URL"),
		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
	}

	var missing []string
	for key, dst := range map[string]*string{
		"DATABASE_URL": &cfg.DatabaseURL,
		"JWT_SECRET":   &cfg.JWTSecret,
		"LLM_API_KEY":  &cfg.LLMAPIKey,
	} {
		*dst = os.Getenv(key)
		if *dst == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var errs []error
	var err error
	if cfg.GenerationTimeout, err = time.ParseDuration(getEnv("GENERATION_TIMEOUT", "90s")); err != nil {
		errs = append(errs, fmt.Errorf("GENERATION_TIMEOUT: %w", err))
	}
	if cfg.GenerationRatePerMinute, err = strconv.Atoi(getEnv("GENERATION_RATE_PER_MINUTE", "5")); err != nil || cfg.GenerationRatePerMinute < 1 {
		errs = append(errs, errors.New("GENERATION_RATE_PER_MINUTE: must be a positive integer"))
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes < 1 {
		errs = append(errs, errors.New("MAX_BODY_BYTES: must be a positive integer"))
	}
	if cfg.AutoMigrate, err = strconv.ParseBool(getEnv("AUTO_MIGRATE", "true")); err != nil {
		errs = append(errs, fmt.Errorf("AUTO_MIGRATE: %w", err))
	}
	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
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
