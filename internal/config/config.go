// Package config loads the runtime settings used by the battery runner and
// the demo command. The numeric core takes explicit parameters and never
// reads the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"hypotest/domain/core"
)

// Config represents the complete application configuration
type Config struct {
	// Alpha is the default significance level handed to tests that were
	// not given one explicitly.
	Alpha float64
	// LogLevel mirrors the LOG_LEVEL environment variable.
	LogLevel string
	// ReportTitle heads rendered markdown reports.
	ReportTitle string
}

// Load reads configuration from a .env file (when present) and the
// environment, then validates it.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	config := &Config{
		Alpha:       0.05,
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "INFO"),
		ReportTitle: getEnvOrDefault("REPORT_TITLE", "Hypothesis Test Report"),
	}

	if raw := os.Getenv("DEFAULT_ALPHA"); raw != "" {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, core.NewInvalidParameterError("DEFAULT_ALPHA", "must be a decimal number")
		}
		if alpha <= 0 || alpha >= 1 {
			return nil, core.NewInvalidParameterError("DEFAULT_ALPHA", "must be strictly between 0 and 1")
		}
		config.Alpha = alpha
	}

	return config, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
