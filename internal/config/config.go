package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds tool settings, populated from environment variables. The CLI
// flags in cmd/pvforecast override the forecast horizon and output directory
// per invocation.
type Config struct {
	ForecastDays int
	OutputDir    string
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	days, err := parseForecastDays()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ForecastDays: days,
		OutputDir:    envOrDefault("OUTPUT_DIR", "."),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		LogFormat:    envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR must not be empty")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}

	return cfg, nil
}

func parseForecastDays() (int, error) {
	s := os.Getenv("FORECAST_DAYS")
	if s == "" {
		return 14, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid FORECAST_DAYS %q: want a positive integer", s)
	}
	return n, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
