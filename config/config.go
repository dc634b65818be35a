// Package config provides environment-driven configuration for the avv CLI.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/visibility/ingest"
	"github.com/katalvlaran/visibility/report"
)

// Config holds all CLI configuration values.
type Config struct {
	Workers     int
	MaxDepth    int
	LogLevel    string
	LogFormat   string
	Format      string
	Extension   string
	MetricsFile string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:    envOrDefault("AVV_LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("AVV_LOG_FORMAT", "text"),
		Format:      envOrDefault("AVV_FORMAT", string(report.FormatTable)),
		Extension:   envOrDefault("AVV_EXTENSION", ingest.DefaultExtension),
		MetricsFile: envOrDefault("AVV_METRICS_FILE", ""),
	}

	workers, err := strconv.Atoi(envOrDefault("AVV_WORKERS", strconv.Itoa(runtime.GOMAXPROCS(0))))
	if err != nil {
		return nil, fmt.Errorf("AVV_WORKERS must be an integer: %w", err)
	}
	cfg.Workers = workers

	maxDepth, err := strconv.Atoi(envOrDefault("AVV_MAX_DEPTH", "0"))
	if err != nil {
		return nil, fmt.Errorf("AVV_MAX_DEPTH must be an integer: %w", err)
	}
	cfg.MaxDepth = maxDepth

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks ranges and enumerations. The CLI calls it again after
// flags have been applied.
func (c *Config) Validate() error {
	if c.Workers < 1 || c.Workers > 1024 {
		return fmt.Errorf("workers must be between 1 and 1024, got %d", c.Workers)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}

	return nil
}

// Logger builds a logrus logger from LogLevel and LogFormat.
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
