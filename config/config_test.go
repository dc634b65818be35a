package config_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/visibility/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AVV_WORKERS", "")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Equal(t, 0, cfg.MaxDepth)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, ".csv", cfg.Extension)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("AVV_WORKERS", "3")
	t.Setenv("AVV_LOG_LEVEL", "debug")
	t.Setenv("AVV_LOG_FORMAT", "json")
	t.Setenv("AVV_FORMAT", "yaml")
	t.Setenv("AVV_EXTENSION", ".txt")
	t.Setenv("AVV_METRICS_FILE", "/tmp/avv.prom")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, ".txt", cfg.Extension)
	assert.Equal(t, "/tmp/avv.prom", cfg.MetricsFile)

	logger := cfg.Logger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"workers not int": {"AVV_WORKERS", "many"},
		"workers zero":    {"AVV_WORKERS", "0"},
		"negative depth":  {"AVV_MAX_DEPTH", "-1"},
		"bad level":       {"AVV_LOG_LEVEL", "loud"},
		"bad log format":  {"AVV_LOG_FORMAT", "xml"},
		"bad output":      {"AVV_FORMAT", "xml"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
