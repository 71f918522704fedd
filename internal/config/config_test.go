package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fsmx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "log_level: debug\nlog_format: json\nworkers: 8\nmetrics: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{LogLevel: "debug", LogFormat: "json", Workers: 8, Metrics: true}, cfg)
}

func TestLoad_YAMLKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, "workers: 2\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "log_level: debug\nworkers: 8\n")
	t.Setenv("FSMX_WORKERS", "3")
	t.Setenv("FSMX_METRICS", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, config.ErrReadingFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "workers: [1\n"))
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("bad env", func(t *testing.T) {
		t.Setenv("FSMX_WORKERS", "many")
		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrParsingEnv)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "workers: 0\n"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)

		_, err = config.Load(writeFile(t, "log_format: xml\n"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)

		_, err = config.Load(writeFile(t, "log_level: loud\n"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{LogLevel: "warn", LogFormat: "json", Workers: 1}
	logger := cfg.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":"v"`)
}
