// Package config loads settings for the fsmx command line tools.
//
// Values are layered: built-in defaults, then an optional YAML file, then variables
// from a .env file in the working directory, then the process environment. Later
// layers win.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// ErrReadingFile is returned when the YAML config file cannot be read or decoded.
	ErrReadingFile = errors.New("failed to read config file")

	// ErrParsingEnv is returned when environment variables cannot be parsed into the config.
	ErrParsingEnv = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a loaded value is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds CLI settings.
type Config struct {
	LogLevel  string `yaml:"log_level" env:"FSMX_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"FSMX_LOG_FORMAT"`
	Workers   int    `yaml:"workers" env:"FSMX_WORKERS"`
	Metrics   bool   `yaml:"metrics" env:"FSMX_METRICS"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   4,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when path is
// empty), .env and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Join(ErrReadingFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Join(ErrReadingFile, fmt.Errorf("yaml unmarshal %s: %w", path, err))
		}
	}

	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("log format %q: want text or json", c.LogFormat))
	}
	if c.Workers < 1 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Logger returns a slog.Logger writing to w in the configured format and level.
// An unparsable level falls back to info.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
