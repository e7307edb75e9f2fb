package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/lmittmann/tint"
)

// Config is read from SERIESMATH_* environment variables. Command-line flags
// override the matching fields.
type Config struct {
	Precision int    `envconfig:"PRECISION" default:"100"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"tint"` // tint or json
	Output    string `envconfig:"OUTPUT" default:"text"`     // text, json or yaml
}

// LoadConfig reads the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("seriesmath", &cfg); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	if cfg.Precision < 0 {
		return Config{}, fmt.Errorf("SERIESMATH_PRECISION must be >= 0, got %d", cfg.Precision)
	}
	return cfg, nil
}

// NewLogger builds the process logger: tint for terminals, JSON for machines.
func NewLogger(w io.Writer, cfg Config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "", "tint":
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		})), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want tint or json)", cfg.LogFormat)
	}
}
