// Package logging builds zerolog loggers and carries them through context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables read by NewFromEnv.
const (
	EnvLogLevel  = "APPSHELL_LOG_LEVEL"
	EnvLogFormat = "APPSHELL_LOG_FORMAT"
)

// ConsoleTimeFormat is the timestamp layout of the console writer.
const ConsoleTimeFormat = "15:04:05.000"

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to stderr.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from the [logging] section values.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	if cfg.Format == "console" {
		cfg.TimeFormat = ConsoleTimeFormat
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// APPSHELL_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// APPSHELL_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
}
