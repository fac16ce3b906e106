// Package logging configures the structured slog loggers used across ballsim.
// The level can be forced with the BALLSIM_LOG_LEVEL environment variable.
// Valid levels: DEBUG, INFO, WARN, ERROR.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable that overrides the configured level.
const EnvLevel = "BALLSIM_LOG_LEVEL"

// New returns a text logger writing to w. The environment level, when set
// and valid, takes precedence over level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: LevelFromEnv(level),
	})
	return slog.New(handler).With("app", "ballsim")
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenFile appends log records to path. Interactive frontends log here so
// records do not corrupt the terminal or window output.
func OpenFile(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LevelFromEnv returns the level named by BALLSIM_LOG_LEVEL, or fallback
// when the variable is unset or invalid.
func LevelFromEnv(fallback slog.Level) slog.Level {
	v, ok := os.LookupEnv(EnvLevel)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	level, err := ParseLevel(v)
	if err != nil {
		return fallback
	}
	return level
}
