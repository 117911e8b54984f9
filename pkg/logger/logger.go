package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// FormatJSON selects the JSON handler.
	FormatJSON = "json"

	// FormatText selects the text handler.
	FormatText = "text"
)

// Config describes how a logger is built.
type Config struct {
	// Module and Version are attached to every record.
	Module  string
	Version string

	// Level is a level name ("debug", "info", "warn", "error").
	// Empty falls back to the LOG_LEVEL environment variable, then info.
	Level string

	// Format is FormatJSON (default) or FormatText.
	Format string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a structured logger from cfg.
// AddSource is enabled for debug level logging only.
func New(cfg Config) *slog.Logger {
	level := cfg.Level
	if level == "" {
		level = os.Getenv(EnvVarLogLevel)
	}
	lev := ParseLogLevel(level)

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, FormatText) {
		h = slog.NewTextHandler(out, opts)
	} else {
		h = slog.NewJSONHandler(out, opts)
	}

	l := slog.New(h)
	if cfg.Module != "" {
		l = l.With("module", cfg.Module, "version", cfg.Version)
	}
	return l
}

// SetDefault builds a logger from cfg, installs it as the slog default and returns it.
func SetDefault(cfg Config) *slog.Logger {
	l := New(cfg)
	slog.SetDefault(l)
	return l
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	var lev slog.Level

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lev = slog.LevelDebug
	case "warn", "warning":
		lev = slog.LevelWarn
	case "error":
		lev = slog.LevelError
	default:
		lev = slog.LevelInfo
	}

	return lev
}
