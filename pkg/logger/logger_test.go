package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Module: "navaug", Version: "v1", Level: "debug", Output: &buf})

	l.Debug("row rejected")
	out := buf.String()
	assert.Contains(t, out, `"msg":"row rejected"`)
	assert.Contains(t, out, `"module":"navaug"`)
	assert.Contains(t, out, `"version":"v1"`)
	assert.Contains(t, out, `"source"`)
}

func TestNewTextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: FormatText, Output: &buf})

	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewLevelFromEnv(t *testing.T) {
	t.Setenv(EnvVarLogLevel, "error")

	var buf bytes.Buffer
	l := New(Config{Output: &buf})
	l.Warn("hidden")
	assert.Empty(t, buf.String())
}
