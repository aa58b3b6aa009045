package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, "warn", false)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))

	logger.Warn("csv loaded", "records", 2)
	assert.Contains(t, buf.String(), "records=2")

	verbose := New(&buf, "error", true)
	assert.True(t, verbose.Enabled(context.Background(), slog.LevelDebug))
}
