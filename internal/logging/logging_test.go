package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel(" ERROR "))
	assert.Equal(t, slog.LevelWarn, ParseLevel("loud"), "unknown levels fall back to warn")
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
}

func TestErrorKeyRewrite(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAt(&buf, slog.LevelInfo)

	logger.Info("query failed", "error", errors.New("boom"))

	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=boom")
}

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAt(&buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
