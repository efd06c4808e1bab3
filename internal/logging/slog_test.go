package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), &buf
}

func TestSlogLogger(t *testing.T) {
	t.Run("logs at each level", func(t *testing.T) {
		logger, buf := newBufferLogger(slog.LevelDebug)

		logger.Debug("debug message", "key", "value")
		logger.Info("info message", "node", 2)
		logger.Warn("warn message")
		logger.Error("error message", "error", "boom")

		out := buf.String()
		require.Contains(t, out, "debug message")
		require.Contains(t, out, "info message")
		require.Contains(t, out, "node=2")
		require.Contains(t, out, "warn message")
		require.Contains(t, out, "error message")
		require.Contains(t, out, "error=boom")
	})

	t.Run("respects handler level", func(t *testing.T) {
		logger, buf := newBufferLogger(slog.LevelWarn)

		logger.Debug("hidden")
		logger.Info("also hidden")
		logger.Warn("visible")

		out := buf.String()
		require.NotContains(t, out, "hidden")
		require.Contains(t, out, "visible")
	})

	t.Run("default logger wraps slog.Default", func(t *testing.T) {
		require.NotNil(t, NewSlogDefault())
	})
}
