package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	l := NewNop()
	require.NotNil(t, l)

	// All methods must be callable without side effects or panics,
	// including Fatal, which must not exit.
	l.Debug("debug", "k", "v")
	l.Info("info")
	l.Warn("warn")
	l.Error("error", "err", "boom")
	l.Fatal("fatal")
}
