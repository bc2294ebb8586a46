package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger()
	if err != nil {
		t.Fatalf("NewZapLogger failed: %v", err)
	}
	// Smoke test: all levels must be callable without panicking.
	l.Info("info", zap.String("k", "v"))
	l.Warn("warn", zap.Int("n", 1))
	l.Error("error", zap.Error(nil))
}

func TestNewNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Info("discarded")
	l.Warn("discarded")
	l.Error("discarded")
}
