package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		logger := NewLogger(verbose)
		if logger == nil || logger.SugaredLogger == nil {
			t.Fatalf("NewLogger(%v) returned nil logger", verbose)
		}
		core := logger.Desugar().Core()
		if got := core.Enabled(zapcore.DebugLevel); got != verbose {
			t.Errorf("NewLogger(%v): debug enabled = %v", verbose, got)
		}
		if !core.Enabled(zapcore.WarnLevel) {
			t.Errorf("NewLogger(%v): warn should be enabled", verbose)
		}
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Infow("discarded", "key", "value")
	if logger.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger should not enable any level")
	}
}
