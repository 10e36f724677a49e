package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{3, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestInitialize(t *testing.T) {
	if err := Initialize(true); err != nil {
		t.Fatalf("Initialize(true) failed: %v", err)
	}
	if !JSONOutput {
		t.Error("expected JSONOutput to be true after Initialize(true)")
	}

	if err := Initialize(false); err != nil {
		t.Fatalf("Initialize(false) failed: %v", err)
	}
	if JSONOutput {
		t.Error("expected JSONOutput to be false after Initialize(false)")
	}
}

func TestComponentLogger(t *testing.T) {
	if err := Initialize(false); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	l := ComponentLogger("test")
	if l == nil {
		t.Fatal("ComponentLogger returned nil")
	}
	// Must not panic
	l.Debugw("component logger works", FieldComponent, "test")
}
