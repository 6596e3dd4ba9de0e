package app

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: zapcore.InfoLevel, Output: &buf, Name: "gapvim"})

	l.Debug("hidden")
	l.WithComponent("engine").Info("visible", zap.Int("lines", 3))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level:\n%s", out)
	}
	for _, want := range []string{"gapvim", "visible", `"component": "engine"`, `"lines": 3`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLogger_SetLevelShared(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: zapcore.ErrorLevel, Output: &buf})
	child := l.WithField("k", "v")

	child.Warn("first")
	if buf.Len() != 0 {
		t.Fatalf("warn written at error level: %s", buf.String())
	}

	l.SetLevel(zapcore.WarnLevel)
	child.Warn("second")
	if !strings.Contains(buf.String(), "second") {
		t.Errorf("child did not pick up the new level: %q", buf.String())
	}
	if child.Level() != zapcore.WarnLevel {
		t.Errorf("child.Level() = %v, want warn", child.Level())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("dropped")
	if NullLogger.Zap() == nil {
		t.Error("Zap() = nil")
	}
	if err := NullLogger.Sync(); err != nil {
		t.Errorf("Sync() = %v", err)
	}
}
