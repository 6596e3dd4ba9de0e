package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/gapvim/internal/config/loader"
	"github.com/dshills/gapvim/internal/engine/buffer"
)

func noEnv() *loader.EnvLoader {
	return loader.NewEnvLoader(EnvPrefix).WithEnviron(func() []string { return nil })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Editor.MaxHistory != 50000 {
		t.Errorf("MaxHistory = %d, want 50000", cfg.Editor.MaxHistory)
	}
	if cfg.Editor.Ending() != buffer.LineEndingLF {
		t.Errorf("Ending() = %v, want lf", cfg.Editor.Ending())
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, err := load(path, noEnv())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	want := Default()
	want.path = path
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(Config{})); diff != "" {
		t.Errorf("missing file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[editor]
max_history = 200
line_ending = "crlf"

[log]
level = "debug"
file = "/tmp/gapvim.log"

[macros]
file = "/tmp/macros.json"
`)

	cfg, err := load(path, noEnv())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	want := Default()
	want.path = path
	want.Editor.MaxHistory = 200
	want.Editor.LineEnding = "crlf"
	want.Log = LogConfig{Level: "debug", File: "/tmp/gapvim.log"}
	want.Macros.File = "/tmp/macros.json"
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(Config{})); diff != "" {
		t.Errorf("load() mismatch (-want +got):\n%s", diff)
	}
	if cfg.Editor.MaxRepeatCount != 10000 {
		t.Errorf("unset key lost its default: MaxRepeatCount = %d", cfg.Editor.MaxRepeatCount)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, "[editor]\nmax_histroy = 10\n")

	_, err := load(path, noEnv())
	var pe *loader.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("load() error = %v, want ParseError", err)
	}
	if !strings.Contains(pe.Message, "max_histroy") {
		t.Errorf("Message = %q, want it to name the key", pe.Message)
	}
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2", pe.Line)
	}
}

func TestLoad_Syntax(t *testing.T) {
	path := writeConfig(t, "[editor\n")

	_, err := load(path, noEnv())
	var pe *loader.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("load() error = %v, want ParseError", err)
	}
	if pe.Path != path {
		t.Errorf("Path = %q, want %q", pe.Path, path)
	}
}

func TestLoad_Environment(t *testing.T) {
	path := writeConfig(t, "[editor]\nmax_history = 200\n")
	env := loader.NewEnvLoader(EnvPrefix).WithEnviron(func() []string {
		return []string{
			"GAPVIM_EDITOR_MAX_HISTORY=75",
			"GAPVIM_LOG_LEVEL=warn",
			"GAPVIM_DEBUG=1",
			"HOME=/root",
		}
	})

	cfg, err := load(path, env)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Editor.MaxHistory != 75 {
		t.Errorf("MaxHistory = %d, want 75 (environment beats file)", cfg.Editor.MaxHistory)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"zero history", func(c *Config) { c.Editor.MaxHistory = 0 }, "editor.max_history"},
		{"negative history", func(c *Config) { c.Editor.MaxHistory = -5 }, "editor.max_history"},
		{"line ending", func(c *Config) { c.Editor.LineEnding = "nel" }, "editor.line_ending"},
		{"repeat count", func(c *Config) { c.Editor.MaxRepeatCount = 0 }, "editor.max_repeat_count"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Path != tt.path {
				t.Errorf("Validate() error = %v, want path %s", err, tt.path)
			}
		})
	}
}

func TestValidate_Joined(t *testing.T) {
	cfg := Default()
	cfg.Editor.MaxHistory = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "editor.max_history") || !strings.Contains(msg, "log.level") {
		t.Errorf("Validate() = %q, want both problems", msg)
	}
}

func TestLogConfig_ZapLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		got, err := LogConfig{Level: tt.level}.ZapLevel()
		if err != nil {
			t.Errorf("ZapLevel(%q) error = %v", tt.level, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ZapLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestReload(t *testing.T) {
	path := writeConfig(t, "[editor]\nmax_history = 10\n")
	cfg, err := load(path, noEnv())
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("[editor]\nmax_history = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Reload(); err == nil {
		t.Error("Reload() of invalid file should fail")
	}
	if cfg.Editor.MaxHistory != 10 {
		t.Errorf("failed Reload changed receiver: MaxHistory = %d", cfg.Editor.MaxHistory)
	}
}

func TestWatch(t *testing.T) {
	path := writeConfig(t, "[editor]\nmax_history = 10\n")
	cfg, err := load(path, noEnv())
	if err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w, err := cfg.Watch(zap.NewNop(), func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[editor]\nmax_history = 20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("Watch() callback not called")
	}
}

func TestWatch_NoPath(t *testing.T) {
	if _, err := Default().Watch(zap.NewNop(), func() {}); !errors.Is(err, ErrNoPath) {
		t.Errorf("Watch() error = %v, want ErrNoPath", err)
	}
}
