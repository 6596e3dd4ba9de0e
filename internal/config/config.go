package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/gapvim/internal/config/loader"
	"github.com/dshills/gapvim/internal/config/watcher"
	"github.com/dshills/gapvim/internal/engine/buffer"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "GAPVIM_"

// Config holds all gapvim settings.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
	Macros MacroConfig  `toml:"macros"`

	// path is the file the config was loaded from, if any.
	path string
}

// EditorConfig configures the editing engine.
type EditorConfig struct {
	// MaxHistory bounds the number of commands kept for undo.
	MaxHistory int `toml:"max_history"`
	// LineEnding is used for new files: "lf", "crlf" or "cr". Existing
	// files keep the ending they were read with.
	LineEnding string `toml:"line_ending"`
	// MaxRepeatCount caps a typed count prefix.
	MaxRepeatCount int `toml:"max_repeat_count"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File receives log output. Empty disables logging since the terminal
	// belongs to the editor.
	File string `toml:"file"`
}

// MacroConfig configures macro register persistence.
type MacroConfig struct {
	// File stores registers between sessions. Empty disables persistence.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			MaxHistory:     50000,
			LineEnding:     "lf",
			MaxRepeatCount: 10000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.config/gapvim/config.toml, honoring
// XDG_CONFIG_HOME through os.UserConfigDir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".gapvim", "config.toml")
	}
	return filepath.Join(dir, "gapvim", "config.toml")
}

// Load builds a Config from defaults, the TOML file at path (which may be
// missing or empty) and the process environment, then validates it.
func Load(path string) (*Config, error) {
	return load(path, loader.NewEnvLoader(EnvPrefix))
}

func load(path string, env *loader.EnvLoader) (*Config, error) {
	cfg := Default()
	cfg.path = path

	tl := loader.NewTOMLLoader(path)
	if path != "" {
		if _, err := tl.Load(cfg); err != nil {
			return nil, err
		}
	}

	// Unknown GAPVIM_* variables are common (GAPVIM_DEBUG etc.) so the
	// environment is decoded leniently.
	if err := tl.Lenient().LoadMap("environment", env.Load(), cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Reload re-reads the file the config was loaded from. On error the
// receiver is left unchanged.
func (c *Config) Reload() (*Config, error) {
	return Load(c.path)
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.MaxHistory < 1 {
		errs = append(errs, &ValidationError{
			Path: "editor.max_history", Value: c.Editor.MaxHistory, Message: "must be at least 1",
		})
	}
	if _, ok := buffer.ParseLineEnding(c.Editor.LineEnding); !ok {
		errs = append(errs, &ValidationError{
			Path: "editor.line_ending", Value: c.Editor.LineEnding, Message: `must be "lf", "crlf" or "cr"`,
		})
	}
	if c.Editor.MaxRepeatCount < 1 {
		errs = append(errs, &ValidationError{
			Path: "editor.max_repeat_count", Value: c.Editor.MaxRepeatCount, Message: "must be at least 1",
		})
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		errs = append(errs, &ValidationError{
			Path: "log.level", Value: c.Log.Level, Message: "must be debug, info, warn or error",
		})
	}

	return errors.Join(errs...)
}

// Ending returns the parsed line ending for new documents.
func (e EditorConfig) Ending() buffer.LineEnding {
	le, _ := buffer.ParseLineEnding(e.LineEnding)
	return le
}

// ZapLevel parses Level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return zapcore.InfoLevel, ErrValidationFailed
	}
	level := strings.ToLower(l.Level)
	if level == "warning" {
		level = "warn"
	}
	return zapcore.ParseLevel(level)
}

// Watch reports edits of the config file through fn. The returned watcher
// must be closed by the caller.
func (c *Config) Watch(logger *zap.Logger, fn func()) (*watcher.Watcher, error) {
	if c.path == "" {
		return nil, ErrNoPath
	}
	w, err := watcher.New(c.path, watcher.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := w.OnChange(func(watcher.Event) { fn() }); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}
