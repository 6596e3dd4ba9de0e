package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/config"
	"github.com/dshills/gapvim/internal/dispatcher"
	"github.com/dshills/gapvim/internal/engine"
	"github.com/dshills/gapvim/internal/input/macro"
	"github.com/dshills/gapvim/internal/input/mode"
	"github.com/dshills/gapvim/internal/renderer"
	"github.com/dshills/gapvim/internal/renderer/backend"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app       *Application
	initOrder []string
}

// newBootstrapper creates a new bootstrapper for the application.
func newBootstrapper(app *Application) *bootstrapper {
	return &bootstrapper{
		app:       app,
		initOrder: make([]string, 0, 6),
	}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	steps := []struct {
		name string
		init func() error
	}{
		{"config", b.initConfig},
		{"logger", b.initLogger},
		{"engine", b.initEngine},
		{"dispatcher", b.initDispatcher},
		{"backend", b.initBackend},
		{"watcher", b.initWatcher},
	}

	for _, step := range steps {
		if err := step.init(); err != nil {
			b.cleanup()
			return &InitError{Component: step.name, Err: err}
		}
		b.initOrder = append(b.initOrder, step.name)
	}
	return nil
}

// initConfig loads the configuration. Errors in the file are not fatal:
// the defaults are used and the problem is shown on the message row.
func (b *bootstrapper) initConfig() error {
	cfg, err := config.Load(b.app.opts.ConfigPath)
	if err != nil {
		b.app.startupMessage = "config: " + err.Error()
		cfg = config.Default()
	}
	if b.app.opts.LogLevel != "" {
		cfg.Log.Level = b.app.opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	b.app.config = cfg
	return nil
}

func (b *bootstrapper) initLogger() error {
	cfg := b.app.config.Log
	level, err := cfg.ZapLevel()
	if err != nil {
		return err
	}
	if cfg.File == "" {
		b.app.logger = NewLogger(LoggerConfig{Level: level})
		return nil
	}

	f, err := OpenLogFile(cfg.File)
	if err != nil {
		return NewOperationError("open log", cfg.File, err)
	}
	b.app.logFile = f
	b.app.logger = NewLogger(LoggerConfig{Level: level, Output: f, Name: "gapvim"})
	b.app.logger.Info("starting",
		zap.String("config", b.app.opts.ConfigPath),
		zap.String("file", b.app.opts.File))
	return nil
}

func (b *bootstrapper) initEngine() error {
	app := b.app
	app.modes = mode.NewManager()
	app.modes.OnChange(func(from, to mode.Mode) {
		app.logger.Debug("mode changed", zap.Stringer("from", from), zap.Stringer("to", to))
	})

	opts := []engine.Option{
		engine.WithMaxHistory(app.config.Editor.MaxHistory),
		engine.WithLogger(app.logger.WithComponent("engine").Zap()),
		engine.WithModes(app.modes),
		engine.WithQuit(app.quit),
	}
	newOpts := []engine.Option{engine.WithLineEnding(app.config.Editor.Ending())}

	eng, isNew, err := openEngine(app.opts.File, opts, newOpts)
	if err != nil {
		return err
	}
	app.engine = eng
	app.doc = newDocument(app.opts.File)
	app.doc.IsNew = isNew && app.opts.File != ""

	doc := eng.Document()
	app.logger.Info("document opened",
		zap.String("path", app.doc.Path),
		zap.Stringer("id", doc.ID()),
		zap.Int("lines", doc.LineCount()),
		zap.Bool("new", app.doc.IsNew))
	return nil
}

func (b *bootstrapper) initDispatcher() error {
	app := b.app
	app.recorder = macro.NewRecorder(nil)

	if path := app.config.Macros.File; path != "" {
		if err := macro.Load(app.recorder, path); err != nil {
			// A corrupt macro file should not keep the editor from starting.
			app.logger.Warn("loading macros failed", zap.String("path", path), zap.Error(err))
		}
	}

	dcfg := dispatcher.DefaultConfig()
	dcfg.MaxRepeatCount = app.config.Editor.MaxRepeatCount
	app.dispatcher = dispatcher.New(app.engine, app.modes,
		dispatcher.WithConfig(dcfg),
		dispatcher.WithLogger(app.logger.WithComponent("dispatcher").Zap()),
		dispatcher.WithRecorder(app.recorder),
		dispatcher.WithSaver(app.save),
	)
	return nil
}

func (b *bootstrapper) initBackend() error {
	app := b.app
	if app.opts.Backend != nil {
		app.backend = app.opts.Backend
	} else {
		term, err := backend.NewTerminal()
		if err != nil {
			return err
		}
		app.backend = term
	}
	app.renderer = renderer.New(app.backend, renderer.DefaultOptions())
	return nil
}

// initWatcher starts watching the config file. A missing config
// directory just disables live reload.
func (b *bootstrapper) initWatcher() error {
	app := b.app
	if !app.opts.WatchConfig {
		return nil
	}

	dir := filepath.Dir(app.opts.ConfigPath)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		app.logger.Info("config directory missing, live reload disabled", zap.String("dir", dir))
		return nil
	}

	w, err := app.config.Watch(app.logger.WithComponent("config").Zap(), func() {
		_ = app.backend.PostInterrupt(reloadConfig{})
	})
	if err != nil {
		return err
	}
	app.watcher = w
	return nil
}

// cleanup releases components initialized so far, in reverse order.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		switch b.initOrder[i] {
		case "watcher":
			if b.app.watcher != nil {
				_ = b.app.watcher.Close()
			}
		case "logger":
			_ = b.app.logger.Sync()
			if b.app.logFile != nil {
				_ = b.app.logFile.Close()
			}
		}
	}
}
