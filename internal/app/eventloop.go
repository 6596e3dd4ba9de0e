package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/input/macro"
	"github.com/dshills/gapvim/internal/renderer/backend"
)

// reloadConfig is posted by the config watcher. The reload itself runs on
// the event loop so no component is touched from the watcher goroutine.
type reloadConfig struct{}

// shutdownRequest is posted by Shutdown.
type shutdownRequest struct{}

// Shutdown asks the event loop to stop without saving. It is safe to call
// from any goroutine, e.g. a signal handler.
func (app *Application) Shutdown() {
	if err := app.backend.PostInterrupt(shutdownRequest{}); err != nil {
		app.logger.Warn("posting shutdown failed", zap.Error(err))
	}
}

// Run initializes the backend and processes events until the user quits
// or the backend is shut down. A panic restores the terminal before it
// propagates.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}

	defer func() {
		if r := recover(); r != nil {
			app.backend.Shutdown()
			app.logger.Error("panic", zap.Any("value", r), zap.Stack("stack"))
			app.close()
			panic(r)
		}
		app.backend.Shutdown()
		if cerr := app.close(); err == nil {
			err = cerr
		}
	}()

	app.logger.Info("event loop started")
	app.render()
	app.eventLoop()
	app.logger.Info("event loop stopped")
	return nil
}

// eventLoop is the main application loop. Everything that touches the
// engine runs here.
func (app *Application) eventLoop() {
	for !app.quitting {
		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventNone:
			return
		case backend.EventKey:
			app.startupMessage = ""
			app.dispatcher.Handle(ev.Key)
		case backend.EventResize:
			app.logger.Debug("resize", zap.Int("width", ev.Width), zap.Int("height", ev.Height))
		case backend.EventInterrupt:
			app.handleInterrupt(ev.Data)
		}

		if app.quitting {
			return
		}
		if ev.Type != backend.EventKey || app.engine.NeedsRender() {
			app.render()
		}
	}
}

func (app *Application) render() {
	app.renderer.Render(app.engine, app.status())
}

func (app *Application) handleInterrupt(data any) {
	switch data.(type) {
	case reloadConfig:
		app.reloadConfig()
	case shutdownRequest:
		app.logger.Info("shutdown requested")
		app.quitting = true
	default:
		app.logger.Warn("unknown interrupt", zap.String("type", fmt.Sprintf("%T", data)))
	}
}

// reloadConfig re-reads the configuration file. Only the log level takes
// effect immediately; history and line ending settings apply to the next
// session.
func (app *Application) reloadConfig() {
	cfg, err := app.config.Reload()
	if err != nil {
		app.logger.Warn("config reload failed", zap.Error(err))
		app.startupMessage = "config: " + err.Error()
		return
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if level, err := cfg.Log.ZapLevel(); err == nil {
		app.logger.SetLevel(level)
	}
	app.config = cfg
	app.startupMessage = "config reloaded"
	app.logger.Info("config reloaded", zap.String("path", cfg.Path()))
}

// close persists macros and releases resources. It is safe to call once
// Run is finished.
func (app *Application) close() error {
	var err error
	if path := app.config.Macros.File; path != "" {
		if err = macro.Save(app.recorder, path); err != nil {
			app.logger.Error("saving macros failed", zap.String("path", path), zap.Error(err))
			err = NewOperationError("save macros", path, err)
		}
	}
	if app.watcher != nil {
		_ = app.watcher.Close()
		app.watcher = nil
	}
	_ = app.logger.Sync()
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
	return err
}
