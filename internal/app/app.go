// Package app provides the main application structure and coordination
// for the gapvim editor. It wires the engine, dispatcher, renderer and
// configuration together and runs the single-threaded event loop.
package app

import (
	"io"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/config"
	"github.com/dshills/gapvim/internal/config/watcher"
	"github.com/dshills/gapvim/internal/dispatcher"
	"github.com/dshills/gapvim/internal/engine"
	"github.com/dshills/gapvim/internal/input/macro"
	"github.com/dshills/gapvim/internal/input/mode"
	"github.com/dshills/gapvim/internal/renderer"
	"github.com/dshills/gapvim/internal/renderer/backend"
)

// Application is the central coordinator for all gapvim components.
type Application struct {
	opts Options

	// Infrastructure
	config  *config.Config
	logger  *Logger
	logFile io.Closer
	watcher *watcher.Watcher

	// Editor components
	engine     *engine.Engine
	modes      *mode.Manager
	recorder   *macro.Recorder
	dispatcher *dispatcher.Dispatcher
	backend    backend.Backend
	renderer   *renderer.Renderer

	doc *Document

	// startupMessage is shown until the first key, e.g. a config error.
	startupMessage string

	running  atomic.Bool
	quitting bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty means
	// config.DefaultPath().
	ConfigPath string

	// File is the file to edit. Empty starts an unnamed buffer.
	File string

	// LogLevel overrides log.level from the configuration.
	LogLevel string

	// Backend replaces the terminal, mostly for tests.
	Backend backend.Backend

	// WatchConfig reloads the configuration when its file changes.
	WatchConfig bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath()
	}
	app := &Application{
		opts:   opts,
		logger: NullLogger,
	}

	if err := newBootstrapper(app).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Engine returns the editing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Dispatcher returns the key dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Document returns the file being edited.
func (app *Application) Document() *Document {
	return app.doc
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// quit is called by the Quit command through the engine context.
func (app *Application) quit(force bool) {
	app.logger.Info("quit requested", zap.Bool("force", force))
	app.quitting = true
}

// status collects what the renderer shows below the text.
func (app *Application) status() renderer.Status {
	msg := app.dispatcher.Message()
	if msg == "" {
		msg = app.startupMessage
	}
	return renderer.Status{
		Mode:        app.dispatcher.Mode(),
		FileName:    app.doc.Name,
		Modified:    app.engine.Modified(),
		Pending:     app.dispatcher.Pending(),
		Message:     msg,
		CommandLine: app.dispatcher.CommandLine(),
		Recording:   app.dispatcher.Recording(),
	}
}
