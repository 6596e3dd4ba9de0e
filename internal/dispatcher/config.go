package dispatcher

import (
	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/input/macro"
)

// Config holds dispatcher configuration options.
type Config struct {
	// MaxRepeatCount limits the count prefix of a command.
	MaxRepeatCount int

	// RecentKeys is the number of recent keys remembered for display.
	RecentKeys int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxRepeatCount: 10000,
		RecentKeys:     16,
	}
}

// SaveFunc writes the document. An empty path means the current file.
type SaveFunc func(path string) error

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConfig sets the dispatcher configuration.
func WithConfig(c Config) Option {
	return func(d *Dispatcher) {
		if c.MaxRepeatCount > 0 {
			d.config.MaxRepeatCount = c.MaxRepeatCount
		}
		if c.RecentKeys > 0 {
			d.config.RecentKeys = c.RecentKeys
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithRecorder sets the macro recorder, e.g. one loaded from disk.
func WithRecorder(r *macro.Recorder) Option {
	return func(d *Dispatcher) {
		if r != nil {
			d.recorder = r
		}
	}
}

// WithSaver sets the function run by :w.
func WithSaver(fn SaveFunc) Option {
	return func(d *Dispatcher) {
		d.save = fn
	}
}
