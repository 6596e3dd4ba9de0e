package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/engine/buffer"
	"github.com/dshills/gapvim/internal/engine/history"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine. The line ending is
// detected from the content unless WithLineEnding is also given.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithLineEnding sets the line ending used when the document is written.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(e *Engine) {
		e.lineEnding = ending
		e.hasLineEnding = true
	}
}

// WithMaxHistory sets the maximum number of recorded commands.
func WithMaxHistory(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxHistory = n
		}
	}
}

// WithLogger sets the logger shared by the document and the history.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithModes sets the mode switcher used by mode-changing commands.
func WithModes(m history.ModeSwitcher) Option {
	return func(e *Engine) {
		e.modes = m
	}
}

// WithQuit sets the callback run by quit commands.
func WithQuit(fn func(force bool)) Option {
	return func(e *Engine) {
		e.quit = fn
	}
}
