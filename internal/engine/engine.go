package engine

import (
	"io"

	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/engine/buffer"
	"github.com/dshills/gapvim/internal/engine/clipboard"
	"github.com/dshills/gapvim/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Point is a line/column position.
	Point = buffer.Point

	// LineEnding is the line terminator style of a document.
	LineEnding = buffer.LineEnding

	// Command is an undoable edit command.
	Command = history.Command

	// Factory builds a command bound to the engine's context.
	Factory = history.Factory
)

// Re-export constants.
const (
	LineEndingLF   = buffer.LineEndingLF
	LineEndingCRLF = buffer.LineEndingCRLF
	LineEndingCR   = buffer.LineEndingCR
)

// Engine ties a document to its clipboard and command log.
type Engine struct {
	doc       *buffer.Document
	clipboard *clipboard.Clipboard
	log       *history.Log
	ctx       *history.Context

	// Configuration
	initContent   string
	lineEnding    LineEnding
	hasLineEnding bool
	maxHistory    int
	logger        *zap.Logger
	modes         history.ModeSwitcher
	quit          func(force bool)
}

// New creates an engine. Without content the document is a single empty
// line.
func New(opts ...Option) *Engine {
	e := newEngine(opts)
	e.init(buffer.NewDocumentFromString(e.initContent, e.docOptions()...))
	return e
}

// NewFromReader creates an engine with content read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	doc, err := buffer.NewDocumentFromReader(r, e.docOptions()...)
	if err != nil {
		return nil, err
	}
	e.init(doc)
	return e, nil
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		maxHistory: history.DefaultMaxHistory,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) docOptions() []buffer.Option {
	opts := []buffer.Option{buffer.WithLogger(e.logger)}
	if e.hasLineEnding {
		opts = append(opts, buffer.WithLineEnding(e.lineEnding))
	}
	return opts
}

func (e *Engine) init(doc *buffer.Document) {
	e.doc = doc
	e.clipboard = clipboard.New()
	e.ctx = &history.Context{
		Doc:       doc,
		Clipboard: e.clipboard,
		Modes:     e.modes,
		Quit:      e.quit,
	}
	e.log = history.NewLog(e.ctx,
		history.WithMaxHistory(e.maxHistory),
		history.WithLogger(e.logger))
}

// ============================================================================
// Commands and history
// ============================================================================

// Execute runs repetition commands built by f. See history.Log.Execute.
func (e *Engine) Execute(f Factory, repetition uint, batch bool) {
	e.log.Execute(f, repetition, batch)
}

// Flush ends the current batch run.
func (e *Engine) Flush() {
	e.log.Flush()
}

// Undo reverts the newest generation of edits.
func (e *Engine) Undo() error {
	if !e.log.Undo() {
		return ErrNothingToUndo
	}
	return nil
}

// Redo re-applies the oldest undone generation of edits.
func (e *Engine) Redo() error {
	if !e.log.Redo() {
		return ErrNothingToRedo
	}
	return nil
}

// CanUndo reports whether there is something to undo.
func (e *Engine) CanUndo() bool {
	return e.log.CanUndo()
}

// CanRedo reports whether there is something to redo.
func (e *Engine) CanRedo() bool {
	return e.log.CanRedo()
}

// NeedsRender reports whether the newest applied command asked for a redraw.
// With nothing applied it returns true.
func (e *Engine) NeedsRender() bool {
	cmd := e.log.LastCommand()
	return cmd == nil || cmd.RenderHints().RenderExecute
}

// ============================================================================
// Accessors
// ============================================================================

// Document returns the edited document.
func (e *Engine) Document() *buffer.Document {
	return e.doc
}

// Clipboard returns the clipboard.
func (e *Engine) Clipboard() *clipboard.Clipboard {
	return e.clipboard
}

// History returns the command log.
func (e *Engine) History() *history.Log {
	return e.log
}

// Context returns the context commands are bound to.
func (e *Engine) Context() *history.Context {
	return e.ctx
}

// Text returns the document content using its line ending.
func (e *Engine) Text() string {
	return e.doc.Text()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.doc.LineCount()
}

// LineText returns the text of line i.
func (e *Engine) LineText(i int) string {
	return e.doc.LineText(i)
}

// Cursor returns the cursor position.
func (e *Engine) Cursor() Point {
	return e.doc.CursorPosition()
}

// Modified reports whether the document changed since it was loaded or
// last saved.
func (e *Engine) Modified() bool {
	return e.doc.Modified()
}

// ============================================================================
// I/O
// ============================================================================

// WriteTo writes the document content to w.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.doc.Text())
	return int64(n), err
}

// MarkSaved clears the modified flag after the content has been persisted.
func (e *Engine) MarkSaved() {
	e.log.MarkSaved()
}
