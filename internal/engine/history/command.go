package history

import (
	"github.com/dshills/gapvim/internal/engine/buffer"
	"github.com/dshills/gapvim/internal/engine/clipboard"
	"github.com/dshills/gapvim/internal/input/mode"
)

// Command is an edit action that can be executed, undone and redone.
type Command interface {
	// Execute applies the command and reports whether the document changed.
	// Only commands that change the document are recorded.
	Execute() bool

	// Undo reverses a recorded execution.
	Undo()

	// Redo re-applies the command after Undo using the captured state.
	Redo()

	// Description returns a short human-readable description.
	Description() string

	// RenderHints returns the presentation flags set by the Log.
	RenderHints() *Hints
}

// Hints are presentation flags attached to a command. They never affect
// the document.
type Hints struct {
	// RenderExecute asks the renderer to redraw after the command.
	RenderExecute bool

	// IsFirst marks the first command of a batch run or of a repeated call.
	IsFirst bool
}

// ModeSwitcher changes the editor mode.
type ModeSwitcher interface {
	Mode() mode.Mode
	Switch(m mode.Mode)
}

// Context is what commands operate on. The document is borrowed; the Log
// owns the commands, never the document.
type Context struct {
	Doc       *buffer.Document
	Clipboard *clipboard.Clipboard
	Modes     ModeSwitcher
	Quit      func(force bool)
}

// Factory builds a fresh command bound to ctx.
type Factory func(ctx *Context) Command

// base carries the shared state of all commands: the context, the hints and
// the cursor captured before execution.
type base struct {
	ctx    *Context
	hints  Hints
	at     buffer.Point
	sticky int
}

// RenderHints returns the presentation flags of the command.
func (b *base) RenderHints() *Hints {
	return &b.hints
}

func (b *base) doc() *buffer.Document {
	return b.ctx.Doc
}

// mark records the cursor before the command runs.
func (b *base) mark() {
	b.at = b.ctx.Doc.CursorPosition()
	b.sticky = b.ctx.Doc.StickyColumn()
}

// restore puts the cursor back where mark found it.
func (b *base) restore() {
	b.ctx.Doc.MoveCursorTo(b.at.Line, b.at.Column)
	b.ctx.Doc.SetStickyColumn(b.sticky)
}

// insertText types text at (line, col) and leaves the cursor after it.
func insertText(d *buffer.Document, line, col int, text string) {
	d.MoveCursorTo(line, col)
	for i := 0; i < len(text); i++ {
		d.InsertCharacter(text[i])
	}
}

// deleteText removes n characters starting at (line, col).
func deleteText(d *buffer.Document, line, col, n int) {
	d.MoveCursorTo(line, col+n)
	for range n {
		d.DeleteCharacterBefore()
	}
}
