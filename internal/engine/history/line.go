package history

import "github.com/dshills/gapvim/internal/engine/buffer"

// InsertLineCommand opens an empty line.
type InsertLineCommand struct {
	base
	above bool
	line  int
}

// InsertLine opens an empty line below the cursor line, or above it, and
// moves the cursor there.
func InsertLine(above bool) Factory {
	return func(ctx *Context) Command {
		return &InsertLineCommand{base: base{ctx: ctx}, above: above}
	}
}

func (c *InsertLineCommand) Execute() bool {
	c.mark()
	c.doc().InsertLine(c.above)
	c.line = c.doc().CursorPosition().Line
	return true
}

func (c *InsertLineCommand) Undo() {
	c.doc().MoveCursorTo(c.line, 0)
	c.doc().RemoveLines(1)
	c.restore()
}

func (c *InsertLineCommand) Redo() {
	c.restore()
	c.doc().InsertLine(c.above)
}

func (c *InsertLineCommand) Description() string {
	if c.above {
		return "open line above"
	}
	return "open line below"
}

// SplitLineCommand breaks a line at the cursor.
type SplitLineCommand struct {
	base
}

// SplitLine moves the text after the cursor to a new line below.
func SplitLine() Factory {
	return func(ctx *Context) Command {
		return &SplitLineCommand{base: base{ctx: ctx}}
	}
}

func (c *SplitLineCommand) Execute() bool {
	c.mark()
	c.doc().SplitLine()
	return true
}

func (c *SplitLineCommand) Undo() {
	c.doc().MoveCursorTo(c.at.Line, 0)
	c.doc().JoinLine()
	c.restore()
}

func (c *SplitLineCommand) Redo() {
	c.restore()
	c.doc().SplitLine()
}

func (c *SplitLineCommand) Description() string {
	return "split line"
}

// JoinLineCommand joins a line with the next one.
type JoinLineCommand struct {
	base
	col int
}

// JoinLine appends the next line to the cursor line without a separator.
// It is a no-op on the last line.
func JoinLine() Factory {
	return func(ctx *Context) Command {
		return &JoinLineCommand{base: base{ctx: ctx}}
	}
}

func (c *JoinLineCommand) Execute() bool {
	c.mark()
	col, ok := c.doc().JoinLine()
	c.col = col
	return ok
}

func (c *JoinLineCommand) Undo() {
	c.doc().MoveCursorTo(c.at.Line, c.col)
	c.doc().SplitLine()
	c.restore()
}

func (c *JoinLineCommand) Redo() {
	c.restore()
	c.doc().JoinLine()
}

func (c *JoinLineCommand) Description() string {
	return "join lines"
}

// DeleteLineCommand removes the cursor line.
type DeleteLineCommand struct {
	base
	start       *int
	removed     []*buffer.Line
	placeholder bool
}

// DeleteLine removes the cursor line and yanks it. Repetitions of one call
// extend the yank, so "3dd" leaves all three lines in the clipboard.
// Repetitions stop once no line is left at or below the line the call
// started on, and deleting the only, empty, line is a no-op.
func DeleteLine() Factory {
	start := -1
	return func(ctx *Context) Command {
		return &DeleteLineCommand{base: base{ctx: ctx}, start: &start}
	}
}

func (c *DeleteLineCommand) Execute() bool {
	c.mark()
	if c.hints.IsFirst || *c.start < 0 {
		*c.start = c.at.Line
	} else if c.at.Line != *c.start {
		// The lines below the start are used up and the cursor was
		// clamped onto an earlier line.
		return false
	}
	d := c.doc()
	if d.LineCount() == 1 && d.LineLength(0) == 0 {
		return false
	}
	c.apply()
	if cb := c.ctx.Clipboard; cb != nil {
		yank := make([]*buffer.Line, len(c.removed))
		for i, l := range c.removed {
			yank[i] = l.Clone()
		}
		cb.YankLines(yank, !c.hints.IsFirst)
	}
	return true
}

func (c *DeleteLineCommand) apply() {
	c.doc().MoveCursorTo(c.at.Line, 0)
	c.removed, c.placeholder = c.doc().RemoveLines(1)
}

func (c *DeleteLineCommand) Undo() {
	d := c.doc()
	if c.placeholder {
		// The document holds only the empty stand-in line.
		d.InsertLines(0, c.removed)
		d.MoveCursorTo(len(c.removed), 0)
		d.RemoveLines(1)
	} else {
		d.InsertLines(c.at.Line, c.removed)
	}
	c.removed = nil
	c.restore()
}

func (c *DeleteLineCommand) Redo() {
	c.apply()
}

func (c *DeleteLineCommand) Description() string {
	return "delete line"
}
