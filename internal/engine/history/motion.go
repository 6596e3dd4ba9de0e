package history

import (
	"fmt"
	"math"

	"github.com/dshills/gapvim/internal/engine/buffer"
)

// MotionCommand moves the cursor. Motions never change the document, so
// the Log does not record them.
type MotionCommand struct {
	base
	name        string
	move        func(d *buffer.Document)
	after       buffer.Point
	afterSticky int
}

func motion(name string, move func(d *buffer.Document)) Factory {
	return func(ctx *Context) Command {
		return &MotionCommand{base: base{ctx: ctx}, name: name, move: move}
	}
}

// Execute moves the cursor and always returns false.
func (c *MotionCommand) Execute() bool {
	c.mark()
	c.move(c.doc())
	c.after = c.doc().CursorPosition()
	c.afterSticky = c.doc().StickyColumn()
	return false
}

// Undo returns the cursor to where it was.
func (c *MotionCommand) Undo() {
	c.restore()
}

// Redo moves the cursor to where Execute left it.
func (c *MotionCommand) Redo() {
	c.doc().MoveCursorTo(c.after.Line, c.after.Column)
	c.doc().SetStickyColumn(c.afterSticky)
}

// Description returns the motion name.
func (c *MotionCommand) Description() string {
	return c.name
}

// MoveColumn moves the cursor delta characters along the current line.
func MoveColumn(delta int) Factory {
	return motion(fmt.Sprintf("move column %+d", delta), func(d *buffer.Document) {
		d.ShiftColumn(delta)
	})
}

// MoveLine moves the cursor delta lines, keeping the sticky column.
func MoveLine(delta int) Factory {
	return motion(fmt.Sprintf("move line %+d", delta), func(d *buffer.Document) {
		d.ShiftLine(delta)
	})
}

// MoveLineStart moves the cursor to column 0.
func MoveLineStart() Factory {
	return motion("move to line start", func(d *buffer.Document) {
		d.MoveCursorTo(d.CursorPosition().Line, 0)
	})
}

// MoveLineEnd moves the cursor to the last character of the line. Later
// vertical moves stay at the end of each line.
func MoveLineEnd() Factory {
	return motion("move to line end", func(d *buffer.Document) {
		line := d.CursorPosition().Line
		d.MoveCursorTo(line, max(d.LineLength(line)-1, 0))
		d.SetStickyColumn(math.MaxInt)
	})
}

// MoveFileStart moves the cursor to the start of the first line.
func MoveFileStart() Factory {
	return motion("move to file start", func(d *buffer.Document) {
		d.MoveCursorTo(0, 0)
	})
}

// MoveFileEnd moves the cursor to the start of the last line.
func MoveFileEnd() Factory {
	return motion("move to file end", func(d *buffer.Document) {
		d.MoveCursorTo(d.LineCount()-1, 0)
	})
}

// MoveTo moves the cursor to (line, col), clamped to the document.
func MoveTo(line, col int) Factory {
	return motion(fmt.Sprintf("move to %d:%d", line, col), func(d *buffer.Document) {
		d.MoveCursorTo(line, col)
	})
}
