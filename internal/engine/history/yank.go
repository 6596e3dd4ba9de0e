package history

import (
	"fmt"
	"strings"

	"github.com/dshills/gapvim/internal/engine/buffer"
	"github.com/dshills/gapvim/internal/engine/clipboard"
)

// YankLinesCommand copies whole lines to the clipboard.
type YankLinesCommand struct {
	base
	count int
}

// YankLines copies count lines starting at the cursor line. It never
// changes the document.
func YankLines(count int) Factory {
	return func(ctx *Context) Command {
		return &YankLinesCommand{base: base{ctx: ctx}, count: max(count, 1)}
	}
}

func (c *YankLinesCommand) Execute() bool {
	c.mark()
	cb := c.ctx.Clipboard
	if cb == nil {
		return false
	}
	d := c.doc()
	end := min(c.at.Line+c.count, d.LineCount())
	lines := make([]*buffer.Line, 0, end-c.at.Line)
	for i := c.at.Line; i < end; i++ {
		lines = append(lines, buffer.NewLine(d.LineText(i)))
	}
	cb.YankLines(lines, false)
	return false
}

func (c *YankLinesCommand) Undo() {}
func (c *YankLinesCommand) Redo() {}

func (c *YankLinesCommand) Description() string {
	return fmt.Sprintf("yank %d lines", c.count)
}

// YankToLineEndCommand copies the rest of the cursor line.
type YankToLineEndCommand struct {
	base
}

// YankToLineEnd copies the text from the cursor to the end of the line as
// a character yank.
func YankToLineEnd() Factory {
	return func(ctx *Context) Command {
		return &YankToLineEndCommand{base: base{ctx: ctx}}
	}
}

func (c *YankToLineEndCommand) Execute() bool {
	c.mark()
	if cb := c.ctx.Clipboard; cb != nil {
		text := c.doc().LineText(c.at.Line)
		start := min(c.at.Column, len(text))
		cb.YankChars(text[start:], start, len(text))
	}
	return false
}

func (c *YankToLineEndCommand) Undo() {}
func (c *YankToLineEndCommand) Redo() {}

func (c *YankToLineEndCommand) Description() string {
	return "yank to line end"
}

// segment is text placed at one position by a put.
type segment struct {
	line int
	col  int
	text string
}

// PutCommand inserts the clipboard contents.
type PutCommand struct {
	base
	above bool
	kind  clipboard.Kind

	// line puts
	first int
	count int
	lines []*buffer.Line

	// character and block puts
	segments []segment
	added    int
	cursor   buffer.Point
}

// Put inserts the clipboard contents after the cursor, or before it when
// above is set. Line yanks become new lines, character yanks are inserted
// into the cursor line and block yanks place one row per line starting at
// the cursor column, padding short lines and appending lines as needed.
func Put(above bool) Factory {
	return func(ctx *Context) Command {
		return &PutCommand{base: base{ctx: ctx}, above: above}
	}
}

func (c *PutCommand) Execute() bool {
	c.mark()
	cb := c.ctx.Clipboard
	if cb == nil || cb.Empty() {
		return false
	}
	c.kind = cb.Kind()
	d := c.doc()

	if c.kind == clipboard.Lines {
		c.first = c.at.Line + 1
		if c.above {
			c.first = c.at.Line
		}
		c.lines = cb.Lines()
		c.count = len(c.lines)
		c.putLines()
		return true
	}

	col := c.at.Column
	if !c.above && d.LineLength(c.at.Line) > 0 {
		col++
	}
	rows := cb.Rows()
	c.added = max(c.at.Line+len(rows)-d.LineCount(), 0)
	for i, text := range rows {
		line := c.at.Line + i
		n := 0
		if line < d.LineCount() {
			n = d.LineLength(line)
		}
		seg := segment{line: line, col: min(col, n), text: text}
		if c.kind == clipboard.Block && n < col {
			seg.text = strings.Repeat(" ", col-n) + text
		}
		c.segments = append(c.segments, seg)
	}
	c.cursor = buffer.Point{Line: c.at.Line, Column: col}
	if c.kind == clipboard.Chars && len(rows) == 1 {
		c.cursor.Column = col + max(len(rows[0])-1, 0)
	}
	c.putSegments()
	return true
}

func (c *PutCommand) putLines() {
	c.doc().InsertLines(c.first, c.lines)
	c.lines = nil
}

func (c *PutCommand) putSegments() {
	d := c.doc()
	if c.added > 0 {
		extra := make([]*buffer.Line, c.added)
		for i := range extra {
			extra[i] = buffer.NewLine("")
		}
		d.InsertLines(d.LineCount(), extra)
	}
	for _, s := range c.segments {
		insertText(d, s.line, s.col, s.text)
	}
	d.MoveCursorTo(c.cursor.Line, c.cursor.Column)
}

func (c *PutCommand) Undo() {
	d := c.doc()
	if c.kind == clipboard.Lines {
		d.MoveCursorTo(c.first, 0)
		c.lines, _ = d.RemoveLines(c.count)
		c.restore()
		return
	}
	for i := len(c.segments) - 1; i >= 0; i-- {
		s := c.segments[i]
		deleteText(d, s.line, s.col, len(s.text))
	}
	if c.added > 0 {
		d.MoveCursorTo(d.LineCount()-c.added, 0)
		d.RemoveLines(c.added)
	}
	c.restore()
}

func (c *PutCommand) Redo() {
	if c.kind == clipboard.Lines {
		c.putLines()
		return
	}
	c.putSegments()
}

func (c *PutCommand) Description() string {
	if c.above {
		return "put before"
	}
	return "put after"
}
