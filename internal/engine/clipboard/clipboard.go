// Package clipboard stores the most recent yank.
//
// A yank is tagged with its kind: whole lines, a character range inside one
// line, or a rectangular block. Each new yank overwrites the previous one,
// except line yanks made in append mode which extend it.
package clipboard

import (
	"strings"

	"github.com/dshills/gapvim/internal/engine/buffer"
)

// Kind identifies the shape of the yanked text.
type Kind uint8

const (
	// None means nothing has been yanked yet.
	None Kind = iota
	// Lines holds whole lines.
	Lines
	// Chars holds a character range from one line.
	Chars
	// Block holds one segment per row of a rectangular selection.
	Block
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Lines:
		return "lines"
	case Chars:
		return "chars"
	case Block:
		return "block"
	default:
		return "none"
	}
}

// Clipboard holds the contents of the last yank. The zero value is empty.
type Clipboard struct {
	kind  Kind
	lines []*buffer.Line
	start int
	end   int
}

// New creates an empty clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Kind returns the kind of the current contents.
func (c *Clipboard) Kind() Kind {
	return c.kind
}

// Empty reports whether the clipboard holds nothing.
func (c *Clipboard) Empty() bool {
	return c.kind == None
}

// YankLines stores lines as a line yank. The clipboard takes ownership of
// the lines. With extend set and a line yank already present, the lines are
// appended to it instead of replacing it.
func (c *Clipboard) YankLines(lines []*buffer.Line, extend bool) {
	if extend && c.kind == Lines {
		c.lines = append(c.lines, lines...)
		return
	}
	c.kind = Lines
	c.lines = append([]*buffer.Line(nil), lines...)
	c.start, c.end = 0, 0
}

// YankChars stores text taken from columns [start, end) of a line.
func (c *Clipboard) YankChars(text string, start, end int) {
	c.kind = Chars
	c.lines = []*buffer.Line{buffer.NewLine(text)}
	c.start, c.end = start, end
}

// YankBlock stores one segment per row taken from columns [start, end).
func (c *Clipboard) YankBlock(rows []string, start, end int) {
	c.kind = Block
	c.lines = make([]*buffer.Line, len(rows))
	for i, r := range rows {
		c.lines[i] = buffer.NewLine(r)
	}
	c.start, c.end = start, end
}

// Lines returns copies of the stored lines, so callers may hand them to a
// document without sharing them with the clipboard.
func (c *Clipboard) Lines() []*buffer.Line {
	out := make([]*buffer.Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.Clone()
	}
	return out
}

// Text returns the stored text with rows joined by newlines.
func (c *Clipboard) Text() string {
	parts := make([]string, len(c.lines))
	for i, l := range c.lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}

// Rows returns the stored text, one entry per line or row.
func (c *Clipboard) Rows() []string {
	rows := make([]string, len(c.lines))
	for i, l := range c.lines {
		rows[i] = l.String()
	}
	return rows
}

// Columns returns the column range of a character or block yank.
func (c *Clipboard) Columns() (start, end int) {
	return c.start, c.end
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() {
	*c = Clipboard{}
}
