package buffer

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/engine/gap"
)

// Document owns the lines of one open file together with the cursor.
//
// The cursor satisfies 0 <= line < LineCount() and
// 0 <= column <= LineLength(line). The sticky column remembers the last
// horizontal position chosen by the user so vertical motion over shorter
// lines can return to it.
type Document struct {
	id       uuid.UUID
	lines    gap.Buffer[*Line]
	line     int
	col      int
	sticky   int
	modified bool

	lineEnding LineEnding
	logger     *zap.Logger
}

// NewDocument creates a document from an ordered sequence of lines.
// No lines yields a document with a single empty line.
func NewDocument(lines []string, opts ...Option) *Document {
	d := &Document{
		id:     uuid.New(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	handles := make([]*Line, len(lines))
	for i, s := range lines {
		handles[i] = NewLine(s)
	}
	d.lines = *gap.FromSlice(handles, len(handles)/2+1)
	d.sync()
	d.logger.Debug("document created",
		zap.Stringer("id", d.id),
		zap.Int("lines", len(lines)),
		zap.Stringer("lineEnding", d.lineEnding))
	return d
}

// NewDocumentFromString creates a document from text. The line ending is
// detected from the text unless an option overrides it; a final terminator
// does not start an extra line.
func NewDocumentFromString(text string, opts ...Option) *Document {
	opts = append([]Option{WithLineEnding(DetectLineEnding(text))}, opts...)
	return NewDocument(SplitLines(text), opts...)
}

// NewDocumentFromReader creates a document from the contents of r.
func NewDocumentFromReader(r io.Reader, opts ...Option) (*Document, error) {
	// Read everything first; a CRLF pair may straddle read boundaries.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewDocumentFromString(string(data), opts...), nil
}

// SplitLines normalizes line endings and splits text into lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// ID returns the session identifier of the document.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// LineEnding returns the line ending used by Text.
func (d *Document) LineEnding() LineEnding {
	return d.lineEnding
}

// Modified reports whether the document changed since it was opened or
// last marked clean.
func (d *Document) Modified() bool {
	return d.modified
}

// SetModified sets the modified flag.
func (d *Document) SetModified(modified bool) {
	d.modified = modified
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (d *Document) LineCount() int {
	return d.lines.Len()
}

// LineLength returns the length in bytes of line i, clamped into range.
func (d *Document) LineLength(i int) int {
	return d.lineAt(i).Len()
}

// LineText returns the text of line i, clamped into range.
func (d *Document) LineText(i int) string {
	return d.lineAt(i).String()
}

// CharAt returns the byte at (line, col). The second result is false when
// the position holds no character.
func (d *Document) CharAt(line, col int) (byte, bool) {
	if line < 0 || line >= d.LineCount() {
		return 0, false
	}
	l := d.lines.At(line)
	if col < 0 || col >= l.Len() {
		return 0, false
	}
	return l.At(col), true
}

// Lines returns the text of every line.
func (d *Document) Lines() []string {
	out := make([]string, d.LineCount())
	for i := range out {
		out[i] = d.LineText(i)
	}
	return out
}

// Text returns the document joined with its line ending, terminated by a
// final line ending unless the document is a single empty line.
func (d *Document) Text() string {
	if d.LineCount() == 1 && d.LineLength(0) == 0 {
		return ""
	}
	eol := d.lineEnding.Sequence()
	return strings.Join(d.Lines(), eol) + eol
}

// Cursor Operations

// CursorPosition returns the cursor position.
func (d *Document) CursorPosition() Point {
	return Point{Line: d.line, Column: d.col}
}

// StickyColumn returns the column vertical motion tries to restore.
func (d *Document) StickyColumn() int {
	return d.sticky
}

// SetStickyColumn sets the column vertical motion tries to restore.
// Large values stick the cursor to line ends.
func (d *Document) SetStickyColumn(col int) {
	if col < 0 {
		col = 0
	}
	d.sticky = col
}

// MoveCursorTo places the cursor at (line, col), clamping line into
// [0, LineCount()) and col into [0, LineLength(line)].
func (d *Document) MoveCursorTo(line, col int) {
	d.line = clamp(line, 0, d.LineCount()-1)
	d.col = clamp(col, 0, d.lineAt(d.line).Len())
	d.sticky = d.col
	d.sync()
}

// ShiftColumn moves the cursor delta columns within the current line,
// staying on a character (never past the last one).
func (d *Document) ShiftColumn(delta int) {
	n := d.lineAt(d.line).Len()
	if n == 0 {
		d.col = 0
	} else {
		d.col = clamp(d.col+delta, 0, n-1)
	}
	d.sticky = d.col
	d.sync()
}

// ShiftLine moves the cursor delta lines, placing it on the sticky column
// or on the last character of a shorter line.
func (d *Document) ShiftLine(delta int) {
	d.line = clamp(d.line+delta, 0, d.LineCount()-1)
	d.col = max(min(d.sticky, d.lineAt(d.line).Len()-1), 0)
	d.sync()
}

// Character Operations

// InsertCharacter inserts ch at the cursor and moves the cursor past it.
func (d *Document) InsertCharacter(ch byte) {
	d.current().insert(d.col, ch)
	d.col++
	d.sticky = d.col
}

// DeleteCharacterBefore removes the character immediately left of the
// cursor. It returns false at column 0.
func (d *Document) DeleteCharacterBefore() (byte, bool) {
	if d.col == 0 {
		return 0, false
	}
	ch, ok := d.current().deleteBefore(d.col)
	if ok {
		d.col--
		d.sticky = d.col
	}
	return ch, ok
}

// DeleteCharacterAt removes the character under the cursor. The cursor
// column is unchanged, so it may end up after the last character.
// It returns false when there is no character under the cursor.
func (d *Document) DeleteCharacterAt() (byte, bool) {
	l := d.current()
	if d.col >= l.Len() {
		return 0, false
	}
	return l.deleteBefore(d.col + 1)
}

// ReplaceCharacter overwrites the character under the cursor and returns
// the previous one. It returns false when there is no character under the
// cursor.
func (d *Document) ReplaceCharacter(ch byte) (byte, bool) {
	l := d.current()
	if d.col >= l.Len() {
		return 0, false
	}
	old := l.At(d.col)
	l.set(d.col, ch)
	return old, true
}

// Line Operations

// InsertLine creates an empty line below (or above) the cursor line and
// moves the cursor to its start.
func (d *Document) InsertLine(above bool) {
	at := d.line + 1
	if above {
		at = d.line
	}
	d.insertLineAt(at, NewLine(""))
	d.line = at
	d.col = 0
	d.sticky = 0
	d.sync()
}

// SplitLine breaks the cursor line at the cursor. The text after the cursor
// moves to a new line below and the cursor moves to its start.
func (d *Document) SplitLine() {
	tail := d.current().split(d.col)
	d.insertLineAt(d.line+1, tail)
	d.line++
	d.col = 0
	d.sticky = 0
	d.sync()
}

// JoinLine appends the line below to the cursor line and places the cursor
// at the join point. It returns the join column, or false on the last line.
func (d *Document) JoinLine() (int, bool) {
	if d.line+1 >= d.LineCount() {
		return 0, false
	}
	next := d.removeLineAt(d.line + 1)
	cur := d.current()
	at := cur.Len()
	cur.join(next)
	d.col = at
	d.sticky = at
	d.sync()
	return at, true
}

// RemoveLines removes up to count lines starting at the cursor line and
// returns them; the caller becomes their owner. When every line is removed
// an empty line takes their place and placeholder is true. The cursor moves
// to the start of the line that followed the removed ones, or the new last
// line.
func (d *Document) RemoveLines(count int) (removed []*Line, placeholder bool) {
	count = clamp(count, 0, d.LineCount()-d.line)
	if count == 0 {
		return nil, false
	}
	removed = make([]*Line, count)
	for i := range removed {
		removed[i] = d.removeLineAt(d.line)
	}
	if d.LineCount() == 0 {
		d.insertLineAt(0, NewLine(""))
		placeholder = true
	}
	d.line = min(d.line, d.LineCount()-1)
	d.col = 0
	d.sticky = 0
	d.sync()
	d.logger.Debug("lines removed",
		zap.Stringer("id", d.id),
		zap.Int("count", count),
		zap.Bool("placeholder", placeholder))
	return removed, placeholder
}

// InsertLines inserts lines before line index at (clamped to
// [0, LineCount()]) and moves the cursor to the first inserted line.
// The document takes ownership of the lines.
func (d *Document) InsertLines(at int, lines []*Line) {
	if len(lines) == 0 {
		return
	}
	at = clamp(at, 0, d.LineCount())
	for i, l := range lines {
		d.insertLineAt(at+i, l)
	}
	d.line = at
	d.col = 0
	d.sticky = 0
	d.sync()
}

func (d *Document) lineAt(i int) *Line {
	return d.lines.At(clamp(i, 0, d.LineCount()-1))
}

func (d *Document) current() *Line {
	return d.lines.At(d.line)
}

func (d *Document) insertLineAt(i int, l *Line) {
	d.lines.Seek(i)
	d.lines.Insert(l)
}

func (d *Document) removeLineAt(i int) *Line {
	d.lines.Seek(i + 1)
	l, _ := d.lines.Delete()
	return l
}

// sync moves the line-level gap after the cursor line and the byte-level
// gap of the cursor line to the cursor column.
func (d *Document) sync() {
	d.lines.Seek(d.line + 1)
	d.current().chars.Seek(d.col)
}
