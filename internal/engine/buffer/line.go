package buffer

import "github.com/dshills/gapvim/internal/engine/gap"

// lineSlack is the free space given to lines built from existing text.
const lineSlack = 8

// Line is the text of a single line, excluding its terminator.
type Line struct {
	chars gap.Buffer[byte]
}

// NewLine creates a line holding s.
func NewLine(s string) *Line {
	return &Line{chars: *gap.FromSlice([]byte(s), lineSlack)}
}

// Len returns the length of the line in bytes.
func (l *Line) Len() int {
	return l.chars.Len()
}

// At returns the byte at column col. Out of range columns panic with a
// *gap.InvariantError.
func (l *Line) At(col int) byte {
	return l.chars.At(col)
}

// String returns the text of the line.
func (l *Line) String() string {
	return string(l.chars.Slice())
}

// Clone returns an independent copy of the line.
func (l *Line) Clone() *Line {
	return &Line{chars: *l.chars.Clone()}
}

func (l *Line) insert(col int, ch byte) {
	l.chars.Seek(col)
	l.chars.Insert(ch)
}

func (l *Line) deleteBefore(col int) (byte, bool) {
	l.chars.Seek(col)
	return l.chars.Delete()
}

func (l *Line) set(col int, ch byte) {
	l.chars.Set(col, ch)
}

// split cuts the line at col, keeping the head and returning the tail.
func (l *Line) split(col int) *Line {
	text := l.chars.Slice()
	tail := NewLine(string(text[col:]))
	l.chars = *gap.FromSlice(text[:col], lineSlack)
	l.chars.Seek(col)
	return tail
}

// join appends the text of other to the line.
func (l *Line) join(other *Line) {
	l.chars.Seek(l.chars.Len())
	for i := 0; i < other.Len(); i++ {
		l.chars.Insert(other.At(i))
	}
}
