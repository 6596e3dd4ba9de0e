package renderer

import (
	"strconv"
	"unicode/utf8"

	"github.com/dshills/gapvim/internal/engine/buffer"
	"github.com/dshills/gapvim/internal/input/mode"
	"github.com/dshills/gapvim/internal/renderer/backend"
)

// BufferReader provides read access to the document being drawn.
// *engine.Engine satisfies it.
type BufferReader interface {
	LineCount() int
	LineText(i int) string
	Cursor() buffer.Point
}

// Options configures the renderer.
type Options struct {
	TabWidth        int
	ShowLineNumbers bool
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{TabWidth: 8}
}

// Renderer draws documents onto a backend.
type Renderer struct {
	backend backend.Backend
	opts    Options

	// Viewport origin: first visible line and first visible screen column.
	top  int
	left int
}

// New creates a renderer drawing on b.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 8
	}
	return &Renderer{backend: b, opts: opts}
}

// TopLine returns the first visible document line.
func (r *Renderer) TopLine() int {
	return r.top
}

// LeftColumn returns the first visible screen column.
func (r *Renderer) LeftColumn() int {
	return r.left
}

// textRows returns how many rows are available for text.
func textRows(height int) int {
	if height <= 2 {
		return 0
	}
	return height - 2
}

// Render draws buf and st and flushes the backend.
func (r *Renderer) Render(buf BufferReader, st Status) {
	width, height := r.backend.Size()
	rows := textRows(height)
	cur := buf.Cursor()

	gutter := 0
	if r.opts.ShowLineNumbers {
		gutter = len(strconv.Itoa(buf.LineCount())) + 1
	}
	textWidth := width - gutter

	curLine := buf.LineText(cur.Line)
	curCol := DisplayColumn(curLine, cur.Column, r.opts.TabWidth)
	r.scrollTo(cur.Line, curCol, rows, textWidth)

	r.backend.Clear()

	for row := 0; row < rows; row++ {
		i := r.top + row
		if i >= buf.LineCount() {
			r.backend.SetCell(0, row, '~', backend.StyleDim)
			continue
		}
		if gutter > 0 {
			num := strconv.Itoa(i + 1)
			r.drawString(gutter-1-len(num), row, num, backend.StyleDim)
		}
		r.drawLine(gutter, row, textWidth, buf.LineText(i))
	}

	if height > 1 {
		r.drawBar(height-2, width, statusBar(st, cur, buf.LineCount(), width))
	}
	if height > 0 {
		r.drawString(0, height-1, messageRow(st), backend.StyleDefault)
	}

	if st.Mode == mode.Command && height > 0 {
		r.backend.SetCursorStyle(mode.CursorBar)
		r.backend.ShowCursor(1+utf8.RuneCountInString(st.CommandLine), height-1)
	} else if rows > 0 {
		r.backend.SetCursorStyle(st.Mode.CursorStyle())
		r.backend.ShowCursor(gutter+curCol-r.left, cur.Line-r.top)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
}

// scrollTo adjusts the viewport so (line, col) is visible.
func (r *Renderer) scrollTo(line, col, rows, width int) {
	if rows > 0 {
		if line < r.top {
			r.top = line
		} else if line >= r.top+rows {
			r.top = line - rows + 1
		}
	}
	if width > 0 {
		if col < r.left {
			r.left = col
		} else if col >= r.left+width {
			r.left = col - width + 1
		}
	}
}

// drawLine draws text expanded to screen columns, clipped to
// [left, left+width).
func (r *Renderer) drawLine(x, y, width int, text string) {
	col := 0
	for i := 0; i < len(text); {
		ch, size := utf8.DecodeRuneInString(text[i:])
		i += size

		if ch == '\t' {
			next := col + r.opts.TabWidth - col%r.opts.TabWidth
			for ; col < next; col++ {
				r.put(x, y, width, col, ' ')
			}
			continue
		}
		if ch < ' ' || ch == 0x7f {
			ch = '?'
		}
		r.put(x, y, width, col, ch)
		col++
		if col >= r.left+width {
			return
		}
	}
}

func (r *Renderer) put(x, y, width, col int, ch rune) {
	if col >= r.left && col < r.left+width {
		r.backend.SetCell(x+col-r.left, y, ch, backend.StyleDefault)
	}
}

func (r *Renderer) drawString(x, y int, s string, style backend.Style) {
	for _, ch := range s {
		r.backend.SetCell(x, y, ch, style)
		x++
	}
}

func (r *Renderer) drawBar(y, width int, s string) {
	for x := 0; x < width; x++ {
		r.backend.SetCell(x, y, ' ', backend.StyleReverse)
	}
	r.drawString(0, y, s, backend.StyleReverse)
}

// DisplayColumn converts a byte column in text to a screen column,
// expanding tabs to tabWidth and counting each rune as one cell.
func DisplayColumn(text string, col, tabWidth int) int {
	if col > len(text) {
		col = len(text)
	}
	screen := 0
	for i := 0; i < col; {
		ch, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if ch == '\t' {
			screen += tabWidth - screen%tabWidth
		} else {
			screen++
		}
	}
	return screen
}
