package backend

import (
	"strings"
	"sync"

	"github.com/dshills/gapvim/internal/input/key"
	"github.com/dshills/gapvim/internal/input/mode"
)

// Cell is one character cell of a Memory backend.
type Cell struct {
	Rune  rune
	Style Style
}

// Memory is an in-memory Backend. It backs headless runs and tests: keys
// are injected with InjectKeys and the screen is read back with Line.
type Memory struct {
	mu      sync.Mutex
	width   int
	height  int
	cells   []Cell
	front   []Cell
	cursorX int
	cursorY int
	visible bool
	style   mode.CursorStyle
	events  chan Event
	closed  bool
	shows   int
}

// NewMemory creates a width x height in-memory screen.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 1024),
	}
	m.allocate()
	return m
}

func (m *Memory) allocate() {
	m.cells = make([]Cell, m.width*m.height)
	m.front = make([]Cell, m.width*m.height)
	for i := range m.cells {
		m.cells[i] = Cell{Rune: ' '}
		m.front[i] = Cell{Rune: ' '}
	}
}

func (m *Memory) Init() error { return nil }

func (m *Memory) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.events)
	}
}

func (m *Memory) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// Resize changes the screen size and queues an EventResize.
func (m *Memory) Resize(width, height int) {
	m.mu.Lock()
	m.width, m.height = width, height
	m.allocate()
	m.mu.Unlock()
	m.post(Event{Type: EventResize, Width: width, Height: height})
}

func (m *Memory) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

func (m *Memory) SetCell(x, y int, r rune, style Style) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inBounds(x, y) {
		m.cells[y*m.width+x] = Cell{Rune: r, Style: style}
	}
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cells {
		m.cells[i] = Cell{Rune: ' '}
	}
}

// Show copies the back buffer to the front buffer read by Line and Cell.
func (m *Memory) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy(m.front, m.cells)
	m.shows++
}

func (m *Memory) ShowCursor(x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorX, m.cursorY, m.visible = x, y, true
}

func (m *Memory) HideCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = false
}

func (m *Memory) SetCursorStyle(style mode.CursorStyle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.style = style
}

func (m *Memory) PollEvent() Event {
	ev, ok := <-m.events
	if !ok {
		return Event{Type: EventNone}
	}
	return ev
}

func (m *Memory) PostInterrupt(data any) error {
	m.post(Event{Type: EventInterrupt, Data: data})
	return nil
}

func (m *Memory) post(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.events <- ev
	}
}

// InjectKeys queues key events parsed from Vim notation, e.g. "ihi<Esc>".
func (m *Memory) InjectKeys(spec string) error {
	events, err := key.ParseSequence(spec)
	if err != nil {
		return err
	}
	for _, ev := range events {
		m.post(Event{Type: EventKey, Key: ev})
	}
	return nil
}

// Line returns the shown text of row y with trailing spaces trimmed.
func (m *Memory) Line(y int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if y < 0 || y >= m.height {
		return ""
	}
	var b strings.Builder
	for _, c := range m.front[y*m.width : (y+1)*m.width] {
		b.WriteRune(c.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

// Cell returns the shown cell at x, y.
func (m *Memory) Cell(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.inBounds(x, y) {
		return Cell{}
	}
	return m.front[y*m.width+x]
}

// Cursor returns the cursor position and whether it is visible.
func (m *Memory) Cursor() (x, y int, visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorX, m.cursorY, m.visible
}

// CursorStyle returns the last cursor style set.
func (m *Memory) CursorStyle() mode.CursorStyle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.style
}

// ShowCount returns how many times Show has been called.
func (m *Memory) ShowCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shows
}
