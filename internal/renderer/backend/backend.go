// Package backend provides the terminal abstraction the renderer draws on
// and the application reads input from.
package backend

import (
	"github.com/dshills/gapvim/internal/input/key"
	"github.com/dshills/gapvim/internal/input/mode"
)

// Style is the set of cell attributes the editor uses.
type Style uint8

const (
	StyleDefault Style = 0
	StyleReverse Style = 1 << (iota - 1)
	StyleBold
	StyleDim
)

// Has returns true if s contains every attribute in a.
func (s Style) Has(a Style) bool {
	return s&a == a
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Data is the payload of an EventInterrupt.
	Data any
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the terminal are
	// ignored.
	SetCell(x, y int, r rune, style Style)

	// Clear clears the entire screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor shape.
	SetCursorStyle(style mode.CursorStyle)

	// PollEvent waits for and returns the next event. It returns an
	// EventNone event once the backend has been shut down.
	PollEvent() Event

	// PostInterrupt wakes PollEvent with an EventInterrupt carrying data.
	// It is safe to call from any goroutine.
	PostInterrupt(data any) error
}
