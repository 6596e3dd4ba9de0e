package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gapvim/internal/input/key"
	"github.com/dshills/gapvim/internal/input/mode"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a simulation
// screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, r rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style mode.CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case mode.CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case mode.CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	default:
		tcellStyle = tcell.CursorStyleSteadyBlock
	}
	t.screen.SetCursorStyle(tcellStyle)
}

// PollEvent blocks without holding the lock so other goroutines can post
// interrupts meanwhile.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventNone}
		}
		if out, ok := convertEvent(ev); ok {
			return out
		}
	}
}

func (t *Terminal) PostInterrupt(data any) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(data))
}

func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if s.Has(StyleReverse) {
		style = style.Reverse(true)
	}
	if s.Has(StyleBold) {
		style = style.Bold(true)
	}
	if s.Has(StyleDim) {
		style = style.Dim(true)
	}
	return style
}

// convertEvent translates a tcell event. Events the editor has no use for
// (mouse, focus, paste markers) report false.
func convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return Event{}, false
		}
		return Event{Type: EventKey, Key: k}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}, true
	}
	return Event{}, false
}

func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())

	var special key.Key
	switch k := e.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods&^key.ModShift), true
	case tcell.KeyEscape:
		special = key.KeyEscape
	case tcell.KeyEnter:
		special = key.KeyEnter
	case tcell.KeyTab:
		special = key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		special = key.KeyBackspace
	case tcell.KeyDelete:
		special = key.KeyDelete
	case tcell.KeyHome:
		special = key.KeyHome
	case tcell.KeyEnd:
		special = key.KeyEnd
	case tcell.KeyPgUp:
		special = key.KeyPageUp
	case tcell.KeyPgDn:
		special = key.KeyPageDown
	case tcell.KeyUp:
		special = key.KeyUp
	case tcell.KeyDown:
		special = key.KeyDown
	case tcell.KeyLeft:
		special = key.KeyLeft
	case tcell.KeyRight:
		special = key.KeyRight
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := 'a' + rune(k-tcell.KeyCtrlA)
			return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
		}
		return key.Event{}, false
	}
	// tcell reports ctrl for the control codes that alias these keys.
	return key.NewSpecialEvent(special, mods&^key.ModCtrl), true
}

func convertMod(m tcell.ModMask) key.Modifier {
	mods := key.ModNone
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 || m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModAlt)
	}
	return mods
}
