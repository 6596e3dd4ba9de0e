package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gapvim/internal/input/key"
	"github.com/dshills/gapvim/internal/input/mode"
)

func TestStyle_Has(t *testing.T) {
	s := StyleReverse | StyleBold
	if !s.Has(StyleReverse) || !s.Has(StyleBold) {
		t.Errorf("%b should have reverse and bold", s)
	}
	if s.Has(StyleDim) {
		t.Errorf("%b should not have dim", s)
	}
	if !StyleDefault.Has(StyleDefault) {
		t.Error("every style has the default")
	}
}

func TestConvertEvent_Keys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), key.NewRuneEvent('x', key.ModNone)},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), key.NewRuneEvent('X', key.ModNone)},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), key.NewRuneEvent('x', key.ModAlt)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModNone)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"ctrl-h backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModCtrl), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyDelete, key.ModNone)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyLeft, key.ModNone)},
		{"shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyUp, key.ModShift)},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyPageDown, key.ModNone)},
		{"ctrl-r", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), key.NewRuneEvent('r', key.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertEvent(tt.ev)
			if !ok {
				t.Fatal("convertEvent() dropped the event")
			}
			if got.Type != EventKey {
				t.Fatalf("Type = %v, want EventKey", got.Type)
			}
			if !got.Key.Equals(tt.want) {
				t.Errorf("Key = %v, want %v", got.Key, tt.want)
			}
		})
	}
}

func TestConvertEvent_Other(t *testing.T) {
	ev, ok := convertEvent(tcell.NewEventResize(100, 40))
	if !ok || ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("resize = %+v, %v", ev, ok)
	}

	ev, ok = convertEvent(tcell.NewEventInterrupt("reload"))
	if !ok || ev.Type != EventInterrupt || ev.Data != "reload" {
		t.Errorf("interrupt = %+v, %v", ev, ok)
	}

	if _, ok := convertEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Error("unsupported key should be dropped")
	}
}

func TestConvertStyle(t *testing.T) {
	if got := convertStyle(StyleDefault); got != tcell.StyleDefault {
		t.Errorf("convertStyle(default) = %v", got)
	}
	want := tcell.StyleDefault.Reverse(true).Bold(true)
	if got := convertStyle(StyleReverse | StyleBold); got != want {
		t.Errorf("convertStyle(reverse|bold) = %v, want %v", got, want)
	}
}

func TestMemory_Drawing(t *testing.T) {
	m := NewMemory(10, 3)
	for i, r := range "hello" {
		m.SetCell(i, 1, r, StyleDefault)
	}
	m.SetCell(20, 20, 'x', StyleDefault)

	if got := m.Line(1); got != "" {
		t.Errorf("Line(1) before Show = %q, want empty", got)
	}
	m.Show()
	if got := m.Line(1); got != "hello" {
		t.Errorf("Line(1) = %q, want hello", got)
	}

	m.Clear()
	m.Show()
	if got := m.Line(1); got != "" {
		t.Errorf("Line(1) after Clear = %q, want empty", got)
	}
	if m.ShowCount() != 2 {
		t.Errorf("ShowCount() = %d, want 2", m.ShowCount())
	}
}

func TestMemory_Cursor(t *testing.T) {
	m := NewMemory(10, 3)
	m.ShowCursor(4, 2)
	m.SetCursorStyle(mode.CursorBar)

	x, y, visible := m.Cursor()
	if x != 4 || y != 2 || !visible {
		t.Errorf("Cursor() = %d, %d, %v", x, y, visible)
	}
	if m.CursorStyle() != mode.CursorBar {
		t.Errorf("CursorStyle() = %v, want bar", m.CursorStyle())
	}
	m.HideCursor()
	if _, _, visible := m.Cursor(); visible {
		t.Error("cursor still visible after HideCursor")
	}
}

func TestMemory_Events(t *testing.T) {
	m := NewMemory(10, 3)
	if err := m.InjectKeys("a<Esc>"); err != nil {
		t.Fatal(err)
	}
	_ = m.PostInterrupt(42)
	m.Resize(20, 5)

	if ev := m.PollEvent(); ev.Type != EventKey || ev.Key.Rune != 'a' {
		t.Errorf("first event = %+v", ev)
	}
	if ev := m.PollEvent(); ev.Type != EventKey || !ev.Key.IsEscape() {
		t.Errorf("second event = %+v", ev)
	}
	if ev := m.PollEvent(); ev.Type != EventInterrupt || ev.Data != 42 {
		t.Errorf("third event = %+v", ev)
	}
	if ev := m.PollEvent(); ev.Type != EventResize || ev.Width != 20 {
		t.Errorf("fourth event = %+v", ev)
	}
	if w, h := m.Size(); w != 20 || h != 5 {
		t.Errorf("Size() = %d, %d", w, h)
	}

	m.Shutdown()
	m.Shutdown()
	if ev := m.PollEvent(); ev.Type != EventNone {
		t.Errorf("PollEvent() after Shutdown = %+v", ev)
	}
}
