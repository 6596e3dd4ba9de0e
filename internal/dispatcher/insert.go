package dispatcher

import (
	"unicode/utf8"

	"github.com/dshills/gapvim/internal/engine/history"
	"github.com/dshills/gapvim/internal/input/key"
	"github.com/dshills/gapvim/internal/input/mode"
)

func (d *Dispatcher) handleInsert(ev key.Event) {
	d.pendingKeys = 0
	if d.typingKey(ev) {
		return
	}
	if text, ok := typedText(ev); ok {
		for i := 0; i < len(text); i++ {
			d.batch(history.InsertChar(text[i]))
		}
	}
}

func (d *Dispatcher) handleReplace(ev key.Event) {
	d.pendingKeys = 0
	if d.typingKey(ev) {
		return
	}
	text, ok := typedText(ev)
	if !ok {
		return
	}
	for i := 0; i < len(text); i++ {
		cur := d.engine.Cursor()
		if cur.Column < d.engine.Document().LineLength(cur.Line) {
			d.batch(history.ReplaceChar(text[i]))
			d.batch(history.MoveTo(cur.Line, cur.Column+1))
		} else {
			d.batch(history.InsertChar(text[i]))
		}
	}
}

// typingKey handles the keys shared by Insert and Replace mode. It reports
// whether ev was consumed.
func (d *Dispatcher) typingKey(ev key.Event) bool {
	cur := d.engine.Cursor()
	switch {
	case ev.IsEscape():
		d.engine.Flush()
		d.switchMode(mode.Normal)
		d.exec(history.MoveColumn(-1), 1)
	case ev.IsEnter():
		d.batch(history.SplitLine())
		d.engine.Flush()
	case ev.IsBackspace():
		d.batch(history.DeleteCharBefore())
	case ev.Key == key.KeyDelete:
		d.batch(history.DeleteCharAfter())
	case ev.Key == key.KeyLeft:
		d.exec(history.MoveTo(cur.Line, cur.Column-1), 1)
	case ev.Key == key.KeyRight:
		d.exec(history.MoveTo(cur.Line, cur.Column+1), 1)
	case ev.Key == key.KeyUp:
		d.exec(history.MoveLine(-1), 1)
	case ev.Key == key.KeyDown:
		d.exec(history.MoveLine(1), 1)
	case ev.Key == key.KeyHome:
		d.exec(history.MoveLineStart(), 1)
	case ev.Key == key.KeyEnd:
		d.exec(history.MoveTo(cur.Line, d.engine.Document().LineLength(cur.Line)), 1)
	default:
		return false
	}
	return true
}

// typedText returns the bytes a key types, if any.
func typedText(ev key.Event) (string, bool) {
	switch {
	case ev.Key == key.KeyTab && ev.Modifiers == key.ModNone:
		return "\t", true
	case ev.IsChar():
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], ev.Rune)
		return string(buf[:n]), true
	}
	return "", false
}
