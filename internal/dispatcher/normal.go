package dispatcher

import (
	"errors"

	"github.com/dshills/gapvim/internal/engine"
	"github.com/dshills/gapvim/internal/engine/history"
	"github.com/dshills/gapvim/internal/input/key"
	"github.com/dshills/gapvim/internal/input/macro"
	"github.com/dshills/gapvim/internal/input/mode"
)

func (d *Dispatcher) handleNormal(ev key.Event) {
	switch {
	case ev.IsEscape():
		d.reset()
	case d.operator != 0:
		d.handleOperator(ev)
		d.reset()
	case isCountDigit(ev, d.count):
		d.count = min(d.count*10+int(ev.Rune-'0'), d.config.MaxRepeatCount)
	default:
		d.message = ""
		if d.normalCommand(ev) {
			d.reset()
		}
	}
}

func isCountDigit(ev key.Event, count int) bool {
	if !ev.IsRune() || ev.IsModified() || ev.Rune < '0' || ev.Rune > '9' {
		return false
	}
	return ev.Rune != '0' || count > 0
}

// normalCommand runs a single-key command. It returns false when ev starts
// a multi-key command that needs another key.
func (d *Dispatcher) normalCommand(ev key.Event) bool {
	count := d.count

	if ev.IsCtrl('r') {
		d.redo(count)
		return true
	}
	switch ev.Key {
	case key.KeyLeft, key.KeyBackspace:
		d.exec(history.MoveColumn(-1), count)
	case key.KeyRight:
		d.exec(history.MoveColumn(1), count)
	case key.KeyUp:
		d.exec(history.MoveLine(-1), count)
	case key.KeyDown, key.KeyEnter:
		d.exec(history.MoveLine(1), count)
	case key.KeyHome:
		d.exec(history.MoveLineStart(), 1)
	case key.KeyEnd:
		d.exec(history.MoveLineEnd(), 1)
	case key.KeyDelete:
		d.exec(history.DeleteCharAt(), count)
	case key.KeyRune:
		if !ev.IsModified() {
			return d.normalRune(ev.Rune, count)
		}
	}
	return true
}

func (d *Dispatcher) normalRune(r rune, count int) bool {
	cur := d.engine.Cursor()
	switch r {
	case 'h':
		d.exec(history.MoveColumn(-1), count)
	case 'l', ' ':
		d.exec(history.MoveColumn(1), count)
	case 'j':
		d.exec(history.MoveLine(1), count)
	case 'k':
		d.exec(history.MoveLine(-1), count)
	case '0':
		d.exec(history.MoveLineStart(), 1)
	case '$':
		d.exec(history.MoveLineEnd(), 1)
	case 'G':
		if count > 0 {
			d.exec(history.MoveTo(count-1, 0), 1)
		} else {
			d.exec(history.MoveFileEnd(), 1)
		}

	case 'i':
		d.switchMode(mode.Insert)
	case 'a':
		d.exec(history.MoveTo(cur.Line, cur.Column+1), 1)
		d.switchMode(mode.Insert)
	case 'A':
		d.exec(history.MoveTo(cur.Line, d.engine.Document().LineLength(cur.Line)), 1)
		d.switchMode(mode.Insert)
	case 'I':
		d.exec(history.MoveLineStart(), 1)
		d.switchMode(mode.Insert)
	case 'o', 'O':
		// The opened line is the last call before typing starts, so the
		// typed text joins its undo unit.
		d.switchMode(mode.Insert)
		d.exec(history.InsertLine(r == 'O'), 1)
	case 'R':
		d.switchMode(mode.Replace)
	case ':':
		d.cmdline = d.cmdline[:0]
		d.switchMode(mode.Command)

	case 'x':
		d.exec(history.DeleteCharAt(), count)
	case 'X':
		d.exec(history.DeleteCharBefore(), count)
	case 'J':
		d.exec(history.JoinLine(), max(count-1, 1))
	case 'p':
		d.exec(history.Put(false), count)
	case 'P':
		d.exec(history.Put(true), count)
	case 'u':
		d.undo(count)

	case 'q':
		if d.recorder.IsRecording() {
			d.recorder.Stop()
			return true
		}
		d.operator = r
		return false
	case 'd', 'y', 'g', 'r', '@':
		d.operator = r
		return false
	}
	return true
}

// handleOperator completes a two-key command such as "dd" or "qa".
func (d *Dispatcher) handleOperator(ev key.Event) {
	count := d.count
	if !ev.IsRune() || ev.IsModified() {
		return
	}
	r := ev.Rune
	switch d.operator {
	case 'd':
		if r == 'd' {
			d.exec(history.DeleteLine(), count)
		}
	case 'y':
		switch r {
		case 'y':
			d.exec(history.YankLines(max(count, 1)), 1)
		case '$':
			d.exec(history.YankToLineEnd(), 1)
		}
	case 'g':
		if r == 'g' {
			if count > 0 {
				d.exec(history.MoveTo(count-1, 0), 1)
			} else {
				d.exec(history.MoveFileStart(), 1)
			}
		}
	case 'r':
		if r < 0x80 && ev.IsChar() {
			d.exec(history.ReplaceChars(byte(r), max(count, 1)), 1)
		}
	case 'q':
		if err := d.recorder.Start(r); err != nil {
			d.setError(err)
		}
	case '@':
		d.playMacro(r, count)
	}
}

func (d *Dispatcher) playMacro(reg rune, count int) {
	// Macro keys run with a clean slate, as if typed.
	d.reset()
	var err error
	if reg == '@' {
		err = d.player.PlayLast(count, d.dispatch)
	} else {
		err = d.player.Play(reg, count, d.dispatch)
	}
	if err != nil && !errors.Is(err, macro.ErrRecursionLimit) {
		d.setError(err)
	}
}

func (d *Dispatcher) undo(count int) {
	for range max(count, 1) {
		if err := d.engine.Undo(); errors.Is(err, engine.ErrNothingToUndo) {
			d.message = "Already at oldest change"
			return
		}
	}
}

func (d *Dispatcher) redo(count int) {
	for range max(count, 1) {
		if err := d.engine.Redo(); errors.Is(err, engine.ErrNothingToRedo) {
			d.message = "Already at newest change"
			return
		}
	}
}
