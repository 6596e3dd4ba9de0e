package dispatcher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/gapvim/internal/engine/history"
	"github.com/dshills/gapvim/internal/input/key"
	"github.com/dshills/gapvim/internal/input/mode"
)

func (d *Dispatcher) handleCommandLine(ev key.Event) {
	d.pendingKeys = 0
	switch {
	case ev.IsEscape():
		d.cmdline = d.cmdline[:0]
		d.switchMode(mode.Normal)
	case ev.IsEnter():
		line := strings.TrimSpace(string(d.cmdline))
		d.cmdline = d.cmdline[:0]
		d.switchMode(mode.Normal)
		if err := d.runEx(line); err != nil {
			d.setError(err)
		}
	case ev.IsBackspace():
		if len(d.cmdline) == 0 {
			d.switchMode(mode.Normal)
			return
		}
		d.cmdline = d.cmdline[:len(d.cmdline)-1]
	case ev.IsChar():
		d.cmdline = append(d.cmdline, ev.Rune)
	}
}

// runEx executes a ":" command line.
func (d *Dispatcher) runEx(line string) error {
	if line == "" {
		return nil
	}
	if n, err := strconv.Atoi(line); err == nil {
		d.exec(history.MoveTo(n-1, 0), 1)
		return nil
	}

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "w", "write":
		return d.write(arg)
	case "q", "quit":
		if d.engine.Modified() {
			return ErrNoWriteSinceChange
		}
		d.exec(history.Quit(false), 1)
	case "q!", "quit!":
		d.exec(history.Quit(true), 1)
	case "wq", "x", "exit":
		if err := d.write(arg); err != nil {
			return err
		}
		d.exec(history.Quit(false), 1)
	case "u", "undo":
		d.undo(1)
	case "red", "redo":
		d.redo(1)
	default:
		return fmt.Errorf("%w: %s", ErrNotAnEditorCommand, line)
	}
	return nil
}

func (d *Dispatcher) write(path string) error {
	if d.save == nil {
		return ErrNoSaver
	}
	if err := d.save(path); err != nil {
		return err
	}
	d.message = "written"
	return nil
}
