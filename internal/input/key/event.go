package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without Ctrl or
// Alt held.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if Ctrl or Alt is pressed. Shift is part of the
// character for rune events and does not count.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt) != 0
	}
	return e.Modifiers != ModNone
}

// IsCtrl reports whether the event is Ctrl held with the character r.
func (e Event) IsCtrl(r rune) bool {
	return e.IsRune() && e.Modifiers&ModCtrl != 0 && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsEnter returns true if this is the Enter key (with no modifiers).
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && e.Modifiers == ModNone
}

// IsBackspace returns true if this is Backspace (with no modifiers).
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace && e.Modifiers == ModNone
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// String returns the Vim notation of the event.
// Examples: "a", "A", "<lt>", "<Esc>", "<C-r>", "<S-Left>".
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		if e.Rune == '<' {
			return "<lt>"
		}
		return string(e.Rune)
	}

	var name string
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == '<' {
			name = "lt"
		}
	} else {
		name = e.Key.String()
	}
	mods := e.Modifiers
	if e.Key == KeyRune {
		mods &^= ModShift
	}
	return "<" + mods.String() + name + ">"
}

// MarshalText encodes the event in Vim notation.
func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText decodes an event written in Vim notation.
func (e *Event) UnmarshalText(text []byte) error {
	ev, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = ev
	return nil
}

// FormatSequence writes events in Vim notation.
func FormatSequence(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(e.String())
	}
	return sb.String()
}
