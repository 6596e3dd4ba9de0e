package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a single key written in Vim notation.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Bracketed keys: "<Esc>", "<CR>", "<BS>", "<Space>", "<lt>"
//   - Chords: "<C-r>", "<A-x>", "<S-Left>"
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}
	events, err := ParseSequence(spec)
	if err != nil {
		return Event{}, err
	}
	if len(events) != 1 {
		return Event{}, fmt.Errorf("%w: %q is %d keys", ErrInvalidSpec, spec, len(events))
	}
	return events[0], nil
}

// ParseSequence parses a string of keys in Vim notation, such as
// "3dd<Esc>:wq<CR>".
func ParseSequence(s string) ([]Event, error) {
	var events []Event
	for s != "" {
		if s[0] == '<' {
			end := strings.IndexByte(s, '>')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, s)
			}
			ev, err := parseBracketed(s[1:end])
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
			s = s[end+1:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		events = append(events, NewRuneEvent(r, ModNone))
		s = s[size:]
	}
	return events, nil
}

// parseBracketed parses the inside of "<...>" such as "C-r" or "CR".
func parseBracketed(inner string) (Event, error) {
	if inner == "" {
		return Event{}, fmt.Errorf("%w: empty brackets", ErrInvalidSpec)
	}

	var mods Modifier
	for len(inner) > 2 && inner[1] == '-' {
		switch inner[0] {
		case 'c', 'C':
			mods = mods.With(ModCtrl)
		case 'a', 'A', 'm', 'M':
			mods = mods.With(ModAlt)
		case 's', 'S':
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, inner[:1])
		}
		inner = inner[2:]
	}

	switch strings.ToLower(inner) {
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "space":
		return NewRuneEvent(' ', mods), nil
	}
	if k := KeyFromName(inner); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if r, size := utf8.DecodeRuneInString(inner); size == len(inner) {
		if mods&ModCtrl != 0 {
			r = unicode.ToLower(r)
		}
		return NewRuneEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, inner)
}
