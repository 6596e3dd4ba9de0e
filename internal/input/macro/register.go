package macro

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/gapvim/internal/input/key"
)

// NumRegisters is the number of macro registers.
const NumRegisters = 26 + 26 + 10

// Errors returned by register, recorder and player operations.
var (
	ErrInvalidRegister  = errors.New("invalid register")
	ErrEmptyRegister    = errors.New("empty register")
	ErrAlreadyRecording = errors.New("already recording")
	ErrNoLastMacro      = errors.New("no macro has been played")
	ErrRecursionLimit   = errors.New("macro recursion limit reached")
)

// Index returns the slot of register r: a-z map to 0-25, A-Z to 26-51 and
// 0-9 to 52-61.
func Index(r rune) (int, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	case r >= 'A' && r <= 'Z':
		return 26 + int(r-'A'), true
	case r >= '0' && r <= '9':
		return 52 + int(r-'0'), true
	}
	return 0, false
}

// Name returns the register name of slot i, or 0 when i is out of range.
func Name(i int) rune {
	switch {
	case i < 0 || i >= NumRegisters:
		return 0
	case i < 26:
		return 'a' + rune(i)
	case i < 52:
		return 'A' + rune(i-26)
	default:
		return '0' + rune(i-52)
	}
}

// IsValidRegister returns true if r names one of the registers.
func IsValidRegister(r rune) bool {
	_, ok := Index(r)
	return ok
}

func invalid(r rune) error {
	return fmt.Errorf("%w: %q", ErrInvalidRegister, r)
}

// Registers holds the macro registers. The zero value has every register
// empty.
type Registers struct {
	slots [NumRegisters][]key.Event
}

// NewRegisters creates an empty register set.
func NewRegisters() *Registers {
	return &Registers{}
}

// Get returns a copy of the events stored in register r.
func (rs *Registers) Get(r rune) []key.Event {
	i, ok := Index(r)
	if !ok {
		return nil
	}
	return slices.Clone(rs.slots[i])
}

// Set replaces the contents of register r.
func (rs *Registers) Set(r rune, events []key.Event) error {
	i, ok := Index(r)
	if !ok {
		return invalid(r)
	}
	rs.slots[i] = slices.Clone(events)
	return nil
}

// Append adds events to the end of register r.
func (rs *Registers) Append(r rune, events ...key.Event) error {
	i, ok := Index(r)
	if !ok {
		return invalid(r)
	}
	rs.slots[i] = append(rs.slots[i], events...)
	return nil
}

// Clear empties register r.
func (rs *Registers) Clear(r rune) error {
	i, ok := Index(r)
	if !ok {
		return invalid(r)
	}
	rs.slots[i] = nil
	return nil
}

// ClearAll empties every register.
func (rs *Registers) ClearAll() {
	rs.slots = [NumRegisters][]key.Event{}
}

// Len returns the number of events in register r.
func (rs *Registers) Len(r rune) int {
	i, ok := Index(r)
	if !ok {
		return 0
	}
	return len(rs.slots[i])
}

// NonEmpty returns the names of the registers holding events, in slot
// order.
func (rs *Registers) NonEmpty() []rune {
	var names []rune
	for i, events := range rs.slots {
		if len(events) > 0 {
			names = append(names, Name(i))
		}
	}
	return names
}
