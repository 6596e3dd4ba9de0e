package macro

import (
	"fmt"

	"github.com/dshills/gapvim/internal/input/key"
)

// Recorder records key sequences into registers.
type Recorder struct {
	registers  *Registers
	recording  bool
	register   rune
	events     []key.Event
	lastPlayed rune // for @@
}

// NewRecorder creates a recorder storing macros in registers. A nil
// registers argument gets a fresh set.
func NewRecorder(registers *Registers) *Recorder {
	if registers == nil {
		registers = NewRegisters()
	}
	return &Recorder{registers: registers}
}

// Registers returns the register set the recorder writes to.
func (r *Recorder) Registers() *Registers {
	return r.registers
}

// Start begins recording to register reg.
func (r *Recorder) Start(reg rune) error {
	if !IsValidRegister(reg) {
		return invalid(reg)
	}
	if r.recording {
		return fmt.Errorf("%w: register %c", ErrAlreadyRecording, r.register)
	}
	r.recording = true
	r.register = reg
	r.events = nil
	return nil
}

// Stop ends the recording, stores it in the register and returns it.
// It returns nil when not recording.
func (r *Recorder) Stop() []key.Event {
	if !r.recording {
		return nil
	}
	r.recording = false
	events := r.events
	r.events = nil
	_ = r.registers.Set(r.register, events)
	return events
}

// Record adds an event to the current recording. It does nothing when not
// recording.
func (r *Recorder) Record(ev key.Event) {
	if r.recording {
		r.events = append(r.events, ev)
	}
}

// IsRecording returns true while recording.
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// CurrentRegister returns the register being recorded to, or 0.
func (r *Recorder) CurrentRegister() rune {
	if r.recording {
		return r.register
	}
	return 0
}

// Len returns the number of events recorded so far.
func (r *Recorder) Len() int {
	return len(r.events)
}

// SetLastPlayed sets the register replayed by @@.
func (r *Recorder) SetLastPlayed(reg rune) {
	r.lastPlayed = reg
}

// LastPlayed returns the register replayed by @@, or 0.
func (r *Recorder) LastPlayed() rune {
	return r.lastPlayed
}
