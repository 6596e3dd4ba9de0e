package macro

import (
	"fmt"

	"github.com/dshills/gapvim/internal/input/key"
)

// MaxDepth bounds how deeply macros may invoke other macros.
const MaxDepth = 32

// EventHandler processes a replayed key event.
type EventHandler func(ev key.Event)

// Player replays recorded macros.
type Player struct {
	recorder *Recorder
	depth    int
}

// NewPlayer creates a player replaying macros from recorder's registers.
func NewPlayer(recorder *Recorder) *Player {
	return &Player{recorder: recorder}
}

// Play replays register reg count times (at least once) through handler.
// The handler may start nested playback.
func (p *Player) Play(reg rune, count int, handler EventHandler) error {
	if !IsValidRegister(reg) {
		return invalid(reg)
	}
	if handler == nil {
		return fmt.Errorf("macro: nil handler")
	}
	events := p.recorder.Registers().Get(reg)
	if len(events) == 0 {
		return fmt.Errorf("%w: %c", ErrEmptyRegister, reg)
	}
	if p.depth >= MaxDepth {
		return fmt.Errorf("%w: @%c", ErrRecursionLimit, reg)
	}

	p.recorder.SetLastPlayed(reg)
	p.depth++
	defer func() { p.depth-- }()

	for range max(count, 1) {
		for _, ev := range events {
			handler(ev)
		}
	}
	return nil
}

// PlayLast replays the last played register (@@).
func (p *Player) PlayLast(count int, handler EventHandler) error {
	reg := p.recorder.LastPlayed()
	if reg == 0 {
		return ErrNoLastMacro
	}
	return p.Play(reg, count, handler)
}

// IsPlaying returns true while a macro is being replayed.
func (p *Player) IsPlaying() bool {
	return p.depth > 0
}
