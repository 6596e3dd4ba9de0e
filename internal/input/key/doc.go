// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: modifier keys (Ctrl, Alt, Shift)
//   - Event: a single key press with its modifiers
//
// # Key Specifications
//
// Events are written in Vim notation: plain characters stand for
// themselves and special keys or chords are bracketed, as in "<Esc>",
// "<CR>", "<BS>", "<C-r>" or "<Left>". A literal "<" is written "<lt>".
// ParseSequence turns a whole string such as "3ddu<C-r>" into events,
// which is how macros are stored and how tests drive the dispatcher.
package key
