package mode

// Mode identifies an editor mode.
type Mode uint8

const (
	Normal Mode = iota
	Insert
	Replace
	Command
)

// CursorStyle is the cursor shape a mode asks the renderer for.
type CursorStyle uint8

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorUnderline
)

// String returns the mode identifier (e.g., "normal", "insert").
func (m Mode) String() string {
	switch m {
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	case Command:
		return "command"
	default:
		return "normal"
	}
}

// DisplayName returns the status line label of the mode.
func (m Mode) DisplayName() string {
	switch m {
	case Insert:
		return "-- INSERT --"
	case Replace:
		return "-- REPLACE --"
	default:
		return ""
	}
}

// CursorStyle returns the cursor style for the mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert, Command:
		return CursorBar
	case Replace:
		return CursorUnderline
	default:
		return CursorBlock
	}
}

// Editing reports whether keys typed in the mode change the text directly.
func (m Mode) Editing() bool {
	return m == Insert || m == Replace
}
