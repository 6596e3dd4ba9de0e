package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/gapvim/internal/engine/buffer"
	"github.com/dshills/gapvim/internal/input/mode"
)

// Status is the editor state shown below the text.
type Status struct {
	Mode     mode.Mode
	FileName string
	Modified bool

	// Pending holds the keys of a partially typed command, e.g. "2d".
	Pending string

	// Message is the last informational or error message.
	Message string

	// CommandLine is the text typed after ':' in command mode.
	CommandLine string

	// Recording is the register a macro is being recorded into, or 0.
	Recording rune
}

// statusBar formats the reverse-video bar: file name on the left, pending
// keys and the cursor position on the right.
func statusBar(st Status, cur buffer.Point, lineCount, width int) string {
	name := st.FileName
	if name == "" {
		name = "[No Name]"
	}
	left := " " + name
	if st.Modified {
		left += " [+]"
	}

	right := fmt.Sprintf("%d,%d  %s ", cur.Line+1, cur.Column+1, scrollPercent(cur.Line, lineCount))
	if st.Pending != "" {
		right = st.Pending + "   " + right
	}

	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func scrollPercent(line, lineCount int) string {
	switch {
	case lineCount <= 1:
		return "All"
	case line == 0:
		return "Top"
	case line >= lineCount-1:
		return "Bot"
	}
	return fmt.Sprintf("%d%%", line*100/(lineCount-1))
}

// messageRow formats the bottom row: the command line in command mode,
// otherwise the last message or the mode indicator.
func messageRow(st Status) string {
	if st.Mode == mode.Command {
		return ":" + st.CommandLine
	}
	if st.Message != "" {
		return st.Message
	}

	parts := make([]string, 0, 2)
	if name := st.Mode.DisplayName(); name != "" {
		parts = append(parts, name)
	}
	if st.Recording != 0 {
		parts = append(parts, "recording @"+string(st.Recording))
	}
	return strings.Join(parts, "")
}
