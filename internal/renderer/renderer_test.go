package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/gapvim/internal/engine/buffer"
	"github.com/dshills/gapvim/internal/input/mode"
	"github.com/dshills/gapvim/internal/renderer/backend"
)

type fakeBuffer struct {
	lines []string
	cur   buffer.Point
}

func (b *fakeBuffer) LineCount() int { return len(b.lines) }
func (b *fakeBuffer) LineText(i int) string { return b.lines[i] }
func (b *fakeBuffer) Cursor() buffer.Point { return b.cur }

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestRender_Basic(t *testing.T) {
	screen := backend.NewMemory(20, 5)
	r := New(screen, DefaultOptions())

	r.Render(&fakeBuffer{lines: []string{"hello", "world"}}, Status{})

	want := []string{"hello", "world", "~", " [No Name] 1,1  Top", ""}
	for y, w := range want {
		if got := screen.Line(y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
	if c := screen.Cell(0, 3); !c.Style.Has(backend.StyleReverse) {
		t.Errorf("status bar style = %v, want reverse", c.Style)
	}
	if x, y, visible := screen.Cursor(); x != 0 || y != 0 || !visible {
		t.Errorf("cursor = %d,%d,%v, want 0,0,true", x, y, visible)
	}
	if screen.CursorStyle() != mode.CursorBlock {
		t.Errorf("cursor style = %v, want block", screen.CursorStyle())
	}
}

func TestRender_ScrollsToCursor(t *testing.T) {
	screen := backend.NewMemory(20, 5)
	r := New(screen, DefaultOptions())
	buf := &fakeBuffer{lines: numbered(10), cur: buffer.Point{Line: 7}}

	r.Render(buf, Status{})
	if r.TopLine() != 5 {
		t.Fatalf("TopLine() = %d, want 5", r.TopLine())
	}
	if got := screen.Line(0); got != "line 5" {
		t.Errorf("row 0 = %q, want line 5", got)
	}
	if _, y, _ := screen.Cursor(); y != 2 {
		t.Errorf("cursor row = %d, want 2", y)
	}

	// Moving up within the window does not scroll.
	buf.cur.Line = 5
	r.Render(buf, Status{})
	if r.TopLine() != 5 {
		t.Errorf("TopLine() = %d, want 5", r.TopLine())
	}

	buf.cur.Line = 1
	r.Render(buf, Status{})
	if r.TopLine() != 1 {
		t.Errorf("TopLine() = %d, want 1", r.TopLine())
	}
	if got := screen.Line(0); got != "line 1" {
		t.Errorf("row 0 = %q, want line 1", got)
	}
}

func TestRender_HorizontalScroll(t *testing.T) {
	screen := backend.NewMemory(10, 4)
	r := New(screen, DefaultOptions())
	line := "abcdefghijklmnopqrstuvwxyz0123"
	buf := &fakeBuffer{lines: []string{line}, cur: buffer.Point{Column: 25}}

	r.Render(buf, Status{})
	if r.LeftColumn() != 16 {
		t.Fatalf("LeftColumn() = %d, want 16", r.LeftColumn())
	}
	if got := screen.Line(0); got != line[16:26] {
		t.Errorf("row 0 = %q, want %q", got, line[16:26])
	}
	if x, _, _ := screen.Cursor(); x != 9 {
		t.Errorf("cursor x = %d, want 9", x)
	}
}

func TestRender_Tabs(t *testing.T) {
	screen := backend.NewMemory(20, 4)
	r := New(screen, Options{TabWidth: 4})
	buf := &fakeBuffer{lines: []string{"\tx\ty"}, cur: buffer.Point{Column: 3}}

	r.Render(buf, Status{})
	if got := screen.Line(0); got != "    x   y" {
		t.Errorf("row 0 = %q", got)
	}
	if x, _, _ := screen.Cursor(); x != 8 {
		t.Errorf("cursor x = %d, want 8", x)
	}
}

func TestRender_LineNumbers(t *testing.T) {
	screen := backend.NewMemory(20, 4)
	r := New(screen, Options{ShowLineNumbers: true})
	buf := &fakeBuffer{lines: numbered(10), cur: buffer.Point{Line: 1, Column: 2}}

	r.Render(buf, Status{})
	if got := screen.Line(0); got != " 1 line 0" {
		t.Errorf("row 0 = %q", got)
	}
	if x, y, _ := screen.Cursor(); x != 5 || y != 1 {
		t.Errorf("cursor = %d,%d, want 5,1", x, y)
	}
}

func TestRender_CommandLine(t *testing.T) {
	screen := backend.NewMemory(20, 4)
	r := New(screen, DefaultOptions())

	r.Render(&fakeBuffer{lines: []string{""}}, Status{Mode: mode.Command, CommandLine: "wq"})
	if got := screen.Line(3); got != ":wq" {
		t.Errorf("command row = %q, want :wq", got)
	}
	if x, y, _ := screen.Cursor(); x != 3 || y != 3 {
		t.Errorf("cursor = %d,%d, want 3,3", x, y)
	}
	if screen.CursorStyle() != mode.CursorBar {
		t.Errorf("cursor style = %v, want bar", screen.CursorStyle())
	}
}

func TestRender_TinyScreen(t *testing.T) {
	screen := backend.NewMemory(10, 1)
	r := New(screen, DefaultOptions())
	r.Render(&fakeBuffer{lines: []string{"abc"}}, Status{Message: "hi"})

	if got := screen.Line(0); got != "hi" {
		t.Errorf("row 0 = %q, want hi", got)
	}
	if _, _, visible := screen.Cursor(); visible {
		t.Error("cursor should be hidden without text rows")
	}
}

func TestRender_InvalidUTF8(t *testing.T) {
	screen := backend.NewMemory(10, 4)
	r := New(screen, DefaultOptions())
	r.Render(&fakeBuffer{lines: []string{"a\xffb\x01"}}, Status{})

	if got := screen.Line(0); got != "a�b?" {
		t.Errorf("row 0 = %q", got)
	}
}

func TestMessageRow(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want string
	}{
		{"normal", Status{}, ""},
		{"insert", Status{Mode: mode.Insert}, "-- INSERT --"},
		{"replace", Status{Mode: mode.Replace}, "-- REPLACE --"},
		{"recording", Status{Recording: 'q'}, "recording @q"},
		{"insert recording", Status{Mode: mode.Insert, Recording: 'a'}, "-- INSERT --recording @a"},
		{"message wins", Status{Mode: mode.Insert, Message: "written"}, "written"},
		{"command", Status{Mode: mode.Command, CommandLine: "w out", Message: "x"}, ":w out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := messageRow(tt.st); got != tt.want {
				t.Errorf("messageRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusBar(t *testing.T) {
	got := statusBar(Status{FileName: "a.txt", Modified: true, Pending: "2d"}, buffer.Point{Line: 4, Column: 2}, 9, 40)
	if !strings.HasPrefix(got, " a.txt [+]") {
		t.Errorf("statusBar() = %q, want file name and modified flag", got)
	}
	if !strings.HasSuffix(got, "2d   5,3  50% ") {
		t.Errorf("statusBar() = %q, want pending keys and position", got)
	}
	if len(got) != 40 {
		t.Errorf("len(statusBar()) = %d, want 40", len(got))
	}

	if got := statusBar(Status{FileName: "a.txt"}, buffer.Point{}, 1, 5); got != " a.txt" {
		t.Errorf("narrow statusBar() = %q, want only the name", got)
	}
}

func TestScrollPercent(t *testing.T) {
	tests := []struct {
		line, count int
		want        string
	}{
		{0, 1, "All"},
		{0, 10, "Top"},
		{9, 10, "Bot"},
		{3, 7, "50%"},
	}
	for _, tt := range tests {
		if got := scrollPercent(tt.line, tt.count); got != tt.want {
			t.Errorf("scrollPercent(%d, %d) = %q, want %q", tt.line, tt.count, got, tt.want)
		}
	}
}

func TestDisplayColumn(t *testing.T) {
	tests := []struct {
		text string
		col  int
		want int
	}{
		{"abc", 2, 2},
		{"\tx", 1, 8},
		{"ab\tx", 3, 8},
		{"héllo", 3, 2},
		{"abc", 10, 3},
	}
	for _, tt := range tests {
		if got := DisplayColumn(tt.text, tt.col, 8); got != tt.want {
			t.Errorf("DisplayColumn(%q, %d) = %d, want %d", tt.text, tt.col, got, tt.want)
		}
	}
}
