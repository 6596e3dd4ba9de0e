package clipboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/gapvim/internal/engine/buffer"
)

func TestClipboardStartsEmpty(t *testing.T) {
	var c Clipboard
	if !c.Empty() || c.Kind() != None {
		t.Errorf("Kind() = %v, want none", c.Kind())
	}
	if got := c.Rows(); len(got) != 0 {
		t.Errorf("Rows() = %v, want empty", got)
	}
}

func TestYankLinesOverwriteAndExtend(t *testing.T) {
	c := New()
	c.YankLines([]*buffer.Line{buffer.NewLine("a")}, false)
	c.YankLines([]*buffer.Line{buffer.NewLine("b")}, true)
	if diff := cmp.Diff([]string{"a", "b"}, c.Rows()); diff != "" {
		t.Errorf("after extend (-want +got):\n%s", diff)
	}

	c.YankLines([]*buffer.Line{buffer.NewLine("c")}, false)
	if diff := cmp.Diff([]string{"c"}, c.Rows()); diff != "" {
		t.Errorf("after overwrite (-want +got):\n%s", diff)
	}
}

func TestExtendAfterCharYankReplaces(t *testing.T) {
	c := New()
	c.YankChars("xyz", 1, 4)
	c.YankLines([]*buffer.Line{buffer.NewLine("a")}, true)
	if c.Kind() != Lines {
		t.Errorf("Kind() = %v, want lines", c.Kind())
	}
	if diff := cmp.Diff([]string{"a"}, c.Rows()); diff != "" {
		t.Errorf("Rows() (-want +got):\n%s", diff)
	}
}

func TestLinesReturnsCopies(t *testing.T) {
	c := New()
	c.YankLines([]*buffer.Line{buffer.NewLine("keep")}, false)

	doc := buffer.NewDocument([]string{"x"})
	doc.InsertLines(0, c.Lines())
	doc.MoveCursorTo(0, 0)
	doc.InsertCharacter('!')

	if got := c.Text(); got != "keep" {
		t.Errorf("Text() = %q, want %q", got, "keep")
	}
}

func TestCharsAndBlock(t *testing.T) {
	c := New()
	c.YankChars("llo", 2, 5)
	if start, end := c.Columns(); start != 2 || end != 5 {
		t.Errorf("Columns() = %d,%d, want 2,5", start, end)
	}
	if c.Text() != "llo" {
		t.Errorf("Text() = %q, want %q", c.Text(), "llo")
	}

	c.YankBlock([]string{"ab", "cd"}, 1, 3)
	if c.Kind() != Block {
		t.Errorf("Kind() = %v, want block", c.Kind())
	}
	if c.Text() != "ab\ncd" {
		t.Errorf("Text() = %q, want %q", c.Text(), "ab\ncd")
	}

	c.Clear()
	if !c.Empty() {
		t.Error("Clear() left contents behind")
	}
}
