package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/gapvim/internal/engine/history"
	"github.com/dshills/gapvim/internal/input/mode"
)

// ============================================================================
// Basic Operations
// ============================================================================

func TestNew(t *testing.T) {
	e := New()
	if e.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", e.LineCount())
	}
	if e.Text() != "" {
		t.Errorf("Text() = %q, want empty", e.Text())
	}
	if e.Modified() {
		t.Error("new engine is modified")
	}
}

func TestNewWithContent(t *testing.T) {
	e := New(WithContent("one\r\ntwo\r\n"))
	if e.LineCount() != 2 || e.LineText(1) != "two" {
		t.Errorf("lines = %v", e.Document().Lines())
	}
	if e.Document().LineEnding() != LineEndingCRLF {
		t.Errorf("LineEnding() = %v, want crlf", e.Document().LineEnding())
	}
	if e.Text() != "one\r\ntwo\r\n" {
		t.Errorf("Text() = %q", e.Text())
	}
}

func TestWithLineEndingOverridesDetection(t *testing.T) {
	e := New(WithContent("a\r\nb\r\n"), WithLineEnding(LineEndingLF))
	if e.Text() != "a\nb\n" {
		t.Errorf("Text() = %q, want %q", e.Text(), "a\nb\n")
	}
}

func TestNewFromReader(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("Hello, World!\n"))
	if err != nil {
		t.Fatalf("NewFromReader() error = %v", err)
	}
	if e.LineText(0) != "Hello, World!" {
		t.Errorf("LineText(0) = %q", e.LineText(0))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestNewFromReaderError(t *testing.T) {
	if _, err := NewFromReader(failingReader{}); err == nil {
		t.Error("NewFromReader() error = nil, want error")
	}
}

// ============================================================================
// Undo/Redo
// ============================================================================

func TestUndoRedo(t *testing.T) {
	e := New(WithContent("abc\n"))

	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}

	e.Execute(history.InsertChar('X'), 1, false)
	if e.Text() != "Xabc\n" || !e.Modified() {
		t.Fatalf("Text() = %q, Modified() = %v", e.Text(), e.Modified())
	}
	if err := e.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if e.Text() != "abc\n" {
		t.Errorf("after undo Text() = %q", e.Text())
	}
	if !e.CanRedo() {
		t.Error("CanRedo() = false after undo")
	}
	if err := e.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if err := e.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
}

func TestFlushSplitsTyping(t *testing.T) {
	e := New()
	e.Execute(history.InsertChar('a'), 1, true)
	e.Flush()
	e.Execute(history.InsertChar('b'), 1, true)

	_ = e.Undo()
	if e.LineText(0) != "a" {
		t.Errorf("LineText(0) = %q, want %q", e.LineText(0), "a")
	}
}

func TestWithMaxHistory(t *testing.T) {
	e := New(WithMaxHistory(3))
	e.Execute(history.InsertChar('a'), 1, false)
	e.Execute(history.InsertChar('b'), 1, false)
	e.Execute(history.InsertChar('c'), 1, false)
	e.Execute(history.InsertChar('d'), 1, false)
	if e.History().Len() != 3 {
		t.Errorf("History().Len() = %d, want 3", e.History().Len())
	}
}

func TestNeedsRender(t *testing.T) {
	e := New()
	if !e.NeedsRender() {
		t.Error("NeedsRender() = false on a fresh engine")
	}
	e.Execute(history.InsertChar('a'), 1, true)
	e.Execute(history.InsertChar('b'), 1, true)
	if !e.NeedsRender() {
		t.Error("NeedsRender() = false after the latest keystroke")
	}
}

// ============================================================================
// Collaborators
// ============================================================================

func TestModesAndQuit(t *testing.T) {
	modes := mode.NewManager()
	quit := false
	e := New(WithModes(modes), WithQuit(func(bool) { quit = true }))

	e.Execute(history.ChangeMode(mode.Insert), 1, false)
	e.Execute(history.Quit(false), 1, false)

	if modes.Mode() != mode.Insert {
		t.Errorf("Mode() = %v, want insert", modes.Mode())
	}
	if !quit {
		t.Error("quit callback not called")
	}
}

func TestYankAndPut(t *testing.T) {
	e := New(WithContent("a\nb\n"))
	e.Execute(history.YankLines(1), 1, false)
	e.Execute(history.Put(false), 2, false)
	if got := e.Text(); got != "a\na\na\nb\n" {
		t.Errorf("Text() = %q", got)
	}
	if e.Clipboard().Empty() {
		t.Error("Clipboard() is empty")
	}
}

// ============================================================================
// I/O
// ============================================================================

func TestWriteToAndMarkSaved(t *testing.T) {
	e := New(WithContent("x\n"))
	e.Execute(history.InsertChar('y'), 1, false)

	var sb strings.Builder
	n, err := e.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if sb.String() != "yx\n" || n != 3 {
		t.Errorf("WriteTo() wrote %q (%d bytes)", sb.String(), n)
	}

	e.MarkSaved()
	if e.Modified() {
		t.Error("Modified() = true after MarkSaved")
	}

	e.Execute(history.InsertChar('z'), 1, false)
	if err := e.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if e.Modified() {
		t.Error("Modified() = true after undoing back to the saved text")
	}
}
