// Package engine provides the editing core of gapvim.
//
// The engine package is a facade over the sub-packages that implement the
// text model and its history:
//
//   - gap: generic gap buffer, used for characters and for lines
//   - buffer: lines, the document and its cursor
//   - history: commands and the generation-tagged undo/redo log
//   - clipboard: the most recent yank
//   - ring: fixed-capacity ring, used for the history and recent keys
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("hello\nworld\n"))
//
//	e.Execute(history.InsertChar('X'), 1, false)
//	e.Text() // "Xhello\nworld\n"
//
//	e.Undo()
//
// # Threading
//
// An Engine is owned by the single control goroutine of the editor. Every
// call runs to completion before the next key is read, so no locking is
// done.
package engine
