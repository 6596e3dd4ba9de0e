// Package history provides the command log of the editor: every edit runs
// as a Command whose effect can be undone and redone.
//
// # Commands
//
// A Command applies one primitive edit to a document and captures enough
// state at execution time to reverse it. Commands are built by a Factory,
// one fresh instance per execution, and hold a Context with the document
// and its collaborators (clipboard, mode switcher, quit callback):
//
//	log := history.NewLog(&history.Context{Doc: doc})
//	log.Execute(history.InsertChar('X'), 1, false)
//	log.Undo()
//
// # Generations
//
// Each recorded command is tagged with a generation id. All repetitions of
// one Execute call share a generation, so "3dd" undoes as a unit. Batch
// calls (one keystroke each, issued by the dispatcher while typing) join the
// generation of the preceding call until Flush marks a boundary:
//
//	log.Execute(history.InsertLine(false), 1, false) // o
//	log.Execute(history.InsertChar('h'), 1, true)
//	log.Execute(history.InsertChar('i'), 1, true)
//	log.Undo() // removes "hi" and the opened line
//
// # Bounded history
//
// The log keeps at most MaxHistory entries and evicts the oldest first.
// A new edit after an undo discards the entries that could have been redone.
package history
