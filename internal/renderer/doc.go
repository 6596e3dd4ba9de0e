// Package renderer draws a document and the editor status onto a backend.
//
// The screen is split into three areas:
//
//	┌─────────────────────────────────────────┐
//	│  text rows (with optional line numbers) │
//	│  ~                                      │
//	├─────────────────────────────────────────┤
//	│  status bar: file, pending keys, pos    │
//	├─────────────────────────────────────────┤
//	│  message row / ":" command line         │
//	└─────────────────────────────────────────┘
//
// The viewport scrolls just enough to keep the cursor visible. Tabs are
// expanded to the configured width; bytes that are not valid UTF-8 are
// drawn as the replacement character.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(eng, renderer.Status{Mode: modes.Mode()})
package renderer
