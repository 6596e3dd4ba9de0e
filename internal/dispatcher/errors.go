package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNotAnEditorCommand indicates an unknown ":" command.
	ErrNotAnEditorCommand = errors.New("not an editor command")

	// ErrNoWriteSinceChange indicates :q on a modified document.
	ErrNoWriteSinceChange = errors.New("no write since last change (add ! to override)")

	// ErrNoSaver indicates :w without a save function configured.
	ErrNoSaver = errors.New("no file name")
)
