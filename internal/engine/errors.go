package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrNothingToUndo indicates the history has no applied command.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the history has no undone command.
	ErrNothingToRedo = errors.New("nothing to redo")
)
