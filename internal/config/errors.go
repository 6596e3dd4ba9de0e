package config

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed indicates a value failed validation.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoPath indicates the config was not loaded from a file.
	ErrNoPath = errors.New("config has no file path")
)

// ValidationError reports an invalid setting.
type ValidationError struct {
	// Path is the dotted setting path, e.g. "editor.max_history".
	Path string
	// Value is the rejected value.
	Value any
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s = %v: %s", e.Path, e.Value, e.Message)
}

// Unwrap allows errors.Is(err, ErrValidationFailed).
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
