// Package mode holds the modal state of the editor.
//
// The editor is always in exactly one mode. Normal mode interprets keys as
// commands, Insert mode types text, Replace mode overwrites text and Command
// mode edits the ":" command line. The Manager tracks the current and
// previous mode and notifies listeners of transitions.
package mode
