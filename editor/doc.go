// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package maps key and mouse input onto buffer operations and renders
// the committed snapshot with a caret, selection, optional line numbers and
// a placeholder. Hosts integrate through Config: constraints (MaxLength,
// MaxLines, Veto), a Clipboard and change events.
package editor
