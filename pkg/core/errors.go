package core

import "errors"

var (
	// ErrNoteNotFound is returned when an operation references a note that is not in the collection.
	ErrNoteNotFound = errors.New("note not found")

	// ErrSessionClosed is returned by draft and save operations when the editor is not open.
	ErrSessionClosed = errors.New("editor session is closed")

	// ErrNotEditing is returned by DeleteSelected when the session is not editing a stored note.
	ErrNotEditing = errors.New("editor session is not editing a note")
)
