package core

import (
	"time"

	"github.com/google/uuid"
)

// Session is the transient editor state. It is created fresh every time the editor opens
// and discarded when it closes.
type Session struct {
	ID           string
	Selected     *Note // nil while creating a new note
	DraftTitle   string
	DraftContent string
	Open         bool
	OpenedAt     time.Time
}

// Mode names the sub-state of the editor.
type Mode string

const (
	ModeClosed   Mode = "closed"
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

// Mode reports whether the session is closed, creating or editing.
func (s Session) Mode() Mode {
	switch {
	case !s.Open:
		return ModeClosed
	case s.Selected == nil:
		return ModeCreating
	default:
		return ModeEditing
	}
}

func newSession(selected *Note, now time.Time) Session {
	s := Session{
		ID:       uuid.NewString(),
		Open:     true,
		OpenedAt: now,
	}
	if selected != nil {
		n := *selected
		s.Selected = &n
		s.DraftTitle = n.Title
		s.DraftContent = n.Content
	}
	return s
}

// clone copies the session so callers cannot reach the notebook's selection.
func (s Session) clone() Session {
	if s.Selected != nil {
		n := *s.Selected
		s.Selected = &n
	}
	return s
}
