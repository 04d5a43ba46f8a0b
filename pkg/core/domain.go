// Package core holds the note pad domain: notes, the ordered collection and the editor session.
package core

import (
	"fmt"
	"strings"
	"time"
)

// Note is the central entity of the domain.
// ID is assigned once at creation and never changes.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Preview returns the first line of the content, as shown in a single-line list entry.
func (n Note) Preview() string {
	line, _, _ := strings.Cut(n.Content, "\n")
	return strings.TrimSuffix(line, "\r")
}

// EventType represents the kind of transition that happened in the notebook.
type EventType string

const (
	EventOpen   EventType = "OPEN"
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
	EventCancel EventType = "CANCEL"
)

// Event represents a transition of the notebook.
type Event struct {
	Type      EventType
	NoteID    int64 // zero for sessions that never touched a stored note
	SessionID string
	Timestamp int64 // Unix milliseconds
}

// String implements fmt.Stringer (and lifecycle.Event).
func (e Event) String() string {
	if e.NoteID == 0 {
		return fmt.Sprintf("%s session=%s", e.Type, e.SessionID)
	}
	return fmt.Sprintf("%s note=%d session=%s", e.Type, e.NoteID, e.SessionID)
}

func newEvent(t EventType, noteID int64, sessionID string, now time.Time) Event {
	return Event{
		Type:      t,
		NoteID:    noteID,
		SessionID: sessionID,
		Timestamp: now.UnixMilli(),
	}
}
