package core

import (
	"github.com/aretw0/introspection"
)

// NotebookState exposes internal state for observability.
type NotebookState struct {
	Notes           int    `json:"notes"`
	Mode            Mode   `json:"mode"`
	SessionID       string `json:"session_id,omitempty"`
	SelectedID      int64  `json:"selected_id,omitempty"`
	IDStrategy      string `json:"id_strategy"`
	EventBufferSize int    `json:"event_buffer_size"`
	EventsPending   int    `json:"events_pending"`
	EventsPublished int    `json:"events_published"`
	EventsDropped   int    `json:"events_dropped"`
}

// State implements introspection.Introspectable.
func (nb *Notebook) State() any {
	return NotebookState{
		Notes:           nb.notes.Len(),
		Mode:            nb.session.Mode(),
		SessionID:       nb.session.ID,
		SelectedID:      selectedID(nb.session),
		IDStrategy:      nb.ids.Strategy(),
		EventBufferSize: cap(nb.events),
		EventsPending:   len(nb.events),
		EventsPublished: nb.published,
		EventsDropped:   nb.dropped,
	}
}

// ComponentType implements introspection.Component.
func (nb *Notebook) ComponentType() string {
	return "notebook"
}

var _ introspection.Introspectable = (*Notebook)(nil)
var _ introspection.Component = (*Notebook)(nil)
