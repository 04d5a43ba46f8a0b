package core

import (
	"io"
	"log/slog"
	"time"
)

const defaultEventBuffer = 100

// NotebookConfig wires the collaborators of a Notebook.
type NotebookConfig struct {
	IDs         IDGenerator  // defaults to MonotonicIDs
	Clock       Clock        // defaults to time.Now
	Logger      *slog.Logger // defaults to a discarding logger
	EventBuffer int          // zero means 100
}

// Notebook owns the note collection and the editor session.
// Its methods are the only way to mutate either of them.
//
// A Notebook is not safe for concurrent use: transitions are expected to run one at a time,
// each to completion, in response to discrete user actions.
type Notebook struct {
	notes   Collection
	session Session

	ids    IDGenerator
	now    Clock
	logger *slog.Logger

	events    chan Event
	published int
	dropped   int
}

// NewNotebook creates an empty notebook with the editor closed.
func NewNotebook(cfg NotebookConfig) *Notebook {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.IDs == nil {
		cfg.IDs = NewMonotonicIDs(cfg.Clock)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = defaultEventBuffer
	}
	return &Notebook{
		ids:    cfg.IDs,
		now:    cfg.Clock,
		logger: cfg.Logger,
		events: make(chan Event, cfg.EventBuffer),
	}
}

// --- Read contract ---

// Notes returns the collection in order.
func (nb *Notebook) Notes() []Note { return nb.notes.All() }

// Len returns the number of notes.
func (nb *Notebook) Len() int { return nb.notes.Len() }

// Note retrieves a stored note by ID.
func (nb *Notebook) Note(id int64) (Note, bool) { return nb.notes.Get(id) }

// NoteAt retrieves the note at a list position.
func (nb *Notebook) NoteAt(i int) (Note, bool) { return nb.notes.At(i) }

// Session returns a copy of the current editor session.
func (nb *Notebook) Session() Session { return nb.session.clone() }

// IsOpen reports whether the editor is visible.
func (nb *Notebook) IsOpen() bool { return nb.session.Open }

// Editing reports whether the editor is open on a stored note.
func (nb *Notebook) Editing() bool { return nb.session.Mode() == ModeEditing }

// Events returns the stream of transitions.
// Publication never blocks: when nobody drains the stream and the buffer is full, events are dropped.
func (nb *Notebook) Events() <-chan Event { return nb.events }

// --- Transitions ---

// OpenForCreate opens the editor on empty drafts with no selection.
func (nb *Notebook) OpenForCreate() {
	nb.discardOpenSession()
	nb.session = newSession(nil, nb.now())
	nb.logger.Debug("editor opened", "mode", ModeCreating, "session", nb.session.ID)
	nb.publish(EventOpen, 0)
}

// OpenForEdit opens the editor on note, copying its fields into the drafts.
// A note whose ID is no longer in the collection leaves the notebook untouched and yields ErrNoteNotFound.
func (nb *Notebook) OpenForEdit(note Note) error {
	if nb.notes.Index(note.ID) < 0 {
		nb.logger.Warn("edit requested for a note that is not in the collection", "id", note.ID)
		return ErrNoteNotFound
	}
	nb.discardOpenSession()
	nb.session = newSession(&note, nb.now())
	nb.logger.Debug("editor opened", "mode", ModeEditing, "id", note.ID, "session", nb.session.ID)
	nb.publish(EventOpen, note.ID)
	return nil
}

// UpdateDraftTitle replaces the title draft.
func (nb *Notebook) UpdateDraftTitle(text string) error {
	if !nb.session.Open {
		return ErrSessionClosed
	}
	nb.session.DraftTitle = text
	return nil
}

// UpdateDraftContent replaces the content draft.
func (nb *Notebook) UpdateDraftContent(text string) error {
	if !nb.session.Open {
		return ErrSessionClosed
	}
	nb.session.DraftContent = text
	return nil
}

// Save commits the drafts and closes the editor.
// When editing, the stored entries with the selected ID keep their ID and position; when creating,
// a new note is appended.
func (nb *Notebook) Save() (Note, error) {
	if !nb.session.Open {
		return Note{}, ErrSessionClosed
	}
	s := nb.session
	nb.close()

	if s.Selected == nil {
		n := Note{ID: nb.ids.Next(), Title: s.DraftTitle, Content: s.DraftContent}
		nb.notes.Append(n)
		nb.logger.Debug("note created", "id", n.ID, "session", s.ID)
		nb.publishFor(EventCreate, n.ID, s.ID)
		return n, nil
	}

	n := Note{ID: s.Selected.ID, Title: s.DraftTitle, Content: s.DraftContent}
	if !nb.notes.Replace(n) {
		nb.logger.Warn("saved note is no longer in the collection", "id", n.ID, "session", s.ID)
		return n, nil
	}
	nb.logger.Debug("note updated", "id", n.ID, "session", s.ID)
	nb.publishFor(EventModify, n.ID, s.ID)
	return n, nil
}

// Cancel discards the drafts and closes the editor. The collection is untouched.
func (nb *Notebook) Cancel() {
	if !nb.session.Open {
		return
	}
	s := nb.session
	nb.close()
	nb.logger.Debug("editor cancelled", "session", s.ID)
	nb.publishFor(EventCancel, selectedID(s), s.ID)
}

// Delete removes the notes with the same ID and closes the editor.
// Deleting a note that is already gone is a no-op.
// The note is expected to be the selection; any other note is still deleted, with a warning.
func (nb *Notebook) Delete(note Note) {
	s := nb.session
	if s.Mode() != ModeEditing || s.Selected.ID != note.ID {
		nb.logger.Warn("delete requested for a note other than the selection", "id", note.ID, "selected", selectedID(s))
	}
	nb.close()
	if !nb.notes.Remove(note.ID) {
		nb.logger.Debug("delete of absent note ignored", "id", note.ID)
		return
	}
	nb.logger.Debug("note deleted", "id", note.ID, "session", s.ID)
	nb.publishFor(EventDelete, note.ID, s.ID)
}

// DeleteSelected deletes the note the editor is open on.
func (nb *Notebook) DeleteSelected() error {
	if nb.session.Mode() != ModeEditing {
		return ErrNotEditing
	}
	nb.Delete(*nb.session.Selected)
	return nil
}

// Drain discards every pending event. It returns how many were pending.
func (nb *Notebook) Drain() int {
	n := 0
	for {
		select {
		case <-nb.events:
			n++
		default:
			return n
		}
	}
}

// --- internals ---

func (nb *Notebook) close() {
	nb.session = Session{}
}

func (nb *Notebook) discardOpenSession() {
	if nb.session.Open {
		nb.logger.Debug("discarding open session", "session", nb.session.ID, "mode", nb.session.Mode())
	}
}

func (nb *Notebook) publish(t EventType, noteID int64) {
	nb.publishFor(t, noteID, nb.session.ID)
}

func (nb *Notebook) publishFor(t EventType, noteID int64, sessionID string) {
	e := newEvent(t, noteID, sessionID, nb.now())
	select {
	case nb.events <- e:
		nb.published++
	default:
		nb.dropped++
	}
}

func selectedID(s Session) int64 {
	if s.Selected == nil {
		return 0
	}
	return s.Selected.ID
}
