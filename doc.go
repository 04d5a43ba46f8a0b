// Package scribe is the Composition Root for the Scribe note pad.
//
// It connects the core state machine (a Notebook: an ordered note collection plus a single
// editor session) with its collaborators: ID generation, logging and the event stream.
//
// Every change goes through a Notebook method. A user opens the editor to create or to edit,
// updates the drafts, and then saves, cancels or deletes. Nothing is persisted: the collection
// lives as long as the process.
//
// Usage:
//
//	nb, err := scribe.New(scribe.WithLogger(logger))
//
//	nb.OpenForCreate()
//	_ = nb.UpdateDraftTitle("Groceries")
//	_ = nb.UpdateDraftContent("milk\neggs")
//	note, err := nb.Save()
package scribe
