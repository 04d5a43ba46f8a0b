package core

// Collection is the ordered sequence of notes.
// Insertion order is preserved; there is no dedup and no sorting.
type Collection struct {
	notes []Note
}

// Len returns the number of notes.
func (c *Collection) Len() int {
	return len(c.notes)
}

// All returns a copy of the notes in order.
func (c *Collection) All() []Note {
	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// At returns the note at position i.
func (c *Collection) At(i int) (Note, bool) {
	if i < 0 || i >= len(c.notes) {
		return Note{}, false
	}
	return c.notes[i], true
}

// Index returns the position of the note with the given id, or -1.
func (c *Collection) Index(id int64) int {
	for i, n := range c.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Get retrieves a note by its ID.
func (c *Collection) Get(id int64) (Note, bool) {
	i := c.Index(id)
	if i < 0 {
		return Note{}, false
	}
	return c.notes[i], true
}

// Append adds a note at the end.
func (c *Collection) Append(n Note) {
	c.notes = append(c.notes, n)
}

// Replace swaps every entry matching n.ID in place.
// IDs are unique under the monotonic strategy; the timestamp strategy can repeat one, and then all
// entries sharing it are rewritten.
// It reports false, leaving the collection untouched, when no entry matches.
func (c *Collection) Replace(n Note) bool {
	found := false
	for i := range c.notes {
		if c.notes[i].ID == n.ID {
			c.notes[i] = n
			found = true
		}
	}
	return found
}

// Remove deletes every entry with the given id. Removing an absent id is a no-op.
func (c *Collection) Remove(id int64) bool {
	kept := c.notes[:0:0]
	for _, n := range c.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(c.notes) {
		return false
	}
	c.notes = kept
	return true
}
