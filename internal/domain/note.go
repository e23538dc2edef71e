package domain

import "strings"

// Note is a single user-authored note. Timestamps are epoch milliseconds,
// matching the persisted JSON layout exactly.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// DisplayTitle returns the title shown to the user. Notes are created with
// an empty title; "Untitled" is a display fallback and is never stored.
func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return "Untitled"
	}
	return n.Title
}

// NotePatch carries the editable fields of a note. Nil means "leave as is".
type NotePatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// SnapshotStore persists the full note collection as one serialized snapshot.
// It never hands out live Note references; callers own what they pass in and
// what they get back.
type SnapshotStore interface {
	// Load reads the persisted collection. It fails soft: a missing slot,
	// an unreadable store, or a value that does not decode as a note array
	// all yield an empty slice.
	Load() []Note
	// Save overwrites the whole snapshot and returns the write stamp
	// (epoch milliseconds) recorded with it.
	Save(notes []Note) (int64, error)
	// Seeded reports whether the slot has ever been written.
	Seeded() (bool, error)
	// Seed writes the example notes for a first run and returns them.
	Seed() ([]Note, error)
	// LoadOrSeed seeds on a never-written slot, then loads, so a first run
	// never observes an empty collection.
	LoadOrSeed() []Note
	// Fingerprint returns the stamp of the last write, 0 if none.
	Fingerprint() (int64, error)
}
