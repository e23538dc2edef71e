package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"jot/internal/domain"
	"jot/internal/search"
)

// ─────────────────────────────────────────────────────────────
// Note Service — the authoritative in-memory note collection
// ─────────────────────────────────────────────────────────────

// ConfirmFunc asks the user to affirm a destructive action. The Wails app
// shows a native question dialog; headless mode and tests supply their own.
type ConfirmFunc func(ctx context.Context, title, message string) bool

// AlwaysConfirm affirms every request. Used where confirmation has already
// happened upstream (e.g. the MCP delete tool's confirm argument).
func AlwaysConfirm(context.Context, string, string) bool { return true }

// NoteService owns the note collection exclusively. Every successful
// mutation writes the full collection back to the snapshot store before it
// returns; the in-memory collection stays authoritative even when a save
// fails, so a flaky store degrades to "unsaved" rather than losing edits.
type NoteService struct {
	store   domain.SnapshotStore
	toasts  *ToastService
	confirm ConfirmFunc

	// mu guards the collection: debounced edits and the snapshot watcher
	// reach the service from timer and watcher goroutines.
	mu       sync.Mutex
	notes    []domain.Note
	activeID string
	lastSave int64
}

// NewNoteService loads (seeding on first run) and returns the service.
// A nil confirm defaults to AlwaysConfirm.
func NewNoteService(store domain.SnapshotStore, toasts *ToastService, confirm ConfirmFunc) *NoteService {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	s := &NoteService{store: store, toasts: toasts, confirm: confirm}
	s.notes = store.LoadOrSeed()
	if len(s.notes) > 0 {
		s.activeID = s.notes[0].ID
	}
	return s
}

// Create inserts a new empty note at the front of the collection and makes
// it active. The returned note is valid even when the save error is not nil.
func (s *NoteService) Create(ctx context.Context) (*domain.Note, error) {
	now := time.Now().UnixMilli()
	n := domain.Note{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.notes = append([]domain.Note{n}, s.notes...)
	s.activeID = n.ID
	err := s.persist()
	s.mu.Unlock()

	s.toasts.Push(ctx, "Note created")
	return &n, err
}

// Update merges the given fields into the note with the given id and bumps
// updatedAt. An unknown id is a silent no-op.
func (s *NoteService) Update(ctx context.Context, id string, patch domain.NotePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, i, found := lo.FindIndexOf(s.notes, func(n domain.Note) bool { return n.ID == id })
	if !found {
		return nil
	}
	if patch.Title != nil {
		s.notes[i].Title = *patch.Title
	}
	if patch.Content != nil {
		s.notes[i].Content = *patch.Content
	}
	s.notes[i].UpdatedAt = time.Now().UnixMilli()
	return s.persist()
}

// Delete removes the note with the given id after the confirm callback
// affirms it. It reports whether the note was removed. An unknown id or a
// refused confirmation changes nothing.
func (s *NoteService) Delete(ctx context.Context, id string) (bool, error) {
	n := s.Get(id)
	if n == nil {
		return false, nil
	}
	// Confirmation can block on a dialog; never hold the lock across it.
	msg := fmt.Sprintf("Delete %q? This cannot be undone.", n.DisplayTitle())
	if !s.confirm(ctx, "Delete note", msg) {
		return false, nil
	}

	s.mu.Lock()
	before := len(s.notes)
	s.notes = lo.Reject(s.notes, func(n domain.Note, _ int) bool { return n.ID == id })
	if len(s.notes) == before {
		s.mu.Unlock()
		return false, nil
	}
	if s.activeID == id {
		s.activeID = ""
		if len(s.notes) > 0 {
			s.activeID = s.notes[0].ID
		}
	}
	err := s.persist()
	s.mu.Unlock()

	s.toasts.Push(ctx, "Note deleted")
	return true, err
}

// List returns the notes matching the query (title or content,
// case-insensitive); an empty or whitespace query returns everything. The
// result is a copy and never aliases the internal collection.
func (s *NoteService) List(query string) []domain.Note {
	s.mu.Lock()
	copied := append([]domain.Note(nil), s.notes...)
	s.mu.Unlock()
	return search.Filter(copied, query)
}

// Get returns a copy of the note with the given id, or nil.
func (s *NoteService) Get(id string) *domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(id)
}

func (s *NoteService) getLocked(id string) *domain.Note {
	for i := range s.notes {
		if s.notes[i].ID == id {
			n := s.notes[i]
			return &n
		}
	}
	return nil
}

// SetActive selects the note with the given id. Unknown ids are ignored.
func (s *NoteService) SetActive(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getLocked(id) != nil {
		s.activeID = id
	}
}

// Active returns the id of the selected note, "" when none is selected.
func (s *NoteService) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Reload replaces the in-memory collection from the snapshot store after an
// external writer changed it. Selection falls back to the first note when
// the active one is gone.
func (s *NoteService) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = s.store.Load()
	if s.getLocked(s.activeID) == nil {
		s.activeID = ""
		if len(s.notes) > 0 {
			s.activeID = s.notes[0].ID
		}
	}
}

// LastSaveStamp returns the write stamp of the most recent save made through
// this service. The snapshot watcher compares it against the slot
// fingerprint to tell its own writes from an external process's.
func (s *NoteService) LastSaveStamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSave
}

func (s *NoteService) persist() error {
	stamp, err := s.store.Save(s.notes)
	if err != nil {
		return fmt.Errorf("persist notes: %w", err)
	}
	s.lastSave = stamp
	return nil
}
