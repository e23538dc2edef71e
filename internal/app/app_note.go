package app

// ─────────────────────────────────────────────────────────────
// Note Handlers — thin delegates to NoteService
// ─────────────────────────────────────────────────────────────

import (
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"jot/internal/domain"
)

// ListNotes returns the notes matching query, newest first. An empty query
// returns everything.
func (a *App) ListNotes(query string) []domain.Note {
	return a.notes.List(query)
}

// GetNote returns a single note, or nil for an unknown id.
func (a *App) GetNote(id string) *domain.Note {
	return a.notes.Get(id)
}

// CreateNote makes a new empty note and selects it.
func (a *App) CreateNote() (*domain.Note, error) {
	n, err := a.notes.Create(a.ctx)
	if err != nil {
		wailsRuntime.LogErrorf(a.ctx, "create note: %v", err)
	}
	return n, err
}

// UpdateNoteTitle schedules a debounced title save for the note.
func (a *App) UpdateNoteTitle(id, title string) {
	a.saveTitle(id, title)
}

// UpdateNoteContent schedules a debounced content save for the note.
func (a *App) UpdateNoteContent(id, content string) {
	a.saveContent(id, content)
}

// DeleteNote removes a note after native confirmation. It reports whether
// the note was actually deleted.
func (a *App) DeleteNote(id string) (bool, error) {
	removed, err := a.notes.Delete(a.ctx, id)
	if err != nil {
		wailsRuntime.LogErrorf(a.ctx, "delete note: %v", err)
	}
	return removed, err
}

// SetActiveNote selects a note.
func (a *App) SetActiveNote(id string) {
	a.notes.SetActive(id)
}

// ActiveNoteID returns the selected note id, "" when none.
func (a *App) ActiveNoteID() string {
	return a.notes.Active()
}

// AcknowledgeSave backs the save shortcut. Autosave is continuous, so this
// only reassures the user.
func (a *App) AcknowledgeSave() {
	a.toasts.Push(a.ctx, "All changes saved")
}
