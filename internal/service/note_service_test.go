package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"jot/internal/domain"
	"jot/internal/service"
	"jot/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// NoteService tests run against a real SQLite-backed slot so the
// persist-on-mutation contract is exercised end to end.
// ─────────────────────────────────────────────────────────────

func newService(t *testing.T, confirm service.ConfirmFunc) (*service.NoteService, *storage.SnapshotStore, *service.MockEmitter) {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "jot.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := storage.NewSnapshotStore(db)
	emitter := &service.MockEmitter{}
	toasts := service.NewToastService(emitter, time.Minute)
	return service.NewNoteService(store, toasts, confirm), store, emitter
}

func refuse(context.Context, string, string) bool { return false }

func TestNoteService_FirstRunIsSeeded(t *testing.T) {
	svc, _, _ := newService(t, nil)

	notes := svc.List("")
	if len(notes) != 2 {
		t.Fatalf("expected 2 seeded notes on first run, got %d", len(notes))
	}
	if svc.Active() != notes[0].ID {
		t.Fatalf("expected first seeded note active, got %q", svc.Active())
	}
}

func TestNoteService_CreatePrependsAndPersists(t *testing.T) {
	svc, store, emitter := newService(t, nil)
	ctx := context.Background()

	before := svc.List("")
	n, err := svc.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if n.Title != "" || n.Content != "" {
		t.Errorf("new note should have empty title and content, got %q / %q", n.Title, n.Content)
	}
	if n.UpdatedAt < n.CreatedAt {
		t.Errorf("updatedAt %d < createdAt %d", n.UpdatedAt, n.CreatedAt)
	}
	for _, old := range before {
		if old.ID == n.ID {
			t.Fatalf("new note reused existing id %s", n.ID)
		}
	}

	notes := svc.List("")
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(notes))
	}
	if notes[0].ID != n.ID {
		t.Fatal("new note is not first in iteration order")
	}
	if svc.Active() != n.ID {
		t.Fatal("new note did not become active")
	}

	persisted := store.Load()
	if len(persisted) != 3 || persisted[0].ID != n.ID {
		t.Fatal("persisted snapshot does not match in-memory collection")
	}
	if got := len(emitter.Named("toast:show")); got != 1 {
		t.Fatalf("expected 1 toast after create, got %d", got)
	}
}

func TestNoteService_UpdateMergesFieldsAndBumpsUpdatedAt(t *testing.T) {
	svc, store, _ := newService(t, nil)
	ctx := context.Background()

	target := svc.List("")[0]
	time.Sleep(2 * time.Millisecond) // ensure the clock moves past createdAt

	title := "X"
	if err := svc.Update(ctx, target.ID, domain.NotePatch{Title: &title}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := svc.Get(target.ID)
	if got.Title != "X" {
		t.Fatalf("expected title %q, got %q", "X", got.Title)
	}
	if got.Content != target.Content {
		t.Fatal("content changed on a title-only patch")
	}
	if got.UpdatedAt <= target.UpdatedAt {
		t.Fatalf("updatedAt did not increase: %d <= %d", got.UpdatedAt, target.UpdatedAt)
	}

	persisted := store.Load()
	if persisted[0].Title != "X" {
		t.Fatal("update was not persisted")
	}
}

func TestNoteService_UpdateUnknownIDIsNoop(t *testing.T) {
	svc, _, _ := newService(t, nil)

	before := svc.List("")
	title := "ghost"
	if err := svc.Update(context.Background(), "no-such-id", domain.NotePatch{Title: &title}); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	after := svc.List("")
	if len(after) != len(before) {
		t.Fatal("collection length changed")
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("note %d changed: %+v != %+v", i, after[i], before[i])
		}
	}
}

func TestNoteService_DeleteRemovesAndFallsBack(t *testing.T) {
	svc, store, emitter := newService(t, nil)
	ctx := context.Background()

	seed := svc.List("")[0]
	removed, err := svc.Delete(ctx, seed.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Fatal("expected deletion to happen")
	}

	notes := svc.List("")
	if len(notes) != 1 {
		t.Fatalf("expected 1 note left, got %d", len(notes))
	}
	if svc.Get(seed.ID) != nil {
		t.Fatal("deleted note still present")
	}
	if svc.Active() != notes[0].ID {
		t.Fatal("selection did not fall back to the new first note")
	}
	if len(store.Load()) != 1 {
		t.Fatal("deletion was not persisted")
	}
	if got := len(emitter.Named("toast:show")); got != 1 {
		t.Fatalf("expected 1 toast after delete, got %d", got)
	}
}

func TestNoteService_DeleteLastNoteClearsSelection(t *testing.T) {
	svc, _, _ := newService(t, nil)
	ctx := context.Background()

	for _, n := range svc.List("") {
		if _, err := svc.Delete(ctx, n.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	}

	if got := svc.List(""); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d", len(got))
	}
	if svc.Active() != "" {
		t.Fatalf("expected no active note, got %q", svc.Active())
	}
}

func TestNoteService_RefusedConfirmationChangesNothing(t *testing.T) {
	svc, store, emitter := newService(t, refuse)
	ctx := context.Background()

	target := svc.List("")[0]
	removed, err := svc.Delete(ctx, target.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed {
		t.Fatal("deletion happened despite refused confirmation")
	}
	if len(svc.List("")) != 2 || len(store.Load()) != 2 {
		t.Fatal("collection changed despite refused confirmation")
	}
	if got := len(emitter.Named("toast:show")); got != 0 {
		t.Fatalf("expected no toast on refusal, got %d", got)
	}
}

func TestNoteService_DeleteUnknownIDIsNoop(t *testing.T) {
	svc, _, _ := newService(t, nil)

	removed, err := svc.Delete(context.Background(), "no-such-id")
	if err != nil || removed {
		t.Fatalf("expected (false, nil), got (%v, %v)", removed, err)
	}
	if len(svc.List("")) != 2 {
		t.Fatal("collection changed")
	}
}

func TestNoteService_ListFiltersWithoutMutating(t *testing.T) {
	svc, _, _ := newService(t, nil)

	got := svc.List("ocean")
	if len(got) != 1 || got[0].Title != "Ocean Professional Theme" {
		t.Fatalf("expected the ocean seed note, got %v", got)
	}
	if len(svc.List("  ")) != 2 {
		t.Fatal("whitespace query should return the full collection")
	}
}

func TestNoteService_RoundTripAfterEveryMutation(t *testing.T) {
	svc, store, _ := newService(t, nil)
	ctx := context.Background()

	check := func(step string) {
		t.Helper()
		mem := svc.List("")
		disk := store.Load()
		if len(mem) != len(disk) {
			t.Fatalf("%s: %d in memory, %d persisted", step, len(mem), len(disk))
		}
		for i := range mem {
			if mem[i] != disk[i] {
				t.Fatalf("%s: note %d diverged: %+v != %+v", step, i, mem[i], disk[i])
			}
		}
	}

	n, err := svc.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	check("create")

	content := "round trip"
	if err := svc.Update(ctx, n.ID, domain.NotePatch{Content: &content}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	check("update")

	if _, err := svc.Delete(ctx, n.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	check("delete")
}

func TestNoteService_ReloadPicksUpExternalWrites(t *testing.T) {
	svc, store, _ := newService(t, nil)

	external := []domain.Note{{ID: "ext-1", Title: "from another process", CreatedAt: 1, UpdatedAt: 1}}
	if _, err := store.Save(external); err != nil {
		t.Fatalf("Save: %v", err)
	}

	svc.Reload()
	notes := svc.List("")
	if len(notes) != 1 || notes[0].ID != "ext-1" {
		t.Fatalf("expected external snapshot after reload, got %v", notes)
	}
	if svc.Active() != "ext-1" {
		t.Fatalf("expected selection to fall back to first note, got %q", svc.Active())
	}
}
