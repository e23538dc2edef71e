package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"jot/internal/debounce"
	"jot/internal/domain"
	"jot/internal/service"
	"jot/internal/storage"
)

// editorDebounceWindow coalesces editor keystrokes before they reach the
// note store.
const editorDebounceWindow = 350 * time.Millisecond

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx context.Context

	db        *storage.DB
	snapshots *storage.SnapshotStore
	notes     *service.NoteService
	toasts    *service.ToastService
	watcher   *snapshotWatcher

	// Debounced editor saves, one pending slot each.
	saveTitle   func(id, title string)
	saveContent func(id, content string)
}

// New creates a new App.
func New() *App {
	return &App{}
}

// Emit implements service.EventEmitter by forwarding to the Wails runtime.
func (a *App) Emit(_ context.Context, event string, data any) {
	wailsRuntime.EventsEmit(a.ctx, event, data)
}

// dataDir is where the snapshot database lives, shared with headless mode.
func dataDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "jot")
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	db, err := storage.New(filepath.Join(dataDir(), "jot.db"))
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to open storage: %v", err)
		return
	}
	db.StartMaintenance()

	a.db = db
	a.snapshots = storage.NewSnapshotStore(db)
	a.toasts = service.NewToastService(a, service.DefaultToastDuration)
	a.notes = service.NewNoteService(a.snapshots, a.toasts, a.confirmDelete)

	a.saveTitle = debounce.Func2(editorDebounceWindow, func(id, title string) {
		if err := a.notes.Update(a.ctx, id, domain.NotePatch{Title: &title}); err != nil {
			wailsRuntime.LogErrorf(a.ctx, "save title: %v", err)
		}
	})
	a.saveContent = debounce.Func2(editorDebounceWindow, func(id, content string) {
		if err := a.notes.Update(a.ctx, id, domain.NotePatch{Content: &content}); err != nil {
			wailsRuntime.LogErrorf(a.ctx, "save content: %v", err)
		}
	})

	a.watcher = newSnapshotWatcher(ctx, a)
	if err := a.watcher.Start(); err != nil {
		wailsRuntime.LogErrorf(ctx, "snapshot watcher: %v", err)
	}
}

// Shutdown is called when the app closes.
func (a *App) Shutdown(_ context.Context) {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
}

// confirmDelete blocks on a native question dialog until the user answers.
func (a *App) confirmDelete(_ context.Context, title, message string) bool {
	result, err := wailsRuntime.MessageDialog(a.ctx, wailsRuntime.MessageDialogOptions{
		Type:          wailsRuntime.QuestionDialog,
		Title:         title,
		Message:       message,
		Buttons:       []string{"Delete", "Cancel"},
		DefaultButton: "Cancel",
	})
	if err != nil {
		wailsRuntime.LogErrorf(a.ctx, "confirm dialog: %v", err)
		return false
	}
	return result == "Delete"
}
