package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"jot/internal/debounce"
)

// snapshotWatcher detects writes to the snapshot slot made by another
// process (the standalone MCP server) and refreshes the in-memory store,
// emitting a Wails event so the frontend re-renders. Its own process's
// writes are recognized by the save stamp and ignored.
type snapshotWatcher struct {
	ctx      context.Context
	app      *App
	watcher  *fsnotify.Watcher
	check    func()
	lastSeen int64
}

func newSnapshotWatcher(ctx context.Context, app *App) *snapshotWatcher {
	w := &snapshotWatcher{ctx: ctx, app: app}
	// fsnotify fires several events per SQLite commit; coalesce them.
	run := debounce.New(debounce.DefaultWindow)
	w.check = func() { run(w.refresh) }
	return w
}

// Start begins watching the database directory. Should be called once on
// app startup.
func (w *snapshotWatcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(w.app.db.Path())); err != nil {
		fw.Close()
		return err
	}
	w.watcher = fw
	if fp, err := w.app.snapshots.Fingerprint(); err == nil {
		w.lastSeen = fp
	}
	go w.run()
	return nil
}

// Stop terminates the watch loop.
func (w *snapshotWatcher) Stop() {
	if w.watcher != nil {
		w.watcher.Close()
	}
}

func (w *snapshotWatcher) run() {
	dbName := filepath.Base(w.app.db.Path())
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// The WAL and journal files carry the actual commits.
			if strings.HasPrefix(filepath.Base(event.Name), dbName) {
				w.check()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			wailsRuntime.LogErrorf(w.ctx, "snapshot watch: %v", err)
		}
	}
}

func (w *snapshotWatcher) refresh() {
	fp, err := w.app.snapshots.Fingerprint()
	if err != nil || fp == w.lastSeen {
		return
	}
	w.lastSeen = fp
	if fp == w.app.notes.LastSaveStamp() {
		return // our own write
	}
	w.app.notes.Reload()
	wailsRuntime.EventsEmit(w.ctx, "notes:changed", nil)
}
