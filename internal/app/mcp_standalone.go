package app

import (
	"log"
	"path/filepath"

	mcpserver "jot/internal/mcp"
	"jot/internal/service"
	"jot/internal/storage"
)

// ServeMCP runs the app as a standalone MCP server on stdin/stdout with no
// GUI. The GUI process, if running, picks up this process's writes through
// its snapshot watcher.
func ServeMCP() {
	db, err := storage.New(filepath.Join(dataDir(), "jot.db"))
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer db.Close()

	snapshots := storage.NewSnapshotStore(db)
	emitter := service.NoopEmitter{}
	toasts := service.NewToastService(emitter, service.DefaultToastDuration)

	// Deletion is affirmed by the delete tool's confirm argument in this
	// mode, so the service-level callback always passes.
	notes := service.NewNoteService(snapshots, toasts, service.AlwaysConfirm)

	srv := mcpserver.New(mcpserver.Deps{Notes: notes})
	if err := srv.ServeStdio(); err != nil {
		log.Fatalf("MCP server: %v", err)
	}
}
