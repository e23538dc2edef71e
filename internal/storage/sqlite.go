package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database holding the key-value slot.
type DB struct {
	conn *sql.DB
	path string
	cron *cron.Cron
}

// New opens (or creates) the SQLite file at dbPath and runs migrations.
func New(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite only supports one writer — limit to single connection to prevent SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn, path: dbPath}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close stops maintenance and closes the database connection.
func (db *DB) Close() error {
	if db.cron != nil {
		db.cron.Stop()
	}
	return db.conn.Close()
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Conn returns the underlying database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT 0
	)`)
	return err
}

// StartMaintenance schedules a daily WAL checkpoint so the write-ahead log
// does not grow unbounded across long-lived sessions.
func (db *DB) StartMaintenance() {
	if db.cron != nil {
		return
	}
	db.cron = cron.New()
	db.cron.AddFunc("@daily", func() {
		db.conn.Exec(`PRAGMA wal_checkpoint(TRUNCATE)`)
	})
	db.cron.Start()
}
