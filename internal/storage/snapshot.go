package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jot/internal/domain"
)

// snapshotKey is the single slot holding the JSON-encoded note array.
const snapshotKey = "notes"

// SnapshotStore implements domain.SnapshotStore on the kv table.
type SnapshotStore struct {
	db *DB
}

func NewSnapshotStore(db *DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load reads the persisted note collection. Absence, read errors, and
// undecodable values all degrade to an empty collection; this path never
// reports an error to the caller.
func (s *SnapshotStore) Load() []domain.Note {
	var raw []byte
	err := s.db.conn.QueryRow(
		`SELECT value FROM kv WHERE key = ?`, snapshotKey,
	).Scan(&raw)
	if err != nil {
		return []domain.Note{}
	}

	var notes []domain.Note
	if err := json.Unmarshal(raw, &notes); err != nil || notes == nil {
		return []domain.Note{}
	}
	return notes
}

// Save overwrites the whole snapshot and returns the write stamp.
func (s *SnapshotStore) Save(notes []domain.Note) (int64, error) {
	if notes == nil {
		notes = []domain.Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return 0, fmt.Errorf("encode snapshot: %w", err)
	}
	stamp := time.Now().UnixMilli()
	_, err = s.db.conn.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		snapshotKey, raw, stamp,
	)
	if err != nil {
		return 0, fmt.Errorf("save snapshot: %w", err)
	}
	return stamp, nil
}

// Seeded reports whether the slot has ever been written, corrupt or not.
func (s *SnapshotStore) Seeded() (bool, error) {
	var n int
	err := s.db.conn.QueryRow(
		`SELECT COUNT(*) FROM kv WHERE key = ?`, snapshotKey,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check seed: %w", err)
	}
	return n > 0, nil
}

// Seed writes the first-run example notes and returns them.
func (s *SnapshotStore) Seed() ([]domain.Note, error) {
	now := time.Now().UnixMilli()
	notes := []domain.Note{
		{
			ID:        uuid.New().String(),
			Title:     "Welcome to Jot",
			Content:   "Your notes live entirely on this machine.\n\nCreate a note with the + button, search as you type, and everything saves itself.",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New().String(),
			Title:     "Ocean Professional Theme",
			Content:   "The editor ships with the Ocean Professional theme: blue accents, soft shadows, and a layout that stays out of your way.",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if _, err := s.Save(notes); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return notes, nil
}

// LoadOrSeed composes seed detection and seeding so a first run never
// observes an empty collection.
func (s *SnapshotStore) LoadOrSeed() []domain.Note {
	seeded, err := s.Seeded()
	if err == nil && !seeded {
		if notes, err := s.Seed(); err == nil {
			return notes
		}
	}
	return s.Load()
}

// Fingerprint returns the stamp of the last write to the slot, 0 if the
// slot has never been written.
func (s *SnapshotStore) Fingerprint() (int64, error) {
	var stamp int64
	err := s.db.conn.QueryRow(
		`SELECT updated_at FROM kv WHERE key = ?`, snapshotKey,
	).Scan(&stamp)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("fingerprint: %w", err)
	}
	return stamp, nil
}
