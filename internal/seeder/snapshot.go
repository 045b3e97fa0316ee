package seeder

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/dryarchive/worldimport/internal/shared"
	_ "github.com/mattn/go-sqlite3"
)

// Snapshot performs read-only scalar lookups against the relational snapshot
// the archive dumper produced. Counters live in the snapshot's legacy schema:
// slot.uniquePlayCount and slot.heartCount keyed by numeric level id, and
// user.heartCount keyed by npHandle.
type Snapshot struct {
	db *sql.DB
}

// OpenSnapshot opens the snapshot database at path. The file must already
// exist; the seeder never creates or mutates it.
func OpenSnapshot(path string) (*Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrMissingSnapshot, path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// LevelUniquePlays returns the unique-play counter for a level id.
func (s *Snapshot) LevelUniquePlays(levelID int64) (int64, error) {
	return s.scalar("SELECT uniquePlayCount FROM slot WHERE id = ?", levelID)
}

// LevelHearts returns the heart counter for a level id.
func (s *Snapshot) LevelHearts(levelID int64) (int64, error) {
	return s.scalar("SELECT heartCount FROM slot WHERE id = ?", levelID)
}

// UserHearts returns the heart counter for a user's display name.
func (s *Snapshot) UserHearts(npHandle string) (int64, error) {
	return s.scalar(`SELECT heartCount FROM "user" WHERE npHandle = ?`, npHandle)
}

// scalar runs a single-value counter query. Null and absent counters both
// read as zero; only query faults are errors.
func (s *Snapshot) scalar(query string, key any) (int64, error) {
	var count sql.NullInt64
	err := s.db.QueryRow(query, key).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", shared.ErrSnapshotQuery, err)
	}
	if !count.Valid || count.Int64 < 0 {
		return 0, nil
	}
	return count.Int64, nil
}

// Close releases the snapshot connection.
func (s *Snapshot) Close() error {
	return s.db.Close()
}
