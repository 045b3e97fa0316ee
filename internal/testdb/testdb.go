// package testdb contains shared test fixtures
package testdb

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dryarchive/worldimport/internal/store"
	_ "github.com/mattn/go-sqlite3"
)

// snapshotSchema mirrors the legacy counter tables of the relational
// snapshot the seeder reads.
const snapshotSchema = `
CREATE TABLE slot (
	id INTEGER PRIMARY KEY,
	uniquePlayCount INTEGER,
	heartCount INTEGER
);
CREATE TABLE "user" (
	npHandle TEXT PRIMARY KEY,
	heartCount INTEGER
);
`

// OpenStore creates a migrated store in a per-test temp directory.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()
	return OpenStoreAt(t, filepath.Join(t.TempDir(), "store.db"))
}

// OpenStoreAt opens (creating if needed) a store at path. Used by tests that
// reopen the same file across phases.
func OpenStoreAt(t *testing.T, path string) *store.Store {
	t.Helper()

	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

// NewSnapshot creates an empty snapshot fixture with the legacy counter
// schema and returns its path.
func NewSnapshot(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dry.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("failed to create snapshot fixture: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(snapshotSchema); err != nil {
		t.Fatalf("failed to create snapshot schema: %v", err)
	}

	return path
}

// SnapshotExec runs a statement against the snapshot fixture at path.
func SnapshotExec(t *testing.T, path, query string, args ...any) {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("failed to open snapshot fixture: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("failed to exec on snapshot fixture: %v", err)
	}
}
