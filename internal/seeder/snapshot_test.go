package seeder

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dryarchive/worldimport/internal/shared"
	"github.com/dryarchive/worldimport/internal/testdb"
)

func TestOpenSnapshotMissingFile(t *testing.T) {
	_, err := OpenSnapshot(filepath.Join(t.TempDir(), "absent.db"))
	if !errors.Is(err, shared.ErrMissingSnapshot) {
		t.Errorf("expected ErrMissingSnapshot, got %v", err)
	}
}

func TestSnapshotCounters(t *testing.T) {
	path := testdb.NewSnapshot(t)
	testdb.SnapshotExec(t, path,
		"INSERT INTO slot (id, uniquePlayCount, heartCount) VALUES (1, 5, 3), (2, NULL, -4)")
	testdb.SnapshotExec(t, path,
		`INSERT INTO "user" (npHandle, heartCount) VALUES ('alice', 2)`)

	snap, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer snap.Close()

	cases := []struct {
		name string
		fn   func() (int64, error)
		want int64
	}{
		{"level unique plays", func() (int64, error) { return snap.LevelUniquePlays(1) }, 5},
		{"level hearts", func() (int64, error) { return snap.LevelHearts(1) }, 3},
		{"null counter reads as zero", func() (int64, error) { return snap.LevelUniquePlays(2) }, 0},
		{"negative counter reads as zero", func() (int64, error) { return snap.LevelHearts(2) }, 0},
		{"absent level reads as zero", func() (int64, error) { return snap.LevelUniquePlays(99) }, 0},
		{"user hearts", func() (int64, error) { return snap.UserHearts("alice") }, 2},
		{"absent user reads as zero", func() (int64, error) { return snap.UserHearts("nobody") }, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
