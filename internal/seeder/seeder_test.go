package seeder

import (
	"io"
	"strings"
	"testing"

	"github.com/dryarchive/worldimport/internal/models"
	"github.com/dryarchive/worldimport/internal/shared"
	"github.com/dryarchive/worldimport/internal/store"
	"github.com/dryarchive/worldimport/internal/testdb"
)

// seedFixture is a store with one real user and two levels, plus an empty
// snapshot ready for counters.
func seedFixture(t *testing.T) (*store.Store, string) {
	t.Helper()

	st := testdb.OpenStore(t)
	user := models.GameUser{UserID: models.NewObjectID(), Username: "alice"}
	if err := st.DB().Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	levels := []models.GameLevel{
		{LevelID: 1, Title: "garden intro", PublisherID: user.UserID},
		{LevelID: 2, Title: "cavern", PublisherID: user.UserID},
	}
	if err := st.DB().Create(&levels).Error; err != nil {
		t.Fatalf("failed to seed levels: %v", err)
	}

	return st, testdb.NewSnapshot(t)
}

func runSeeder(t *testing.T, st *store.Store, snapPath string) *Summary {
	t.Helper()

	snap, err := OpenSnapshot(snapPath)
	if err != nil {
		t.Fatalf("failed to open snapshot: %v", err)
	}
	defer snap.Close()

	sum, err := New(st, snap, shared.NewLogger(io.Discard)).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sum
}

func TestRunScalesPlaysToCounter(t *testing.T) {
	st, snapPath := seedFixture(t)
	testdb.SnapshotExec(t, snapPath,
		"INSERT INTO slot (id, uniquePlayCount, heartCount) VALUES (1, 5, 0), (2, 2, 0)")

	sum := runSeeder(t, st, snapPath)

	if sum.Placeholders != 5 {
		t.Errorf("expected pool sized to largest counter, got %d", sum.Placeholders)
	}
	if sum.UniquePlays != 7 || sum.PlayCounts != 7 {
		t.Errorf("expected 7 plays of each kind, got %+v", sum)
	}

	var plays []models.UniquePlayLevelRelation
	if err := st.DB().Where("level_id = ?", 1).Find(&plays).Error; err != nil {
		t.Fatalf("failed to enumerate plays: %v", err)
	}
	if len(plays) != 5 {
		t.Fatalf("expected 5 unique plays for level 1, got %d", len(plays))
	}

	actors := make(map[models.ObjectID]struct{}, len(plays))
	for _, play := range plays {
		actors[play.UserID] = struct{}{}
	}
	if len(actors) != 5 {
		t.Errorf("expected 5 distinct placeholder actors, got %d", len(actors))
	}
}

func TestRunClampsHeartsToPool(t *testing.T) {
	st, snapPath := seedFixture(t)
	testdb.SnapshotExec(t, snapPath,
		"INSERT INTO slot (id, uniquePlayCount, heartCount) VALUES (1, 3, 10)")
	testdb.SnapshotExec(t, snapPath,
		`INSERT INTO "user" (npHandle, heartCount) VALUES ('alice', 10)`)

	sum := runSeeder(t, st, snapPath)

	if sum.Placeholders != 3 {
		t.Fatalf("expected pool of 3, got %d", sum.Placeholders)
	}
	if sum.FavouriteUsers != 3 {
		t.Errorf("expected user hearts clamped to pool, got %d", sum.FavouriteUsers)
	}
	if sum.FavouriteLevels != 3 {
		t.Errorf("expected level hearts clamped to pool, got %d", sum.FavouriteLevels)
	}
}

func TestRunRerunAccumulates(t *testing.T) {
	st, snapPath := seedFixture(t)
	testdb.SnapshotExec(t, snapPath,
		"INSERT INTO slot (id, uniquePlayCount, heartCount) VALUES (1, 3, 0)")

	runSeeder(t, st, snapPath)
	runSeeder(t, st, snapPath)

	var placeholders int64
	err := st.DB().Model(&models.GameUser{}).
		Where("username LIKE ?", PlaceholderPrefix+"%").
		Count(&placeholders).Error
	if err != nil {
		t.Fatalf("failed to count placeholders: %v", err)
	}
	if placeholders != 6 {
		t.Errorf("expected second run to double the pool, got %d", placeholders)
	}

	var plays int64
	if err := st.DB().Model(&models.UniquePlayLevelRelation{}).Count(&plays).Error; err != nil {
		t.Fatalf("failed to count plays: %v", err)
	}
	if plays != 6 {
		t.Errorf("expected second run to double unique plays, got %d", plays)
	}

	// The name sequence continues past the first run's pool.
	var continued models.GameUser
	err = st.DB().First(&continued, "username = ?", placeholderName(5)).Error
	if err != nil {
		t.Errorf("expected continued placeholder sequence: %v", err)
	}
}

func TestRunWithoutCounters(t *testing.T) {
	st, snapPath := seedFixture(t)

	sum := runSeeder(t, st, snapPath)

	if sum.Placeholders != 0 || sum.UniquePlays != 0 || sum.FavouriteUsers != 0 || sum.FavouriteLevels != 0 {
		t.Errorf("expected empty snapshot to seed nothing, got %+v", sum)
	}
}

func TestPlaceholderName(t *testing.T) {
	if got := placeholderName(0); got != "dry_player_000000" {
		t.Errorf("unexpected first name %q", got)
	}
	if got := placeholderName(42); !strings.HasSuffix(got, "000042") {
		t.Errorf("expected zero-padded sequence, got %q", got)
	}
}
