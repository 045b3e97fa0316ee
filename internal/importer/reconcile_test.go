package importer

import (
	"testing"

	"github.com/dryarchive/worldimport/internal/models"
	"github.com/dryarchive/worldimport/internal/testdb"
)

func TestResolveUserIdentity(t *testing.T) {
	st := testdb.OpenStore(t)

	stored := models.GameUser{UserID: models.NewObjectID(), Username: "alice"}
	if err := st.DB().Create(&stored).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	t.Run("existing user keeps stored identifier", func(t *testing.T) {
		incoming := models.GameUser{UserID: models.NewObjectID(), Username: "alice"}
		id, err := resolveUserIdentity(st.DB(), &incoming)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !id.Existing {
			t.Error("expected resolution to report an existing user")
		}
		if id.ID != stored.UserID {
			t.Errorf("expected stored identifier %s, got %s", stored.UserID, id.ID)
		}
	})

	t.Run("new user with unset identifier gets a fresh one", func(t *testing.T) {
		incoming := models.GameUser{Username: "bob"}
		id, err := resolveUserIdentity(st.DB(), &incoming)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.Existing {
			t.Error("expected resolution to report a new user")
		}
		if id.ID.IsZero() {
			t.Error("expected a freshly allocated identifier")
		}
	})

	t.Run("new user with caller identifier keeps it", func(t *testing.T) {
		want := models.NewObjectID()
		incoming := models.GameUser{UserID: want, Username: "carol"}
		id, err := resolveUserIdentity(st.DB(), &incoming)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.ID != want {
			t.Errorf("expected caller identifier %s, got %s", want, id.ID)
		}
	})
}
