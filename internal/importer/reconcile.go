package importer

import (
	"errors"
	"fmt"

	"github.com/dryarchive/worldimport/internal/models"
	"gorm.io/gorm"
)

// identity is the result of resolving an incoming user against the store:
// either the identifier of an existing row or a caller-specified/fresh one.
type identity struct {
	ID       models.ObjectID
	Existing bool
}

// resolveUserIdentity looks up a stored user by username (the natural key)
// and decides which identifier the incoming record should carry:
//
//   - found: the stored identifier, so the merge updates the row in place
//   - not found, incoming identifier unset: a freshly allocated identifier
//   - not found, incoming identifier set: the caller-specified identifier,
//     e.g. from a prior migration
func resolveUserIdentity(db *gorm.DB, user *models.GameUser) (identity, error) {
	var existing models.GameUser
	err := db.Where("username = ?", user.Username).First(&existing).Error
	switch {
	case err == nil:
		return identity{ID: existing.UserID, Existing: true}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if user.UserID.IsZero() {
			return identity{ID: models.NewObjectID()}, nil
		}
		return identity{ID: user.UserID}, nil
	default:
		return identity{}, fmt.Errorf("failed to resolve user %q: %w", user.Username, err)
	}
}

// reconcileUsers rewrites every incoming user's identifier per
// [resolveUserIdentity]. Must run before sanitization so user_<id> names are
// derived from the final identifiers.
func reconcileUsers(db *gorm.DB, users []models.GameUser) error {
	for i := range users {
		id, err := resolveUserIdentity(db, &users[i])
		if err != nil {
			return err
		}
		users[i].UserID = id.ID
	}
	return nil
}

// edgeKey identifies a dependency edge by its pair, not its row.
type edgeKey struct {
	dependent  string
	dependency string
}

// dedupeRelations drops incoming edges whose (dependent, dependency) pair is
// already stored, and collapses duplicate pairs within the batch itself.
func dedupeRelations(db *gorm.DB, incoming []models.AssetDependencyRelation) ([]models.AssetDependencyRelation, error) {
	var existing []models.AssetDependencyRelation
	if err := db.Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load stored relations: %w", err)
	}

	seen := make(map[edgeKey]struct{}, len(existing)+len(incoming))
	for _, rel := range existing {
		seen[edgeKey{rel.Dependent, rel.Dependency}] = struct{}{}
	}

	fresh := make([]models.AssetDependencyRelation, 0, len(incoming))
	for _, rel := range incoming {
		key := edgeKey{rel.Dependent, rel.Dependency}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rel.ID = 0
		fresh = append(fresh, rel)
	}

	return fresh, nil
}
