package seeder

import (
	"fmt"
	"time"

	"github.com/dryarchive/worldimport/internal/models"
	"gorm.io/gorm"
)

// PlaceholderPrefix marks synthetic users created by the seeder. Real import
// logic never touches accounts under this prefix.
const PlaceholderPrefix = "dry_player_"

// placeholderName builds a pool member's username. The sequence is
// zero-padded so sorting by name equals creation order across runs.
func placeholderName(seq int64) string {
	return fmt.Sprintf("%s%06d", PlaceholderPrefix, seq)
}

// createPool allocates size placeholder users in one transaction and returns
// them in creation order. The name sequence continues after any placeholders
// left by earlier runs, so reruns accumulate instead of colliding.
func (s *Seeder) createPool(size int64) ([]models.GameUser, error) {
	if size <= 0 {
		return nil, nil
	}

	var start int64
	err := s.store.DB().Model(&models.GameUser{}).
		Where("username LIKE ?", PlaceholderPrefix+"%").
		Count(&start).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count placeholders: %w", err)
	}

	now := time.Now().UTC()
	pool := make([]models.GameUser, size)
	for i := range pool {
		pool[i] = models.GameUser{
			UserID:        models.NewObjectID(),
			Username:      placeholderName(start + int64(i)),
			JoinDate:      now,
			LastLoginDate: now,
		}
	}

	err = s.store.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&pool).Error
	})
	if err != nil {
		return nil, err
	}

	return pool, nil
}

// storedPool re-enumerates every placeholder user in the store, sorted by
// name for determinism. The hearts passes use this instead of the in-memory
// pool because they may run against placeholders created by an earlier
// process invocation.
func (s *Seeder) storedPool() ([]models.GameUser, error) {
	var pool []models.GameUser
	err := s.store.DB().
		Where("username LIKE ?", PlaceholderPrefix+"%").
		Order("username").
		Find(&pool).Error
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate placeholders: %w", err)
	}
	return pool, nil
}
