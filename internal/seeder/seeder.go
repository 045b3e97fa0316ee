package seeder

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dryarchive/worldimport/internal/models"
	"github.com/dryarchive/worldimport/internal/store"
	"gorm.io/gorm"
)

// Summary reports how many synthetic records a seed run created.
type Summary struct {
	Placeholders    int
	UniquePlays     int
	PlayCounts      int
	FavouriteUsers  int
	FavouriteLevels int
}

// Seeder expands snapshot counters into relation rows against a persisted
// store. It must run after the import phase has committed.
type Seeder struct {
	store  *store.Store
	snap   *Snapshot
	logger *log.Logger
}

// New creates a Seeder reading counters from snap and writing to st.
func New(st *store.Store, snap *Snapshot, logger *log.Logger) *Seeder {
	return &Seeder{store: st, snap: snap, logger: logger}
}

// Run executes pool creation and the three seeding passes. Each step commits
// its own transaction; a failure in a later pass does not roll back earlier
// ones.
func (s *Seeder) Run() (*Summary, error) {
	var levels []models.GameLevel
	if err := s.store.DB().Order("level_id").Find(&levels).Error; err != nil {
		return nil, fmt.Errorf("failed to enumerate levels: %w", err)
	}

	// The pool is sized from unique-play counters only; the hearts passes
	// clamp to it rather than growing it.
	plays := make(map[int64]int64, len(levels))
	var maxCount int64
	for _, level := range levels {
		c, err := s.snap.LevelUniquePlays(level.LevelID)
		if err != nil {
			return nil, err
		}
		plays[level.LevelID] = c
		if c > maxCount {
			maxCount = c
		}
	}

	pool, err := s.createPool(maxCount)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Placeholders: len(pool)}
	s.logger.Info("placeholder pool created", "size", len(pool))

	if err := s.seedUniquePlays(levels, plays, pool, sum); err != nil {
		return nil, err
	}
	if err := s.seedUserHearts(sum); err != nil {
		return nil, err
	}
	if err := s.seedLevelHearts(levels, sum); err != nil {
		return nil, err
	}

	s.logger.Info("seeding complete",
		"placeholders", sum.Placeholders,
		"uniquePlays", sum.UniquePlays,
		"playCounts", sum.PlayCounts,
		"favouriteUsers", sum.FavouriteUsers,
		"favouriteLevels", sum.FavouriteLevels,
	)

	return sum, nil
}

// seedUniquePlays creates c unique-play and c play-count relations per
// counted level, assigning placeholders from this run's pool by index 0..c-1.
// The pool is sized to the largest counter, so this pass never overflows it.
func (s *Seeder) seedUniquePlays(levels []models.GameLevel, plays map[int64]int64, pool []models.GameUser, sum *Summary) error {
	return s.store.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, level := range levels {
			c := plays[level.LevelID]
			for i := int64(0); i < c; i++ {
				actor := pool[i]
				play := models.UniquePlayLevelRelation{
					UserID:    actor.UserID,
					LevelID:   level.LevelID,
					Timestamp: now,
				}
				if err := tx.Create(&play).Error; err != nil {
					return err
				}
				count := models.PlayLevelRelation{
					UserID:    actor.UserID,
					LevelID:   level.LevelID,
					Count:     1,
					Timestamp: now,
				}
				if err := tx.Create(&count).Error; err != nil {
					return err
				}
				sum.UniquePlays++
				sum.PlayCounts++
			}
		}
		return nil
	})
}

// seedUserHearts creates favourite-user relations pointing placeholder users
// at every real user with a non-zero heart counter. Counters larger than the
// stored pool are clamped, which silently under-seeds; that is the documented
// behavior, not a defect.
func (s *Seeder) seedUserHearts(sum *Summary) error {
	pool, err := s.storedPool()
	if err != nil {
		return err
	}

	var users []models.GameUser
	err = s.store.DB().
		Where("username NOT LIKE ?", PlaceholderPrefix+"%").
		Order("username").
		Find(&users).Error
	if err != nil {
		return fmt.Errorf("failed to enumerate users: %w", err)
	}

	return s.store.Transaction(func(tx *gorm.DB) error {
		for _, user := range users {
			c, err := s.snap.UserHearts(user.Username)
			if err != nil {
				return err
			}
			n := clamp(c, len(pool))
			for i := 0; i < n; i++ {
				rel := models.FavouriteUserRelation{
					UserToFavouriteID: user.UserID,
					UserFavouritingID: pool[i].UserID,
				}
				if err := tx.Create(&rel).Error; err != nil {
					return err
				}
				sum.FavouriteUsers++
			}
		}
		return nil
	})
}

// seedLevelHearts is the level-keyed twin of seedUserHearts, producing
// favourite-level relations.
func (s *Seeder) seedLevelHearts(levels []models.GameLevel, sum *Summary) error {
	pool, err := s.storedPool()
	if err != nil {
		return err
	}

	return s.store.Transaction(func(tx *gorm.DB) error {
		for _, level := range levels {
			c, err := s.snap.LevelHearts(level.LevelID)
			if err != nil {
				return err
			}
			n := clamp(c, len(pool))
			for i := 0; i < n; i++ {
				rel := models.FavouriteLevelRelation{
					UserID:  pool[i].UserID,
					LevelID: level.LevelID,
				}
				if err := tx.Create(&rel).Error; err != nil {
					return err
				}
				sum.FavouriteLevels++
			}
		}
		return nil
	})
}

func clamp(c int64, poolSize int) int {
	if c > int64(poolSize) {
		return poolSize
	}
	return int(c)
}
