package importer

import (
	"github.com/charmbracelet/log"
	"github.com/dryarchive/worldimport/internal/models"
	"github.com/dryarchive/worldimport/internal/shared"
	"github.com/dryarchive/worldimport/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Summary reports how many records of each collection were written.
type Summary struct {
	Users     int
	Levels    int
	Relations int
	Assets    int
}

// Importer applies one import batch to the object store.
type Importer struct {
	store  *store.Store
	logger *log.Logger
}

// New creates an Importer writing to st.
func New(st *store.Store, logger *log.Logger) *Importer {
	return &Importer{store: st, logger: logger}
}

// Run reconciles the batch against the store and commits it as one atomic
// unit: users first, then levels, then deduplicated dependency edges, then
// assets. A batch with zero users cannot establish a fallback owner and is
// rejected before anything is staged.
func (imp *Importer) Run(batch *models.ImportBatch) (*Summary, error) {
	if len(batch.Users) == 0 {
		return nil, shared.ErrNothingToImport
	}

	db := imp.store.DB()

	if err := reconcileUsers(db, batch.Users); err != nil {
		return nil, err
	}
	sanitizeBatch(batch)
	linkOwnership(batch, &batch.Users[0])

	relations, err := dedupeRelations(db, batch.Relations)
	if err != nil {
		return nil, err
	}

	err = imp.store.Transaction(func(tx *gorm.DB) error {
		for i := range batch.Users {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&batch.Users[i]).Error; err != nil {
				return err
			}
		}
		for i := range batch.Levels {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&batch.Levels[i]).Error; err != nil {
				return err
			}
		}
		if len(relations) > 0 {
			if err := tx.Create(&relations).Error; err != nil {
				return err
			}
		}
		for i := range batch.Assets {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&batch.Assets[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Users:     len(batch.Users),
		Levels:    len(batch.Levels),
		Relations: len(relations),
		Assets:    len(batch.Assets),
	}

	imp.logger.Info("import committed",
		"users", summary.Users,
		"levels", summary.Levels,
		"relations", summary.Relations,
		"assets", summary.Assets,
	)

	return summary, nil
}
