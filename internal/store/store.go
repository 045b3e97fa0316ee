// Package store manages the persistent object store the importer writes to.
//
// The store is a single SQLite file. A missing output file is created by
// copying a caller-supplied template; an existing one is updated in place.
// [Open] stamps the file with one fixed schema version for the whole run and
// refuses files stamped with a newer version. All mutations go through
// [Store.Transaction], so a failed phase leaves no partial writes.
package store

import (
	"fmt"
	"io"
	"os"

	"github.com/dryarchive/worldimport/internal/models"
	"github.com/dryarchive/worldimport/internal/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SchemaVersion is the fixed schema tag stamped into PRAGMA user_version.
const SchemaVersion = 13

// Models lists every persistent type in migration order: users before the
// collections that reference them.
var Models = []any{
	&models.GameUser{},
	&models.GameLevel{},
	&models.AssetDependencyRelation{},
	&models.GameAsset{},
	&models.UniquePlayLevelRelation{},
	&models.PlayLevelRelation{},
	&models.FavouriteLevelRelation{},
	&models.FavouriteUserRelation{},
}

// Store wraps a GORM handle to the object store file.
type Store struct {
	db *gorm.DB
}

// Prepare ensures the output file exists, copying the template when it does
// not. An existing output file is left untouched so reruns update in place.
func Prepare(templatePath, outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return nil
	}

	src, err := os.Open(templatePath)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrTemplateCopy, err)
	}
	defer src.Close()

	dst, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrTemplateCopy, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("%w: %v", shared.ErrTemplateCopy, err)
	}

	return nil
}

// Open opens the store at path, migrates the schema, and stamps the fixed
// schema version. Files stamped with a newer version are refused.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreOpen, err)
	}

	var version int
	if err := db.Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreOpen, err)
	}
	if version > SchemaVersion {
		return nil, fmt.Errorf("%w: store is version %d, tool supports %d",
			shared.ErrStoreVersion, version, SchemaVersion)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreOpen, err)
	}

	if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreOpen, err)
	}

	return &Store{db: db}, nil
}

// DB exposes the underlying GORM handle for reads.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn inside one scoped write transaction. Every error
// aborts the whole scope; the caller observes either all writes or none.
func (s *Store) Transaction(fn func(tx *gorm.DB) error) error {
	if err := s.db.Transaction(fn); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStoreWrite, err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
