package models

import "time"

// AssetDependencyRelation is a directed edge between two asset hashes.
// Pair membership, not row identity, defines uniqueness; the importer skips
// any pair already present in the store.
type AssetDependencyRelation struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	Dependent  string `gorm:"index:idx_dependent_dependency" json:"dependent"`
	Dependency string `gorm:"index:idx_dependent_dependency" json:"dependency"`
}

// TableName specifies the table name for GORM
func (AssetDependencyRelation) TableName() string {
	return "asset_dependency_relations"
}

// UniquePlayLevelRelation records one distinct player having played a level.
// Created only by the seeder; identical rows are expected across seed runs.
type UniquePlayLevelRelation struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    ObjectID  `gorm:"type:text;index"`
	LevelID   int64     `gorm:"index"`
	Timestamp time.Time
}

// TableName specifies the table name for GORM
func (UniquePlayLevelRelation) TableName() string {
	return "unique_play_level_relations"
}

// PlayLevelRelation records a play session with a play count. The seeder
// writes one row per synthesized play with Count = 1.
type PlayLevelRelation struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    ObjectID  `gorm:"type:text;index"`
	LevelID   int64     `gorm:"index"`
	Count     int
	Timestamp time.Time
}

// TableName specifies the table name for GORM
func (PlayLevelRelation) TableName() string {
	return "play_level_relations"
}

// FavouriteLevelRelation records a user hearting a level.
type FavouriteLevelRelation struct {
	ID      uint     `gorm:"primaryKey"`
	UserID  ObjectID `gorm:"type:text;index"`
	LevelID int64    `gorm:"index"`
}

// TableName specifies the table name for GORM
func (FavouriteLevelRelation) TableName() string {
	return "favourite_level_relations"
}

// FavouriteUserRelation records one user hearting another.
type FavouriteUserRelation struct {
	ID                uint     `gorm:"primaryKey"`
	UserToFavouriteID ObjectID `gorm:"type:text;index"`
	UserFavouritingID ObjectID `gorm:"type:text;index"`
}

// TableName specifies the table name for GORM
func (FavouriteUserRelation) TableName() string {
	return "favourite_user_relations"
}
