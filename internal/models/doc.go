// Package models declares the persistent schema of the game-world object store.
//
// The package contains three categories of types:
//
// 1. Entities: the four collections carried by an import batch
//   - [GameUser] : player accounts, keyed by ObjectID with username as natural key
//   - [GameLevel] : published levels, keyed by their author-assigned numeric id
//   - [GameAsset] : uploaded resources, keyed by their own content hash
//   - [AssetDependencyRelation] : directed (dependent, dependency) hash pairs
//
// 2. Join relations: rows created only by the seeding phase
//   - [UniquePlayLevelRelation], [PlayLevelRelation] : play records per level
//   - [FavouriteUserRelation], [FavouriteLevelRelation] : heart records
//
// 3. Identifiers: [ObjectID], a 24-hex object identifier with a lenient JSON
// codec ([ObjectID.UnmarshalJSON] accepts bare hex or a {"$oid": ...} wrapper
// and substitutes a fresh identifier for anything unparseable).
//
// Only a handful of fields carry engine logic; the rest mirror the upstream
// game-server schema so a populated store is usable as-is.
package models
