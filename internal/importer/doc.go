// Package importer reconciles an import batch into the object store.
//
// A run moves through four fixed steps:
//
//  1. identity resolution: every incoming user is matched against the store
//     by username; a match promotes the stored identifier onto the incoming
//     record, otherwise a missing identifier is freshly allocated
//  2. sanitization: required-but-nullable text fields become empty strings
//     and blank usernames become user_<identifier>
//  3. ownership linking: the first user in the batch becomes the owner of
//     every level and asset, and assets matching a level icon hash are
//     flagged as level icons
//  4. transactional write: users, levels, deduplicated dependency edges, and
//     assets are staged in that order inside a single transaction
//
// Incoming batches are treated as mutable staging data: steps 1-3 rewrite
// identifier and ownership fields in place before anything is persisted.
package importer
