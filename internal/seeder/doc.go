// Package seeder expands popularity counters into individual relation rows.
//
// The relational snapshot records scalar counters (unique plays per level,
// hearts per user and per level) but the object store models popularity as
// per-user join relations. The seeder bridges the two: it allocates a pool
// of placeholder users sized to the largest unique-play counter, then runs
// three passes that each turn a counter c into c (clamped to the pool size)
// relation rows, assigning placeholder actors by ascending pool index.
//
// Seeding is deliberately not idempotent: every run allocates a fresh pool
// and fresh rows. Placeholder names continue a zero-padded sequence across
// runs so the prefix-sorted re-enumeration used by the hearts passes stays
// in creation order.
package seeder
