// Package dbprep prepares the storage layer for use: it creates
// the Postgres schema, seeds the sample puzzles, and can clear
// the Redis cache.  All statements are idempotent, so the entry
// points can be called any number of times.
package dbprep

import "context"

// EnsureData makes sure the schema exists and the sample
// puzzles are seeded.
func EnsureData(ctx context.Context) error {
	if err := EnsureSchema(ctx); err != nil {
		return err
	}
	return DataUp(ctx)
}

// RemoveData drops the seeded puzzles and then the schema.
func RemoveData(ctx context.Context) error {
	if err := DataDown(ctx); err != nil {
		return err
	}
	return DropSchema(ctx)
}

// ReinitializeAll restores both stores to their initial state:
// the cache is flushed and the database is rebuilt from scratch.
func ReinitializeAll(ctx context.Context) error {
	if err := ClearCache(); err != nil {
		return err
	}
	if err := RemoveData(ctx); err != nil {
		return err
	}
	return EnsureData(ctx)
}
