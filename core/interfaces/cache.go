// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"

	"hn-rss-translator/core/domain"
)

// Cache defines the interface for short-lived key/value caching. It is
// used to memoize model outputs (summaries, translations) within and
// across pipeline stages so identical texts are never processed twice.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}

// CacheStore is the durable per-item processing cache consulted before
// fetching and rewritten after a successful run. Implementations are a
// JSON file (default) and SQLite.
type CacheStore interface {
	// Load reads the persisted records. Missing or corrupt storage yields
	// an empty map, never an error; the cache must not be able to fail a
	// run.
	Load(ctx context.Context) map[string]domain.CacheRecord

	// Save atomically overwrites persisted storage with the given
	// records, stamping any record lacking ProcessedAt with the current
	// time.
	Save(ctx context.Context, records map[string]domain.CacheRecord) error
}

// Prune returns a copy of records without the entries whose ProcessedAt
// is older than now-ttl. It is a pure function shared by every store
// implementation; applying it twice is a no-op.
func Prune(records map[string]domain.CacheRecord, ttl time.Duration, now time.Time) map[string]domain.CacheRecord {
	kept := make(map[string]domain.CacheRecord, len(records))
	for id, rec := range records {
		if rec.Expired(now, ttl) {
			continue
		}
		kept[id] = rec
	}
	return kept
}
