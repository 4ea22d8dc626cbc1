// ABOUTME: In-memory memo cache built on patrickmn/go-cache
// ABOUTME: Memoizes model outputs so identical texts are processed once

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is the error returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// Memo implements the Cache interface with go-cache storage.
type Memo struct {
	cache *gocache.Cache
}

// NewMemo creates a memo cache with the given default expiration and
// cleanup interval.
func NewMemo(defaultExpiration, cleanupInterval time.Duration) *Memo {
	return &Memo{cache: gocache.New(defaultExpiration, cleanupInterval)}
}

// Get retrieves a value by key, returning ErrCacheMiss when absent.
func (m *Memo) Get(ctx context.Context, key string) ([]byte, error) {
	val, found := m.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}
	data, ok := val.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}
	return data, nil
}

// Set stores a value under key. A zero ttl stores it for the cache's
// default expiration.
func (m *Memo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	m.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a key from the cache.
func (m *Memo) Delete(ctx context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}
