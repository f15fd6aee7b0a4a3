// Package cache stores opaque byte payloads under string keys, with an
// optional TTL. It backs the symbol-listing fetch so a catalog endpoint
// is asked at most once per TTL window.
//
// Backends: [FileCache] for CLI runs, [MemoryCache] for tests and
// single-instance servers, [RedisCache] when several instances should
// share one fetch, and [NullCache] to disable caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the backend interface. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// CatalogKey derives the cache key for a symbol-listing response. The
// source URL is hashed so the key is safe for every backend regardless
// of what characters the URL contains.
func CatalogKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return "catalog:" + hex.EncodeToString(sum[:])
}

// NullCache misses on every Get and discards every Set.
type NullCache struct{}

// NewNullCache creates a cache that never stores anything.
func NewNullCache() *NullCache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
