// Package cache provides pluggable byte caches for solver and render
// results.
//
// Solving is cheap for small disk counts but trace logs and rendered
// artifacts (SVG, PNG) grow exponentially with n, so the pipeline memoizes
// them keyed by puzzle parameters and render options. Three backends are
// provided:
//   - FileCache: per-user cache directory for CLI usage
//   - MemoryCache: process-local cache for tests and the API server
//   - RedisCache: shared cache for multi-instance deployments
//   - NullCache: disables caching
//
// Keys are derived with the functions in keys.go; values are opaque bytes.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default lifetime of cache entries. Solver output is
// fully deterministic, so the TTL exists only to bound disk usage.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get retrieves a value. The second return value is false on a miss;
	// an error indicates a backend failure, not a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A non-positive TTL stores
	// the entry without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
