// Package cache stores tooling results and HTTP responses behind a small
// byte-oriented interface.
//
// Backends:
//   - [FileCache]: one JSON file per key under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the playground server
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys are built by a [Keyer] so that every entry point hashes its inputs
// the same way. [NewScopedKeyer] prefixes keys to keep namespaces apart.
package cache

import (
	"context"
	"time"
)

// Default time-to-live per entry type.
const (
	TTLHTTP     = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry. A ttl of 0 never expires.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they hold.
type Clearer interface {
	// Clear removes all entries and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}
