// Package cache stores rendered sheet artifacts.
//
// Only seeded renders are cached: without a fixed seed every render is
// unique and there is nothing to reuse. Keys are built by a [Keyer] from
// everything that changes the output bytes (theme, seed, format, fonts,
// content).
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one file per entry under the user cache directory (CLI)
//   - [RedisCache]: shared entries in Redis (render service)
//   - [NullCache]: stores nothing (--no-cache)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Default TTLs.
const (
	// ArtifactTTL bounds how long a rendered file is reused.
	ArtifactTTL = 30 * 24 * time.Hour
)
