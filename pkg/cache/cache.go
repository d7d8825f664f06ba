// Package cache stores rendered artifacts so repeated layout requests for the
// same document and options skip the pipeline.
//
// Three implementations are provided: [MemoryCache] for a long-running
// server, [FileCache] for a cache that survives restarts, and [NullCache]
// when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string
	Width  int
	Height int
	Theme  string
	Scale  float64
	Thumb  int
}

// ArtifactKey returns the key for an artifact rendered from input, which
// identifies the document (a preset name or a hash of the posted body).
func ArtifactKey(input string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", input, opts)
}
