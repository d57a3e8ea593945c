package cache

import (
	"context"
	"time"
)

// Cache is the contract of the cache layer, so the implementation
// (Redis, in-memory) can be swapped
type Cache interface {
	// Get reads key and unmarshals it into dest.
	// found is false on a miss, and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern
	DeletePattern(ctx context.Context, pattern string) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}
