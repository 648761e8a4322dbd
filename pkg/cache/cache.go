// Package cache stores computed layouts and rendered artifacts.
//
// Every backend implements [Cache]. [FileCache] serves the CLI, [RedisCache]
// and [MongoCache] serve shared deployments, and [NullCache] disables
// caching. Keys come from a [Keyer] so callers never build them by hand.
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact kind. Layouts are pure functions of their
// inputs, so they only expire to bound storage.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store keyed by string. A miss is reported as
// (nil, false, nil); errors are reserved for backend failures.
// A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
