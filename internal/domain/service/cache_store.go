package service

import (
	"context"
	"time"

	"vivaha/internal/domain/entity"
	"vivaha/internal/errors"
)

// ErrCacheMiss is returned by KVStore implementations when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// KVStore is the raw key-value backend the workspace cache rides on.
// Implementations do not interpret values; expiry is handled above them
// so that entries carry their own age regardless of backend.
type KVStore interface {
	// Get retrieves the raw value for a key. Returns ErrCacheMiss when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a raw value under a key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Keys lists all stored keys matching a glob-style pattern.
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// CacheStore is the namespace-scoped planning data cache. Keys are derived
// as "<namespace>_<dataType>" so that two workspaces never share an entry.
// Entries expire by write age; expiry is evaluated on read.
type CacheStore interface {
	// Get decodes the cached value for a namespace and data key into dest.
	// The boolean reports whether a live (non-expired) entry was found.
	// Expired entries are removed as a side effect.
	Get(ctx context.Context, ns entity.NamespaceKey, key string, dest any) (bool, error)

	// Set stores a value under the namespace and data key with the default TTL.
	Set(ctx context.Context, ns entity.NamespaceKey, key string, value any) error

	// SetWithTTL stores a value with an explicit TTL. A zero TTL means the
	// entry never expires.
	SetWithTTL(ctx context.Context, ns entity.NamespaceKey, key string, value any, ttl time.Duration) error

	// Remove deletes a single entry for the namespace.
	Remove(ctx context.Context, ns entity.NamespaceKey, key string) error

	// PurgeNamespace deletes every entry belonging to the namespace.
	PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error

	// MigrateLegacy moves bare-key entries written before namespacing
	// (e.g. "guests") under the given namespace, then removes the originals.
	MigrateLegacy(ctx context.Context, ns entity.NamespaceKey) error
}
