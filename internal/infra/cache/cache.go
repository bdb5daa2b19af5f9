package cache

import (
	"context"
	"encoding/json"
	"time"

	"vivaha/internal/domain/entity"
	"vivaha/internal/domain/service"
	"vivaha/internal/errors"
)

// DefaultTTL is the entry lifetime used when configuration provides none.
const DefaultTTL = 24 * time.Hour

// envelope wraps every cached value with its write time and lifetime.
// Expiry is evaluated on read, so stale entries survive in the backend
// until the next access touches them.
type envelope struct {
	CreatedAt time.Time       `json:"created_at"`
	TTLMillis int64           `json:"ttl_ms"`
	Value     json.RawMessage `json:"value"`
}

// Store implements the namespace-scoped CacheStore over a raw KVStore.
type Store struct {
	kv         service.KVStore
	defaultTTL time.Duration
	now        func() time.Time
}

// New creates a cache store with the given default TTL. A non-positive
// TTL falls back to DefaultTTL.
func New(kv service.KVStore, defaultTTL time.Duration) *Store {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	return &Store{
		kv:         kv,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// NewWithClock creates a cache store with an injected clock. Tests use
// this to step time across the expiry boundary.
func NewWithClock(kv service.KVStore, defaultTTL time.Duration, now func() time.Time) *Store {
	store := New(kv, defaultTTL)
	store.now = now

	return store
}

// cacheKey derives the backend key for a namespace and data key.
func cacheKey(ns entity.NamespaceKey, key string) string {
	return ns.String() + "_" + key
}

// Get decodes the cached value for a namespace and data key into dest.
func (s *Store) Get(ctx context.Context, ns entity.NamespaceKey, key string, dest any) (bool, error) {
	raw, err := s.kv.Get(ctx, cacheKey(ns, key))
	if errors.Is(err, service.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		// An unreadable entry is as good as absent; drop it so the next
		// write starts clean.
		_ = s.kv.Delete(ctx, cacheKey(ns, key))

		return false, nil
	}

	if s.expired(env) {
		if err := s.kv.Delete(ctx, cacheKey(ns, key)); err != nil {
			return false, err
		}

		return false, nil
	}

	if dest != nil {
		if err := json.Unmarshal(env.Value, dest); err != nil {
			return false, errors.Wrapf(err, "decode cached %s", key)
		}
	}

	return true, nil
}

// Set stores a value under the namespace and data key with the default TTL.
func (s *Store) Set(ctx context.Context, ns entity.NamespaceKey, key string, value any) error {
	return s.SetWithTTL(ctx, ns, key, value, s.defaultTTL)
}

// SetWithTTL stores a value with an explicit TTL. A zero TTL means the
// entry never expires.
func (s *Store) SetWithTTL(ctx context.Context, ns entity.NamespaceKey, key string, value any, ttl time.Duration) error {
	rawValue, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	env := envelope{
		CreatedAt: s.now(),
		TTLMillis: ttl.Milliseconds(),
		Value:     rawValue,
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, "encode cache envelope")
	}

	return s.kv.Set(ctx, cacheKey(ns, key), string(raw))
}

// Remove deletes a single entry for the namespace.
func (s *Store) Remove(ctx context.Context, ns entity.NamespaceKey, key string) error {
	return s.kv.Delete(ctx, cacheKey(ns, key))
}

// PurgeNamespace deletes every entry belonging to the namespace.
func (s *Store) PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error {
	keys, err := s.kv.Keys(ctx, ns.String()+"_*")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	return s.kv.Delete(ctx, keys...)
}

// MigrateLegacy moves bare-key entries written before namespacing under
// the given namespace. A namespaced entry always wins over a legacy one;
// the legacy key is removed either way.
func (s *Store) MigrateLegacy(ctx context.Context, ns entity.NamespaceKey) error {
	for _, dataType := range entity.AllDataTypes {
		legacyKey := string(dataType)

		raw, err := s.kv.Get(ctx, legacyKey)
		if errors.Is(err, service.ErrCacheMiss) {
			continue
		}
		if err != nil {
			return err
		}

		if _, err := s.kv.Get(ctx, cacheKey(ns, legacyKey)); errors.Is(err, service.ErrCacheMiss) {
			if err := s.kv.Set(ctx, cacheKey(ns, legacyKey), raw); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := s.kv.Delete(ctx, legacyKey); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) expired(env envelope) bool {
	if env.TTLMillis <= 0 {
		return false
	}

	age := s.now().Sub(env.CreatedAt)

	return age > time.Duration(env.TTLMillis)*time.Millisecond
}
