// Package cache implements the namespace-scoped planning data cache.
// A thin key-value backend holds opaque strings; the envelope layer above
// it owns serialization and expiry so entries age the same way on any backend.
package cache

import (
	"context"

	"vivaha/config"
	"vivaha/internal/domain/service"
	"vivaha/internal/errors"

	"github.com/go-redis/redis/v8"
)

// redisStore is a KVStore backed by Redis.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and returns it as a KVStore.
func NewRedisStore(cfg *config.RedisConfig) (service.KVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, errors.Wrap(err, "connect to redis")
	}

	return &redisStore{client: client}, nil
}

// Get retrieves the raw value for a key.
func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", service.ErrCacheMiss
	}
	if err != nil {
		return "", errors.Wrapf(err, "get key %s", key)
	}

	return val, nil
}

// Set stores a raw value under a key. Expiry is handled above this layer,
// so entries are written without a Redis TTL.
func (r *redisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "set key %s", key)
	}

	return nil
}

// Delete removes the given keys.
func (r *redisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "delete keys")
	}

	return nil
}

// Keys lists all stored keys matching a glob-style pattern.
func (r *redisStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "list keys %s", pattern)
	}

	return keys, nil
}
