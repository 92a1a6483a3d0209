package common

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"redline-garage/pitwall/internal/logging"
)

// RedisCacheService implements CacheInterface using Redis
type RedisCacheService struct {
	client *redis.Client
	prefix string
}

// Ensure RedisCacheService implements CacheInterface
var _ CacheInterface = (*RedisCacheService)(nil)

// NewRedisCacheService wraps an existing client. Keys are namespaced with prefix.
func NewRedisCacheService(client *redis.Client, prefix string) *RedisCacheService {
	return &RedisCacheService{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisCacheService) key(k string) string {
	return r.prefix + k
}

// Set stores a value in Redis with the given key and duration
func (r *RedisCacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("Redis cache: failed to marshal value", "key", key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := r.client.Set(ctx, r.key(key), data, duration).Err(); err != nil {
		logging.Warn("Redis cache: failed to set key", "key", key, "error", err)
	}
}

// Get decodes the value stored under key into dest
func (r *RedisCacheService) Get(key string, dest interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		logging.Warn("Redis cache: failed to get key", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logging.Warn("Redis cache: failed to unmarshal value", "key", key, "error", err)
		return false
	}
	return true
}

// Delete removes keys from Redis
func (r *RedisCacheService) Delete(keys ...string) {
	if len(keys) == 0 {
		return
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := r.client.Del(ctx, full...).Err(); err != nil {
		logging.Warn("Redis cache: failed to delete keys", "keys", keys, "error", err)
	}
}

// Close closes the Redis connection
func (r *RedisCacheService) Close() error {
	return r.client.Close()
}

// Ping checks that Redis answers.
func (r *RedisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
