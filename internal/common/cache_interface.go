package common

import "time"

// CacheInterface defines the contract for cache implementations.
// Values round-trip through JSON so both backends hand back the same types.
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get decodes the cached value for key into dest.
	// Returns false when the key is missing or cannot be decoded.
	Get(key string, dest interface{}) bool

	// Delete removes the given keys
	Delete(keys ...string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}

// GetOrLoad returns the cached value for key, or calls loader and caches its
// result. hit reports whether the value came from cache.
func GetOrLoad[T any](c CacheInterface, key string, duration time.Duration, loader func() (T, error)) (value T, hit bool, err error) {
	if c.Get(key, &value) {
		return value, true, nil
	}

	value, err = loader()
	if err != nil {
		return value, false, err
	}

	c.Set(key, value, duration)
	return value, false, nil
}
