package common

import (
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"

	"redline-garage/pitwall/internal/logging"
)

// CacheService is the in-memory cache used for single-instance deployments and tests
type CacheService struct {
	cache *cache.Cache
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	c := cache.New(defaultExpiration, cleanUpInterval)
	return &CacheService{cache: c}
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("Memory cache: failed to marshal value", "key", key, "error", err)
		return
	}
	cs.cache.Set(key, data, duration)
}

func (cs *CacheService) Get(key string, dest interface{}) bool {
	val, found := cs.cache.Get(key)
	if !found {
		return false
	}

	data, ok := val.([]byte)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logging.Warn("Memory cache: failed to unmarshal value", "key", key, "error", err)
		return false
	}
	return true
}

func (cs *CacheService) Delete(keys ...string) {
	for _, key := range keys {
		cs.cache.Delete(key)
	}
}

// Close closes the cache (no-op for in-memory cache)
func (cs *CacheService) Close() error {
	return nil
}
