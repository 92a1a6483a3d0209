package services

import (
	"time"

	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/metrics"
)

// GarageCache holds per-owner dashboard results. Every owner-side mutation
// invalidates it.
type GarageCache struct {
	cache   common.CacheInterface
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
}

func NewGarageCache(cache common.CacheInterface, ttl time.Duration, metricsReg *metrics.MetricsRegistry) *GarageCache {
	return &GarageCache{cache: cache, ttl: ttl, metrics: metricsReg}
}

func statsKey(ownerID string) string  { return string(constants.CachePrefixGarageStats) + ownerID }
func alertsKey(ownerID string) string { return string(constants.CachePrefixGarageAlerts) + ownerID }

// Invalidate drops every cached view of the owner's garage. Safe on a nil cache.
func (g *GarageCache) Invalidate(ownerID string) {
	if g == nil || ownerID == "" {
		return
	}
	g.cache.Delete(statsKey(ownerID), alertsKey(ownerID))
}

func loadCached[T any](g *GarageCache, key, pattern string, loader func() (T, error)) (T, error) {
	if g == nil {
		return loader()
	}

	value, hit, err := common.GetOrLoad(g.cache, key, g.ttl, loader)
	if err != nil {
		return value, err
	}

	if hit {
		g.metrics.CacheHitsTotal.WithLabelValues(pattern).Inc()
	} else {
		g.metrics.CacheMissesTotal.WithLabelValues(pattern).Inc()
	}
	return value, nil
}
