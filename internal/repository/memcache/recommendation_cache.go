package memcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// RecommendationCache is the process-wide TTL cache for per-user
// recommendation scores. Entries expire individually; a background janitor
// sweeps expired entries. Safe for concurrent use across requests.
type RecommendationCache struct {
	store *gocache.Cache
}

func NewRecommendationCache(defaultTTL time.Duration) *RecommendationCache {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}

	return &RecommendationCache{
		store: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (c *RecommendationCache) Get(key string) (map[uint]float64, bool) {
	val, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}

	scores, ok := val.(map[uint]float64)
	if !ok {
		return nil, false
	}

	return scores, true
}

func (c *RecommendationCache) Set(key string, scores map[uint]float64, ttl time.Duration) {
	c.store.Set(key, scores, ttl)
}
