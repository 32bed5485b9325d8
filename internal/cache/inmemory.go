package cache

import (
	"time"

	"github.com/hypnotizedent/printshop-os-sub011/internal/config"
	"github.com/hypnotizedent/printshop-os-sub011/internal/logger"
	goCache "github.com/patrickmn/go-cache"
)

// DefaultExpiration is the fallback TTL when the config does not set one
const DefaultExpiration = 300 * time.Second

// DefaultCleanupInterval is how often expired items are removed
const DefaultCleanupInterval = 10 * time.Minute

// InMemoryCache implements the Cache interface using
// github.com/patrickmn/go-cache. Instances are dependency-injected; the
// lifecycle belongs to whatever composes the service, so tests never
// share state through a package-level singleton.
type InMemoryCache struct {
	cache  *goCache.Cache
	cfg    *config.Configuration
	logger *logger.Logger
}

// NewInMemoryCache creates a new InMemoryCache instance
func NewInMemoryCache(cfg *config.Configuration, log *logger.Logger) Cache {
	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return &InMemoryCache{
		cache:  goCache.New(ttl, DefaultCleanupInterval),
		cfg:    cfg,
		logger: log,
	}
}

// Get retrieves a value from the cache
func (c *InMemoryCache) Get(key string) (interface{}, bool) {
	if !c.cfg.Cache.Enabled {
		return nil, false
	}
	return c.cache.Get(key)
}

// Set adds a value to the cache with the specified expiration.
// A zero expiration uses the configured TTL.
func (c *InMemoryCache) Set(key string, value interface{}, expiration time.Duration) {
	if !c.cfg.Cache.Enabled {
		return
	}
	c.cache.Set(key, value, expiration)
}

// Delete removes a key from the cache
func (c *InMemoryCache) Delete(key string) {
	if !c.cfg.Cache.Enabled {
		return
	}
	c.cache.Delete(key)
}

// Flush removes all items from the cache
func (c *InMemoryCache) Flush() {
	c.cache.Flush()
}

// ItemCount returns the number of entries, including not-yet-evicted
// expired ones
func (c *InMemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
