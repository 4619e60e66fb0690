package cache

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/CodesofAkash/twitch-clone/config"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/deps"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
)

// categoryCache implements a TTL cache for the active-category listing.
// The catalog changes rarely, so a stale window up to the TTL is fine;
// registry writes invalidate it synchronously.
type categoryCache struct {
	mu        sync.RWMutex
	entries   []entities.Category
	storedAt  time.Time
	populated bool

	ttl    time.Duration
	now    func() time.Time
	logger zerolog.Logger
}

// NewCategoryCache creates a new category listing cache
func NewCategoryCache(cfg *config.CacheConfig, logger zerolog.Logger) deps.ListingCache {
	return &categoryCache{
		ttl:    cfg.CategoryTTL,
		now:    time.Now,
		logger: logger.With().Str("component", "category_cache").Logger(),
	}
}

// Get returns the cached listing when present and fresh
func (c *categoryCache) Get() ([]entities.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.populated || c.now().Sub(c.storedAt) > c.ttl {
		return nil, false
	}

	listing := make([]entities.Category, len(c.entries))
	copy(listing, c.entries)
	return listing, true
}

// Set replaces the cached listing
func (c *categoryCache) Set(categories []entities.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make([]entities.Category, len(categories))
	copy(c.entries, categories)
	c.storedAt = c.now()
	c.populated = true

	c.logger.Debug().
		Int("categories", len(categories)).
		Msg("category listing cached")
}

// Invalidate drops the cached listing
func (c *categoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.populated = false

	c.logger.Debug().Msg("category listing cache invalidated")
}
