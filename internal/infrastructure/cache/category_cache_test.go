package cache

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/CodesofAkash/twitch-clone/config"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
)

func newTestCache(ttl time.Duration) (*categoryCache, *time.Time) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCategoryCache(&config.CacheConfig{CategoryTTL: ttl}, zerolog.Nop()).(*categoryCache)
	c.now = func() time.Time { return clock }
	return c, &clock
}

func TestCategoryCache_MissWhenEmpty(t *testing.T) {
	c, _ := newTestCache(5 * time.Minute)

	if _, ok := c.Get(); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestCategoryCache_HitWithinTTL(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)

	c.Set([]entities.Category{{ID: "c-1", Name: "Gaming"}})

	*clock = clock.Add(4 * time.Minute)
	listing, ok := c.Get()
	if !ok {
		t.Fatal("expected hit within TTL")
	}
	if len(listing) != 1 || listing[0].ID != "c-1" {
		t.Fatalf("unexpected listing: %+v", listing)
	}
}

func TestCategoryCache_ExpiresAfterTTL(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)

	c.Set([]entities.Category{{ID: "c-1"}})

	*clock = clock.Add(6 * time.Minute)
	if _, ok := c.Get(); ok {
		t.Fatal("expected miss after TTL")
	}
}

func TestCategoryCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(5 * time.Minute)

	c.Set([]entities.Category{{ID: "c-1"}})
	c.Invalidate()

	if _, ok := c.Get(); ok {
		t.Fatal("expected miss after invalidation")
	}
}

func TestCategoryCache_GetReturnsCopy(t *testing.T) {
	c, _ := newTestCache(5 * time.Minute)

	c.Set([]entities.Category{{ID: "c-1", Name: "Gaming"}})

	listing, _ := c.Get()
	listing[0].Name = "mutated"

	fresh, _ := c.Get()
	if fresh[0].Name != "Gaming" {
		t.Fatal("cache contents must not be affected by caller mutation")
	}
}
