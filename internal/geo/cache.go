package geo

import (
	"context"
	"sync"
)

// Cache stores resolved ZIP lookups so repeat searches skip the external
// geocoder. Misses are never an error; a cache that fails open just costs an
// extra lookup.
type Cache interface {
	Get(ctx context.Context, zip string) (*Location, bool)
	Put(ctx context.Context, zip string, loc *Location)
}

// memoryCache is the fallback when no Redis is configured. ZIP geocoding
// results don't go stale, so entries live for the process lifetime.
type memoryCache struct {
	mu sync.Mutex
	m  map[string]Location
}

func NewMemoryCache() Cache {
	return &memoryCache{m: make(map[string]Location)}
}

func (c *memoryCache) Get(_ context.Context, zip string) (*Location, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	loc, ok := c.m[zip]
	if !ok {
		return nil, false
	}
	return &loc, true
}

func (c *memoryCache) Put(_ context.Context, zip string, loc *Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[zip] = *loc
}
