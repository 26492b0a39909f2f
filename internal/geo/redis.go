package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache shares geocode results between instances. Entries carry a long
// TTL; ZIP centroids move rarely.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(url string) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisCache{
		rdb: redis.NewClient(opt),
		ttl: 30 * 24 * time.Hour,
	}, nil
}

func cacheKey(zip string) string { return "geocode:zip:" + zip }

func (c *RedisCache) Get(ctx context.Context, zip string) (*Location, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey(zip)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[geo] redis get: %v", err)
		}
		return nil, false
	}
	var loc Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		log.Printf("[geo] redis cache entry corrupt for %s: %v", zip, err)
		return nil, false
	}
	return &loc, true
}

func (c *RedisCache) Put(ctx context.Context, zip string, loc *Location) {
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(zip), raw, c.ttl).Err(); err != nil {
		log.Printf("[geo] redis set: %v", err)
	}
}
