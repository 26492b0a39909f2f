package geo

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisCacheRoundTrip(t *testing.T) {
	s := miniredis.RunT(t)

	cache, err := NewRedisCache("redis://" + s.Addr())
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}

	ctx := context.Background()
	if _, ok := cache.Get(ctx, "70601"); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	cache.Put(ctx, "70601", &Location{Lat: 30.2266, Lng: -93.2174, Label: "Lake Charles, LA"})

	loc, ok := cache.Get(ctx, "70601")
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if loc.Lat != 30.2266 || loc.Lng != -93.2174 || loc.Label != "Lake Charles, LA" {
		t.Errorf("got %+v", loc)
	}

	if _, ok := cache.Get(ctx, "70602"); ok {
		t.Error("different ZIP must miss")
	}
}

func TestRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache("not-a-url"); err == nil {
		t.Error("expected an error for a malformed redis url")
	}
}

func TestRedisCacheCorruptEntryIsAMiss(t *testing.T) {
	s := miniredis.RunT(t)

	cache, err := NewRedisCache("redis://" + s.Addr())
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}

	s.Set(cacheKey("70601"), "{nope")
	if _, ok := cache.Get(context.Background(), "70601"); ok {
		t.Error("corrupt entry must read as a miss")
	}
}
