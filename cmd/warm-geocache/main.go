// Pre-resolves a list of ZIPs into the shared geocode cache so first
// searches after a deploy don't all pay the external lookup.
//
//	go run ./cmd/warm-geocache 70601 70802 71201
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/geo"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load(".env.local")

	zips := os.Args[1:]
	if len(zips) == 0 {
		log.Fatal("usage: warm-geocache <zip> [zip...]")
	}

	client := geo.NewClient()
	if client == nil {
		log.Fatal("GEOCODER_API_KEY not set")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Fatal("REDIS_URL not set (an in-memory cache would be gone when this exits)")
	}
	cache, err := geo.NewRedisCache(redisURL)
	if err != nil {
		log.Fatalf("Redis error: %v", err)
	}

	ctx := context.Background()
	warmed, skipped := 0, 0
	for _, zip := range zips {
		if _, ok := cache.Get(ctx, zip); ok {
			skipped++
			continue
		}
		loc, err := client.Geocode(ctx, zip)
		if err != nil {
			log.Printf("%s: %v", zip, err)
			continue
		}
		cache.Put(ctx, zip, loc)
		fmt.Printf("%s -> %s\n", zip, loc.Label)
		warmed++
		// Stay friendly to the geocoder's rate limits.
		time.Sleep(200 * time.Millisecond)
	}

	fmt.Printf("warmed %d, already cached %d\n", warmed, skipped)
}
