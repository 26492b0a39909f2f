package geo

import (
	"log"
	"os"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/live"
)

// DefaultSearcher serves /geo/search. Initialized in Init().
var DefaultSearcher *Searcher

func Init(hub *live.Hub) {
	client := NewClient()
	if client == nil {
		log.Printf("[geo] WARNING: GEOCODER_API_KEY not set; ZIP search will fail")
	}

	var cache Cache
	if url := os.Getenv("REDIS_URL"); url != "" {
		rc, err := NewRedisCache(url)
		if err != nil {
			log.Printf("[geo] WARNING: redis cache unavailable (%v); using in-memory cache", err)
			cache = NewMemoryCache()
		} else {
			log.Printf("[geo] geocode cache backed by redis")
			cache = rc
		}
	} else {
		cache = NewMemoryCache()
	}

	var geocoder Geocoder
	if client != nil {
		geocoder = client
	}
	DefaultSearcher = NewSearcher(geocoder, cache, hub, hub)
}
