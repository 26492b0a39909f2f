package live

import (
	"log"
	"os"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/db"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
)

// MapHub is the process-wide view hub. Initialized in Init().
var MapHub *Hub

func loadPins() ([]pins.Pin, error) {
	list := []pins.Pin{}
	err := db.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func Init() {
	MapHub = NewHub()

	list, err := loadPins()
	if err != nil {
		log.Fatal("Failed to load pins into map hub: ", err)
	}
	MapHub.Load(list)
	log.Printf("[live] map hub loaded %d pins", len(list))

	if err := StartListener(os.Getenv("DATABASE_URL"), MapHub, loadPins); err != nil {
		// The map still works without the feed; it just won't update live.
		log.Printf("[live] WARNING: realtime feed disabled: %v", err)
	}
}
