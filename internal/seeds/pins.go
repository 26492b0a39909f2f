package seeds

import (
	"fmt"
	"log"
	"os"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/auth"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/db"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedPin mirrors the YAML seed shape; looser than pins.Pin so the data file
// stays hand-editable.
type seedPin struct {
	Title         string  `yaml:"title"`
	Address       string  `yaml:"address"`
	Status        string  `yaml:"status"`
	Summary       string  `yaml:"summary"`
	LinkURL       string  `yaml:"link_url"`
	LinkText      string  `yaml:"link_text"`
	Lat           float64 `yaml:"lat"`
	Lng           float64 `yaml:"lng"`
	ShowDonate    bool    `yaml:"show_donate"`
	ShowVolunteer bool    `yaml:"show_volunteer"`
	ShowSupplies  bool    `yaml:"show_supplies"`
}

// SeedPins loads internal/seeds/data/pins.yaml, skipping any pin whose title
// already exists so reruns are safe.
func SeedPins() error {
	path := os.Getenv("PIN_SEED_PATH")
	if path == "" {
		path = "internal/seeds/data/pins.yaml"
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read pin seed file: %w", err)
	}

	var seed []seedPin
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse pin seed file: %w", err)
	}

	created := 0
	for _, s := range seed {
		var existing pins.Pin
		err := db.DB.First(&existing, "title = ?", s.Title).Error
		if err == nil {
			log.Printf("Pin already exists, skipping: %s", s.Title)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("check pin %q: %w", s.Title, err)
		}

		pin := pins.Pin{
			Title:         s.Title,
			Address:       s.Address,
			Status:        pins.Normalize(s.Status),
			Summary:       s.Summary,
			LinkURL:       s.LinkURL,
			LinkText:      s.LinkText,
			Lat:           s.Lat,
			Lng:           s.Lng,
			ShowDonate:    s.ShowDonate,
			ShowVolunteer: s.ShowVolunteer,
			ShowSupplies:  s.ShowSupplies,
		}
		if err := pin.Validate(); err != nil {
			return fmt.Errorf("invalid seed pin %q: %w", s.Title, err)
		}
		if err := db.DB.Create(&pin).Error; err != nil {
			return fmt.Errorf("create pin %q: %w", s.Title, err)
		}
		created++
	}

	log.Printf("Seeded %d pins", created)
	return nil
}

// SeedAdmin creates the bootstrap admin from ADMIN_EMAIL/ADMIN_PASSWORD.
// Without it no one can write pins on a fresh database.
func SeedAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing auth.User
	err := db.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		log.Printf("Admin already exists, skipping: %s", email)
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check admin user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := auth.User{
		UserID:         uuid.NewString(),
		Email:          email,
		DisplayName:    "Map Admin",
		HashedPassword: string(hashed),
		Role:           "admin",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	log.Printf("Seeded admin user %s", email)
	return nil
}
