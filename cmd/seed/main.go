package main

import (
	"log"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/auth"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/db"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/seeds"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	db.Connect()
	auth.Init()
	pins.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
