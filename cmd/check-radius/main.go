// Ops debugging tool: resolve a ZIP and print every pin inside the 50-mile
// search radius, straight from the database (bypasses the map hub).
//
//	go run ./cmd/check-radius 70601
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/geo"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load(".env.local")

	if len(os.Args) < 2 {
		log.Fatal("usage: check-radius <zip>")
	}
	zip := os.Args[1]

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer db.Close()

	client := geo.NewClient()
	if client == nil {
		log.Fatal("GEOCODER_API_KEY not set")
	}

	ctx := context.Background()
	loc, err := client.Geocode(ctx, zip)
	if err != nil {
		log.Fatalf("Geocode error: %v", err)
	}
	fmt.Printf("%s -> %s (%.4f, %.4f)\n\n", zip, loc.Label, loc.Lat, loc.Lng)

	rows, err := db.QueryContext(ctx, `
		SELECT title, status, lat, lng
		FROM map_data.pins
		ORDER BY created_at DESC
	`)
	if err != nil {
		log.Fatalf("Query error: %v", err)
	}
	defer rows.Close()

	total, inRange := 0, 0
	for rows.Next() {
		var title, status string
		var lat, lng float64
		if err := rows.Scan(&title, &status, &lat, &lng); err != nil {
			log.Fatalf("Scan error: %v", err)
		}
		total++
		d := geo.Haversine(loc.Lat, loc.Lng, lat, lng)
		if geo.InRange(d) {
			inRange++
			fmt.Printf("  [%s] %s (%.1f mi)\n", status, title, d)
		}
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Row error: %v", err)
	}

	fmt.Printf("\n%d of %d pins within %.0f miles\n", inRange, total, geo.SearchRadiusMiles)
}
