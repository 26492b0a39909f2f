package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/auth"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/db"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/geo"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/live"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/middleware"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	auth.Init()
	pins.Init()
	live.Init()
	geo.Init(live.MapHub)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/pins", pins.SetupRoutes())
	r.Mount("/map", live.SetupRoutes())
	r.Mount("/geo", geo.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
