package geo

import (
	"net/http"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// The external geocoder has a quota; keep searches to a civil pace.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware(5, 10))
		r.Get("/search", SearchHandler)
	})

	return r
}
