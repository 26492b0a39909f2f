package pins

import (
	"net/http"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := SessionInfo{}

	// Public routes
	r.Get("/", ListHandler)

	// Writes require an authenticated admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.AdminMiddleware(sessionFetcher))
		r.Post("/", CreateHandler)
		r.Patch("/{id}", UpdateHandler)
		r.Delete("/{id}", DeleteHandler)
	})

	return r
}
