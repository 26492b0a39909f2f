package auth

import (
	"net/http"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := SessionInfo{}

	r.Post("/login", LoginHandler)
	r.Post("/register", RegisterHandler)
	r.Post("/logout", LogoutHandler)
	r.Get("/watch", WatchHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Get("/session", SessionHandler)
		r.Post("/password", UpdatePasswordHandler)
	})

	return r
}
