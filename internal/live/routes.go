package live

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/state", StateHandler)
	r.Get("/counts", CountsHandler)
	r.Get("/stream", StreamHandler)
	r.Post("/filters/toggle", ToggleFilterHandler)
	r.Post("/filters/reset", ResetFiltersHandler)

	return r
}
