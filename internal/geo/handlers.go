package geo

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// SearchHandler runs a radius search for ?zip=NNNNN.
//
// Responses follow the failure taxonomy: bad input is a 400 before any
// lookup; "no such place" and "superseded" are 200s with a status field
// (non-fatal, user-visible); only transport trouble is a 5xx, with the real
// error kept in the logs.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	zip := r.URL.Query().Get("zip")

	result, err := DefaultSearcher.Search(r.Context(), zip)
	w.Header().Set("Content-Type", "application/json")
	switch {
	case err == nil:
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"result": result,
		})
	case errors.Is(err, ErrInvalidZip):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "invalid",
			"error":  "Please enter a valid 5-digit ZIP code",
		})
	case errors.Is(err, ErrNotFound):
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "not_found",
			"message": "No location found for that ZIP code",
		})
	case errors.Is(err, ErrSuperseded):
		json.NewEncoder(w).Encode(map[string]string{
			"status": "superseded",
		})
	default:
		log.Printf("[geo] search failed: %v", err)
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "error",
			"error":  "Location search is unavailable right now, please try again",
		})
	}
}
