package live

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
)

// StateHandler returns the full derived view for initial page load.
func StateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MapHub.State())
}

// CountsHandler returns pins-per-status over the full cache.
func CountsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MapHub.Counts())
}

// ToggleFilterHandler flips one status category's visibility.
func ToggleFilterHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	c := pins.Category(body.Status)
	if !c.Valid() {
		http.Error(w, "Unknown status category", http.StatusBadRequest)
		return
	}

	MapHub.ToggleFilter(c)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"active_filters": MapHub.ActiveFilters(),
	})
}

// ResetFiltersHandler restores every category to active.
func ResetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	MapHub.ResetFilters()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"active_filters": MapHub.ActiveFilters(),
	})
}

// StreamHandler pushes view-change messages over server-sent events. The
// subscription is long-lived and independent of any user action.
func StreamHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	msgs, cancel := MapHub.Subscribe()
	defer cancel()

	// Current state first so a fresh client doesn't wait for a change.
	initial, err := json.Marshal(struct {
		Type  string   `json:"type"`
		State MapState `json:"state"`
	}{Type: "load", State: MapHub.State()})
	if err == nil {
		fmt.Fprintf(w, "data: %s\n\n", initial)
		flusher.Flush()
	}

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
