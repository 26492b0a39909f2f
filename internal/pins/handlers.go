package pins

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/db"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListHandler returns every pin, newest first. Public.
func ListHandler(w http.ResponseWriter, r *http.Request) {
	pins := []Pin{}
	if err := db.DB.Order("created_at DESC").Find(&pins).Error; err != nil {
		log.Printf("[pins] list failed: %v", err)
		http.Error(w, "Failed to load pins", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pins)
}

// CreateHandler inserts a pin and echoes the stored record (with the
// DB-assigned id and timestamp). Admin only.
func CreateHandler(w http.ResponseWriter, r *http.Request) {
	var pin Pin
	if err := json.NewDecoder(r.Body).Decode(&pin); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	pin.ID = uuid.Nil // store assigns identity
	if err := pin.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := db.DB.Create(&pin).Error; err != nil {
		log.Printf("[pins] create failed: %v", err)
		http.Error(w, "Failed to create pin", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(pin)
}

// UpdateHandler applies a partial update and returns the updated record.
// Admin only.
func UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid pin id", http.StatusBadRequest)
		return
	}

	var update PinUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	changes, err := update.Changes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var pin Pin
	if err := db.DB.First(&pin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Pin not found", http.StatusNotFound)
			return
		}
		log.Printf("[pins] update lookup failed: %v", err)
		http.Error(w, "Failed to update pin", http.StatusInternalServerError)
		return
	}

	if len(changes) > 0 {
		if err := db.DB.Model(&pin).Updates(changes).Error; err != nil {
			log.Printf("[pins] update failed: %v", err)
			http.Error(w, "Failed to update pin", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pin)
}

// DeleteHandler removes a pin by id. Admin only.
func DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid pin id", http.StatusBadRequest)
		return
	}

	res := db.DB.Delete(&Pin{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[pins] delete failed: %v", res.Error)
		http.Error(w, "Failed to delete pin", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Pin not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
}
