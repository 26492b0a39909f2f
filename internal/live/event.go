package live

import (
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
)

// Action is the kind of change carried by a feed event.
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Event is one pin change from the realtime feed. Record always holds the
// full row; for deletes it is the pre-deletion row.
type Event struct {
	Action Action   `json:"action"`
	Record pins.Pin `json:"record"`
}
