package pins

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Pin is one deployment marker on the public map.
type Pin struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Address       string    `json:"address"`
	Status        Category  `json:"status" gorm:"type:text;default:'active'"`
	Summary       string    `json:"summary"`
	LinkURL       string    `json:"link_url"`
	LinkText      string    `json:"link_text"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	ShowDonate    bool      `json:"show_donate"`
	ShowVolunteer bool      `json:"show_volunteer"`
	ShowSupplies  bool      `json:"show_supplies"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Pin) TableName() string { return "map_data.pins" }

var (
	ErrMissingTitle = errors.New("title is required")
	ErrBadLatitude  = errors.New("latitude must be between -90 and 90")
	ErrBadLongitude = errors.New("longitude must be between -180 and 180")
)

// Validate checks the invariants enforced before any write reaches the store.
// Unrecognized statuses are coerced to the default category rather than
// rejected, matching how the map renders unknown statuses.
func (p *Pin) Validate() error {
	if p.Title == "" {
		return ErrMissingTitle
	}
	if p.Lat < -90 || p.Lat > 90 {
		return ErrBadLatitude
	}
	if p.Lng < -180 || p.Lng > 180 {
		return ErrBadLongitude
	}
	p.Status = Normalize(string(p.Status))
	return nil
}

// PinUpdate carries a partial update; nil fields are left untouched.
type PinUpdate struct {
	Title         *string  `json:"title"`
	Address       *string  `json:"address"`
	Status        *string  `json:"status"`
	Summary       *string  `json:"summary"`
	LinkURL       *string  `json:"link_url"`
	LinkText      *string  `json:"link_text"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	ShowDonate    *bool    `json:"show_donate"`
	ShowVolunteer *bool    `json:"show_volunteer"`
	ShowSupplies  *bool    `json:"show_supplies"`
}

// Changes maps the set fields to gorm column updates.
func (u PinUpdate) Changes() (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if u.Title != nil {
		if *u.Title == "" {
			return nil, ErrMissingTitle
		}
		out["title"] = *u.Title
	}
	if u.Address != nil {
		out["address"] = *u.Address
	}
	if u.Status != nil {
		out["status"] = Normalize(*u.Status)
	}
	if u.Summary != nil {
		out["summary"] = *u.Summary
	}
	if u.LinkURL != nil {
		out["link_url"] = *u.LinkURL
	}
	if u.LinkText != nil {
		out["link_text"] = *u.LinkText
	}
	if u.Lat != nil {
		if *u.Lat < -90 || *u.Lat > 90 {
			return nil, ErrBadLatitude
		}
		out["lat"] = *u.Lat
	}
	if u.Lng != nil {
		if *u.Lng < -180 || *u.Lng > 180 {
			return nil, ErrBadLongitude
		}
		out["lng"] = *u.Lng
	}
	if u.ShowDonate != nil {
		out["show_donate"] = *u.ShowDonate
	}
	if u.ShowVolunteer != nil {
		out["show_volunteer"] = *u.ShowVolunteer
	}
	if u.ShowSupplies != nil {
		out["show_supplies"] = *u.ShowSupplies
	}
	return out, nil
}
