package live

import (
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
)

// Button is one call-to-action affordance in a marker popup.
type Button struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// Popup is the rendered content for one marker.
type Popup struct {
	Title   string     `json:"title"`
	Address string     `json:"address,omitempty"`
	Summary string     `json:"summary,omitempty"`
	Style   pins.Style `json:"style"`
	Buttons []Button   `json:"buttons,omitempty"`
}

// Marker is one pin as the map draws it: the record, its popup, and whether
// the current filter dims it.
type Marker struct {
	Pin    pins.Pin `json:"pin"`
	Dimmed bool     `json:"dimmed"`
	Popup  Popup    `json:"popup"`
}

// Overlay is the single radius-visualization circle. At most one exists.
type Overlay struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	RadiusMiles float64 `json:"radius_miles"`
	Zoom        int     `json:"zoom"`
	Label       string  `json:"label"`
}

// MapState is the derived view served to browsers: every marker, counts by
// status over the full cache (filters never change counts), the active
// filter set, and the current search overlay if any.
type MapState struct {
	Markers       []Marker              `json:"markers"`
	Counts        map[pins.Category]int `json:"counts"`
	ActiveFilters []pins.Category       `json:"active_filters"`
	Overlay       *Overlay              `json:"overlay,omitempty"`
}

// BuildPopup renders a pin's popup. Each enabled flag contributes exactly one
// button; a custom-link button is added only when a URL is present.
func BuildPopup(p pins.Pin) Popup {
	var buttons []Button
	if p.ShowDonate {
		buttons = append(buttons, Button{Kind: "donate", Label: "Donate"})
	}
	if p.ShowVolunteer {
		buttons = append(buttons, Button{Kind: "volunteer", Label: "Volunteer"})
	}
	if p.ShowSupplies {
		buttons = append(buttons, Button{Kind: "supplies", Label: "Send Supplies"})
	}
	if p.LinkURL != "" {
		label := p.LinkText
		if label == "" {
			label = "Learn More"
		}
		buttons = append(buttons, Button{Kind: "link", Label: label, URL: p.LinkURL})
	}
	return Popup{
		Title:   p.Title,
		Address: p.Address,
		Summary: p.Summary,
		Style:   p.Status.Style(),
		Buttons: buttons,
	}
}
