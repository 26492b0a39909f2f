package pins

import (
	"errors"
	"testing"
)

func TestValidateRequiresTitle(t *testing.T) {
	p := Pin{Lat: 30, Lng: -90}
	if err := p.Validate(); !errors.Is(err, ErrMissingTitle) {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}
}

func TestValidateCoordinateRanges(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lng  float64
		want error
	}{
		{"lat too low", -90.01, 0, ErrBadLatitude},
		{"lat too high", 90.01, 0, ErrBadLatitude},
		{"lng too low", 0, -180.01, ErrBadLongitude},
		{"lng too high", 0, 180.01, ErrBadLongitude},
		{"both on boundary", 90, -180, nil},
	}
	for _, tc := range cases {
		p := Pin{Title: "x", Lat: tc.lat, Lng: tc.lng}
		err := p.Validate()
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestValidateCoercesUnknownStatus(t *testing.T) {
	p := Pin{Title: "x", Status: Category("mystery")}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != DefaultStatus {
		t.Errorf("status = %q, want coerced default %q", p.Status, DefaultStatus)
	}
}

func TestChangesOnlyIncludesSetFields(t *testing.T) {
	title := "New Title"
	lat := 29.5
	update := PinUpdate{Title: &title, Lat: &lat}

	changes, err := update.Changes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d: %v", len(changes), changes)
	}
	if changes["title"] != "New Title" {
		t.Errorf("title change = %v", changes["title"])
	}
	if changes["lat"] != 29.5 {
		t.Errorf("lat change = %v", changes["lat"])
	}
}

func TestChangesRejectsEmptyTitleAndBadCoords(t *testing.T) {
	empty := ""
	if _, err := (PinUpdate{Title: &empty}).Changes(); !errors.Is(err, ErrMissingTitle) {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}

	lat := 91.0
	if _, err := (PinUpdate{Lat: &lat}).Changes(); !errors.Is(err, ErrBadLatitude) {
		t.Errorf("expected ErrBadLatitude, got %v", err)
	}

	lng := -181.0
	if _, err := (PinUpdate{Lng: &lng}).Changes(); !errors.Is(err, ErrBadLongitude) {
		t.Errorf("expected ErrBadLongitude, got %v", err)
	}
}

func TestChangesNormalizesStatus(t *testing.T) {
	status := "nonsense"
	changes, err := (PinUpdate{Status: &status}).Changes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changes["status"] != DefaultStatus {
		t.Errorf("status change = %v, want %q", changes["status"], DefaultStatus)
	}
}
