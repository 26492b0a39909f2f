package geo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync/atomic"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/live"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
)

var zipPattern = regexp.MustCompile(`^[0-9]{5}$`)

var (
	// ErrInvalidZip is a validation failure, raised before any network call.
	ErrInvalidZip = errors.New("search requires a 5-digit ZIP code")
	// ErrSuperseded means a newer search finished first; this result was
	// discarded instead of clobbering the newer overlay.
	ErrSuperseded = errors.New("search superseded by a newer one")
)

// SnapshotSource provides the current pin cache.
type SnapshotSource interface {
	Snapshot() []pins.Pin
}

// OverlaySink applies the radius overlay for a search generation, refusing
// stale generations.
type OverlaySink interface {
	SetOverlay(gen uint64, o live.Overlay) bool
}

// Result is the outcome of one radius search.
type Result struct {
	Label       string     `json:"label"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	Zoom        int        `json:"zoom"`
	RadiusMiles float64    `json:"radius_miles"`
	Count       int        `json:"count"`
	Pins        []pins.Pin `json:"pins"`
}

// Searcher resolves a ZIP to a coordinate and filters the cached pins to the
// 50-mile radius. Each search takes a fresh generation number; only the
// newest generation may touch the shared overlay, so a slow lookup that
// finishes after a later search changes nothing.
type Searcher struct {
	geocoder Geocoder
	cache    Cache
	source   SnapshotSource
	overlays OverlaySink
	gen      atomic.Uint64
}

func NewSearcher(geocoder Geocoder, cache Cache, source SnapshotSource, overlays OverlaySink) *Searcher {
	return &Searcher{
		geocoder: geocoder,
		cache:    cache,
		source:   source,
		overlays: overlays,
	}
}

// Search validates the ZIP, resolves it, and returns the in-range pins.
// Failures of any kind leave the pin cache and filter state untouched.
func (s *Searcher) Search(ctx context.Context, zip string) (*Result, error) {
	if !zipPattern.MatchString(zip) {
		return nil, ErrInvalidZip
	}
	if s.geocoder == nil {
		return nil, fmt.Errorf("no geocoder configured")
	}

	gen := s.gen.Add(1)

	loc, ok := s.cache.Get(ctx, zip)
	if !ok {
		var err error
		loc, err = s.geocoder.Geocode(ctx, zip)
		if err != nil {
			return nil, err
		}
		s.cache.Put(ctx, zip, loc)
	}

	inRange := []pins.Pin{}
	for _, p := range s.source.Snapshot() {
		if InRange(Haversine(loc.Lat, loc.Lng, p.Lat, p.Lng)) {
			inRange = append(inRange, p)
		}
	}

	applied := s.overlays.SetOverlay(gen, live.Overlay{
		Lat:         loc.Lat,
		Lng:         loc.Lng,
		RadiusMiles: SearchRadiusMiles,
		Zoom:        SearchZoom,
		Label:       loc.Label,
	})
	if !applied {
		return nil, ErrSuperseded
	}

	return &Result{
		Label:       loc.Label,
		Lat:         loc.Lat,
		Lng:         loc.Lng,
		Zoom:        SearchZoom,
		RadiusMiles: SearchRadiusMiles,
		Count:       len(inRange),
		Pins:        inRange,
	}, nil
}
