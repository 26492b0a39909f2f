package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/live"
	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
)

type fakeGeocoder struct {
	loc   *Location
	err   error
	calls int
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) (*Location, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.loc, nil
}

type fakeSource struct {
	pins []pins.Pin
}

func (f *fakeSource) Snapshot() []pins.Pin { return f.pins }

type fakeSink struct {
	applied bool
	accept  bool
	lastGen uint64
	overlay live.Overlay
}

func (f *fakeSink) SetOverlay(gen uint64, o live.Overlay) bool {
	f.lastGen = gen
	if !f.accept {
		return false
	}
	f.applied = true
	f.overlay = o
	return true
}

// Lake Charles, LA. Baton Rouge is ~120 miles east, well outside the radius;
// Sulphur is a few miles west, well inside.
var lakeCharles = &Location{Lat: 30.2266, Lng: -93.2174, Label: "Lake Charles, LA"}

func newTestSearcher(g Geocoder, src SnapshotSource, sink OverlaySink) *Searcher {
	return NewSearcher(g, NewMemoryCache(), src, sink)
}

func TestSearchRejectsMalformedZipBeforeGeocoding(t *testing.T) {
	g := &fakeGeocoder{loc: lakeCharles}
	s := newTestSearcher(g, &fakeSource{}, &fakeSink{accept: true})

	for _, zip := range []string{"", "1234", "123456", "abcde", "7060a", "70601 "} {
		if _, err := s.Search(context.Background(), zip); !errors.Is(err, ErrInvalidZip) {
			t.Errorf("Search(%q): got %v, want ErrInvalidZip", zip, err)
		}
	}
	if g.calls != 0 {
		t.Errorf("geocoder called %d times for invalid input, want 0", g.calls)
	}
}

func TestSearchFiltersPinsToRadius(t *testing.T) {
	src := &fakeSource{pins: []pins.Pin{
		{Title: "Sulphur shelter", Lat: 30.2366, Lng: -93.3774},
		{Title: "Lake Charles supply drop", Lat: 30.2266, Lng: -93.2174},
		{Title: "Baton Rouge staging", Lat: 30.4515, Lng: -91.1871},
	}}
	sink := &fakeSink{accept: true}
	s := newTestSearcher(&fakeGeocoder{loc: lakeCharles}, src, sink)

	res, err := s.Search(context.Background(), "70601")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Count != 2 || len(res.Pins) != 2 {
		t.Fatalf("count = %d (%d pins), want 2 in range", res.Count, len(res.Pins))
	}
	for _, p := range res.Pins {
		if p.Title == "Baton Rouge staging" {
			t.Error("Baton Rouge pin is ~120 miles out and must be excluded")
		}
	}
	if res.RadiusMiles != SearchRadiusMiles || res.Zoom != SearchZoom {
		t.Errorf("result radius/zoom = %f/%d", res.RadiusMiles, res.Zoom)
	}
	if !sink.applied {
		t.Error("expected the overlay to be applied")
	}
	if sink.overlay.Label != "Lake Charles, LA" {
		t.Errorf("overlay label = %q", sink.overlay.Label)
	}
}

func TestSearchWithZeroPinsInRangeSucceeds(t *testing.T) {
	src := &fakeSource{pins: []pins.Pin{
		{Title: "far away", Lat: 45.0, Lng: -122.0},
	}}
	s := newTestSearcher(&fakeGeocoder{loc: lakeCharles}, src, &fakeSink{accept: true})

	res, err := s.Search(context.Background(), "70601")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Count != 0 {
		t.Errorf("count = %d, want 0", res.Count)
	}
}

func TestSearchUsesCacheOnRepeatLookups(t *testing.T) {
	g := &fakeGeocoder{loc: lakeCharles}
	s := newTestSearcher(g, &fakeSource{}, &fakeSink{accept: true})

	for i := 0; i < 3; i++ {
		if _, err := s.Search(context.Background(), "70601"); err != nil {
			t.Fatalf("search %d: %v", i, err)
		}
	}
	if g.calls != 1 {
		t.Errorf("geocoder called %d times, want 1 (later lookups cached)", g.calls)
	}
}

func TestSearchFailedLookupIsNotCached(t *testing.T) {
	g := &fakeGeocoder{err: ErrNotFound}
	s := newTestSearcher(g, &fakeSource{}, &fakeSink{accept: true})

	if _, err := s.Search(context.Background(), "99999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	g.err = nil
	g.loc = lakeCharles
	if _, err := s.Search(context.Background(), "99999"); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if g.calls != 2 {
		t.Errorf("geocoder called %d times, want 2 (failures must not poison the cache)", g.calls)
	}
}

func TestSearchRejectedOverlayIsSuperseded(t *testing.T) {
	s := newTestSearcher(&fakeGeocoder{loc: lakeCharles}, &fakeSource{}, &fakeSink{accept: false})

	_, err := s.Search(context.Background(), "70601")
	if !errors.Is(err, ErrSuperseded) {
		t.Errorf("got %v, want ErrSuperseded", err)
	}
}

func TestSearchGenerationsIncrease(t *testing.T) {
	sink := &fakeSink{accept: true}
	s := newTestSearcher(&fakeGeocoder{loc: lakeCharles}, &fakeSource{}, sink)

	if _, err := s.Search(context.Background(), "70601"); err != nil {
		t.Fatal(err)
	}
	first := sink.lastGen

	if _, err := s.Search(context.Background(), "70601"); err != nil {
		t.Fatal(err)
	}
	if sink.lastGen <= first {
		t.Errorf("generation did not increase: %d then %d", first, sink.lastGen)
	}
}
