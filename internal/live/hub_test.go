package live

import (
	"encoding/json"
	"testing"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
	"github.com/google/uuid"
)

func testPin(title string, status pins.Category) pins.Pin {
	return pins.Pin{
		ID:     uuid.New(),
		Title:  title,
		Status: status,
		Lat:    30.0,
		Lng:    -93.0,
	}
}

func newTestHub(t *testing.T, initial ...pins.Pin) *Hub {
	t.Helper()
	h := NewHub()
	t.Cleanup(h.Close)
	h.Load(initial)
	return h
}

func TestLoadPreservesOrder(t *testing.T) {
	a := testPin("a", pins.StatusActive)
	b := testPin("b", pins.StatusCritical)
	c := testPin("c", pins.StatusPast)
	h := newTestHub(t, a, b, c)

	snap := h.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot len = %d", len(snap))
	}
	for i, want := range []string{"a", "b", "c"} {
		if snap[i].Title != want {
			t.Errorf("snapshot[%d] = %q, want %q", i, snap[i].Title, want)
		}
	}
}

func TestInsertAppendsWithoutRebuild(t *testing.T) {
	h := newTestHub(t, testPin("a", pins.StatusActive))
	before := h.rebuildCount()

	h.Apply(Event{Action: ActionInsert, Record: testPin("b", pins.StatusWarning)})

	if got := h.rebuildCount(); got != before {
		t.Errorf("insert triggered a full rebuild (%d -> %d)", before, got)
	}
	st := h.State()
	if len(st.Markers) != 2 {
		t.Fatalf("markers = %d, want 2", len(st.Markers))
	}
	if st.Markers[1].Pin.Title != "b" {
		t.Errorf("new marker appended out of order: %q", st.Markers[1].Pin.Title)
	}
	if st.Counts[pins.StatusWarning] != 1 {
		t.Errorf("warning count = %d", st.Counts[pins.StatusWarning])
	}
}

func TestInsertIntoHiddenCategoryIsDimmed(t *testing.T) {
	h := newTestHub(t)
	h.ToggleFilter(pins.StatusWeather)

	h.Apply(Event{Action: ActionInsert, Record: testPin("storm", pins.StatusWeather)})

	st := h.State()
	if len(st.Markers) != 1 {
		t.Fatalf("markers = %d", len(st.Markers))
	}
	if !st.Markers[0].Dimmed {
		t.Error("pin in a toggled-off category must arrive dimmed")
	}
	if st.Counts[pins.StatusWeather] != 1 {
		t.Error("counts must cover the full cache regardless of filters")
	}
}

func TestUpdateRebuildsMarkers(t *testing.T) {
	p := testPin("before", pins.StatusActive)
	h := newTestHub(t, p)
	before := h.rebuildCount()

	p.Title = "after"
	p.Status = pins.StatusCritical
	h.Apply(Event{Action: ActionUpdate, Record: p})

	if got := h.rebuildCount(); got != before+1 {
		t.Errorf("rebuilds %d -> %d, want exactly one more", before, got)
	}
	st := h.State()
	if st.Markers[0].Pin.Title != "after" {
		t.Errorf("marker title = %q", st.Markers[0].Pin.Title)
	}
	if st.Markers[0].Popup.Style != pins.StatusCritical.Style() {
		t.Error("popup style did not follow the status change")
	}
	if st.Counts[pins.StatusActive] != 0 || st.Counts[pins.StatusCritical] != 1 {
		t.Errorf("counts after status change: %v", st.Counts)
	}
}

func TestUpdateUnknownIDIsDropped(t *testing.T) {
	h := newTestHub(t, testPin("a", pins.StatusActive))
	before := h.rebuildCount()

	h.Apply(Event{Action: ActionUpdate, Record: testPin("ghost", pins.StatusCritical)})

	if len(h.Snapshot()) != 1 {
		t.Error("unknown-id update must not grow the cache")
	}
	if h.rebuildCount() != before {
		t.Error("unknown-id update must not rebuild")
	}
}

func TestDeleteRemovesOneMarker(t *testing.T) {
	a := testPin("a", pins.StatusActive)
	b := testPin("b", pins.StatusActive)
	h := newTestHub(t, a, b)

	h.Apply(Event{Action: ActionDelete, Record: a})

	st := h.State()
	if len(st.Markers) != 1 || st.Markers[0].Pin.Title != "b" {
		t.Fatalf("markers after delete: %+v", st.Markers)
	}
	if st.Counts[pins.StatusActive] != 1 {
		t.Errorf("active count = %d", st.Counts[pins.StatusActive])
	}

	// Deleting again is a no-op.
	h.Apply(Event{Action: ActionDelete, Record: a})
	if len(h.Snapshot()) != 1 {
		t.Error("repeat delete changed the cache")
	}
}

func TestInsertThenDeleteIsNetZero(t *testing.T) {
	h := newTestHub(t)
	p := testPin("transient", pins.StatusWarning)

	h.Apply(Event{Action: ActionInsert, Record: p})
	h.Apply(Event{Action: ActionDelete, Record: p})

	st := h.State()
	if len(st.Markers) != 0 {
		t.Errorf("markers = %d, want 0", len(st.Markers))
	}
	if st.Counts[pins.StatusWarning] != 0 {
		t.Errorf("warning count = %d, want 0", st.Counts[pins.StatusWarning])
	}
}

func TestDuplicateInsertIsDropped(t *testing.T) {
	p := testPin("a", pins.StatusActive)
	h := newTestHub(t, p)

	h.Apply(Event{Action: ActionInsert, Record: p})

	if len(h.Snapshot()) != 1 {
		t.Error("duplicate insert must be dropped")
	}
}

func TestFiltersDimWithoutChangingCounts(t *testing.T) {
	h := newTestHub(t,
		testPin("a", pins.StatusActive),
		testPin("b", pins.StatusCritical),
	)

	h.ToggleFilter(pins.StatusCritical)

	st := h.State()
	var dimmed int
	for _, m := range st.Markers {
		if m.Dimmed {
			dimmed++
		}
	}
	if dimmed != 1 {
		t.Errorf("dimmed markers = %d, want 1", dimmed)
	}
	if st.Counts[pins.StatusCritical] != 1 {
		t.Error("filter toggle must not change counts")
	}
	if len(st.ActiveFilters) != len(pins.Categories)-1 {
		t.Errorf("active filters = %v", st.ActiveFilters)
	}
}

func TestResetFiltersUndims(t *testing.T) {
	h := newTestHub(t, testPin("a", pins.StatusPast))
	h.ToggleFilter(pins.StatusPast)
	h.ToggleFilter(pins.StatusWeather)

	h.ResetFilters()

	st := h.State()
	if st.Markers[0].Dimmed {
		t.Error("marker still dimmed after reset")
	}
	if len(st.ActiveFilters) != len(pins.Categories) {
		t.Errorf("active filters after reset = %v", st.ActiveFilters)
	}
}

func TestCountsIncludeEveryCategory(t *testing.T) {
	h := newTestHub(t, testPin("a", pins.StatusActive))
	counts := h.Counts()
	for _, c := range pins.Categories {
		if _, ok := counts[c]; !ok {
			t.Errorf("category %q missing from counts", c)
		}
	}
	if counts[pins.StatusActive] != 1 {
		t.Errorf("active = %d", counts[pins.StatusActive])
	}
}

func TestSetOverlayRejectsStaleGenerations(t *testing.T) {
	h := newTestHub(t)

	if !h.SetOverlay(2, Overlay{Label: "newer"}) {
		t.Fatal("first overlay at gen 2 must apply")
	}
	if h.SetOverlay(1, Overlay{Label: "stale"}) {
		t.Error("gen 1 after gen 2 must be rejected")
	}
	if h.SetOverlay(2, Overlay{Label: "same"}) {
		t.Error("equal generation must be rejected")
	}

	st := h.State()
	if st.Overlay == nil || st.Overlay.Label != "newer" {
		t.Errorf("overlay = %+v", st.Overlay)
	}

	if !h.SetOverlay(3, Overlay{Label: "newest"}) {
		t.Error("gen 3 must apply")
	}
}

func TestSubscribeReceivesBroadcasts(t *testing.T) {
	h := newTestHub(t)
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Apply(Event{Action: ActionInsert, Record: testPin("a", pins.StatusActive)})

	msg := <-ch
	var decoded struct {
		Type  string   `json:"type"`
		State MapState `json:"state"`
	}
	if err := json.Unmarshal(msg, &decoded); err != nil {
		t.Fatalf("broadcast is not valid JSON: %v", err)
	}
	if decoded.Type != "insert" {
		t.Errorf("type = %q, want insert", decoded.Type)
	}
	if len(decoded.State.Markers) != 1 {
		t.Errorf("broadcast state markers = %d", len(decoded.State.Markers))
	}
}

func TestCancelledSubscriberStopsReceiving(t *testing.T) {
	h := newTestHub(t)
	ch, cancel := h.Subscribe()
	cancel()

	if _, open := <-ch; open {
		t.Error("channel must be closed after cancel")
	}

	// Must not panic or block with no subscribers left.
	h.Apply(Event{Action: ActionInsert, Record: testPin("a", pins.StatusActive)})
}
