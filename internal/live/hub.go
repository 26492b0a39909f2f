package live

import (
	"encoding/json"
	"log"

	"github.com/DonaldGallianoIII/UnitedCajunNavyMap/internal/pins"
	"github.com/google/uuid"
)

// Hub owns the in-memory pin cache and everything derived from it (markers,
// counts, filter dimming, the search overlay). A single goroutine serializes
// every read and write, so feed events and HTTP handlers never touch shared
// state directly; they send requests and wait for answers.
//
// Events are applied strictly in delivery order. An update or delete for an
// id the cache has never seen is dropped (last writer wins); callers that
// need stronger guarantees reload from the store.
type Hub struct {
	reqs chan func(*hubState)
	quit chan struct{}
}

type hubState struct {
	order      []uuid.UUID
	cache      map[uuid.UUID]pins.Pin
	markers    []Marker
	counts     map[pins.Category]int
	filter     *pins.FilterState
	overlay    *Overlay
	overlayGen uint64
	rebuilds   int
	subs       map[chan []byte]struct{}
}

func NewHub() *Hub {
	h := &Hub{
		reqs: make(chan func(*hubState), 64),
		quit: make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	s := &hubState{
		cache:  make(map[uuid.UUID]pins.Pin),
		counts: make(map[pins.Category]int),
		filter: pins.NewFilterState(),
		subs:   make(map[chan []byte]struct{}),
	}
	for {
		select {
		case fn := <-h.reqs:
			fn(s)
		case <-h.quit:
			for ch := range s.subs {
				close(ch)
			}
			return
		}
	}
}

// Close stops the hub goroutine and closes all subscriber channels.
func (h *Hub) Close() {
	close(h.quit)
}

// do runs fn on the owning goroutine and waits for it to finish.
func (h *Hub) do(fn func(*hubState)) {
	done := make(chan struct{})
	h.reqs <- func(s *hubState) {
		fn(s)
		close(done)
	}
	<-done
}

// Load replaces the cache with the store's full pin list (startup and feed
// reconnects, when events may have been missed).
func (h *Hub) Load(list []pins.Pin) {
	h.do(func(s *hubState) {
		s.order = s.order[:0]
		s.cache = make(map[uuid.UUID]pins.Pin, len(list))
		for _, p := range list {
			if _, ok := s.cache[p.ID]; ok {
				continue
			}
			s.cache[p.ID] = p
			s.order = append(s.order, p.ID)
		}
		s.rebuildMarkers()
		s.refreshCounts()
		s.broadcast("load")
	})
}

// Apply reconciles one feed event into the cache and derived view.
func (h *Hub) Apply(ev Event) {
	h.do(func(s *hubState) {
		switch ev.Action {
		case ActionInsert:
			if _, ok := s.cache[ev.Record.ID]; ok {
				return
			}
			s.cache[ev.Record.ID] = ev.Record
			s.order = append(s.order, ev.Record.ID)
			// One new marker; no full rebuild. Dimming follows the
			// current filter so a new pin in a hidden category shows dim.
			s.markers = append(s.markers, s.marker(ev.Record))
			s.refreshCounts()
			s.broadcast("insert")
		case ActionUpdate:
			if _, ok := s.cache[ev.Record.ID]; !ok {
				return // unknown id: dropped
			}
			s.cache[ev.Record.ID] = ev.Record
			// Popup content derives from the full record, so the whole
			// marker set is rebuilt to stay consistent.
			s.rebuildMarkers()
			s.refreshCounts()
			s.broadcast("update")
		case ActionDelete:
			if _, ok := s.cache[ev.Record.ID]; !ok {
				return
			}
			delete(s.cache, ev.Record.ID)
			for i, id := range s.order {
				if id == ev.Record.ID {
					s.order = append(s.order[:i], s.order[i+1:]...)
					s.markers = append(s.markers[:i], s.markers[i+1:]...)
					break
				}
			}
			s.refreshCounts()
			s.broadcast("delete")
		}
	})
}

// Snapshot returns a copy of the cached pins in cache order.
func (h *Hub) Snapshot() []pins.Pin {
	var out []pins.Pin
	h.do(func(s *hubState) {
		out = make([]pins.Pin, 0, len(s.order))
		for _, id := range s.order {
			out = append(out, s.cache[id])
		}
	})
	return out
}

// State returns the full derived view.
func (h *Hub) State() MapState {
	var out MapState
	h.do(func(s *hubState) {
		out = s.state()
	})
	return out
}

// Counts returns pins-per-status over the full cache, every category present.
func (h *Hub) Counts() map[pins.Category]int {
	var out map[pins.Category]int
	h.do(func(s *hubState) {
		out = make(map[pins.Category]int, len(s.counts))
		for c, n := range s.counts {
			out[c] = n
		}
	})
	return out
}

// ToggleFilter flips one category and re-applies dimming. Counts and the
// cache are untouched.
func (h *Hub) ToggleFilter(c pins.Category) {
	h.do(func(s *hubState) {
		s.filter.Toggle(c)
		s.redim()
		s.broadcast("filter")
	})
}

// ResetFilters restores all categories to active.
func (h *Hub) ResetFilters() {
	h.do(func(s *hubState) {
		s.filter.Reset()
		s.redim()
		s.broadcast("filter")
	})
}

// ActiveFilters returns the currently active categories.
func (h *Hub) ActiveFilters() []pins.Category {
	var out []pins.Category
	h.do(func(s *hubState) {
		out = s.filter.Active()
	})
	return out
}

// SetOverlay replaces the radius overlay if gen is newer than the last one
// applied. A stale generation (a superseded search finishing late) is
// discarded and false is returned.
func (h *Hub) SetOverlay(gen uint64, o Overlay) bool {
	applied := false
	h.do(func(s *hubState) {
		if gen <= s.overlayGen {
			return
		}
		s.overlayGen = gen
		s.overlay = &o
		s.broadcast("search")
		applied = true
	})
	return applied
}

// Subscribe registers a listener for view-change messages. The returned
// cancel must be called when the consumer goes away. Slow consumers drop
// messages rather than stalling the hub.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 16)
	h.do(func(s *hubState) {
		s.subs[ch] = struct{}{}
	})
	cancel := func() {
		h.do(func(s *hubState) {
			if _, ok := s.subs[ch]; ok {
				delete(s.subs, ch)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// rebuildCount is a test hook: how many full marker rebuilds have happened.
func (h *Hub) rebuildCount() int {
	var n int
	h.do(func(s *hubState) {
		n = s.rebuilds
	})
	return n
}

func (s *hubState) marker(p pins.Pin) Marker {
	status := pins.Normalize(string(p.Status))
	return Marker{
		Pin:    p,
		Dimmed: !s.filter.IsActive(status),
		Popup:  BuildPopup(p),
	}
}

func (s *hubState) rebuildMarkers() {
	s.markers = make([]Marker, 0, len(s.order))
	for _, id := range s.order {
		s.markers = append(s.markers, s.marker(s.cache[id]))
	}
	s.rebuilds++
}

// redim re-applies filter dimming in place. Cheaper than a rebuild and
// deliberately not counted as one.
func (s *hubState) redim() {
	for i := range s.markers {
		status := pins.Normalize(string(s.markers[i].Pin.Status))
		s.markers[i].Dimmed = !s.filter.IsActive(status)
	}
}

func (s *hubState) refreshCounts() {
	for _, c := range pins.Categories {
		s.counts[c] = 0
	}
	for _, p := range s.cache {
		s.counts[pins.Normalize(string(p.Status))]++
	}
}

func (s *hubState) state() MapState {
	markers := make([]Marker, len(s.markers))
	copy(markers, s.markers)
	counts := make(map[pins.Category]int, len(s.counts))
	for c, n := range s.counts {
		counts[c] = n
	}
	st := MapState{
		Markers:       markers,
		Counts:        counts,
		ActiveFilters: s.filter.Active(),
	}
	if s.overlay != nil {
		o := *s.overlay
		st.Overlay = &o
	}
	return st
}

func (s *hubState) broadcast(kind string) {
	msg, err := json.Marshal(struct {
		Type  string   `json:"type"`
		State MapState `json:"state"`
	}{Type: kind, State: s.state()})
	if err != nil {
		log.Printf("[live] marshal broadcast: %v", err)
		return
	}
	for ch := range s.subs {
		select {
		case ch <- msg:
		default: // drop for slow consumers
		}
	}
}
