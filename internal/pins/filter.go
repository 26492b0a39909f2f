package pins

// FilterState tracks which status categories are currently shown undimmed.
// It is process-local and never persisted. Not safe for concurrent use; the
// map hub owns the only instance and serializes access.
type FilterState struct {
	active map[Category]bool
}

// NewFilterState starts with every category active.
func NewFilterState() *FilterState {
	f := &FilterState{active: make(map[Category]bool, len(Categories))}
	f.Reset()
	return f
}

// Toggle flips membership for the category. Each call flips; it is not a
// set-to operation.
func (f *FilterState) Toggle(c Category) {
	f.active[c] = !f.active[c]
}

// Reset restores the full category set.
func (f *FilterState) Reset() {
	for _, c := range Categories {
		f.active[c] = true
	}
}

func (f *FilterState) IsActive(c Category) bool {
	return f.active[c]
}

// Active returns the active categories in display order.
func (f *FilterState) Active() []Category {
	out := make([]Category, 0, len(Categories))
	for _, c := range Categories {
		if f.active[c] {
			out = append(out, c)
		}
	}
	return out
}
