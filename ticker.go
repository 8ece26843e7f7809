package scrollfx

// Animatable is anything a Ticker can advance once per frame.
// Timeline, Scroller, and Scrub all implement it.
type Animatable interface {
	Update(dt float64)
	IsDisposed() bool
}

// Ticker drives a set of animatables from a single per-frame update.
// Disposed entries are pruned automatically.
//
// There is deliberately no process-wide ticker: callers construct their own
// and wire it into their game loop, so separate scenes (and tests) never
// share clock state.
type Ticker struct {
	items []Animatable
}

// NewTicker creates an empty ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Add registers a to receive per-frame updates. Adding the same value twice
// makes it advance twice per frame; don't.
func (t *Ticker) Add(a Animatable) {
	t.items = append(t.items, a)
}

// Remove unregisters a. No-op if a is not registered.
func (t *Ticker) Remove(a Animatable) {
	for i, it := range t.items {
		if it == a {
			copy(t.items[i:], t.items[i+1:])
			t.items[len(t.items)-1] = nil
			t.items = t.items[:len(t.items)-1]
			return
		}
	}
}

// Update advances every registered animatable by dt seconds and prunes any
// that report themselves disposed.
func (t *Ticker) Update(dt float64) {
	kept := t.items[:0]
	for _, it := range t.items {
		if it.IsDisposed() {
			continue
		}
		it.Update(dt)
		if !it.IsDisposed() {
			kept = append(kept, it)
		}
	}
	// Clear the tail so pruned entries aren't retained by the backing array.
	for i := len(kept); i < len(t.items); i++ {
		t.items[i] = nil
	}
	t.items = kept
}

// Len returns the number of registered animatables.
func (t *Ticker) Len() int {
	return len(t.items)
}
