package scrollfx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scroller emulates smoothed scrolling over a fixed range: inputs move a
// target position, and the visible position eases toward it a little each
// frame. This is the inertial feel of a smooth-scroll layer without any
// real scrollbar behind it.
type Scroller struct {
	// Min and Max bound the scroll range. Both the target and the visible
	// position are clamped to [Min, Max].
	Min, Max float64

	// Lerp is the fraction of the remaining distance covered per frame.
	// 1.0 snaps immediately; lower values give smoother scrolling.
	Lerp float64

	pos      float64
	target   float64
	tween    *gween.Tween
	disposed bool
}

// NewScroller creates a scroller over [min, max] starting at min.
func NewScroller(min, max, lerp float64) *Scroller {
	return &Scroller{Min: min, Max: max, Lerp: lerp, pos: min, target: min}
}

// ScrollBy shifts the scroll target by delta (positive scrolls forward).
// Cancels any ScrollTo animation in flight; the shift then applies to the
// visible position, not the animation's destination, so input takes over
// from what the user currently sees.
func (s *Scroller) ScrollBy(delta float64) {
	base := s.target
	if s.tween != nil {
		base = s.pos
	}
	s.SetTarget(base + delta)
}

// SetTarget sets the scroll target directly, clamped to the range.
// Cancels any ScrollTo animation in flight.
func (s *Scroller) SetTarget(v float64) {
	s.target = s.clamp(v)
	s.tween = nil
}

// ScrollTo animates the visible position to v over duration seconds using
// the easing function, overriding the per-frame lerp until it completes.
func (s *Scroller) ScrollTo(v float64, duration float32, fn ease.TweenFunc) {
	v = s.clamp(v)
	s.target = v
	s.tween = gween.New(float32(s.pos), float32(v), duration, fn)
}

// Update advances the smoothing by one frame.
func (s *Scroller) Update(dt float64) {
	if s.disposed {
		return
	}
	if s.tween != nil {
		val, done := s.tween.Update(float32(dt))
		s.pos = float64(val)
		if done {
			s.tween = nil
		}
	} else {
		s.pos += (s.target - s.pos) * s.Lerp
	}
	s.pos = s.clamp(s.pos)
}

// Value returns the current smoothed scroll position.
func (s *Scroller) Value() float64 {
	return s.pos
}

// Target returns the position the scroller is easing toward.
func (s *Scroller) Target() float64 {
	return s.target
}

// Progress returns the smoothed position as a fraction of the range, 0..1.
func (s *Scroller) Progress() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.pos - s.Min) / (s.Max - s.Min)
}

// Dispose marks the scroller as disposed; a Ticker driving it will prune it,
// and any Scrub reading it stops.
func (s *Scroller) Dispose() {
	s.disposed = true
	s.tween = nil
}

// IsDisposed returns true if this scroller has been disposed.
func (s *Scroller) IsDisposed() bool {
	return s.disposed
}

func (s *Scroller) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Scrub binds a window of a scroller's range to a timeline: as the smoothed
// scroll position moves through [From, To], the timeline is seeked through
// progress 0..1, playing forward and backward with the scroll. Positions
// outside the window clamp to the nearest end.
type Scrub struct {
	timeline *Timeline
	scroller *Scroller
	from, to float64
	disposed bool
}

// NewScrub binds timeline progress to the scroller window [from, to] in
// scroll units. Panics if the window is empty or reversed (programmer error).
func NewScrub(tl *Timeline, s *Scroller, from, to float64) *Scrub {
	if tl == nil || s == nil {
		panic("scrollfx: scrub needs a timeline and a scroller")
	}
	if to <= from {
		panic("scrollfx: scrub window is empty or reversed")
	}
	return &Scrub{timeline: tl, scroller: s, from: from, to: to}
}

// Update seeks the timeline to the progress mapped from the current scroll
// position. If either side has been disposed, the scrub disposes itself.
func (sc *Scrub) Update(dt float64) {
	if sc.disposed {
		return
	}
	if sc.timeline.IsDisposed() || sc.scroller.IsDisposed() {
		sc.disposed = true
		return
	}
	p := (sc.scroller.Value() - sc.from) / (sc.to - sc.from)
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	sc.timeline.SetProgress(p)
}

// Dispose detaches the scrub. The bound timeline and scroller are untouched.
func (sc *Scrub) Dispose() {
	sc.disposed = true
}

// IsDisposed returns true if this scrub has been disposed.
func (sc *Scrub) IsDisposed() bool {
	return sc.disposed
}
