package scrollfx

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// segment is one scheduled animation of a single float64 field: a two-state
// record {start, from, to} evaluated against the timeline playhead.
//
// A deferred segment never writes its "from" value before the playhead
// reaches its start time. This is what lets a marquee item sit at its exit
// position until the exact frame it re-enters from the right, instead of
// snapping to the wrapped position at build time.
type segment struct {
	target   *Node // optional; once disposed, the segment stops writing
	field    *float64
	from, to float64
	start    float64
	duration float64
	deferred bool
	tween    *gween.Tween
}

// Timeline schedules segments at explicit start times on a shared clock and
// replays them against a playhead. It is advanced by an external per-frame
// driver (a Ticker, or a game's Update) and has no clock of its own.
//
// Separate Timeline values share no state; each is an isolated schedule.
type Timeline struct {
	// Repeat is the number of full cycles to play. -1 repeats forever
	// (0, the zero value, is treated the same); n > 0 plays exactly n
	// cycles then halts at the final cycle's end state.
	Repeat int

	// TimeScale multiplies dt on every Update. 1 is normal speed.
	TimeScale float64

	segments []segment
	duration float64 // length of one cycle
	playhead float64 // unwrapped time since start
	paused   bool
	done     bool
	disposed bool
}

// NewTimeline creates an empty timeline that repeats forever.
func NewTimeline() *Timeline {
	return &Timeline{Repeat: -1, TimeScale: 1}
}

// To schedules a segment animating *field from its current value to the
// given target, starting at time at and lasting duration seconds.
// target may be nil for fields not owned by a Node.
// Panics on nil field or negative timing (programmer error).
func (tl *Timeline) To(target *Node, field *float64, to, duration, at float64, fn ease.TweenFunc) *Timeline {
	return tl.schedule(target, field, *field, to, duration, at, false, fn)
}

// FromTo schedules a deferred segment: *field animates from an explicit
// starting value to the target, but the starting value is only applied once
// the playhead reaches at — never at schedule time.
func (tl *Timeline) FromTo(target *Node, field *float64, from, to, duration, at float64, fn ease.TweenFunc) *Timeline {
	return tl.schedule(target, field, from, to, duration, at, true, fn)
}

func (tl *Timeline) schedule(target *Node, field *float64, from, to, duration, at float64, deferred bool, fn ease.TweenFunc) *Timeline {
	if field == nil {
		panic("scrollfx: timeline segment needs a field to animate")
	}
	if duration < 0 || at < 0 {
		panic("scrollfx: timeline segment has negative timing")
	}
	tl.segments = append(tl.segments, segment{
		target:   target,
		field:    field,
		from:     from,
		to:       to,
		start:    at,
		duration: duration,
		deferred: deferred,
		tween:    gween.New(float32(from), float32(to), float32(duration), fn),
	})
	if end := at + duration; end > tl.duration {
		tl.duration = end
	}
	return tl
}

// Update advances the playhead by dt*TimeScale seconds and applies segment
// values. No-op while paused, after Dispose, or once a bounded timeline has
// completed its final cycle.
func (tl *Timeline) Update(dt float64) {
	if tl.disposed || tl.paused || tl.done || tl.duration <= 0 {
		return
	}
	tl.playhead += dt * tl.TimeScale
	if tl.Repeat > 0 {
		total := tl.duration * float64(tl.Repeat)
		if tl.playhead >= total {
			// Halt at the end of the final cycle; do not wrap again.
			tl.playhead = total
			tl.done = true
			tl.apply(tl.duration)
			return
		}
	}
	tl.apply(tl.cyclePos())
}

// cyclePos returns the playhead position within the current cycle. A playhead
// seeked or clamped exactly to the cycle end is the end, not a wrap to 0 —
// otherwise a timeline pinned at its end would report progress 0.
func (tl *Timeline) cyclePos() float64 {
	if tl.playhead == tl.duration {
		return tl.duration
	}
	t := math.Mod(tl.playhead, tl.duration)
	if t < 0 {
		t += tl.duration
	}
	return t
}

// apply evaluates every segment at cycle time t, in schedule order (later
// segments win on shared fields).
func (tl *Timeline) apply(t float64) {
	for i := range tl.segments {
		s := &tl.segments[i]
		if s.target != nil && s.target.IsDisposed() {
			continue
		}
		local := t - s.start
		if local < 0 {
			if s.deferred {
				continue
			}
			local = 0
		} else if local > s.duration {
			local = s.duration
		}
		if s.duration <= 0 {
			// Instant segment: no interpolation to evaluate.
			*s.field = s.to
		} else {
			v, _ := s.tween.Set(float32(local))
			*s.field = float64(v)
		}
		if s.target != nil {
			s.target.MarkDirty()
		}
	}
}

// Seek moves the playhead to time t (clamped to one cycle) and applies
// segment values immediately, even while paused. Clears the done state.
func (tl *Timeline) Seek(t float64) {
	if tl.disposed {
		return
	}
	if t < 0 {
		t = 0
	}
	if t > tl.duration {
		t = tl.duration
	}
	tl.playhead = t
	tl.done = false
	tl.apply(t)
}

// Progress returns the playhead position as a fraction of one cycle, 0..1.
func (tl *Timeline) Progress() float64 {
	if tl.duration <= 0 {
		return 0
	}
	if tl.done {
		return 1
	}
	return tl.cyclePos() / tl.duration
}

// SetProgress seeks to the given fraction of one cycle, clamped to 0..1.
func (tl *Timeline) SetProgress(p float64) {
	tl.Seek(p * tl.duration)
}

// Duration returns the length of one full cycle in seconds.
func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// Pause stops Update from advancing the playhead. Seek still applies.
func (tl *Timeline) Pause() {
	tl.paused = true
}

// Play resumes a paused timeline.
func (tl *Timeline) Play() {
	tl.paused = false
}

// Paused reports whether the timeline is paused.
func (tl *Timeline) Paused() bool {
	return tl.paused
}

// Done reports whether a bounded timeline has completed its final cycle.
// Always false while Repeat is unbounded.
func (tl *Timeline) Done() bool {
	return tl.done
}

// Dispose releases the timeline's segments. A disposed timeline ignores all
// further calls and is pruned by any Ticker driving it.
func (tl *Timeline) Dispose() {
	if tl.disposed {
		return
	}
	tl.disposed = true
	tl.segments = nil
}

// IsDisposed returns true if this timeline has been disposed.
func (tl *Timeline) IsDisposed() bool {
	return tl.disposed
}
