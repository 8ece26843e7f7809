package scrollfx

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// LoopOptions configures Loop.
//
// The zero value of a field means "use the default": Repeat 0 repeats
// forever, Speed 0 means multiplier 1, PaddingAfterLast 0 is a genuine
// zero-pixel gap (use DefaultLoopOptions for the stock 30-unit gap).
type LoopOptions struct {
	// Repeat is the number of full cycles to play; -1 (or 0) is forever.
	Repeat int

	// PaddingAfterLast is the gap in pixels appended after the last item
	// before the strip wraps, so the last and first items never touch.
	// Must not be negative.
	PaddingAfterLast float64

	// Speed multiplies the base traversal rate of BaseSpeed (100) units
	// per second. Must not be negative; 0 means 1.
	Speed float64
}

// DefaultLoopOptions returns the stock options: infinite repeat, a
// DefaultPadding gap, speed multiplier 1.
func DefaultLoopOptions() LoopOptions {
	return LoopOptions{Repeat: -1, PaddingAfterLast: DefaultPadding, Speed: 1}
}

// Loop builds a timeline that scrolls items leftward forever with no visible
// seam. Item order is significant and fixed for the life of the timeline.
//
// Each item gets two linear segments: an exit segment carrying it left to
// its wrap point, and a deferred re-entry segment that places it one full
// cycle width to the right at the instant it wraps and carries it back to
// its measured starting displacement. Both are expressed in percent of the
// item's own width, so the loop stays seamless under mixed widths and
// scale factors. Easing is deliberately linear: any acceleration would make
// the wrap point visible as an item crosses it.
//
// Measuring folds each item's absolute X displacement into XPercent and
// zeroes X, establishing a common origin. The returned timeline has already
// been stabilized (advanced to its end and back) so the first observed
// frame shows correct positions.
//
// An empty items slice is a benign no-op: Loop returns (nil, nil), matching
// a page that simply has no marquee. The caller owns the timeline and must
// Dispose it; if the underlying items change (a resize), discard the
// timeline and rebuild — there is no incremental update.
func Loop(items []*Node, opts LoopOptions) (*Timeline, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if opts.Speed == 0 {
		opts.Speed = 1
	}
	if opts.Speed < 0 {
		return nil, fmt.Errorf("%w: speed %g must be positive", ErrInvalidConfig, opts.Speed)
	}
	if opts.PaddingAfterLast < 0 {
		return nil, fmt.Errorf("%w: padding %g must not be negative", ErrInvalidConfig, opts.PaddingAfterLast)
	}
	if opts.Repeat == 0 {
		opts.Repeat = -1
	}

	// Measure phase: record each item's width and its current displacement
	// as a percentage of its own width, then zero the absolute transform so
	// every later offset shares one origin.
	n := len(items)
	widths := make([]float64, n)
	xPercents := make([]float64, n)
	for i, item := range items {
		if item.Width <= 0 {
			return nil, fmt.Errorf("%w: item %q (index %d) has width %g", ErrDegenerateGeometry, item.Name, i, item.Width)
		}
		widths[i] = item.Width
		xPercents[i] = item.X/widths[i]*100 + item.XPercent
		item.XPercent = xPercents[i]
		item.X = 0
		item.MarkDirty()
	}

	// Total span: the distance the whole strip travels before the pattern
	// repeats identically. Identical for every item's wrap calculation.
	startX := items[0].Left
	last := items[n-1]
	totalWidth := last.Left + xPercents[n-1]/100*widths[n-1] - startX +
		widths[n-1]*last.ScaleX + opts.PaddingAfterLast

	pixelsPerSecond := opts.Speed * BaseSpeed

	tl := NewTimeline()
	tl.Repeat = opts.Repeat
	for i, item := range items {
		curX := xPercents[i] / 100 * widths[i]
		distanceToStart := item.Left + curX - startX
		distanceToWrap := distanceToStart + widths[i]*item.ScaleX
		exitDuration := distanceToWrap / pixelsPerSecond

		// Exit: travel left until the item fully clears the strip start.
		tl.To(item, &item.XPercent,
			(curX-distanceToWrap)/widths[i]*100,
			exitDuration, 0, ease.Linear)

		// Re-entry: reappear one full cycle width to the right of the wrap
		// position and travel back to the measured starting displacement.
		// Deferred, so the jump happens only when the playhead gets there.
		tl.FromTo(item, &item.XPercent,
			(curX-distanceToWrap+totalWidth)/widths[i]*100,
			xPercents[i],
			(totalWidth-distanceToWrap)/pixelsPerSecond,
			exitDuration, ease.Linear)
	}

	// Stabilization pass: run to the end and back so every item holds its
	// correct starting value before the caller observes the first frame.
	tl.Seek(tl.Duration())
	tl.Seek(0)
	return tl, nil
}
