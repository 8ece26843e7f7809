package scrollfx

import "errors"

// Color is an RGBA tint with each component in [0, 1]. Components are stored
// straight (non-premultiplied); DrawStrip premultiplies as it submits.
type Color struct {
	R, G, B, A float64
}

// ColorWhite leaves an item's image untinted.
var ColorWhite = Color{1, 1, 1, 1}

// Errors reported by builders and config loading. Wrapped errors carry the
// offending item or field; test with errors.Is.
var (
	// ErrInvalidConfig is returned when loop or page configuration holds
	// values that would produce a non-terminating or reversed timeline
	// (non-positive speed, negative padding).
	ErrInvalidConfig = errors.New("scrollfx: invalid configuration")

	// ErrDegenerateGeometry is returned when an item has zero or negative
	// width. Displacement math is percent-of-own-width, which is undefined
	// for width zero; callers must measure laid-out, visible items first.
	ErrDegenerateGeometry = errors.New("scrollfx: degenerate item geometry")
)

// BaseSpeed is the traversal rate of a marquee in units per second at
// speed multiplier 1.
const BaseSpeed = 100.0

// DefaultPadding is the default gap appended after the last item of a loop
// before the strip wraps, keeping the last and first items apart.
const DefaultPadding = 30.0
