package scrollfx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter (no atomic — scrollfx is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is one visual item in a strip. A single flat struct is used for every
// item kind (solid box or image) to avoid interface dispatch on the per-frame
// path.
//
// Horizontal position is split into three parts so loop math stays correct
// under arbitrary widths and scales:
//
//   - Left is the item's layout position within the strip, fixed at layout
//     time and never animated.
//   - X is an absolute pixel displacement on top of Left.
//   - XPercent is a displacement expressed as a percentage of the item's own
//     Width. Marquee timelines animate only this field.
//
// The on-screen position is RenderX.
type Node struct {
	ID   uint32
	Name string

	// Layout
	Left          float64
	Width, Height float64

	// Transform
	X, Y           float64
	XPercent       float64
	ScaleX, ScaleY float64

	// Appearance
	Alpha float64
	Color Color
	Image *ebiten.Image // nil draws a tinted solid box

	dirty    bool
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.dirty = true
}

// NewBox creates a solid-color item of the given layout size.
// Tint it via Color.
func NewBox(name string, width, height float64) *Node {
	n := &Node{Name: name, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// NewImageItem creates an item that draws img. Width and Height are taken
// from the image bounds and may be overridden before layout.
func NewImageItem(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Image: img}
	if img != nil {
		b := img.Bounds()
		n.Width = float64(b.Dx())
		n.Height = float64(b.Dy())
	}
	nodeDefaults(n)
	return n
}

// RenderX returns the item's on-screen horizontal position: layout position
// plus absolute displacement plus percent-of-self displacement in pixels.
func (n *Node) RenderX() float64 {
	return n.Left + n.X + n.XPercent/100*n.Width
}

// SetXPercent sets the percent-of-self displacement and marks the node dirty.
func (n *Node) SetXPercent(p float64) {
	n.XPercent = p
	n.dirty = true
}

// MarkDirty marks the node as changed since the last draw. Useful after
// bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.dirty = true
}

// IsDirty reports whether the node changed since ClearDirty was last called.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// ClearDirty resets the dirty flag. Called by DrawStrip after drawing.
func (n *Node) ClearDirty() {
	n.dirty = false
}

// Dispose marks the node as disposed and releases its image reference.
// Timelines targeting a disposed node stop writing to it.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.ID = 0
	n.Image = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
