package scrollfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// WhitePixel is a 1x1 white image used for solid color boxes.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

// LayoutRow assigns each item's Left so the strip reads left to right with
// the given gap between items, starting at 0. Returns the total laid-out
// width (scaled widths plus gaps, no trailing gap).
func LayoutRow(items []*Node, gap float64) float64 {
	x := 0.0
	for i, n := range items {
		if i > 0 {
			x += gap
		}
		n.Left = x
		n.MarkDirty()
		x += n.Width * n.ScaleX
	}
	return x
}

// DrawStrip draws each item at its RenderX. Items draw in slice order;
// disposed, fully transparent, and zero-size items are skipped.
func DrawStrip(dst *ebiten.Image, items []*Node) {
	for _, n := range items {
		if n.IsDisposed() || n.Alpha <= 0 || n.Width <= 0 || n.Height <= 0 {
			continue
		}
		img := n.Image
		if img == nil {
			img = WhitePixel
		}
		b := img.Bounds()

		var op ebiten.DrawImageOptions
		op.GeoM.Scale(
			n.Width/float64(b.Dx())*n.ScaleX,
			n.Height/float64(b.Dy())*n.ScaleY,
		)
		op.GeoM.Translate(n.RenderX(), n.Y)

		a := float32(n.Alpha * n.Color.A)
		op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)

		dst.DrawImage(img, &op)
		n.ClearDirty()
	}
}
