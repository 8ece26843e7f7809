// Package scrollfx drives scroll-synchronized animation for [Ebitengine]:
// seamless infinite marquees, smoothed scrolling, and scroll-scrubbed
// timelines.
//
// The centerpiece is [Loop], which takes an ordered strip of items and builds
// a cyclic [Timeline] that carries them leftward forever with no visible seam,
// regardless of per-item widths or scale factors.
//
// # Quick start
//
//	items := []*scrollfx.Node{
//		scrollfx.NewBox("a", 100, 40),
//		scrollfx.NewBox("b", 200, 40),
//	}
//	items[1].Left = 100 // laid out after "a"
//
//	tl, err := scrollfx.Loop(items, scrollfx.DefaultLoopOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Advance the timeline once per frame, then draw:
//
//	func (g *Game) Update() error {
//		g.timeline.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		scrollfx.DrawStrip(screen, g.items)
//	}
//
// # Scroll-driven playback
//
// [Scroller] emulates smoothed (inertial) scrolling over a fixed range, and
// [Scrub] binds a window of that range to a timeline's progress, so a
// timeline plays forward and backward as the user scrolls. A [Ticker] drives
// any number of timelines, scrollers, and scrubs from one per-frame update;
// there is no global singleton, callers construct and own their tickers.
//
// Interpolation is provided by [gween]; anything drawable is an
// *ebiten.Image.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package scrollfx
