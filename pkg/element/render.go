package element

import (
	"github.com/go-drift/strata/pkg/render"
)

// Render draws e and its visible descendants: each element paints itself,
// then its children in order, then anything it draws above them. Children
// of clipping containers draw into a subsurface bounded by the container.
func Render(r render.Renderer, dst render.Surface, e Element, alpha float64) {
	b := e.base()
	if !b.Visible() || alpha <= 0 {
		return
	}
	if p, ok := e.(Painter); ok {
		p.Paint(r, dst, alpha)
	}
	if c, ok := e.(containerElement); ok {
		sub := dst
		if cl, ok := e.(interface{ clipsChildren() bool }); ok && cl.clipsChildren() {
			sub = r.Subsurface(dst, b.blit.Intersect(dst.Bounds()))
		}
		for _, ch := range c.container().children {
			Render(r, sub, ch, alpha)
		}
	}
	if p, ok := e.(OverPainter); ok {
		p.PaintOver(r, dst, alpha)
	}
}

// Tick runs Update on e and every descendant with per-tick work. Elements
// released by an earlier Update in the same tick are skipped.
func Tick(e Element, dt float64) {
	var updaters []Element
	Walk(e, func(d Element) {
		if _, ok := d.(Updater); ok {
			updaters = append(updaters, d)
		}
	})
	for _, d := range updaters {
		if d.base().released {
			continue
		}
		d.(Updater).Update(dt)
	}
}
