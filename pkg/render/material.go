package render

import (
	"image"

	"github.com/go-drift/strata/pkg/graphics"
)

// Material paints an element's rect.
type Material interface {
	// Draw paints rect on dst directly.
	Draw(r Renderer, dst Surface, rect image.Rectangle, alpha float64)
}

// Prerenderer is implemented by materials whose output depends only on
// size. Render returns a surface of that size, or nil when the material
// has nothing worth caching; callers blit the result instead of calling
// Draw every frame.
type Prerenderer interface {
	Render(r Renderer, size image.Point) Surface
}

// Solid fills the rect with a color.
type Solid struct {
	Color graphics.Color
}

func (m Solid) Draw(r Renderer, dst Surface, rect image.Rectangle, alpha float64) {
	if m.Color.Alpha() == 0 {
		return
	}
	r.DrawRect(dst, rect, m.Color, alpha)
}

// Border outlines the rect.
type Border struct {
	Color     graphics.Color
	Thickness int
}

func (m Border) Draw(r Renderer, dst Surface, rect image.Rectangle, alpha float64) {
	Outline(r, dst, rect, m.Color, m.Thickness, alpha)
}

// Inset draws Material shrunk by Amount pixels on every side.
type Inset struct {
	Material Material
	Amount   int
}

func (m Inset) Draw(r Renderer, dst Surface, rect image.Rectangle, alpha float64) {
	inner := rect.Inset(m.Amount)
	if inner.Empty() || m.Material == nil {
		return
	}
	m.Material.Draw(r, dst, inner, alpha)
}

// Layered draws its materials bottom to top.
type Layered []Material

func (m Layered) Draw(r Renderer, dst Surface, rect image.Rectangle, alpha float64) {
	for _, l := range m {
		if l != nil {
			l.Draw(r, dst, rect, alpha)
		}
	}
}

// Render composes the layers into an offscreen surface.
func (m Layered) Render(r Renderer, size image.Point) Surface {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	s := r.NewSurface(size.X, size.Y)
	m.Draw(r, s, image.Rectangle{Max: size}, 1)
	return s
}

// Picture stretches a surface over the rect. Renderers without scaling
// blit it at the rect's origin.
type Picture struct {
	Src Surface
}

func (m Picture) Draw(r Renderer, dst Surface, rect image.Rectangle, alpha float64) {
	if m.Src == nil {
		return
	}
	if sc, ok := r.(Scaler); ok && m.Src.Bounds().Size() != rect.Size() {
		sc.BlitScaled(dst, m.Src, rect, alpha)
		return
	}
	r.Blit(dst, m.Src, rect.Min, alpha)
}
