// Package render defines the drawing interface the core paints through and
// the collaborators built on it: fonts, materials, state controllers and the
// per-element surface cache. ImageRenderer is a software implementation on
// image.RGBA; package ebitenr provides the windowed one.
package render

import (
	"image"

	"github.com/go-drift/strata/pkg/graphics"
)

// Surface is a drawable pixel area. Subsurfaces keep the coordinate system
// of their parent, so an element's view-space rect addresses the same
// pixels on every surface derived from the screen.
type Surface interface {
	Bounds() image.Rectangle
}

// Renderer performs all pixel work for the core.
type Renderer interface {
	// Screen returns the surface the current frame is drawn to.
	Screen() Surface
	// NewSurface allocates an offscreen surface with origin (0, 0).
	NewSurface(w, h int) Surface
	// Upload wraps decoded or rasterized pixels as a surface.
	Upload(img image.Image) Surface
	// DrawRect fills r on dst with c at the given opacity.
	DrawRect(dst Surface, r image.Rectangle, c graphics.Color, alpha float64)
	// Blit draws src with its origin at at.
	Blit(dst, src Surface, at image.Point, alpha float64)
	// Subsurface returns the part of s inside r. Drawing to it is clipped
	// to r.
	Subsurface(s Surface, r image.Rectangle) Surface
}

// AbsOffset returns the position of s in screen coordinates.
func AbsOffset(s Surface) image.Point {
	return s.Bounds().Min
}

// Outline draws a hollow rectangle of the given thickness.
func Outline(r Renderer, dst Surface, rect image.Rectangle, c graphics.Color, thickness int, alpha float64) {
	if thickness <= 0 || rect.Empty() {
		return
	}
	t := min(thickness, rect.Dx()/2+1, rect.Dy()/2+1)
	r.DrawRect(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+t), c, alpha)
	r.DrawRect(dst, image.Rect(rect.Min.X, rect.Max.Y-t, rect.Max.X, rect.Max.Y), c, alpha)
	r.DrawRect(dst, image.Rect(rect.Min.X, rect.Min.Y+t, rect.Min.X+t, rect.Max.Y-t), c, alpha)
	r.DrawRect(dst, image.Rect(rect.Max.X-t, rect.Min.Y+t, rect.Max.X, rect.Max.Y-t), c, alpha)
}

// Scaler is implemented by renderers that can stretch a surface over a
// rect of a different size.
type Scaler interface {
	BlitScaled(dst, src Surface, rect image.Rectangle, alpha float64)
}
