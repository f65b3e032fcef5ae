// Package ebitenr is the windowed backend: a render.Renderer drawing to
// ebiten images, input polling that turns ebiten state into events, and a
// Game adapter that drives an App at the window's tick rate.
package ebitenr

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// Surface is an ebiten image. Subsurfaces share pixels and coordinates with
// the image they were cut from.
type Surface struct {
	img *ebiten.Image
}

// Bounds implements render.Surface.
func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

// Image returns the underlying ebiten image.
func (s *Surface) Image() *ebiten.Image { return s.img }

// Renderer implements render.Renderer and render.Scaler on ebiten.
type Renderer struct {
	screen *Surface
	pixel  *ebiten.Image
}

// New creates a renderer. Begin must be called with the frame's screen
// before anything is drawn.
func New() *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{pixel: pixel}
}

// Begin sets the screen image of the current frame.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = &Surface{img: screen}
}

// Screen implements render.Renderer.
func (r *Renderer) Screen() render.Surface { return r.screen }

// NewSurface implements render.Renderer.
func (r *Renderer) NewSurface(w, h int) render.Surface {
	return &Surface{img: ebiten.NewImage(max(w, 1), max(h, 1))}
}

// Upload implements render.Renderer.
func (r *Renderer) Upload(img image.Image) render.Surface {
	return &Surface{img: ebiten.NewImageFromImage(img)}
}

// DrawRect implements render.Renderer by stretching a white pixel.
func (r *Renderer) DrawRect(dst render.Surface, rect image.Rectangle, c graphics.Color, alpha float64) {
	d := ebitenImage(dst)
	rect = rect.Intersect(d.Bounds())
	if rect.Empty() || c.Alpha()*alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	d.DrawImage(r.pixel, op)
}

// Blit implements render.Renderer.
func (r *Renderer) Blit(dst, src render.Surface, at image.Point, alpha float64) {
	if alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	ebitenImage(dst).DrawImage(ebitenImage(src), op)
}

// BlitScaled implements render.Scaler with linear filtering.
func (r *Renderer) BlitScaled(dst, src render.Surface, rect image.Rectangle, alpha float64) {
	sb := src.Bounds()
	if alpha <= 0 || rect.Empty() || sb.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(rect.Dx())/float64(sb.Dx()), float64(rect.Dy())/float64(sb.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	ebitenImage(dst).DrawImage(ebitenImage(src), op)
}

// Subsurface implements render.Renderer.
func (r *Renderer) Subsurface(s render.Surface, rect image.Rectangle) render.Surface {
	img := ebitenImage(s)
	sub, _ := img.SubImage(rect.Intersect(img.Bounds())).(*ebiten.Image)
	if sub == nil {
		sub = ebiten.NewImage(1, 1)
	}
	return &Surface{img: sub}
}

func ebitenImage(s render.Surface) *ebiten.Image {
	return s.(*Surface).img
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

var (
	_ render.Renderer = (*Renderer)(nil)
	_ render.Scaler   = (*Renderer)(nil)
)
