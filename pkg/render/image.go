package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/go-drift/strata/pkg/graphics"
)

// ImageSurface is a Surface backed by an *image.RGBA.
type ImageSurface struct {
	img *image.RGBA
}

// Bounds returns the surface rect.
func (s *ImageSurface) Bounds() image.Rectangle { return s.img.Rect }

// Image returns the backing pixels.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// ImageRenderer draws into in-memory RGBA images. It backs headless
// rendering and tests.
type ImageRenderer struct {
	screen *ImageSurface
}

var _ Renderer = (*ImageRenderer)(nil)

// NewImageRenderer returns a renderer with a w by h screen.
func NewImageRenderer(w, h int) *ImageRenderer {
	return &ImageRenderer{screen: &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}}
}

// Screen returns the screen surface.
func (r *ImageRenderer) Screen() Surface { return r.screen }

// Image returns the screen pixels.
func (r *ImageRenderer) Image() *image.RGBA { return r.screen.img }

// Resize replaces the screen with a cleared one of the new size.
func (r *ImageRenderer) Resize(w, h int) {
	if r.screen.img.Rect.Dx() == w && r.screen.img.Rect.Dy() == h {
		return
	}
	r.screen = &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Clear fills the screen with c.
func (r *ImageRenderer) Clear(c graphics.Color) {
	draw.Draw(r.screen.img, r.screen.img.Rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// NewSurface allocates a transparent surface.
func (r *ImageRenderer) NewSurface(w, h int) Surface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// Upload copies img into a new surface with origin (0, 0).
func (r *ImageRenderer) Upload(img image.Image) Surface {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return &ImageSurface{img: dst}
}

// DrawRect blends c over rect.
func (r *ImageRenderer) DrawRect(dst Surface, rect image.Rectangle, c graphics.Color, alpha float64) {
	d := pixels(dst)
	if d == nil || alpha <= 0 {
		return
	}
	draw.DrawMask(d, rect, image.NewUniform(c.NRGBA()), image.Point{}, opacity(alpha), image.Point{}, draw.Over)
}

// Blit blends src over dst with its origin at at.
func (r *ImageRenderer) Blit(dst, src Surface, at image.Point, alpha float64) {
	d, s := pixels(dst), pixels(src)
	if d == nil || s == nil || alpha <= 0 {
		return
	}
	rect := image.Rectangle{Min: at, Max: at.Add(s.Rect.Size())}
	draw.DrawMask(d, rect, s, s.Rect.Min, opacity(alpha), image.Point{}, draw.Over)
}

// BlitScaled draws src stretched over rect with bilinear filtering.
func (r *ImageRenderer) BlitScaled(dst, src Surface, rect image.Rectangle, alpha float64) {
	d, s := pixels(dst), pixels(src)
	if d == nil || s == nil || alpha <= 0 {
		return
	}
	opts := &draw.Options{}
	if alpha < 1 {
		opts.DstMask = opacity(alpha)
		opts.DstMaskP = rect.Min
	}
	draw.BiLinear.Scale(d, rect, s, s.Rect, draw.Over, opts)
}

// Subsurface returns the part of s inside rect, sharing its pixels.
func (r *ImageRenderer) Subsurface(s Surface, rect image.Rectangle) Surface {
	d := pixels(s)
	if d == nil {
		return s
	}
	return &ImageSurface{img: d.SubImage(rect).(*image.RGBA)}
}

func pixels(s Surface) *image.RGBA {
	if is, ok := s.(*ImageSurface); ok {
		return is.img
	}
	return nil
}

func opacity(alpha float64) image.Image {
	return image.NewUniform(color.Alpha{A: uint8(min(max(alpha, 0), 1)*255 + 0.5)})
}
