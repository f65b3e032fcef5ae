package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/go-drift/strata/pkg/errors"
)

// SheetFont draws text from a PNG glyph sheet: a grid of equally sized
// cells holding the printable ASCII range in order, starting at the space.
// The sheet's alpha channel is the glyph coverage; Variant.Color tints it.
type SheetFont struct {
	sheet        image.Image
	cellW, cellH int
	cols         int
	// Scale stretches glyphs; values above 1 enlarge.
	Scale int
}

var _ Font = (*SheetFont)(nil)

const (
	firstGlyph = ' '
	lastGlyph  = '~'
)

// LoadSheetFont reads fonts/<name>.png under root. A missing or unreadable
// sheet is an asset error naming the path searched.
func LoadSheetFont(root, name string, cellW, cellH int) (*SheetFont, error) {
	logical := "fonts/" + name
	path := filepath.Join(root, "fonts", name+".png")
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.AssetError{Name: logical, Path: path, Err: err}
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, &errors.AssetError{Name: logical, Path: path, Err: err}
	}
	return NewSheetFont(img, cellW, cellH)
}

// NewSheetFont uses an already decoded sheet.
func NewSheetFont(sheet image.Image, cellW, cellH int) (*SheetFont, error) {
	b := sheet.Bounds()
	if cellW <= 0 || cellH <= 0 || b.Dx() < cellW || b.Dy() < cellH {
		return nil, &errors.ValueError{Op: "render.NewSheetFont", Reason: fmt.Sprintf("cell %dx%d does not fit sheet %v", cellW, cellH, b.Size())}
	}
	return &SheetFont{sheet: sheet, cellW: cellW, cellH: cellH, cols: b.Dx() / cellW, Scale: 1}, nil
}

func (f *SheetFont) scale() int { return max(f.Scale, 1) }

func (f *SheetFont) WidthOfLine(line string) int {
	n := 0
	for range line {
		n++
	}
	return n * f.cellW * f.scale()
}

func (f *SheetFont) LineHeight() int { return f.cellH * f.scale() }

// glyph returns the sheet cell of ch; unknown runes use '?'.
func (f *SheetFont) glyph(ch rune) image.Rectangle {
	if ch < firstGlyph || ch > lastGlyph {
		ch = '?'
	}
	i := int(ch - firstGlyph)
	origin := f.sheet.Bounds().Min.Add(image.Pt(i%f.cols*f.cellW, i/f.cols*f.cellH))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(f.cellW, f.cellH))}
}

func (f *SheetFont) Render(r Renderer, text string, v Variant, maxWidth int, align Align) ([]Surface, []string) {
	lines := Wrap(text, maxWidth, f.WidthOfLine)
	box := 0
	for _, l := range lines {
		box = max(box, f.WidthOfLine(l))
	}
	s := f.scale()
	tint := image.NewUniform(v.Color.NRGBA())
	surfaces := make([]Surface, len(lines))
	for i, l := range lines {
		img := image.NewRGBA(image.Rect(0, 0, max(box, 1), f.LineHeight()))
		x := alignOffset(f.WidthOfLine(l), box, align)
		for _, ch := range l {
			cell := f.glyph(ch)
			dst := image.Rect(x, 0, x+f.cellW*s, f.cellH*s)
			if s == 1 {
				draw.DrawMask(img, dst, tint, image.Point{}, f.sheet, cell.Min, draw.Over)
			} else {
				g := image.NewRGBA(image.Rect(0, 0, f.cellW, f.cellH))
				draw.DrawMask(g, g.Rect, tint, image.Point{}, f.sheet, cell.Min, draw.Src)
				draw.NearestNeighbor.Scale(img, dst, g, g.Rect, draw.Over, nil)
			}
			x += f.cellW * s
		}
		surfaces[i] = r.Upload(img)
	}
	return surfaces, lines
}
