package render

import (
	"image"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/graphics"
)

// Align is the horizontal alignment of rendered lines.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Variant selects how text is drawn.
type Variant struct {
	Color graphics.Color
}

// Font rasterizes text.
type Font interface {
	// Render wraps text to maxWidth pixels (no wrapping when maxWidth <= 0)
	// and returns one surface per line along with the lines. Each surface
	// is as wide as the widest line so that align can be applied.
	Render(r Renderer, text string, v Variant, maxWidth int, align Align) ([]Surface, []string)
	// WidthOfLine returns the advance width of a single line in pixels.
	WidthOfLine(line string) int
	// LineHeight returns the distance between baselines.
	LineHeight() int
}

// Measure returns the size of text rendered by f and wrapped at maxWidth.
func Measure(f Font, text string, maxWidth int) (w, h int) {
	lines := Wrap(text, maxWidth, f.WidthOfLine)
	for _, l := range lines {
		w = max(w, f.WidthOfLine(l))
	}
	return w, len(lines) * f.LineHeight()
}

// Wrap splits text at newlines and then greedily at spaces so that no line
// is wider than maxWidth. Words wider than maxWidth are split by rune.
func Wrap(text string, maxWidth int, width func(string) int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		if maxWidth <= 0 || width(para) <= maxWidth {
			out = append(out, para)
			continue
		}
		line := ""
		for _, word := range strings.Fields(para) {
			next := word
			if line != "" {
				next = line + " " + word
			}
			if width(next) <= maxWidth {
				line = next
				continue
			}
			if line != "" {
				out = append(out, line)
			}
			for width(word) > maxWidth && utf8.RuneCountInString(word) > 1 {
				cut := 1
				for i := range word {
					if i > 0 && width(word[:i]) > maxWidth {
						break
					}
					if i > 0 {
						cut = i
					}
				}
				out = append(out, word[:cut])
				word = word[cut:]
			}
			line = word
		}
		out = append(out, line)
	}
	return out
}

func alignOffset(lineWidth, boxWidth int, align Align) int {
	switch align {
	case AlignCenter:
		return (boxWidth - lineWidth) / 2
	case AlignRight:
		return boxWidth - lineWidth
	}
	return 0
}

// FaceFont renders through an x/image font.Face.
type FaceFont struct {
	face font.Face
}

var _ Font = (*FaceFont)(nil)

// NewFaceFont wraps face.
func NewFaceFont(face font.Face) *FaceFont { return &FaceFont{face: face} }

// GridFont returns the built-in 7x13 monospaced bitmap font.
func GridFont() *FaceFont { return NewFaceFont(basicfont.Face7x13) }

// GoRegular returns the Go Regular outline font at size points.
func GoRegular(size float64) (*FaceFont, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, &errors.AssetError{Name: "goregular", Err: err}
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, &errors.AssetError{Name: "goregular", Err: err}
	}
	return NewFaceFont(face), nil
}

// Face returns the wrapped face.
func (f *FaceFont) Face() font.Face { return f.face }

func (f *FaceFont) WidthOfLine(line string) int {
	return font.MeasureString(f.face, line).Ceil()
}

func (f *FaceFont) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

func (f *FaceFont) Render(r Renderer, text string, v Variant, maxWidth int, align Align) ([]Surface, []string) {
	lines := Wrap(text, maxWidth, f.WidthOfLine)
	box := 0
	for _, l := range lines {
		box = max(box, f.WidthOfLine(l))
	}
	m := f.face.Metrics()
	h := m.Height.Ceil()
	surfaces := make([]Surface, len(lines))
	for i, l := range lines {
		img := image.NewRGBA(image.Rect(0, 0, max(box, 1), h))
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(v.Color.NRGBA()),
			Face: f.face,
			Dot:  fixed.P(alignOffset(f.WidthOfLine(l), box, align), m.Ascent.Ceil()),
		}
		d.DrawString(l)
		surfaces[i] = r.Upload(img)
	}
	return surfaces, lines
}
