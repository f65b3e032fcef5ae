package widgets

import (
	"image"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// Label draws text with the font and color it resolves from its traits.
// Its content minimum is the measured text.
type Label struct {
	element.Base

	text  string
	align render.Align
	wrap  bool
	width int

	lines    []render.Surface
	rendered labelKey
}

// labelKey identifies the inputs the rendered lines were built from.
type labelKey struct {
	text  string
	color graphics.Color
	font  render.Font
	width int
	align render.Align
}

// NewLabel returns a label showing text.
func NewLabel(tree *element.Tree, text string) *Label {
	l := &Label{text: text}
	l.Init(l, tree, LabelClass, TextColor, TextFont)
	return l
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text.
func (l *Label) SetText(s string) {
	if s == l.text {
		return
	}
	l.text = s
	l.Invalidate()
}

// Align returns the alignment of lines within the label's rect.
func (l *Label) Align() render.Align { return l.align }

// SetAlign changes line alignment.
func (l *Label) SetAlign(a render.Align) { l.align = a }

// Wrap reports whether lines wrap at the label's width.
func (l *Label) Wrap() bool { return l.wrap }

// SetWrap turns wrapping on or off. A wrapping label takes its width from
// its w trait, so it should be given a fill or absolute width.
func (l *Label) SetWrap(v bool) {
	if l.wrap == v {
		return
	}
	l.wrap = v
	l.Invalidate()
}

// Font returns the resolved font.
func (l *Label) Font() render.Font {
	if f, ok := l.Value(TextFont).(render.Font); ok {
		return f
	}
	return render.GridFont()
}

// Color returns the resolved text color.
func (l *Label) Color() graphics.Color {
	c, _ := l.Value(TextColor).(graphics.Color)
	return c
}

func (l *Label) wrapWidth() int {
	if l.wrap {
		return l.width
	}
	return 0
}

// Measure returns the text extent. Wrapping labels report no width of
// their own.
func (l *Label) Measure() (w, h float64) {
	f := l.Font()
	tw, th := render.Measure(f, l.text, l.wrapWidth())
	if l.wrap {
		tw = 0
	}
	return float64(tw), float64(max(th, f.LineHeight()))
}

// RectChanged re-wraps the text when the width changes.
func (l *Label) RectChanged(_, r graphics.Rect) {
	if !l.wrap || int(r.W) == l.width {
		return
	}
	l.width = int(r.W)
	l.Invalidate()
}

func (l *Label) prepare(r render.Renderer) {
	key := labelKey{text: l.text, color: l.Color(), font: l.Font(), width: l.wrapWidth(), align: l.align}
	if key == l.rendered && l.lines != nil {
		return
	}
	l.rendered = key
	l.lines, _ = key.font.Render(r, key.text, render.Variant{Color: key.color}, key.width, key.align)
}

func (l *Label) Paint(r render.Renderer, dst render.Surface, alpha float64) {
	if l.text == "" {
		return
	}
	l.prepare(r)
	rect := l.BlitRect()
	lh := l.Font().LineHeight()
	y := rect.Min.Y + (rect.Dy()-len(l.lines)*lh)/2
	for _, s := range l.lines {
		w := s.Bounds().Dx()
		x := rect.Min.X
		switch l.align {
		case render.AlignCenter:
			x += (rect.Dx() - w) / 2
		case render.AlignRight:
			x += rect.Dx() - w
		}
		r.Blit(dst, s, image.Pt(x, y), alpha)
		y += lh
	}
}
