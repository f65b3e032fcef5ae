package widgets

import (
	"image"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/render"
)

// Toggle is a button that flips between on and off on every click,
// posting ToggleOn or ToggleOff with the new value.
type Toggle struct {
	Button
	on bool

	// OnChange runs after the toggle event is posted.
	OnChange func(on bool)
}

// NewToggle returns an off toggle labelled text.
func NewToggle(tree *element.Tree, text string, th *Theme) *Toggle {
	t := &Toggle{}
	t.initButton(t, tree, ToggleClass, text, th)
	_ = t.label.SetX(layout.Start(0))
	t.clicked = func() { t.SetOn(!t.on) }
	return t
}

// On reports the toggle's state.
func (t *Toggle) On() bool { return t.on }

// SetOn changes the state, posting an event when it differs.
func (t *Toggle) SetOn(v bool) {
	if v == t.on {
		return
	}
	t.on = v
	if v {
		t.Post(events.ToggleOn, true)
	} else {
		t.Post(events.ToggleOff, false)
	}
	if t.OnChange != nil {
		t.OnChange(v)
	}
}

// PaintOver draws the indicator at the right edge, filled when on.
func (t *Toggle) PaintOver(r render.Renderer, dst render.Surface, alpha float64) {
	rect := t.BlitRect()
	pad := int(t.Padding())
	x := rect.Max.X - pad - indicatorSize
	y := rect.Min.Y + (rect.Dy()-indicatorSize)/2
	box := image.Rect(x, y, x+indicatorSize, y+indicatorSize)
	accent := t.theme.Accent
	if t.disabled {
		accent = accent.ScaleAlpha(0.5)
	}
	render.Outline(r, dst, box, accent, 1, alpha)
	if t.on {
		r.DrawRect(dst, box.Inset(3), accent, alpha)
	}
}
