package widgets

import (
	"image"
	"math"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/render"
)

// thumbWidth is the width of the slider thumb in pixels.
const thumbWidth = 8

// Slider picks a value in [min, max] in increments of step. Left and Right
// move it by one step and are only consumed when the value changes, so
// focus moves on at either end. Every change posts SliderMoved with the
// new value.
type Slider struct {
	Box
	min, max, step float64
	value          float64
	dragging       bool

	// OnChange runs after SliderMoved is posted.
	OnChange func(v float64)
}

// NewSlider returns a slider at min. A step of zero makes the value
// continuous.
func NewSlider(tree *element.Tree, min, max, step float64, th *Theme) *Slider {
	s := &Slider{min: min, max: math.Max(min, max), step: math.Abs(step), value: min}
	s.InitBox(s, tree, SliderClass, th)
	s.SetFocusable(true)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// Range returns the bounds of the value.
func (s *Slider) Range() (min, max float64) { return s.min, s.max }

// Step returns the increment.
func (s *Slider) Step() float64 { return s.step }

// SetValue snaps v to the step grid, clamps it to the range and reports
// whether the value changed.
func (s *Slider) SetValue(v float64) bool {
	if s.step > 0 {
		v = s.min + math.Round((v-s.min)/s.step)*s.step
	}
	v = math.Max(s.min, math.Min(s.max, v))
	if v == s.value {
		return false
	}
	s.value = v
	s.Post(events.SliderMoved, v)
	if s.OnChange != nil {
		s.OnChange(v)
	}
	return true
}

// Fraction returns the value's position in the range, in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.max == s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

func (s *Slider) increment() float64 {
	if s.step > 0 {
		return s.step
	}
	return (s.max - s.min) / 20
}

func (s *Slider) HandleEvent(ev events.Event) bool {
	if s.disabled {
		return false
	}
	switch ev.Type {
	case events.KeyDown:
		switch ev.Key {
		case events.KeyArrowLeft:
			return s.SetValue(s.value - s.increment())
		case events.KeyArrowRight:
			return s.SetValue(s.value + s.increment())
		case events.KeyHome:
			return s.SetValue(s.min)
		case events.KeyEnd:
			return s.SetValue(s.max)
		}
	case events.PointerDown:
		if ev.Button != 0 {
			return false
		}
		s.Focus()
		s.dragging = true
		s.setPressed(true)
		s.seek(ev.Pos.X)
		return true
	case events.PointerMotion:
		if !s.dragging {
			return false
		}
		s.seek(ev.Pos.X)
		return true
	case events.PointerUp:
		if !s.dragging {
			return false
		}
		s.dragging = false
		s.setPressed(false)
		return true
	case events.PointerWheel:
		if ev.Wheel.Y == 0 {
			return false
		}
		s.SetValue(s.value + math.Copysign(s.increment(), ev.Wheel.Y))
		return true
	}
	return false
}

// track returns the span the thumb's center travels along.
func (s *Slider) track() (lo, hi float64) {
	r := s.Rect()
	pad := s.Padding()
	return r.X + pad + thumbWidth/2, r.Right() - pad - thumbWidth/2
}

func (s *Slider) seek(x float64) {
	lo, hi := s.track()
	if hi <= lo {
		return
	}
	f := math.Max(0, math.Min(1, (x-lo)/(hi-lo)))
	s.SetValue(s.min + f*(s.max-s.min))
}

// PaintOver draws the filled part of the track and the thumb.
func (s *Slider) PaintOver(r render.Renderer, dst render.Surface, alpha float64) {
	rect := s.BlitRect()
	lo, hi := s.track()
	cx := int(math.Round(lo + s.Fraction()*(hi-lo)))
	pad := int(s.Padding())
	accent := s.theme.Accent
	if s.disabled {
		accent = accent.ScaleAlpha(0.5)
	}
	mid := rect.Min.Y + rect.Dy()/2
	r.DrawRect(dst, image.Rect(rect.Min.X+pad, mid-1, cx, mid+1), accent, alpha*0.6)
	r.DrawRect(dst, image.Rect(cx-thumbWidth/2, rect.Min.Y+pad/2, cx+thumbWidth/2, rect.Max.Y-pad/2), accent, alpha)
}
