package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/strata/pkg/trait"
)

// Size resolves one extent of an element.
//
// Get receives the element's content minimum, the maximum its container can
// offer, and the element's resolved extent along the other axis. The
// ReliesOn methods tell the layout engine which of those inputs can change
// the result, so static sizes never trigger extra passes.
type Size interface {
	trait.Dependency
	Get(min, max, other float64, axis Axis) float64
	ReliesOnMin() bool
	ReliesOnMax() bool
	ReliesOnOther() bool
}

// AbsoluteSize is a constant number of pixels.
type AbsoluteSize struct {
	trait.DependencyBase
	value float64
}

// Abs returns an absolute size.
func Abs(v float64) *AbsoluteSize { return &AbsoluteSize{value: v} }

// Value returns the size in pixels.
func (s *AbsoluteSize) Value() float64 { return s.value }

// SetValue changes the size in place and notifies every consumer.
func (s *AbsoluteSize) SetValue(v float64) {
	if s.value == v {
		return
	}
	s.value = v
	s.Changed()
}

func (s *AbsoluteSize) Get(_, _, _ float64, _ Axis) float64 { return s.value }
func (s *AbsoluteSize) ReliesOnMin() bool                   { return false }
func (s *AbsoluteSize) ReliesOnMax() bool                   { return false }
func (s *AbsoluteSize) ReliesOnOther() bool                 { return false }

// Plus returns a new absolute size n pixels larger.
func (s *AbsoluteSize) Plus(n float64) *AbsoluteSize { return Abs(s.value + n) }

// Minus returns a new absolute size n pixels smaller.
func (s *AbsoluteSize) Minus(n float64) *AbsoluteSize { return Abs(s.value - n) }

// Times returns a new absolute size scaled by n.
func (s *AbsoluteSize) Times(n float64) *AbsoluteSize { return Abs(s.value * n) }

// Over returns a new absolute size divided by n.
func (s *AbsoluteSize) Over(n float64) *AbsoluteSize { return Abs(s.value / n) }

// Equal reports whether other is an absolute size of the same value.
func (s *AbsoluteSize) Equal(other trait.Value) bool {
	o, ok := other.(*AbsoluteSize)
	return ok && o.value == s.value
}

func (s *AbsoluteSize) String() string { return fmt.Sprintf("Abs(%g)", s.value) }

// linear is the fraction-plus-offset form shared by fill, fit and ratio.
type linear struct {
	Fraction float64
	Offset   float64
}

func (l linear) of(v float64) float64 { return v*l.Fraction + l.Offset }

// FillSize takes a fraction of the space the container offers.
type FillSize struct {
	trait.DependencyBase
	linear
}

// Fill returns a size filling all available space.
func Fill() *FillSize { return FillOf(1, 0) }

// FillOf returns max*fraction + offset.
func FillOf(fraction, offset float64) *FillSize {
	return &FillSize{linear: linear{fraction, offset}}
}

func (s *FillSize) Get(_, max, _ float64, _ Axis) float64 { return s.of(max) }
func (s *FillSize) ReliesOnMin() bool                     { return false }
func (s *FillSize) ReliesOnMax() bool                     { return true }
func (s *FillSize) ReliesOnOther() bool                   { return false }

func (s *FillSize) Plus(n float64) *FillSize  { return FillOf(s.Fraction, s.Offset+n) }
func (s *FillSize) Minus(n float64) *FillSize { return FillOf(s.Fraction, s.Offset-n) }
func (s *FillSize) Times(n float64) *FillSize { return FillOf(s.Fraction*n, s.Offset*n) }
func (s *FillSize) Over(n float64) *FillSize  { return FillOf(s.Fraction/n, s.Offset/n) }

func (s *FillSize) Equal(other trait.Value) bool {
	o, ok := other.(*FillSize)
	return ok && o.linear == s.linear
}

func (s *FillSize) String() string { return fmt.Sprintf("Fill(%g, %g)", s.Fraction, s.Offset) }

// FitSize wraps the element's content minimum.
type FitSize struct {
	trait.DependencyBase
	linear
}

// Fit returns a size that wraps content exactly.
func Fit() *FitSize { return FitOf(1, 0) }

// FitOf returns min*fraction + offset.
func FitOf(fraction, offset float64) *FitSize {
	return &FitSize{linear: linear{fraction, offset}}
}

func (s *FitSize) Get(min, _, _ float64, _ Axis) float64 { return s.of(min) }
func (s *FitSize) ReliesOnMin() bool                     { return true }
func (s *FitSize) ReliesOnMax() bool                     { return false }
func (s *FitSize) ReliesOnOther() bool                   { return false }

func (s *FitSize) Plus(n float64) *FitSize  { return FitOf(s.Fraction, s.Offset+n) }
func (s *FitSize) Minus(n float64) *FitSize { return FitOf(s.Fraction, s.Offset-n) }
func (s *FitSize) Times(n float64) *FitSize { return FitOf(s.Fraction*n, s.Offset*n) }
func (s *FitSize) Over(n float64) *FitSize  { return FitOf(s.Fraction/n, s.Offset/n) }

func (s *FitSize) Equal(other trait.Value) bool {
	o, ok := other.(*FitSize)
	return ok && o.linear == s.linear
}

func (s *FitSize) String() string { return fmt.Sprintf("Fit(%g, %g)", s.Fraction, s.Offset) }

// RatioSize derives the extent from the perpendicular one.
type RatioSize struct {
	trait.DependencyBase
	linear
}

// Ratio returns other*fraction + offset.
func Ratio(fraction, offset float64) *RatioSize {
	return &RatioSize{linear: linear{fraction, offset}}
}

func (s *RatioSize) Get(_, _, other float64, _ Axis) float64 { return s.of(other) }
func (s *RatioSize) ReliesOnMin() bool                       { return false }
func (s *RatioSize) ReliesOnMax() bool                       { return false }
func (s *RatioSize) ReliesOnOther() bool                     { return true }

func (s *RatioSize) Plus(n float64) *RatioSize  { return Ratio(s.Fraction, s.Offset+n) }
func (s *RatioSize) Minus(n float64) *RatioSize { return Ratio(s.Fraction, s.Offset-n) }
func (s *RatioSize) Times(n float64) *RatioSize { return Ratio(s.Fraction*n, s.Offset*n) }
func (s *RatioSize) Over(n float64) *RatioSize  { return Ratio(s.Fraction/n, s.Offset/n) }

func (s *RatioSize) Equal(other trait.Value) bool {
	o, ok := other.(*RatioSize)
	return ok && o.linear == s.linear
}

func (s *RatioSize) String() string { return fmt.Sprintf("Ratio(%g, %g)", s.Fraction, s.Offset) }

// ClampedSize bounds an inner size by optional minimum and maximum sizes.
// The minimum wins when the bounds cross.
type ClampedSize struct {
	trait.DependencyBase
	size, min, max Size
}

// Clamp returns size bounded by lo and hi; either bound may be nil.
func Clamp(size, lo, hi Size) (*ClampedSize, error) {
	c := &ClampedSize{}
	if err := c.SetSize(size); err != nil {
		return nil, err
	}
	if err := c.SetMin(lo); err != nil {
		return nil, err
	}
	if err := c.SetMax(hi); err != nil {
		return nil, err
	}
	return c, nil
}

// Size returns the inner size.
func (c *ClampedSize) Size() Size { return c.size }

// Min returns the lower bound, or nil.
func (c *ClampedSize) Min() Size { return c.min }

// Max returns the upper bound, or nil.
func (c *ClampedSize) Max() Size { return c.max }

// SetSize replaces the inner size.
func (c *ClampedSize) SetSize(s Size) error { return c.replace(&c.size, s) }

// SetMin replaces the lower bound.
func (c *ClampedSize) SetMin(s Size) error { return c.replace(&c.min, s) }

// SetMax replaces the upper bound.
func (c *ClampedSize) SetMax(s Size) error { return c.replace(&c.max, s) }

func (c *ClampedSize) replace(slot *Size, s Size) error {
	var old trait.Dependency
	if *slot != nil {
		old = *slot
	}
	var next trait.Dependency
	if s != nil {
		next = s
	}
	if err := trait.Relink(c, old, next); err != nil {
		return err
	}
	*slot = s
	c.Changed()
	return nil
}

func (c *ClampedSize) Get(min, max, other float64, axis Axis) float64 {
	v := 0.0
	if c.size != nil {
		v = c.size.Get(min, max, other, axis)
	}
	if c.max != nil {
		v = math.Min(v, c.max.Get(min, max, other, axis))
	}
	if c.min != nil {
		v = math.Max(c.min.Get(min, max, other, axis), v)
	}
	return v
}

func (c *ClampedSize) ReliesOnMin() bool {
	return anySize(func(s Size) bool { return s.ReliesOnMin() }, c.size, c.min, c.max)
}

func (c *ClampedSize) ReliesOnMax() bool {
	return anySize(func(s Size) bool { return s.ReliesOnMax() }, c.size, c.min, c.max)
}

func (c *ClampedSize) ReliesOnOther() bool {
	return anySize(func(s Size) bool { return s.ReliesOnOther() }, c.size, c.min, c.max)
}

func (c *ClampedSize) String() string {
	return fmt.Sprintf("Clamp(%v, min=%v, max=%v)", c.size, c.min, c.max)
}

// InterpolatedSize blends two sizes. Animations install a fresh one in the
// animation layer each frame, so it does not link to its endpoints.
type InterpolatedSize struct {
	trait.DependencyBase
	From, To Size
	Progress float64
}

func (s *InterpolatedSize) Get(min, max, other float64, axis Axis) float64 {
	a := s.From.Get(min, max, other, axis)
	b := s.To.Get(min, max, other, axis)
	return a + (b-a)*s.Progress
}

func (s *InterpolatedSize) ReliesOnMin() bool {
	return anySize(func(v Size) bool { return v.ReliesOnMin() }, s.From, s.To)
}

func (s *InterpolatedSize) ReliesOnMax() bool {
	return anySize(func(v Size) bool { return v.ReliesOnMax() }, s.From, s.To)
}

func (s *InterpolatedSize) ReliesOnOther() bool {
	return anySize(func(v Size) bool { return v.ReliesOnOther() }, s.From, s.To)
}

func (s *InterpolatedSize) String() string {
	return fmt.Sprintf("Lerp(%v, %v, %.3f)", s.From, s.To, s.Progress)
}

// PivotableSize selects one of two sizes by the axis of the element it
// watches, so a single declaration serves both stack orientations.
type PivotableSize struct {
	trait.DependencyBase
	Horizontal, Vertical Size
	Watching             Orienter
}

// Pivot returns a size that uses h while watching is horizontal and v
// otherwise.
func Pivot(h, v Size, watching Orienter) *PivotableSize {
	return &PivotableSize{Horizontal: h, Vertical: v, Watching: watching}
}

// Current returns the size selected by the watched axis.
func (s *PivotableSize) Current() Size {
	if s.Watching == nil || s.Watching.Axis() == Horizontal {
		return s.Horizontal
	}
	return s.Vertical
}

// Invert returns a pivotable size with the two choices swapped.
func (s *PivotableSize) Invert() *PivotableSize {
	return Pivot(s.Vertical, s.Horizontal, s.Watching)
}

// Pivoted notifies consumers that the watched axis changed.
func (s *PivotableSize) Pivoted() { s.Changed() }

func (s *PivotableSize) Get(min, max, other float64, axis Axis) float64 {
	return s.Current().Get(min, max, other, axis)
}

func (s *PivotableSize) ReliesOnMin() bool {
	return anySize(func(v Size) bool { return v.ReliesOnMin() }, s.Horizontal, s.Vertical)
}

func (s *PivotableSize) ReliesOnMax() bool {
	return anySize(func(v Size) bool { return v.ReliesOnMax() }, s.Horizontal, s.Vertical)
}

func (s *PivotableSize) ReliesOnOther() bool {
	return anySize(func(v Size) bool { return v.ReliesOnOther() }, s.Horizontal, s.Vertical)
}

func anySize(pred func(Size) bool, sizes ...Size) bool {
	for _, s := range sizes {
		if s != nil && pred(s) {
			return true
		}
	}
	return false
}

// IsPureFill reports whether s is a fill size, which cannot be resolved
// inside a container that wraps its content.
func IsPureFill(s Size) bool {
	_, ok := s.(*FillSize)
	return ok
}

// IsPureFit reports whether s is a fit size.
func IsPureFit(s Size) bool {
	_, ok := s.(*FitSize)
	return ok
}
