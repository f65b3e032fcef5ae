package layout

import (
	"fmt"

	"github.com/go-drift/strata/pkg/trait"
)

// Position places an element of extent element inside a container of
// extent container along one axis. The result is relative to the
// container's content origin.
type Position interface {
	trait.Dependency
	Get(container, element float64, axis Axis) float64
}

// AbsolutePosition is a fixed offset from the container origin.
type AbsolutePosition struct {
	trait.DependencyBase
	value float64
}

// At returns an absolute position.
func At(v float64) *AbsolutePosition { return &AbsolutePosition{value: v} }

// Value returns the offset.
func (p *AbsolutePosition) Value() float64 { return p.value }

// SetValue moves the position in place and notifies every consumer.
func (p *AbsolutePosition) SetValue(v float64) {
	if p.value == v {
		return
	}
	p.value = v
	p.Changed()
}

func (p *AbsolutePosition) Get(_, _ float64, _ Axis) float64 { return p.value }

func (p *AbsolutePosition) Equal(other trait.Value) bool {
	o, ok := other.(*AbsolutePosition)
	return ok && o.value == p.value
}

func (p *AbsolutePosition) String() string { return fmt.Sprintf("At(%g)", p.value) }

// Anchor tells layouts which edge an anchor position aligns to.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorCenter
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "center"
	}
}

// AnchorPosition aligns an element at Percent of the free space inside the
// container's padding, then shifts it by Value.
type AnchorPosition struct {
	trait.DependencyBase
	Value   float64
	Percent float64
	Padding float64
	Anchor  Anchor
}

func (p *AnchorPosition) Get(container, element float64, _ Axis) float64 {
	return p.Padding + element/2 + ((container-p.Padding*2-element)*p.Percent - element*0.5 + p.Value)
}

// WithPadding returns a copy inset by padding on both sides.
func (p *AnchorPosition) WithPadding(padding float64) *AnchorPosition {
	return &AnchorPosition{Value: p.Value, Percent: p.Percent, Padding: padding, Anchor: p.Anchor}
}

func (p *AnchorPosition) Equal(other trait.Value) bool {
	o, ok := other.(*AnchorPosition)
	return ok && o.Value == p.Value && o.Percent == p.Percent && o.Padding == p.Padding && o.Anchor == p.Anchor
}

func (p *AnchorPosition) String() string {
	return fmt.Sprintf("Anchor(%s, %g%%, %+g)", p.Anchor, p.Percent*100, p.Value)
}

// Start aligns to the left or top edge, offset inward.
func Start(offset float64) *AnchorPosition {
	return &AnchorPosition{Value: offset, Anchor: AnchorStart}
}

// Middle centers the element, shifted by offset.
func Middle(offset float64) *AnchorPosition {
	return &AnchorPosition{Value: offset, Percent: 0.5, Anchor: AnchorCenter}
}

// End aligns to the right or bottom edge, offset inward.
func End(offset float64) *AnchorPosition {
	return &AnchorPosition{Value: -offset, Percent: 1, Anchor: AnchorEnd}
}

// Left, Top, Right and Bottom name Start and End per axis.
var (
	Left   = Start
	Top    = Start
	Right  = End
	Bottom = End
	Center = Middle
)

// PivotablePosition selects one of two positions by the watched axis.
type PivotablePosition struct {
	trait.DependencyBase
	Horizontal, Vertical Position
	Watching             Orienter
}

// PivotAt returns a position that uses h while watching is horizontal and
// v otherwise.
func PivotAt(h, v Position, watching Orienter) *PivotablePosition {
	return &PivotablePosition{Horizontal: h, Vertical: v, Watching: watching}
}

// Current returns the position selected by the watched axis.
func (p *PivotablePosition) Current() Position {
	if p.Watching == nil || p.Watching.Axis() == Horizontal {
		return p.Horizontal
	}
	return p.Vertical
}

// Pivoted notifies consumers that the watched axis changed.
func (p *PivotablePosition) Pivoted() { p.Changed() }

func (p *PivotablePosition) Get(container, element float64, axis Axis) float64 {
	return p.Current().Get(container, element, axis)
}

// InterpolatedPosition blends two positions.
type InterpolatedPosition struct {
	trait.DependencyBase
	From, To Position
	Progress float64
}

func (p *InterpolatedPosition) Get(container, element float64, axis Axis) float64 {
	a := p.From.Get(container, element, axis)
	b := p.To.Get(container, element, axis)
	return a + (b-a)*p.Progress
}

// DualPosition groups the two axes of a placement.
type DualPosition struct {
	X, Y Position
}

// Placement presets.
var (
	TopLeft      = DualPosition{Start(0), Start(0)}
	TopCenter    = DualPosition{Middle(0), Start(0)}
	TopRight     = DualPosition{End(0), Start(0)}
	CenterLeft   = DualPosition{Start(0), Middle(0)}
	Centered     = DualPosition{Middle(0), Middle(0)}
	CenterRight  = DualPosition{End(0), Middle(0)}
	BottomLeft   = DualPosition{Start(0), End(0)}
	BottomCenter = DualPosition{Middle(0), End(0)}
	BottomRight  = DualPosition{End(0), End(0)}
)

// Get returns the position for one axis.
func (d DualPosition) Get(axis Axis) Position {
	if axis == Horizontal {
		return d.X
	}
	return d.Y
}
