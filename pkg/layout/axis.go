// Package layout defines the value types elements are measured and placed
// with: sizes resolved against a minimum, a maximum and the perpendicular
// extent, and positions resolved against the container extent.
//
// Every size and position is a pointer type embedding
// trait.DependencyBase, so mutating one in place notifies the trait
// contexts that resolve to it.
package layout

// Axis is the direction a measurement applies to.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Pick returns h for the horizontal axis and v for the vertical one.
func (a Axis) Pick(h, v float64) float64 {
	if a == Horizontal {
		return h
	}
	return v
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Orienter is anything with a current layout axis, typically a stack.
// Pivotable values follow it.
type Orienter interface {
	Axis() Axis
}
