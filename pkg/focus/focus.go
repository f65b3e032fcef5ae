// Package focus provides the directions, entry policies and geometry used
// by directional focus traversal.
package focus

import (
	"math"

	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
)

// Direction is a focus movement request.
type Direction int

const (
	// In descends into a container using its entry policy.
	In Direction = iota
	// InFirst descends into a container at its first focusable child.
	InFirst
	// Out leaves the current container.
	Out
	Up
	Down
	Left
	Right
	// Forward moves to the next element in traversal order.
	Forward
	// Backward moves to the previous element in traversal order.
	Backward
	// Select activates the focused element, or descends like In.
	Select
)

var directionNames = [...]string{"in", "in-first", "out", "up", "down", "left", "right", "forward", "backward", "select"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "direction(?)"
	}
	return directionNames[d]
}

// IsSpatial reports whether d is one of the four geometric directions.
func (d Direction) IsSpatial() bool {
	return d == Up || d == Down || d == Left || d == Right
}

// IsEntry reports whether d descends into containers.
func (d Direction) IsEntry() bool {
	return d == In || d == InFirst || d == Select
}

// IsSequential reports whether d steps through traversal order.
func (d Direction) IsSequential() bool {
	return d == Forward || d == Backward
}

// Axis returns the axis a spatial direction moves along.
func (d Direction) Axis() layout.Axis {
	if d == Left || d == Right {
		return layout.Horizontal
	}
	return layout.Vertical
}

// Sign returns -1 for directions toward the origin or backward, +1 otherwise.
func (d Direction) Sign() int {
	if d == Up || d == Left || d == Backward {
		return -1
	}
	return 1
}

// Opposite returns the reverse direction, or d itself when it has none.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case Forward:
		return Backward
	case Backward:
		return Forward
	}
	return d
}

// EntryPolicy decides which child a container focuses when focus enters it.
type EntryPolicy int

const (
	// FocusClosest enters at the child nearest to where focus came from:
	// first for forward and plain entry, last for backward, the geometric
	// nearest for spatial moves.
	FocusClosest EntryPolicy = iota
	// FocusFirst always enters at the first focusable child.
	FocusFirst
	// FocusLast always enters at the last focusable child.
	FocusLast
)

func (p EntryPolicy) String() string {
	switch p {
	case FocusFirst:
		return "first"
	case FocusLast:
		return "last"
	default:
		return "closest"
	}
}

// Action is what one step of the focus chain asks the driver to do.
type Action int

const (
	// Stay keeps focus where it is.
	Stay Action = iota
	// Move hands the request to the target container.
	Move
	// Bubble hands the request to the parent.
	Bubble
	// Focus settles on the target element.
	Focus
)

func (a Action) String() string {
	switch a {
	case Move:
		return "move"
	case Bubble:
		return "bubble"
	case Focus:
		return "focus"
	default:
		return "stay"
	}
}

// Beyond reports whether candidate lies strictly past from in direction d,
// comparing rect origins.
func Beyond(from, candidate graphics.Rect, d Direction) bool {
	switch d {
	case Up:
		return candidate.Y < from.Y
	case Down:
		return candidate.Y > from.Y
	case Left:
		return candidate.X < from.X
	case Right:
		return candidate.X > from.X
	}
	return false
}

// Closest returns the index of the candidate strictly past from in
// direction d with the smallest distance between rect origins, or -1 when
// none qualifies. Earlier candidates win ties.
func Closest(from graphics.Rect, d Direction, candidates []graphics.Rect) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, c := range candidates {
		if !Beyond(from, c, d) {
			continue
		}
		if dist := from.Origin().Distance(c.Origin()); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// Nearest returns the index of the candidate whose origin is nearest to p,
// or -1 for an empty slice.
func Nearest(p graphics.Offset, candidates []graphics.Rect) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, c := range candidates {
		if dist := p.Distance(c.Origin()); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
