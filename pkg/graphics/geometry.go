// Package graphics holds the value types shared by layout and rendering:
// points, rectangles and colors.
package graphics

import (
	"image"
	"math"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns o translated by other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns o minus other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Distance returns the Euclidean distance between two offsets.
func (o Offset) Distance(other Offset) float64 {
	return math.Hypot(o.X-other.X, o.Y-other.Y)
}

// Rect is an axis-aligned rectangle with a float position and extent.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// RectFromLTRB constructs a Rect from its edges.
func RectFromLTRB(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Origin returns the top-left corner.
func (r Rect) Origin() Offset { return Offset{X: r.X, Y: r.Y} }

// Center returns the center point.
func (r Rect) Center() Offset { return Offset{X: r.X + r.W*0.5, Y: r.Y + r.H*0.5} }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.Right() && p.Y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X-epsilon && other.Y >= r.Y-epsilon &&
		other.Right() <= r.Right()+epsilon && other.Bottom() <= r.Bottom()+epsilon
}

// Intersect returns the intersection of two rectangles.
// Returns the zero rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.X, other.X)
	top := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return RectFromLTRB(left, top, right, bottom)
}

// Overlaps reports whether the two rectangles share any area.
func (r Rect) Overlaps(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return RectFromLTRB(
		math.Min(r.X, other.X),
		math.Min(r.Y, other.Y),
		math.Max(r.Right(), other.Right()),
		math.Max(r.Bottom(), other.Bottom()),
	)
}

// Blit returns the pixel-aligned rectangle used for drawing. Position and
// extent are rounded independently so adjacent rects never leave gaps of
// more than a pixel.
func (r Rect) Blit() image.Rectangle {
	x := int(math.Round(r.X))
	y := int(math.Round(r.Y))
	return image.Rect(x, y, x+int(math.Round(r.W)), y+int(math.Round(r.H)))
}

// Approx reports whether two rects are equal within a small tolerance.
func (r Rect) Approx(other Rect) bool {
	return floatEqual(r.X, other.X) && floatEqual(r.Y, other.Y) &&
		floatEqual(r.W, other.W) && floatEqual(r.H, other.H)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
