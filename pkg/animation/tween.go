package animation

import "github.com/go-drift/strata/pkg/graphics"

// Lerp interpolates between two values of one type by progress t in [0, 1].
type Lerp[T any] func(a, b T, t float64) T

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpRect linearly interpolates position and extent of two rects.
func LerpRect(a, b graphics.Rect, t float64) graphics.Rect {
	return graphics.Rect{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
		W: LerpFloat64(a.W, b.W, t),
		H: LerpFloat64(a.H, b.H, t),
	}
}

// LerpColor linearly interpolates between two Color values.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	return graphics.LerpColor(a, b, t)
}
