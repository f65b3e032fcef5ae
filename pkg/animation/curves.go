package animation

import "math"

// Easing curves transform linear animation progress into natural-feeling motion.
//
// Each curve is a function that takes a value t in [0, 1] and returns a
// transformed value. Every curve maps 0 to 0 and 1 to 1, so an animation
// always lands exactly on its target.

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// EaseIn starts slowly and accelerates.
func EaseIn(t float64) float64 {
	return 1 - math.Cos(clampUnit(t)*math.Pi/2)
}

// EaseOut starts quickly and decelerates.
func EaseOut(t float64) float64 {
	return math.Sin(clampUnit(t) * math.Pi / 2)
}

// EaseInOut starts and ends slowly. The curve is symmetric around the
// midpoint, so EaseInOut(0.5) is exactly 0.5.
func EaseInOut(t float64) float64 {
	return (1 - math.Cos(clampUnit(t)*math.Pi)) / 2
}

// SpringCurve returns an underdamped spring response. Damping is the damping
// ratio (0 < damping < 1 overshoots) and frequency the number of oscillations
// over the animation. The curve is normalized so it ends exactly at 1.
func SpringCurve(damping, frequency float64) Curve {
	if damping <= 0 {
		damping = 0.5
	}
	if frequency <= 0 {
		frequency = 2
	}
	omega := 2 * math.Pi * frequency
	raw := func(t float64) float64 {
		return 1 - math.Exp(-damping*omega*t)*math.Cos(omega*math.Sqrt(1-math.Min(damping*damping, 0.99))*t)
	}
	end := raw(1)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return raw(t) / end
	}
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
