package animation

import (
	"math"
	"time"
)

// Timekeeper tracks a float value that plays toward a target over time,
// optionally carrying velocity that decays by friction. Scroll offsets are
// the main user.
type Timekeeper struct {
	value    float64
	target   float64
	velocity float64
	// Friction is the fraction of velocity lost per second while flinging.
	Friction float64

	from     float64
	progress *Progress
}

// NewTimekeeper returns a timekeeper resting at value.
func NewTimekeeper(value float64) *Timekeeper {
	return &Timekeeper{value: value, target: value, Friction: 0.95}
}

// Value returns the current value.
func (k *Timekeeper) Value() float64 { return k.value }

// Target returns the value the keeper is heading to.
func (k *Timekeeper) Target() float64 { return k.target }

// Velocity returns the current fling velocity in units per second.
func (k *Timekeeper) Velocity() float64 { return k.velocity }

// Playing reports whether the value is still moving.
func (k *Timekeeper) Playing() bool {
	return k.progress != nil || k.velocity != 0
}

// Set jumps to v, cancelling any motion.
func (k *Timekeeper) Set(v float64) {
	k.value = v
	k.target = v
	k.velocity = 0
	k.progress = nil
}

// PlayTo animates from the current value to target over d with curve.
// A non-positive duration jumps immediately.
func (k *Timekeeper) PlayTo(target float64, d time.Duration, curve Curve) {
	k.velocity = 0
	if d <= 0 {
		k.Set(target)
		return
	}
	k.from = k.value
	k.target = target
	k.progress = Over(d, curve).Start()
}

// Fling starts free motion with the given velocity.
func (k *Timekeeper) Fling(velocity float64) {
	k.progress = nil
	k.velocity = velocity
}

// Advance moves the keeper forward by dt seconds and reports whether the
// value changed.
func (k *Timekeeper) Advance(dt float64) bool {
	before := k.value
	switch {
	case k.progress != nil:
		p, done := k.progress.Advance(dt)
		k.value = LerpFloat64(k.from, k.target, p)
		if done {
			k.value = k.target
			k.progress = nil
		}
	case k.velocity != 0:
		k.value += k.velocity * dt
		k.velocity *= math.Pow(1-k.Friction, dt)
		if math.Abs(k.velocity) < 1 {
			k.velocity = 0
		}
		k.target = k.value
	}
	return k.value != before
}

// Clamp keeps the value and target within [lo, hi], stopping motion that
// runs past the bounds.
func (k *Timekeeper) Clamp(lo, hi float64) {
	if hi < lo {
		hi = lo
	}
	clamped := math.Max(lo, math.Min(hi, k.value))
	if clamped != k.value {
		k.value = clamped
		k.velocity = 0
	}
	if k.target < lo || k.target > hi {
		k.target = math.Max(lo, math.Min(hi, k.target))
		if k.progress == nil {
			k.value = k.target
		}
	}
}
