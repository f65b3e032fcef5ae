// Package animation provides the timing primitives behind animated trait
// changes: easing curves, animation descriptions, the progress stepper that
// the frame loop polls, the explicit scope stack consulted by trait setters,
// and a timekeeper for continuously targeted values such as scroll offsets.
//
// Nothing in this package reads a clock. Time advances only when the owner
// calls Advance with the frame's delta time, so every animation is
// deterministic under test.
package animation

import (
	"fmt"
	"time"
)

// Animation describes how a change should play out: how long it takes and
// how progress is eased. An Animation is immutable and may be shared by any
// number of running progresses.
type Animation struct {
	// Name identifies the animation kind in logs ("linear", "ease-in", ...).
	Name string
	// Duration is the length of the animation.
	Duration time.Duration
	// Curve transforms linear progress. Nil means linear.
	Curve Curve
}

// Over returns an animation with the given duration and curve.
func Over(d time.Duration, curve Curve) *Animation {
	return &Animation{Name: "custom", Duration: d, Curve: curve}
}

// Linear returns a linear animation.
func Linear(d time.Duration) *Animation {
	return &Animation{Name: "linear", Duration: d, Curve: LinearCurve}
}

// SlowIn returns an ease-in animation.
func SlowIn(d time.Duration) *Animation {
	return &Animation{Name: "ease-in", Duration: d, Curve: EaseIn}
}

// SlowOut returns an ease-out animation.
func SlowOut(d time.Duration) *Animation {
	return &Animation{Name: "ease-out", Duration: d, Curve: EaseOut}
}

// Smooth returns an ease-in-out animation.
func Smooth(d time.Duration) *Animation {
	return &Animation{Name: "ease-in-out", Duration: d, Curve: EaseInOut}
}

// Spring returns a spring animation with the given damping ratio and
// oscillation frequency.
func Spring(d time.Duration, damping, frequency float64) *Animation {
	return &Animation{Name: "spring", Duration: d, Curve: SpringCurve(damping, frequency)}
}

func (a *Animation) String() string {
	return fmt.Sprintf("%s(%s)", a.Name, a.Duration)
}

// Start returns a fresh progress for this animation at t = 0.
func (a *Animation) Start() *Progress {
	return &Progress{anim: a}
}

// Progress is the polled state of one running animation.
//
// The owner calls Advance once per frame with the frame's delta time in
// seconds; Advance returns the eased progress and whether the animation is
// complete. Once complete, the progress is exactly 1.
type Progress struct {
	anim    *Animation
	elapsed float64
	done    bool
}

// Animation returns the animation this progress was started from.
func (p *Progress) Animation() *Animation {
	return p.anim
}

// Elapsed returns the time played so far, in seconds.
func (p *Progress) Elapsed() float64 {
	return p.elapsed
}

// Done reports whether the animation has completed.
func (p *Progress) Done() bool {
	return p.done
}

// Value returns the eased progress in [0, 1] without advancing.
func (p *Progress) Value() float64 {
	duration := p.anim.Duration.Seconds()
	if p.done || duration <= 0 {
		return 1
	}
	t := p.elapsed / duration
	if t >= 1 {
		return 1
	}
	if p.anim.Curve == nil {
		return t
	}
	return p.anim.Curve(t)
}

// Advance moves the progress forward by dt seconds.
func (p *Progress) Advance(dt float64) (value float64, done bool) {
	if p.done {
		return 1, true
	}
	if dt > 0 {
		p.elapsed += dt
	}
	if p.elapsed >= p.anim.Duration.Seconds()-1e-9 {
		p.done = true
		return 1, true
	}
	return p.Value(), false
}

// Finish jumps to the end.
func (p *Progress) Finish() {
	p.done = true
}
