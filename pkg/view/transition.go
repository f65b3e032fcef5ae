package view

import (
	"time"

	"github.com/go-drift/strata/pkg/animation"
	"github.com/go-drift/strata/pkg/graphics"
)

// Effect is how a layer is composited during a transition.
type Effect struct {
	Alpha  float64
	Offset graphics.Offset
}

// Shown is the effect of a layer that is not transitioning.
var Shown = Effect{Alpha: 1}

// Transition drives a layer in or out. Apply receives the eased visibility
// of the layer, 0 hidden and 1 fully shown, and the layer's rect.
type Transition interface {
	Animation() *animation.Animation
	Apply(shown float64, rect graphics.Rect) Effect
}

// Fade blends the layer's alpha.
type Fade struct {
	Anim *animation.Animation
}

// FadeOver returns a fade with a smooth curve.
func FadeOver(d time.Duration) Fade { return Fade{Anim: animation.Smooth(d)} }

func (f Fade) Animation() *animation.Animation { return f.Anim }

func (f Fade) Apply(shown float64, _ graphics.Rect) Effect {
	return Effect{Alpha: shown}
}

// SlideDirection determines where a sliding layer comes from.
type SlideDirection int

const (
	// SlideFromRight slides content in from the right.
	SlideFromRight SlideDirection = iota
	// SlideFromLeft slides content in from the left.
	SlideFromLeft
	// SlideFromBottom slides content in from the bottom.
	SlideFromBottom
	// SlideFromTop slides content in from the top.
	SlideFromTop
)

// Slide moves the layer in from one edge by its own extent. Fade also
// blends alpha when set.
type Slide struct {
	Anim      *animation.Animation
	Direction SlideDirection
	Fade      bool
}

// SlideOver returns a slide with an ease-out curve.
func SlideOver(d time.Duration, dir SlideDirection) Slide {
	return Slide{Anim: animation.SlowOut(d), Direction: dir}
}

func (s Slide) Animation() *animation.Animation { return s.Anim }

func (s Slide) Apply(shown float64, rect graphics.Rect) Effect {
	hidden := 1 - shown
	var off graphics.Offset
	switch s.Direction {
	case SlideFromRight:
		off.X = rect.W * hidden
	case SlideFromLeft:
		off.X = -rect.W * hidden
	case SlideFromBottom:
		off.Y = rect.H * hidden
	case SlideFromTop:
		off.Y = -rect.H * hidden
	}
	alpha := 1.0
	if s.Fade {
		alpha = shown
	}
	return Effect{Alpha: alpha, Offset: off}
}
