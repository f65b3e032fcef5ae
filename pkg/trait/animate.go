package trait

import (
	"slices"

	"github.com/go-drift/strata/pkg/animation"
)

// Animator owns the animation scope stack of one element tree and the
// animations started inside it. It is advanced once per frame.
type Animator struct {
	scopes  animation.Stack
	running []*AnimationContext
}

// NewAnimator returns an idle animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Animate runs fn with a pushed onto the scope stack: every animatable
// assignment made by fn is interpolated with a.
func (a *Animator) Animate(anim *animation.Animation, fn func()) {
	a.scopes.With(anim, fn)
}

// Push enters an animation scope. Pair every Push with a Pop.
func (a *Animator) Push(anim *animation.Animation) { a.scopes.Push(anim) }

// Pop leaves the innermost animation scope.
func (a *Animator) Pop() { a.scopes.Pop() }

// Active returns the innermost animation scope, or nil.
func (a *Animator) Active() *animation.Animation { return a.scopes.Top() }

// Running returns the number of animations in flight.
func (a *Animator) Running() int { return len(a.running) }

// Advance moves every running animation forward by dt seconds. Animations
// started by callbacks during Advance begin on the next call.
func (a *Animator) Advance(dt float64) {
	for _, ac := range slices.Clone(a.running) {
		if ac.ctx.anim != ac {
			continue
		}
		ac.advance(dt)
	}
}

// FinishAll jumps every running animation to its end.
func (a *Animator) FinishAll() {
	for _, ac := range slices.Clone(a.running) {
		if ac.ctx.anim == ac {
			ac.finish()
		}
	}
}

func (a *Animator) register(ac *AnimationContext) {
	a.running = append(a.running, ac)
}

func (a *Animator) unregister(ac *AnimationContext) {
	a.running = slices.DeleteFunc(a.running, func(x *AnimationContext) bool { return x == ac })
}

// AnimationContext is one running interpolation of a trait context from an
// old value to a new one.
type AnimationContext struct {
	ctx      *Context
	from, to Value
	progress *animation.Progress
	animator *Animator
}

func newAnimationContext(c *Context, anim *animation.Animation, from, to Value) *AnimationContext {
	return &AnimationContext{
		ctx:      c,
		from:     from,
		to:       to,
		progress: anim.Start(),
		animator: c.animator(),
	}
}

// Context returns the trait context being animated.
func (ac *AnimationContext) Context() *Context { return ac.ctx }

// Progress returns the polled progress.
func (ac *AnimationContext) Progress() *animation.Progress { return ac.progress }

func (ac *AnimationContext) advance(dt float64) {
	p, done := ac.progress.Advance(dt)
	if done {
		ac.finish()
		return
	}
	ac.ctx.SetAnimation(ac.ctx.trait.Lerp(ac.from, ac.to, p))
}

// finish clears the animation layer and notifies.
func (ac *AnimationContext) finish() {
	ac.stop()
	ac.ctx.refresh(false)
}

// stop removes the animation without refreshing; the caller refreshes.
func (ac *AnimationContext) stop() {
	ac.progress.Finish()
	if ac.animator != nil {
		ac.animator.unregister(ac)
	}
	if ac.ctx.anim == ac {
		ac.ctx.anim = nil
		ac.ctx.layers[LayerAnimation] = nil
	}
}
