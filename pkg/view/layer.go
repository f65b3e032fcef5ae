package view

import (
	"github.com/go-drift/strata/pkg/animation"
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
)

// Phase is the lifecycle position of a layer.
type Phase int

const (
	// PhaseEntering plays the in transition.
	PhaseEntering Phase = iota
	// PhaseShown is the steady state.
	PhaseShown
	// PhaseExiting plays the out transition. The layer no longer takes input.
	PhaseExiting
	// PhaseGone means the exit finished; the view drops the layer.
	PhaseGone
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseShown:
		return "shown"
	case PhaseExiting:
		return "exiting"
	default:
		return "gone"
	}
}

// Layer is one modal layer of a view: an element layer plus its place in
// the stack, its transitions and its exit behavior.
type Layer struct {
	*element.Layer

	// ListenForExit makes the layer exit when focus navigation leaves it,
	// which is what Escape and joystick button 1 do.
	ListenForExit bool
	// OpaqueToMouse makes the layer consume pointer events inside its rect
	// so that layers below never see them.
	OpaqueToMouse bool
	// TransitionIn plays when the layer is pushed; TransitionOut when it
	// exits. Nil means immediate.
	TransitionIn  Transition
	TransitionOut Transition
	// OnExit runs after ViewExitFinished is posted.
	OnExit func()

	view     *View
	phase    Phase
	progress *animation.Progress
	shown    float64
	isBase   bool
}

// NewLayer creates a layer in v's tree. It is not shown until pushed.
func NewLayer(v *View, name string) *Layer {
	el := element.NewLayer(v.Tree)
	el.SetName(name)
	el.Cap = v.State.IterationCap
	return &Layer{Layer: el, view: v, phase: PhaseShown, shown: 1}
}

// Name returns the layer's name.
func (l *Layer) Name() string { return l.String() }

// Phase returns the lifecycle phase.
func (l *Layer) Phase() Phase { return l.phase }

// IsBase reports whether l is its view's base layer.
func (l *Layer) IsBase() bool { return l.isBase }

// Interactive reports whether the layer takes input.
func (l *Layer) Interactive() bool {
	return l.phase == PhaseEntering || l.phase == PhaseShown
}

// Effect returns how the layer is composited this frame.
func (l *Layer) Effect() Effect {
	switch l.phase {
	case PhaseEntering:
		return l.TransitionIn.Apply(l.shown, l.Rect())
	case PhaseExiting:
		return l.TransitionOut.Apply(l.shown, l.Rect())
	case PhaseGone:
		return Effect{}
	}
	return Shown
}

// Exit starts removing the layer. ViewExitStarted is posted at once;
// ViewExitFinished follows when the out transition ends, or immediately
// without one. The base layer never exits. It reports whether an exit
// started.
func (l *Layer) Exit() bool {
	if l.isBase || l.phase >= PhaseExiting {
		return false
	}
	l.post(events.ViewExitStarted)
	errors.Logger().Debug("layer exiting", "layer", l.Name(), "id", l.ID)
	if playable(l.TransitionOut) {
		l.phase = PhaseExiting
		l.progress = l.TransitionOut.Animation().Start()
		l.shown = 1
		l.post(events.TransitionStarted)
		return true
	}
	l.finishExit()
	return true
}

func (l *Layer) enter() {
	if !playable(l.TransitionIn) {
		l.phase = PhaseShown
		l.shown = 1
		return
	}
	l.phase = PhaseEntering
	l.progress = l.TransitionIn.Animation().Start()
	l.shown = 0
	l.post(events.TransitionStarted)
}

// advance steps a running transition by dt seconds.
func (l *Layer) advance(dt float64) {
	if l.progress == nil {
		return
	}
	v, done := l.progress.Advance(dt)
	switch l.phase {
	case PhaseEntering:
		l.shown = v
		if done {
			l.progress = nil
			l.phase = PhaseShown
			l.post(events.TransitionFinished)
		}
	case PhaseExiting:
		l.shown = 1 - v
		if done {
			l.progress = nil
			l.post(events.TransitionFinished)
			l.finishExit()
		}
	}
}

// finishExit posts ViewExitFinished before running OnExit, so a failing
// callback cannot lose the event.
func (l *Layer) finishExit() {
	l.phase = PhaseGone
	l.shown = 0
	l.post(events.ViewExitFinished)
	if l.OnExit != nil {
		l.OnExit()
	}
}

func (l *Layer) post(t events.Type) {
	l.view.Bus.Post(events.Event{Type: t, Source: l, Layer: l.ID})
}

func playable(t Transition) bool {
	return t != nil && t.Animation() != nil && t.Animation().Duration > 0
}
