// Package view stacks modal layers over one element tree. A View routes
// input to its layers top-down, ticks elements and transitions, drains
// layout and renders the layers bottom-up.
package view

import (
	"image"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/go-drift/strata/pkg/config"
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// Observer is told about layers entering and leaving the stack.
type Observer interface {
	DidPush(l *Layer)
	DidRemove(l *Layer)
}

// View owns the layer stack and everything shared by its layers.
type View struct {
	State *config.State
	Tree  *element.Tree
	Bus   *events.Bus
	// Observers are notified in order.
	Observers []Observer

	layers  []*Layer
	bounds  graphics.Rect
	pending []events.Event
	capture element.Handle
}

// New creates a view of the given size with an empty base layer. A nil
// state uses config.NewState.
func New(state *config.State, w, h float64) *View {
	if state == nil {
		state = config.NewState()
	}
	v := &View{
		State:  state,
		Tree:   element.NewTree(),
		Bus:    events.NewBus(),
		bounds: graphics.Rect{W: w, H: h},
	}
	v.Tree.SetBus(v.Bus)
	v.Bus.Subscribe(events.ViewExitFinished, func(ev events.Event) { v.drop(ev.Layer) })

	base := NewLayer(v, "base")
	base.isBase = true
	v.layers = []*Layer{base}
	return v
}

// Base returns the bottom layer, which is never removed.
func (v *View) Base() *Layer { return v.layers[0] }

// Layers returns the stack bottom to top.
func (v *View) Layers() []*Layer { return slices.Clone(v.layers) }

// Top returns the topmost layer taking input.
func (v *View) Top() *Layer {
	for i := len(v.layers) - 1; i >= 0; i-- {
		if v.layers[i].Interactive() {
			return v.layers[i]
		}
	}
	return nil
}

// Bounds returns the view rect.
func (v *View) Bounds() graphics.Rect { return v.bounds }

// Resize changes the view size. Layers are re-resolved on the next Update.
func (v *View) Resize(w, h int) {
	v.bounds = graphics.Rect{W: float64(w), H: float64(h)}
}

// Push puts l on top of the stack and starts its in transition.
func (v *View) Push(l *Layer) error {
	if l == nil || l.view != v {
		return &errors.ValueError{Op: "view.Push", Reason: "layer belongs to another view"}
	}
	if slices.Contains(v.layers, l) {
		return &errors.ValueError{Op: "view.Push", Reason: l.Name() + " is already pushed"}
	}
	if l.Released() || l.phase == PhaseGone {
		return &errors.ValueError{Op: "view.Push", Reason: l.Name() + " has exited"}
	}
	v.layers = append(v.layers, l)
	l.enter()
	errors.Logger().Debug("layer pushed", "layer", l.Name(), "id", l.ID, "depth", len(v.layers))
	for _, o := range v.Observers {
		o.DidPush(l)
	}
	return nil
}

// Pop starts the exit of the topmost interactive layer above the base. It
// reports whether an exit started.
func (v *View) Pop() bool {
	top := v.Top()
	if top == nil {
		return false
	}
	return top.Exit()
}

// Remove drops l at once, without transitions or exit events. The base
// layer cannot be removed.
func (v *View) Remove(l *Layer) error {
	if l == nil || l.isBase {
		return &errors.ValueError{Op: "view.Remove", Reason: "the base layer cannot be removed"}
	}
	if !slices.Contains(v.layers, l) {
		return &errors.ValueError{Op: "view.Remove", Reason: l.Name() + " is not in the view"}
	}
	l.phase = PhaseGone
	v.drop(l.ID)
	return nil
}

func (v *View) drop(id uuid.UUID) {
	i := slices.IndexFunc(v.layers, func(l *Layer) bool { return l.ID == id })
	if i <= 0 {
		return
	}
	l := v.layers[i]
	v.layers = slices.Delete(v.layers, i, i+1)
	if err := element.Release(l.Layer); err != nil {
		errors.Report(errors.Wrap("view.drop", err))
	}
	errors.Logger().Debug("layer dropped", "layer", l.Name(), "id", l.ID)
	for _, o := range v.Observers {
		o.DidRemove(l)
	}
}

// Event queues an input event for the next Update.
func (v *View) Event(ev events.Event) {
	v.pending = append(v.pending, ev)
}

// Update advances the view by dt seconds. Every layer's layout queues are
// drained before queued input is dispatched, so focus and hit testing see
// elements added since the last tick. Then elements tick, trait animations
// and layer transitions advance, layout is drained again, and finally the
// synthetic events of the tick are dispatched to bus subscribers. Errors
// from layout name the failing layer; panics from callbacks propagate.
func (v *View) Update(dt float64) error {
	v.State.DeltaTime = dt

	if err := v.layout(); err != nil {
		return err
	}
	pending := v.pending
	v.pending = nil
	for _, ev := range pending {
		v.HandleEvent(ev)
	}

	for _, l := range slices.Clone(v.layers) {
		element.Tick(l.Layer, dt)
	}
	v.Tree.Animator().Advance(dt)
	for _, l := range slices.Clone(v.layers) {
		l.advance(dt)
	}

	if err := v.layout(); err != nil {
		return err
	}
	if len(v.Bus.Pump()) == 0 {
		return nil
	}
	// Subscribers may have changed the tree.
	return v.layout()
}

// Layout resolves and drains every layer without advancing time.
func (v *View) Layout() error { return v.layout() }

func (v *View) layout() error {
	for _, l := range slices.Clone(v.layers) {
		if l.Released() {
			continue
		}
		if err := l.Layout(v.bounds); err != nil {
			return &errors.Error{Op: "view.Update", Kind: errors.KindOf(err), Layer: l.Name(), Err: err}
		}
	}
	return nil
}

// Render draws the layers bottom to top. A layer offset by its transition
// is drawn to an offscreen surface first.
func (v *View) Render(r render.Renderer) {
	screen := r.Screen()
	for _, l := range v.layers {
		fx := l.Effect()
		if fx.Alpha <= 0 {
			continue
		}
		if fx.Offset == (graphics.Offset{}) {
			element.Render(r, screen, l.Layer, fx.Alpha)
			continue
		}
		b := screen.Bounds()
		off := r.NewSurface(b.Max.X, b.Max.Y)
		element.Render(r, off, l.Layer, 1)
		at := image.Pt(int(math.Round(fx.Offset.X)), int(math.Round(fx.Offset.Y)))
		r.Blit(screen, off, at, fx.Alpha)
	}
}
