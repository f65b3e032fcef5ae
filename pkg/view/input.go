package view

import (
	"slices"

	"github.com/go-drift/strata/pkg/config"
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/focus"
)

// HandleEvent routes one input event at once and reports whether it was
// consumed. Update calls it for queued events.
//
// Pointer events go to the element under the pointer in the topmost layer
// that has one; a layer opaque to mouse stops them inside its rect. The
// element that consumes a press captures motion and release until the
// button goes up. Keys and joystick input go to the focused element of the
// top layer and its ancestors, and otherwise move focus.
func (v *View) HandleEvent(ev events.Event) bool {
	switch {
	case ev.Type.IsPointer():
		v.State.Mouse = ev.Pos
		return v.routePointer(ev)
	case ev.Type == events.JoyButtonDown || ev.Type == events.JoyButtonUp ||
		ev.Type == events.JoyAxis || ev.Type == events.JoyHat:
		if _, ok := v.State.Joystick(ev.Joystick); !ok {
			v.State.RegisterJoystick(config.Joystick{ID: ev.Joystick})
		}
	}
	return v.routeFocused(ev)
}

func (v *View) routePointer(ev events.Event) bool {
	if target := v.Tree.Get(v.capture); target != nil &&
		(ev.Type == events.PointerMotion || ev.Type == events.PointerUp) {
		if ev.Type == events.PointerUp {
			v.capture = element.Handle{}
		}
		if element.Deliver(target, ev) {
			return true
		}
	}
	for _, l := range slices.Backward(v.layers) {
		if !l.Interactive() {
			continue
		}
		if hit := element.HitTest(l.Layer, ev.Pos); hit != nil {
			if by := element.Dispatch(hit, ev); by != nil {
				if ev.Type == events.PointerDown {
					v.capture = element.HandleOf(by)
				}
				return true
			}
		}
		if l.OpaqueToMouse && l.Rect().Contains(ev.Pos) {
			return true
		}
	}
	return false
}

func (v *View) routeFocused(ev events.Event) bool {
	l := v.Top()
	if l == nil {
		return false
	}
	if f := l.Focused(); f != nil && element.Deliver(f, ev) {
		return true
	}
	dir, ok := focus.EventDirection(ev)
	if !ok {
		return false
	}
	switch l.MoveFocus(dir) {
	case element.FocusMoved:
		return true
	case element.FocusExit:
		if l.ListenForExit {
			return l.Exit()
		}
	}
	return false
}
