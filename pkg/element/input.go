package element

import (
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
)

// HitTest returns the deepest visible element under p, preferring later
// children, or nil when p is outside e.
func HitTest(e Element, p graphics.Offset) Element {
	b := e.base()
	if !b.Visible() || !b.clip.Contains(p) {
		return nil
	}
	if c, ok := e.(containerElement); ok {
		children := c.container().children
		for i := len(children) - 1; i >= 0; i-- {
			if hit := HitTest(children[i], p); hit != nil {
				return hit
			}
		}
	}
	return e
}

// Deliver offers ev to target and then to each ancestor until one consumes
// it. It reports whether the event was consumed.
func Deliver(target Element, ev events.Event) bool {
	return Dispatch(target, ev) != nil
}

// Dispatch is Deliver returning the element that consumed ev, or nil.
func Dispatch(target Element, ev events.Event) Element {
	for n := target; n != nil; n = n.base().parent {
		if n.base().released {
			return nil
		}
		if h, ok := n.(EventHandler); ok && h.HandleEvent(ev) {
			return n
		}
	}
	return nil
}
