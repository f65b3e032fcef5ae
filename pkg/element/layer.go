package element

import (
	"github.com/google/uuid"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
)

// Layer is the root of one layer's element tree. It owns the layout queues
// of every element below it and the layer's focused element. A layer holds
// a single root element that always receives the layer's whole padded rect.
type Layer struct {
	Container

	// ID identifies the layer in events and logs.
	ID uuid.UUID
	// Cap bounds the layout rounds of one Drain.
	Cap int

	queues  Queues
	focused Handle
}

// NewLayer returns an empty layer in tree.
func NewLayer(tree *Tree) *Layer {
	l := &Layer{ID: uuid.New(), Cap: DefaultIterationCap}
	l.single = true
	l.layer = l
	l.InitContainer(l, tree, LayerClass)
	l.enqueue(minSizeQueue)
	l.enqueue(canFocusQueue)
	return l
}

// SetRoot replaces the layer's root element.
func (l *Layer) SetRoot(e Element) error {
	l.SetFocus(nil)
	l.Clear()
	return l.Append(e)
}

// Root returns the root element, or nil.
func (l *Layer) Root() Element { return l.Child(0) }

// Queues returns the layer's pending layout work.
func (l *Layer) Queues() *Queues { return &l.queues }

// Resolve sizes and positions the layer inside bounds from its own w, h,
// x and y, clamped to bounds.
func (l *Layer) Resolve(bounds graphics.Rect) error {
	sz, err := l.resolve(l.contentMin, [2]float64{bounds.W, bounds.H}, false)
	if err != nil {
		return err
	}
	w := min(max(sz[0], l.minSize[0]), bounds.W)
	h := min(max(sz[1], l.minSize[1]), bounds.H)
	x := l.positionOf(layout.Horizontal).Get(bounds.W, w, layout.Horizontal)
	y := l.positionOf(layout.Vertical).Get(bounds.H, h, layout.Vertical)
	x = min(max(x, 0), bounds.W-w)
	y = min(max(y, 0), bounds.H-h)
	l.SetRect(graphics.Rect{X: bounds.X + x, Y: bounds.Y + y, W: w, H: h}, bounds)
	return nil
}

// SetRect assigns the layer's rect directly.
func (l *Layer) SetRect(r, clip graphics.Rect) {
	l.place(r, clip, true)
}

// Drain runs the layer's layout queues until they are empty. It fails with
// an internal error when more than limit rounds are needed; a limit of
// zero uses Cap.
func (l *Layer) Drain(limit int) error {
	if limit <= 0 {
		limit = l.Cap
	}
	rounds, err := l.queues.drain(limit)
	if rounds > 1 {
		errors.Logger().Debug("layout drained", "layer", l.name, "rounds", rounds)
	}
	return err
}

// Layout resolves the layer inside bounds and drains its queues.
func (l *Layer) Layout(bounds graphics.Rect) error {
	if err := l.Drain(0); err != nil {
		return err
	}
	if err := l.Resolve(bounds); err != nil {
		return err
	}
	return l.Drain(0)
}

func (l *Layer) measureChildren() ([2]float64, error) {
	var m [2]float64
	if root := l.Root(); root != nil {
		m = root.base().minSize
	}
	p := l.Padding() * 2
	return [2]float64{m[0] + p, m[1] + p}, nil
}

func (l *Layer) arrange() error {
	root := l.Root()
	if root == nil {
		return nil
	}
	root.base().place(l.contentRect(), l.clip, l.Visible())
	return nil
}

// Focused returns the focused element, or nil.
func (l *Layer) Focused() Element { return l.tree.Get(l.focused) }

// SetFocus makes e the focused element; nil clears focus. Elements of other
// layers are ignored. The previous element is told first, then e, and every
// scroll above e brings it into view.
func (l *Layer) SetFocus(e Element) {
	if e != nil && (e.base().layer != l || e.base().released) {
		return
	}
	prev := l.Focused()
	if prev == e {
		return
	}
	if prev != nil {
		pb := prev.base()
		pb.focused = false
		l.focused = Handle{}
		if fl, ok := prev.(FocusListener); ok {
			fl.Unfocused()
		}
		pb.Post(events.ElementUnfocused, nil)
	}
	if e == nil {
		l.focused = Handle{}
		return
	}
	b := e.base()
	l.focused = b.handle
	b.focused = true
	if fl, ok := e.(FocusListener); ok {
		fl.Focused()
	}
	b.Post(events.ElementFocused, nil)
	ScrollIntoView(e)
	errors.Logger().Debug("focus moved", "layer", l.name, "element", b.name)
}
