// Package element implements the element tree: the arena, the base element
// every widget embeds, the container kinds (Container, Stack, ZStack,
// Scroll, Layer), the two-phase layout protocol driven by per-layer queues,
// cascade dispatch and the focus chain.
package element

import (
	"image"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/focus"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/trait"
)

// Element is a node of the tree. Implementations embed Base (directly or
// through one of the container types) and call Init from their constructor.
type Element interface {
	trait.Holder
	// FocusChain performs one step of directional focus traversal.
	FocusChain(req FocusRequest) FocusResult
	base() *Base
}

// Measurer is implemented by leaves with intrinsic content, such as text.
// The result is the content minimum the element's sizes resolve against.
type Measurer interface {
	Measure() (w, h float64)
}

// Updater is implemented by elements with per-tick work.
type Updater interface {
	Update(dt float64)
}

// Painter is implemented by elements that draw themselves. Containers paint
// before their children.
type Painter interface {
	Paint(r render.Renderer, dst render.Surface, alpha float64)
}

// OverPainter is implemented by elements that draw above their children.
type OverPainter interface {
	PaintOver(r render.Renderer, dst render.Surface, alpha float64)
}

// EventHandler is implemented by elements that react to input. Returning
// true consumes the event.
type EventHandler interface {
	HandleEvent(ev events.Event) bool
}

// FocusListener is implemented by elements that react to focus changes.
type FocusListener interface {
	Focused()
	Unfocused()
}

// RectListener is implemented by elements whose content depends on their
// assigned rect, such as wrapped text.
type RectListener interface {
	RectChanged(old, new graphics.Rect)
}

// arranger is implemented by the container kinds.
type arranger interface {
	arrange() error
	measureChildren() ([2]float64, error)
}

// Base holds the state shared by every element: identity in the arena,
// parent link, layout results, focus flags and trait contexts.
type Base struct {
	self   Element
	tree   *Tree
	handle Handle
	class  *trait.Class
	name   string

	parent Element
	layer  *Layer
	depth  int

	rect    graphics.Rect
	blit    image.Rectangle
	clip    graphics.Rect
	visible bool
	placed  bool

	focusable bool
	canFocus  bool
	focused   bool

	contentMin [2]float64
	minSize    [2]float64

	contexts map[*trait.Trait]*trait.Context
	traits   []*trait.Trait

	released bool
}

// Init registers self in tree and creates its trait contexts: w, h, x and
// y for every element, plus extra. It must be called once, from the
// constructor of the embedding type.
func (b *Base) Init(self Element, tree *Tree, class *trait.Class, extra ...*trait.Trait) {
	b.self = self
	b.tree = tree
	b.class = class
	b.name = tree.nextName(class.Name())
	b.handle = tree.insert(self)
	b.visible = true
	b.contexts = make(map[*trait.Trait]*trait.Context)
	for _, t := range append([]*trait.Trait{W, H, X, Y}, extra...) {
		b.AddTrait(t)
	}
}

func (b *Base) base() *Base { return b }

// Handle returns the element's arena handle.
func (b *Base) Handle() Handle { return b.handle }

// Tree returns the arena the element lives in.
func (b *Base) Tree() *Tree { return b.tree }

// TraitClass returns the class used for defaults and cascade matching.
func (b *Base) TraitClass() *trait.Class { return b.class }

// Animator returns the tree's animator.
func (b *Base) Animator() *trait.Animator { return b.tree.animator }

func (b *Base) String() string { return b.name }

// SetName replaces the generated name used in logs and errors.
func (b *Base) SetName(name string) { b.name = name }

// Parent returns the containing element, or nil for a layer or a detached
// element.
func (b *Base) Parent() Element { return b.parent }

// Layer returns the layer the element is attached to, or nil.
func (b *Base) Layer() *Layer { return b.layer }

// Depth returns the distance from the layer.
func (b *Base) Depth() int { return b.depth }

// Rect returns the assigned rect in view coordinates.
func (b *Base) Rect() graphics.Rect { return b.rect }

// BlitRect returns the pixel-aligned rect used for drawing.
func (b *Base) BlitRect() image.Rectangle { return b.blit }

// ClipRect returns the area children of this element are visible in.
func (b *Base) ClipRect() graphics.Rect { return b.clip }

// Visible reports whether the element intersects its parent's clip rect.
// Invisible subtrees are skipped by rendering and input.
func (b *Base) Visible() bool { return b.visible && b.placed }

// Released reports whether the element was removed from the tree.
func (b *Base) Released() bool { return b.released }

// MinSize returns the minimum extent the element asks of its container.
func (b *Base) MinSize() (w, h float64) { return b.minSize[0], b.minSize[1] }

// ContentMin returns the minimum of the element's content.
func (b *Base) ContentMin() (w, h float64) { return b.contentMin[0], b.contentMin[1] }

// Focusable reports whether the element accepts focus itself.
func (b *Base) Focusable() bool { return b.focusable }

// SetFocusable changes whether the element accepts focus.
func (b *Base) SetFocusable(v bool) {
	if b.focusable == v {
		return
	}
	b.focusable = v
	b.enqueue(canFocusQueue)
}

// CanFocus reports whether focus can land on the element or, for
// containers, on one of its descendants.
func (b *Base) CanFocus() bool { return b.canFocus }

// HasFocus reports whether the element is its layer's focused element.
func (b *Base) HasFocus() bool { return b.focused }

// Focus makes the element its layer's focused element.
func (b *Base) Focus() {
	if b.layer != nil {
		b.layer.SetFocus(b.self)
	}
}

// Post queues a synthetic event sourced at this element.
func (b *Base) Post(t events.Type, value any) {
	ev := events.Event{Type: t, Source: b.self, Value: value}
	if b.layer != nil {
		ev.Layer = b.layer.ID
	}
	b.tree.Post(ev)
}

// AddTrait gives the element a context for t. Cascades only reach traits an
// element has.
func (b *Base) AddTrait(t *trait.Trait) *trait.Context {
	if c, ok := b.contexts[t]; ok {
		return c
	}
	c := trait.NewContext(t, b.self)
	b.contexts[t] = c
	b.traits = append(b.traits, t)
	if b.parent != nil {
		b.refreshCascade(t)
	}
	return c
}

// Context returns the element's context for t, or nil.
func (b *Base) Context(t *trait.Trait) *trait.Context { return b.contexts[t] }

// Traits returns the traits the element has, in creation order.
func (b *Base) Traits() []*trait.Trait { return b.traits }

// Value returns the resolved value of t, or nil when the element lacks it.
func (b *Base) Value(t *trait.Trait) trait.Value {
	if c := b.contexts[t]; c != nil {
		return c.Value()
	}
	return nil
}

// Set assigns the element layer of t.
func (b *Base) Set(t *trait.Trait, v trait.Value) error {
	c := b.contexts[t]
	if c == nil {
		return &errors.ConfigurationError{Element: b.name, Trait: t.Name(), Reason: "element has no such trait"}
	}
	return c.Set(v)
}

// W returns the resolved width size.
func (b *Base) W() layout.Size {
	s, _ := b.Value(W).(layout.Size)
	return s
}

// H returns the resolved height size.
func (b *Base) H() layout.Size {
	s, _ := b.Value(H).(layout.Size)
	return s
}

// X returns the resolved horizontal position.
func (b *Base) X() layout.Position {
	p, _ := b.Value(X).(layout.Position)
	return p
}

// Y returns the resolved vertical position.
func (b *Base) Y() layout.Position {
	p, _ := b.Value(Y).(layout.Position)
	return p
}

// SetW assigns the width. Numbers become absolute sizes.
func (b *Base) SetW(v trait.Value) error { return b.Set(W, v) }

// SetH assigns the height.
func (b *Base) SetH(v trait.Value) error { return b.Set(H, v) }

// SetX assigns the horizontal position. Numbers become absolute positions.
func (b *Base) SetX(v trait.Value) error { return b.Set(X, v) }

// SetY assigns the vertical position.
func (b *Base) SetY(v trait.Value) error { return b.Set(Y, v) }

// SetSize assigns width and height.
func (b *Base) SetSize(w, h trait.Value) error {
	if err := b.SetW(w); err != nil {
		return err
	}
	return b.SetH(h)
}

// SetPosition assigns both axes from a placement preset.
func (b *Base) SetPosition(p layout.DualPosition) error {
	if err := b.SetX(p.X); err != nil {
		return err
	}
	return b.SetY(p.Y)
}

// Invalidate asks for the element to be measured and placed again, for
// example after its intrinsic content changed.
func (b *Base) Invalidate() {
	b.enqueue(minSizeQueue)
	if b.parent != nil {
		b.parent.base().enqueue(rectQueue)
	}
}

// FocusChain is the leaf behavior: accept focus when entered, bubble every
// other request.
func (b *Base) FocusChain(req FocusRequest) FocusResult {
	if req.Prev == b.self {
		if req.Dir.IsEntry() {
			return FocusResult{Action: focus.Stay}
		}
		return FocusResult{Action: focus.Bubble}
	}
	if b.canFocus {
		return FocusResult{Action: focus.Focus, Target: b.self}
	}
	return FocusResult{Action: focus.Bubble}
}

func (b *Base) enqueue(k queueKind) {
	if b.layer == nil || b.released {
		return
	}
	b.layer.queues.add(k, b.self)
}

// place assigns the rect computed by the parent and derives visibility
// from the parent's clip rect.
func (b *Base) place(r graphics.Rect, parentClip graphics.Rect, parentVisible bool) {
	vis := parentVisible && r.Overlaps(parentClip)
	clip := r.Intersect(parentClip)
	if b.placed && r == b.rect && vis == b.visible && clip == b.clip {
		return
	}
	old := b.rect
	b.rect = r
	b.blit = r.Blit()
	b.clip = clip
	b.visible = vis
	b.placed = true
	if _, ok := b.self.(arranger); ok {
		b.enqueue(rectQueue)
	}
	if old != r {
		if l, ok := b.self.(RectListener); ok {
			l.RectChanged(old, r)
		}
	}
}

func (b *Base) updateCanFocus() {
	v := b.focusable
	if a, ok := b.self.(interface{ anyChildCanFocus() bool }); ok && !v {
		v = a.anyChildCanFocus()
	}
	if v == b.canFocus {
		return
	}
	b.canFocus = v
	if b.parent != nil {
		b.parent.base().enqueue(canFocusQueue)
	}
}

func (b *Base) updateMinSize() error {
	var cm [2]float64
	if a, ok := b.self.(arranger); ok {
		m, err := a.measureChildren()
		if err != nil {
			return err
		}
		cm = m
		b.enqueue(rectQueue)
	} else if m, ok := b.self.(Measurer); ok {
		cm[0], cm[1] = m.Measure()
	}
	b.contentMin = cm
	ms, err := b.resolve(cm, [2]float64{}, true)
	if err != nil {
		return err
	}
	if ms == b.minSize {
		return nil
	}
	b.minSize = ms
	if b.parent != nil {
		b.parent.base().enqueue(minSizeQueue)
	}
	return nil
}

func (b *Base) updateRect() error {
	if a, ok := b.self.(arranger); ok {
		return a.arrange()
	}
	return nil
}

// refreshCascade recomputes the parent layer of t from the element's
// ancestors.
func (b *Base) refreshCascade(t *trait.Trait) {
	c := b.contexts[t]
	if c == nil {
		return
	}
	if err := c.SetParent(lookupCascade(b, t)); err != nil {
		errors.Logger().Warn("cascade rejected", "element", b.name, "trait", t.Name(), "err", err)
	}
}

// lookupCascade finds the nearest ancestor cascading t onto b.
func lookupCascade(b *Base, t *trait.Trait) trait.Value {
	distance := 1
	for p := b.parent; p != nil; p = p.base().parent {
		if pc, ok := p.(containerElement); ok {
			if v, ok := pc.container().cascades.Lookup(t, b.class, distance); ok {
				return v
			}
		}
		distance++
	}
	return nil
}
