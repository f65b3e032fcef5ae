package element

import (
	"fmt"
	"slices"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/focus"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/trait"
)

// containerElement is implemented by every element embedding Container.
type containerElement interface {
	Element
	container() *Container
}

// Container is an element with ordered children and a cascade repository.
// On its own it overlays its children inside its padded rect, each placed
// by its own x and y; Stack, ZStack, Scroll and Layer specialize it.
type Container struct {
	Base

	children []Element
	cascades *trait.Repository
	single   bool

	// Entry decides which child receives focus when focus enters.
	Entry focus.EntryPolicy
}

var _ containerElement = (*Container)(nil)

// NewContainer returns a single-child container.
func NewContainer(tree *Tree) *Container {
	c := &Container{single: true}
	c.InitContainer(c, tree, ContainerClass)
	return c
}

// InitContainer is Init for types embedding Container.
func (c *Container) InitContainer(self Element, tree *Tree, class *trait.Class, extra ...*trait.Trait) {
	c.cascades = trait.NewRepository(c)
	c.Init(self, tree, class, append([]*trait.Trait{Padding}, extra...)...)
}

func (c *Container) container() *Container { return c }

// Children returns a copy of the child list.
func (c *Container) Children() []Element { return slices.Clone(c.children) }

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// Child returns the child at index i, or nil.
func (c *Container) Child(i int) Element {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// IndexOf returns the index of e among the children, or -1.
func (c *Container) IndexOf(e Element) int {
	if e == nil {
		return -1
	}
	return slices.Index(c.children, e)
}

// Padding returns the resolved padding in pixels.
func (c *Container) Padding() float64 {
	v, _ := c.Value(Padding).(float64)
	return v
}

// SetPadding assigns the padding.
func (c *Container) SetPadding(v trait.Value) error { return c.Set(Padding, v) }

// Append adds e as the last child.
func (c *Container) Append(e Element) error {
	return c.Insert(len(c.children), e)
}

// Insert adds e at index i. It fails without changing anything when i is
// out of range, e already has a parent, e was released, e would become its
// own ancestor, or a single-child container is full.
func (c *Container) Insert(i int, e Element) error {
	op := "element.Container.Insert"
	if e == nil {
		return &errors.ValueError{Op: op, Reason: "nil element"}
	}
	eb := e.base()
	switch {
	case i < 0 || i > len(c.children):
		return &errors.ValueError{Op: op, Reason: fmt.Sprintf("index %d out of range [0, %d]", i, len(c.children))}
	case eb.released:
		return &errors.ValueError{Op: op, Reason: eb.name + " was released"}
	case eb.parent != nil:
		return &errors.ValueError{Op: op, Reason: fmt.Sprintf("%s already belongs to %s", eb.name, eb.parent)}
	case eb.tree != c.tree:
		return &errors.ValueError{Op: op, Reason: eb.name + " belongs to another tree"}
	case c.single && len(c.children) > 0:
		return &errors.ValueError{Op: op, Reason: c.name + " holds a single child"}
	}
	for p := Element(c.self); p != nil; p = p.base().parent {
		if p == e {
			return &errors.ValueError{Op: op, Reason: eb.name + " is an ancestor of " + c.name}
		}
	}
	if _, isLayer := e.(*Layer); isLayer {
		return &errors.ValueError{Op: op, Reason: "layers cannot be nested"}
	}

	c.children = slices.Insert(c.children, i, e)
	eb.parent = c.self
	c.attached(e)
	return nil
}

// Remove detaches e and releases it with its whole subtree.
func (c *Container) Remove(e Element) error {
	i := c.IndexOf(e)
	if i < 0 {
		name := "<nil>"
		if e != nil {
			name = e.String()
		}
		return &errors.ValueError{Op: "element.Container.Remove", Reason: name + " is not a child of " + c.name}
	}
	return c.RemoveAt(i)
}

// RemoveAt detaches and releases the child at index i.
func (c *Container) RemoveAt(i int) error {
	if i < 0 || i >= len(c.children) {
		return &errors.ValueError{Op: "element.Container.RemoveAt", Reason: fmt.Sprintf("index %d out of range [0, %d)", i, len(c.children))}
	}
	e := c.children[i]
	c.children = slices.Delete(c.children, i, i+1)
	releaseSubtree(e)
	c.enqueue(minSizeQueue)
	c.enqueue(rectQueue)
	c.enqueue(canFocusQueue)
	return nil
}

// Clear releases every child.
func (c *Container) Clear() {
	for len(c.children) > 0 {
		_ = c.RemoveAt(len(c.children) - 1)
	}
}

// Cascades returns the container's cascade repository.
func (c *Container) Cascades() *trait.Repository { return c.cascades }

// Cascade declares v for the container's subtree.
func (c *Container) Cascade(v trait.CascadingValue) { c.cascades.Add(v) }

// Uncascade removes the cascade under key.
func (c *Container) Uncascade(key trait.Key) bool { return c.cascades.Delete(key) }

// DispatchCascade re-resolves the parent layer of key's trait on every
// descendant within depth levels.
func (c *Container) DispatchCascade(key trait.Key, depth int) {
	walk(c.self, depth, func(e Element, distance int) {
		b := e.base()
		if distance == 0 || !b.class.Is(key.Class) {
			return
		}
		b.refreshCascade(key.Trait)
	})
}

// attached wires a new subtree into the container's layer and cascades.
func (c *Container) attached(e Element) {
	walk(e, trait.Unbounded, func(d Element, distance int) {
		b := d.base()
		b.layer = c.layer
		b.depth = c.depth + 1 + distance
		for _, t := range b.traits {
			b.refreshCascade(t)
		}
		b.enqueue(minSizeQueue)
		b.enqueue(canFocusQueue)
	})
	c.enqueue(minSizeQueue)
	c.enqueue(rectQueue)
	c.enqueue(canFocusQueue)
}

// Release detaches e from its parent, if any, and releases it with its
// whole subtree. Layers have no parent and are released this way.
func Release(e Element) error {
	if e == nil || e.base().released {
		return nil
	}
	if p := e.base().parent; p != nil {
		if c, ok := p.(containerElement); ok {
			return c.container().Remove(e)
		}
	}
	releaseSubtree(e)
	return nil
}

// releaseSubtree detaches every context in the subtree and frees the
// handles, children first.
func releaseSubtree(root Element) {
	var order []Element
	walk(root, trait.Unbounded, func(e Element, _ int) { order = append(order, e) })
	for i := len(order) - 1; i >= 0; i-- {
		b := order[i].base()
		if b.layer != nil && b.layer.focused == b.handle {
			b.layer.SetFocus(nil)
		}
		for _, t := range b.traits {
			b.contexts[t].Detach()
		}
		if c, ok := order[i].(containerElement); ok {
			c.container().children = nil
		}
		b.parent = nil
		b.layer = nil
		b.visible = false
		b.released = true
		b.tree.release(b.handle)
	}
}

// walk visits root and its descendants breadth first, up to depth levels
// below root (Unbounded for all).
func walk(root Element, depth int, fn func(e Element, distance int)) {
	type item struct {
		e Element
		d int
	}
	queue := []item{{root, 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		fn(it.e, it.d)
		if depth >= 0 && it.d >= depth {
			continue
		}
		if c, ok := it.e.(containerElement); ok {
			for _, ch := range c.container().children {
				queue = append(queue, item{ch, it.d + 1})
			}
		}
	}
}

// Walk visits e and all its descendants breadth first.
func Walk(e Element, fn func(Element)) {
	walk(e, trait.Unbounded, func(d Element, _ int) { fn(d) })
}

func (c *Container) anyChildCanFocus() bool {
	for _, ch := range c.children {
		if ch.base().canFocus {
			return true
		}
	}
	return false
}

// contentRect is the rect inside the padding.
func (c *Container) contentRect() graphics.Rect {
	p := c.Padding()
	r := c.rect
	return graphics.Rect{X: r.X + p, Y: r.Y + p, W: max(0, r.W-2*p), H: max(0, r.H-2*p)}
}

// wrapsContent reports whether the container's own size along axis is a
// plain fit size that its children must not fill. A layer's root is sized
// by the layer, so the check does not apply to it.
func (c *Container) wrapsContent(axis layout.Axis) bool {
	if _, ok := c.parent.(*Layer); ok {
		return false
	}
	if _, ok := c.self.(*Layer); ok {
		return false
	}
	s, err := c.sizeOf(axis)
	return err == nil && layout.IsPureFit(s)
}

// checkFill rejects a fill child inside a container that wraps its content
// along axis.
func (c *Container) checkFill(child Element, axis layout.Axis) error {
	if !c.wrapsContent(axis) {
		return nil
	}
	s, err := child.base().sizeOf(axis)
	if err != nil {
		return err
	}
	if layout.IsPureFill(s) {
		return &errors.ConfigurationError{
			Element: child.String(),
			Trait:   sizeTrait(axis).Name(),
			Reason:  fmt.Sprintf("fill size inside %s, which fits its content", c.name),
		}
	}
	return nil
}

// measureChildren is the overlay minimum: the largest child per axis.
func (c *Container) measureChildren() ([2]float64, error) {
	var m [2]float64
	for _, ch := range c.children {
		for _, axis := range axes {
			if err := c.checkFill(ch, axis); err != nil {
				return m, err
			}
		}
		cb := ch.base()
		m[0] = max(m[0], cb.minSize[0])
		m[1] = max(m[1], cb.minSize[1])
	}
	p := c.Padding() * 2
	return [2]float64{m[0] + p, m[1] + p}, nil
}

// arrange places each child inside the padded rect by its own sizes and
// positions.
func (c *Container) arrange() error {
	content := c.contentRect()
	avail := [2]float64{content.W, content.H}
	for _, ch := range c.children {
		cb := ch.base()
		sz, err := cb.resolve(cb.contentMin, avail, false)
		if err != nil {
			return err
		}
		x := cb.positionOf(layout.Horizontal).Get(content.W, sz[0], layout.Horizontal)
		y := cb.positionOf(layout.Vertical).Get(content.H, sz[1], layout.Vertical)
		cb.place(graphics.Rect{X: content.X + x, Y: content.Y + y, W: sz[0], H: sz[1]}, c.clip, c.Visible())
	}
	return nil
}

// FocusChain enters the container by its entry policy, steps through
// children in order for forward and backward, and searches geometrically
// for spatial moves.
func (c *Container) FocusChain(req FocusRequest) FocusResult {
	return c.chain(req, c.spatial)
}

// chain is the request handling shared by every container kind; spatial
// resolves a spatial move from the child at index from.
func (c *Container) chain(req FocusRequest, spatial func(req FocusRequest, from int) FocusResult) FocusResult {
	idx := c.IndexOf(req.Prev)
	if idx < 0 {
		if req.Prev == c.self && !req.Dir.IsEntry() {
			return FocusResult{Action: focus.Bubble}
		}
		return c.enter(req)
	}
	switch {
	case req.Dir.IsSequential():
		return c.step(idx, req.Dir.Sign())
	case req.Dir.IsSpatial():
		return spatial(req, idx)
	case req.Dir == focus.Out && c.focusable:
		return FocusResult{Action: focus.Focus, Target: c.self}
	case req.Dir == focus.Out:
		return FocusResult{Action: focus.Bubble}
	}
	return FocusResult{Action: focus.Stay}
}

func (c *Container) focusableChildren() []int {
	var out []int
	for i, ch := range c.children {
		if ch.base().canFocus {
			out = append(out, i)
		}
	}
	return out
}

// enter picks the child focus descends into.
func (c *Container) enter(req FocusRequest) FocusResult {
	cands := c.focusableChildren()
	if len(cands) == 0 {
		if c.focusable && req.Prev != c.self {
			return FocusResult{Action: focus.Focus, Target: c.self}
		}
		return FocusResult{Action: focus.Bubble}
	}
	pick := cands[0]
	switch {
	case req.Dir == focus.InFirst || c.Entry == focus.FocusFirst:
	case c.Entry == focus.FocusLast || req.Dir == focus.Backward:
		pick = cands[len(cands)-1]
	case req.Dir.IsSpatial():
		rects := make([]graphics.Rect, len(cands))
		for i, idx := range cands {
			rects[i] = c.children[idx].base().rect
		}
		pick = cands[focus.Nearest(req.From.Origin(), rects)]
	}
	return FocusResult{Action: focus.Move, Target: c.children[pick]}
}

// step moves to the next focusable child in order, or bubbles past the end.
func (c *Container) step(from, sign int) FocusResult {
	for i := from + sign; i >= 0 && i < len(c.children); i += sign {
		if c.children[i].base().canFocus {
			return FocusResult{Action: focus.Move, Target: c.children[i]}
		}
	}
	return FocusResult{Action: focus.Bubble}
}

// spatial moves to the focusable child nearest past the focused rect.
func (c *Container) spatial(req FocusRequest, from int) FocusResult {
	var idx []int
	var rects []graphics.Rect
	for i, ch := range c.children {
		if i == from || !ch.base().canFocus {
			continue
		}
		idx = append(idx, i)
		rects = append(rects, ch.base().rect)
	}
	if best := focus.Closest(req.From, req.Dir, rects); best >= 0 {
		return FocusResult{Action: focus.Move, Target: c.children[idx[best]]}
	}
	return FocusResult{Action: focus.Bubble}
}
