package element

import (
	"fmt"

	"github.com/go-drift/strata/pkg/animation"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/trait"
)

// Handle is a stable reference to an element in a Tree. A handle outlives
// its element: once the element is released, the slot's generation moves
// on and Tree.Get returns nil for the old handle.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h was never assigned.
func (h Handle) IsZero() bool { return h.gen == 0 }

// ID packs the handle into one integer, unique across reuse of a slot.
func (h Handle) ID() uint64 { return uint64(h.index)<<32 | uint64(h.gen) }

func (h Handle) String() string { return fmt.Sprintf("%d@%d", h.index, h.gen) }

type slot struct {
	gen  uint32
	elem Element
}

// Tree is the arena every element of one view lives in. It also owns the
// animator whose scope stack governs trait assignments on its elements,
// the bus synthetic events are posted to, and the surface cache materials
// prerender into.
type Tree struct {
	slots []slot
	free  []uint32
	live  int

	animator  *trait.Animator
	bus       *events.Bus
	cache     *render.Cache
	onRelease []func(Handle)
	serial    map[string]int
}

// NewTree returns an empty arena.
func NewTree() *Tree {
	t := &Tree{
		animator: trait.NewAnimator(),
		cache:    render.NewCache(),
		serial:   make(map[string]int),
	}
	t.OnRelease(func(h Handle) { t.cache.Drop(h.ID()) })
	return t
}

// Cache returns the surface cache, keyed by Handle.ID. Entries of an
// element are dropped when it is released.
func (t *Tree) Cache() *render.Cache { return t.cache }

// Get returns the element behind h, or nil when h is stale or zero.
func (t *Tree) Get(h Handle) Element {
	if h.IsZero() || int(h.index) >= len(t.slots) {
		return nil
	}
	s := t.slots[h.index]
	if s.gen != h.gen {
		return nil
	}
	return s.elem
}

// Len returns the number of live elements.
func (t *Tree) Len() int { return t.live }

// Animator returns the tree's animator.
func (t *Tree) Animator() *trait.Animator { return t.animator }

// Animate runs fn inside an animation scope: every animatable trait
// assigned by fn on this tree's elements is interpolated with a.
func (t *Tree) Animate(a *animation.Animation, fn func()) {
	t.animator.Animate(a, fn)
}

// SetBus sets the bus synthetic events are posted to.
func (t *Tree) SetBus(b *events.Bus) { t.bus = b }

// Bus returns the event bus, or nil.
func (t *Tree) Bus() *events.Bus { return t.bus }

// Post queues ev on the bus. Events posted while no bus is set are dropped.
func (t *Tree) Post(ev events.Event) {
	if t.bus != nil {
		t.bus.Post(ev)
	}
}

// OnRelease registers fn to run whenever an element is released. Caches
// keyed by handle use it to drop their entries.
func (t *Tree) OnRelease(fn func(Handle)) {
	t.onRelease = append(t.onRelease, fn)
}

func (t *Tree) insert(e Element) Handle {
	t.live++
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[idx].elem = e
		return Handle{index: idx, gen: t.slots[idx].gen}
	}
	t.slots = append(t.slots, slot{gen: 1, elem: e})
	return Handle{index: uint32(len(t.slots) - 1), gen: 1}
}

func (t *Tree) release(h Handle) {
	if t.Get(h) == nil {
		return
	}
	s := &t.slots[h.index]
	s.elem = nil
	s.gen++
	t.free = append(t.free, h.index)
	t.live--
	for _, fn := range t.onRelease {
		fn(h)
	}
}

func (t *Tree) nextName(class string) string {
	t.serial[class]++
	return fmt.Sprintf("%s#%d", class, t.serial[class])
}

// HandleOf returns the handle of e.
func HandleOf(e Element) Handle { return e.base().handle }
