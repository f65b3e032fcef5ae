package trait

import (
	"slices"

	"github.com/go-drift/strata/pkg/errors"
)

// Layer names one of the value slots of a Context, highest priority first.
type Layer int

const (
	// LayerAnimation holds the interpolated value of a running animation.
	LayerAnimation Layer = iota
	// LayerElement holds the value assigned on the element itself.
	LayerElement
	// LayerParent holds the value cascaded from an ancestor.
	LayerParent
	// LayerDefault is the class default. It cannot be assigned through a
	// context; see Class.SetDefault.
	LayerDefault
)

func (l Layer) String() string {
	switch l {
	case LayerAnimation:
		return "animation"
	case LayerElement:
		return "element"
	case LayerParent:
		return "parent"
	default:
		return "default"
	}
}

// Holder is the element side of a context.
type Holder interface {
	// TraitClass returns the class used for defaults.
	TraitClass() *Class
	// Animator returns the animator whose scope stack governs assignments.
	Animator() *Animator
	// String names the holder in error messages.
	String() string
}

// Context is the per-element state of one trait.
type Context struct {
	trait  *Trait
	holder Holder

	layers [LayerDefault]Value
	value  Value

	// ref is the context this one currently follows, if the chosen layer
	// holds a *Context.
	ref        *Context
	dependents []*Context

	// dep is the dependency base of the resolved value, if it has one.
	dep  *DependencyBase
	anim *AnimationContext

	detached bool
}

// NewContext creates the context of t for holder and resolves its default.
func NewContext(t *Trait, holder Holder) *Context {
	c := &Context{trait: t, holder: holder}
	c.value = c.raw()
	c.attachDependency(c.value)
	return c
}

// Trait returns the trait this context resolves.
func (c *Context) Trait() *Trait { return c.trait }

// Holder returns the element owning this context.
func (c *Context) Holder() Holder { return c.holder }

// Value returns the resolved value.
func (c *Context) Value() Value { return c.value }

// Get returns the value stored in one layer. LayerDefault returns the class
// default.
func (c *Context) Get(l Layer) Value {
	if l >= LayerDefault {
		return c.holder.TraitClass().Default(c.trait)
	}
	return c.layers[l]
}

// AnimationValue returns the animation layer.
func (c *Context) AnimationValue() Value { return c.layers[LayerAnimation] }

// ElementValue returns the element layer.
func (c *Context) ElementValue() Value { return c.layers[LayerElement] }

// ParentValue returns the parent layer.
func (c *Context) ParentValue() Value { return c.layers[LayerParent] }

// Animating reports whether an animation currently drives this context.
func (c *Context) Animating() bool { return c.anim != nil }

// Set assigns the element layer. The value is coerced by the trait's
// loader. Inside an animation scope the change is animated from the
// currently resolved value. Any animation already running on this context is
// finished first.
func (c *Context) Set(v Value) error {
	loaded, err := c.trait.Load(v)
	if err != nil {
		return c.configError(err)
	}
	if err := c.checkReference(loaded); err != nil {
		return err
	}

	from := c.value
	if c.anim != nil {
		c.anim.stop()
	}

	var active *AnimationContext
	if a := c.animator(); a != nil && loaded != nil && from != nil && c.trait.Animatable() {
		if scope := a.Active(); scope != nil {
			to := loaded
			if ref, ok := loaded.(*Context); ok {
				to = ref.Value()
			}
			if !Equal(from, to) {
				active = newAnimationContext(c, scope, from, to)
			}
		}
	}

	c.layers[LayerElement] = loaded
	if active != nil {
		c.anim = active
		c.layers[LayerAnimation] = c.trait.Lerp(active.from, active.to, 0)
		c.animator().register(active)
	}
	c.refresh(false)
	return nil
}

// Clear removes the element layer, cancelling any running animation.
func (c *Context) Clear() {
	if c.anim != nil {
		c.anim.stop()
	}
	c.layers[LayerElement] = nil
	c.refresh(false)
}

// SetParent assigns the parent layer. Cascades use this; it is never animated.
func (c *Context) SetParent(v Value) error {
	if err := c.checkReference(v); err != nil {
		return err
	}
	if same(c.layers[LayerParent], v) {
		return nil
	}
	c.layers[LayerParent] = v
	c.refresh(false)
	return nil
}

// SetAnimation assigns the animation layer directly.
func (c *Context) SetAnimation(v Value) {
	c.layers[LayerAnimation] = v
	c.refresh(false)
}

// Detach releases every back-reference held for this context: running
// animations stop, dependencies forget it, and referenced contexts drop it
// from their dependents. Elements call Detach when they are released.
func (c *Context) Detach() {
	if c.detached {
		return
	}
	if c.anim != nil {
		c.anim.stop()
	}
	c.detached = true
	c.follow(nil)
	c.detachDependency()
	for _, d := range slices.Clone(c.dependents) {
		d.follow(nil)
	}
	c.dependents = nil
}

// raw returns the highest-priority layer, falling back to the class default.
func (c *Context) raw() Value {
	for _, v := range c.layers {
		if v != nil {
			return v
		}
	}
	return c.holder.TraitClass().Default(c.trait)
}

// refresh recomputes the resolved value. With force set, callbacks and
// dependents are notified even when the value is identical; dependencies use
// this after mutating their internal state.
func (c *Context) refresh(force bool) {
	if c.detached {
		return
	}
	raw := c.raw()
	next := raw
	if ref, ok := raw.(*Context); ok {
		c.follow(ref)
		next = ref.Value()
	} else {
		c.follow(nil)
	}

	prev := c.value
	if !force && Equal(prev, next) {
		if !same(prev, next) {
			// Structurally equal replacement: keep dependency membership on
			// the instance actually stored.
			c.value = next
			c.detachDependency()
			c.attachDependency(next)
		}
		return
	}

	c.value = next
	if !same(prev, next) {
		c.detachDependency()
		c.attachDependency(next)
	}

	for _, cb := range c.trait.snapshotCallbacks() {
		cb(c)
	}
	for _, d := range slices.Clone(c.dependents) {
		d.refresh(force)
	}
}

// follow makes c track ref, or nothing when ref is nil.
func (c *Context) follow(ref *Context) {
	if c.ref == ref {
		return
	}
	if c.ref != nil {
		c.ref.dependents = slices.DeleteFunc(c.ref.dependents, func(d *Context) bool { return d == c })
	}
	c.ref = ref
	if ref != nil {
		ref.dependents = append(ref.dependents, c)
	}
}

// checkReference refuses values that would make c follow itself.
func (c *Context) checkReference(v Value) error {
	ref, ok := v.(*Context)
	if !ok {
		return nil
	}
	for k := ref; k != nil; {
		if k == c {
			return &errors.InternalError{Op: "trait.Context.Set", Reason: "context reference cycle on " + c.trait.Name()}
		}
		next, _ := k.raw().(*Context)
		k = next
	}
	return nil
}

func (c *Context) attachDependency(v Value) {
	if d, ok := v.(Dependency); ok && !isNil(d) {
		c.dep = d.Dep()
		c.dep.addContext(c)
	}
}

func (c *Context) detachDependency() {
	if c.dep != nil {
		c.dep.removeContext(c)
		c.dep = nil
	}
}

func (c *Context) animator() *Animator {
	if c.holder == nil {
		return nil
	}
	return c.holder.Animator()
}

func (c *Context) configError(err error) error {
	if errors.Is(err, errors.ErrConfiguration) {
		var ce *errors.ConfigurationError
		if errors.As(err, &ce) && ce.Element == "" {
			ce.Element = c.holder.String()
			if ce.Trait == "" {
				ce.Trait = c.trait.Name()
			}
		}
		return err
	}
	return &errors.ConfigurationError{Element: c.holder.String(), Trait: c.trait.Name(), Reason: err.Error()}
}

func (c *Context) String() string {
	return c.holder.String() + "." + c.trait.Name()
}
