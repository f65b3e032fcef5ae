package trait

import (
	"fmt"
	"sync"
)

// Value is a trait value. A nil Value in a layer means the layer is unset.
type Value = any

// Unbounded is the cascade depth that reaches every descendant.
const Unbounded = -1

// DefaultDepth asks Cascade to use the trait's default cascade depth.
const DefaultDepth = 0

// Callback is invoked after a context's resolved value changes.
type Callback func(c *Context)

// Options configures a Trait.
type Options struct {
	// Default is the value used when no layer and no class override is set.
	Default Value
	// Load coerces assigned values (for example int to an absolute size).
	// Nil accepts values as they are.
	Load func(Value) (Value, error)
	// Lerp interpolates between two loaded values. Traits without Lerp are
	// never animated; assignments inside an animation scope apply at once.
	Lerp func(from, to Value, t float64) Value
	// CascadeDepth is the number of levels a cascade declared without an
	// explicit depth reaches. Zero means one level; Unbounded reaches all.
	CascadeDepth int
}

// Trait describes one animatable attribute shared by a class of elements.
type Trait struct {
	id   int
	name string
	opts Options

	mu        sync.RWMutex
	callbacks []Callback
}

var (
	registryMu sync.RWMutex
	registry   []*Trait
)

// New declares a trait and adds it to the process registry.
func New(name string, opts Options) *Trait {
	if opts.CascadeDepth == 0 {
		opts.CascadeDepth = 1
	}
	t := &Trait{name: name, opts: opts}
	registryMu.Lock()
	t.id = len(registry)
	registry = append(registry, t)
	registryMu.Unlock()
	return t
}

// All returns every declared trait in declaration order.
func All() []*Trait {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]*Trait, len(registry))
	copy(out, registry)
	return out
}

// ID returns the trait's registry index.
func (t *Trait) ID() int { return t.id }

// Name returns the trait name.
func (t *Trait) Name() string { return t.name }

// Default returns the trait's default value.
func (t *Trait) Default() Value { return t.opts.Default }

// CascadeDepth returns the default cascade depth.
func (t *Trait) CascadeDepth() int { return t.opts.CascadeDepth }

// Animatable reports whether the trait has an interpolation function.
func (t *Trait) Animatable() bool { return t.opts.Lerp != nil }

// Load coerces v with the trait's loader. Nil passes through unchanged.
func (t *Trait) Load(v Value) (Value, error) {
	if v == nil || t.opts.Load == nil {
		return v, nil
	}
	if _, ok := v.(*Context); ok {
		return v, nil
	}
	return t.opts.Load(v)
}

// Lerp interpolates between two values of this trait.
func (t *Trait) Lerp(from, to Value, p float64) Value {
	if t.opts.Lerp == nil {
		return to
	}
	return t.opts.Lerp(from, to, p)
}

// OnUpdate registers a callback fired, in registration order, whenever any
// context of this trait changes its resolved value.
func (t *Trait) OnUpdate(cb Callback) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.callbacks = append(t.callbacks, cb)
}

func (t *Trait) snapshotCallbacks() []Callback {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.callbacks
}

// Bind returns the class-level handle used to build cascades.
func (t *Trait) Bind(c *Class) BoundTrait {
	return BoundTrait{Trait: t, Class: c}
}

func (t *Trait) String() string { return t.name }

// Key identifies a cascade entry: a trait scoped to the class it targets.
type Key struct {
	Trait *Trait
	Class *Class
}

func (k Key) String() string {
	return fmt.Sprintf("%s.%s", k.Class.Name(), k.Trait.Name())
}

// BoundTrait is a trait accessed through a class. It builds cascading values
// that target elements of that class.
type BoundTrait struct {
	Trait *Trait
	Class *Class
}

// Key returns the repository key of the bound trait.
func (b BoundTrait) Key() Key {
	return Key{Trait: b.Trait, Class: b.Class}
}

// Cascade returns a cascading value reaching depth levels below the
// declaring container. Pass DefaultDepth for the trait's default depth and
// Unbounded for the whole subtree.
func (b BoundTrait) Cascade(v Value, depth int) (CascadingValue, error) {
	loaded, err := b.Trait.Load(v)
	if err != nil {
		return CascadingValue{}, err
	}
	if depth == DefaultDepth {
		depth = b.Trait.CascadeDepth()
	}
	return CascadingValue{Key: b.Key(), Value: loaded, Depth: depth}, nil
}

// MustCascade is Cascade for values known to load; it panics on error.
func (b BoundTrait) MustCascade(v Value, depth int) CascadingValue {
	cv, err := b.Cascade(v, depth)
	if err != nil {
		panic(err)
	}
	return cv
}
