package trait

import "sync"

// Class identifies a kind of element for default values and cascade
// matching. Classes form a single-inheritance chain; a cascade declared for a
// class applies to every element whose class is that class or a subclass.
type Class struct {
	name   string
	parent *Class

	mu       sync.RWMutex
	defaults map[*Trait]Value
}

// NewClass declares a class. Parent may be nil for a root class.
func NewClass(name string, parent *Class) *Class {
	return &Class{name: name, parent: parent}
}

// Name returns the class name.
func (c *Class) Name() string {
	if c == nil {
		return "<nil>"
	}
	return c.name
}

// Parent returns the superclass, or nil.
func (c *Class) Parent() *Class { return c.parent }

// Is reports whether c is other or a subclass of it.
func (c *Class) Is(other *Class) bool {
	for k := c; k != nil; k = k.parent {
		if k == other {
			return true
		}
	}
	return false
}

// SetDefault overrides the default of t for this class and its subclasses.
// The value goes through the trait's loader.
func (c *Class) SetDefault(t *Trait, v Value) error {
	loaded, err := t.Load(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.defaults == nil {
		c.defaults = make(map[*Trait]Value)
	}
	c.defaults[t] = loaded
	return nil
}

// MustSetDefault is SetDefault for package initialization; it panics on error.
func (c *Class) MustSetDefault(t *Trait, v Value) *Class {
	if err := c.SetDefault(t, v); err != nil {
		panic(err)
	}
	return c
}

// Default returns the default of t for this class: the nearest override in
// the class chain, or the trait's own default.
func (c *Class) Default(t *Trait) Value {
	for k := c; k != nil; k = k.parent {
		k.mu.RLock()
		v, ok := k.defaults[t]
		k.mu.RUnlock()
		if ok {
			return v
		}
	}
	return t.Default()
}

func (c *Class) String() string { return c.Name() }
