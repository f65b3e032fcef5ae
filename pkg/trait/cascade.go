package trait

import "slices"

// CascadingValue is a container-scoped override: every descendant of the
// declaring container whose class matches Key.Class, down to Depth levels,
// receives Value in its parent layer. Depth Unbounded reaches the whole
// subtree.
type CascadingValue struct {
	Key   Key
	Value Value
	Depth int
}

// Reaches reports whether the cascade covers a descendant distance levels
// below the declaring container (children are at distance 1).
func (v CascadingValue) Reaches(distance int) bool {
	return v.Depth < 0 || distance <= v.Depth
}

// Dispatcher walks the subtree of a repository's owner. Repositories call it
// after every change so descendants re-resolve their parent layers.
type Dispatcher interface {
	DispatchCascade(key Key, depth int)
}

// Repository holds the cascading values declared by one container, keyed by
// (trait, class). Adding a value under an existing key replaces it.
type Repository struct {
	owner   Dispatcher
	entries map[Key]CascadingValue
	order   []Key
}

// NewRepository returns an empty repository dispatching through owner.
func NewRepository(owner Dispatcher) *Repository {
	return &Repository{owner: owner, entries: make(map[Key]CascadingValue)}
}

// Add stores v under its key and dispatches it through the subtree.
// Adding the same value twice leaves the tree unchanged.
func (r *Repository) Add(v CascadingValue) {
	old, existed := r.entries[v.Key]
	r.entries[v.Key] = v
	if !existed {
		r.order = append(r.order, v.Key)
	}
	depth := v.Depth
	if existed && (old.Depth < 0 || (depth >= 0 && old.Depth > depth)) {
		depth = old.Depth
	}
	r.dispatch(v.Key, depth)
}

// Set stores v under key with the trait's default cascade depth.
func (r *Repository) Set(key Key, v Value) error {
	cv, err := BoundTrait(key).Cascade(v, DefaultDepth)
	if err != nil {
		return err
	}
	r.Add(cv)
	return nil
}

// Delete removes the value under key and lets the subtree fall back to
// outer cascades or class defaults. It reports whether a value was removed.
func (r *Repository) Delete(key Key) bool {
	old, ok := r.entries[key]
	if !ok {
		return false
	}
	delete(r.entries, key)
	r.order = slices.DeleteFunc(r.order, func(k Key) bool { return k == key })
	r.dispatch(key, old.Depth)
	return true
}

// Get returns the value stored under key.
func (r *Repository) Get(key Key) (CascadingValue, bool) {
	v, ok := r.entries[key]
	return v, ok
}

// Len returns the number of stored values.
func (r *Repository) Len() int { return len(r.order) }

// Each calls fn for every stored value in insertion order.
func (r *Repository) Each(fn func(CascadingValue)) {
	for _, k := range r.order {
		fn(r.entries[k])
	}
}

// Lookup finds the value this repository cascades onto an element of class c
// sitting distance levels below the owner. When several classes match, the
// most recently added entry wins.
func (r *Repository) Lookup(t *Trait, c *Class, distance int) (Value, bool) {
	for i := len(r.order) - 1; i >= 0; i-- {
		k := r.order[i]
		if k.Trait != t || !c.Is(k.Class) {
			continue
		}
		if v := r.entries[k]; v.Reaches(distance) {
			return v.Value, true
		}
	}
	return nil, false
}

// Traits returns the traits that have at least one stored value.
func (r *Repository) Traits() []*Trait {
	var out []*Trait
	for _, k := range r.order {
		if !slices.Contains(out, k.Trait) {
			out = append(out, k.Trait)
		}
	}
	return out
}

func (r *Repository) dispatch(key Key, depth int) {
	if r.owner != nil {
		r.owner.DispatchCascade(key, depth)
	}
}
