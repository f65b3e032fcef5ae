package trait

import (
	"reflect"
	"slices"

	"github.com/go-drift/strata/pkg/errors"
)

// Dependency is a trait value with mutable internal state. Values implement
// it by embedding DependencyBase.
type Dependency interface {
	Dep() *DependencyBase
}

// DependencyBase records who must hear about a value's internal changes: the
// contexts resolving to it and the dependencies that contain it. The graph of
// dependencies is acyclic; Link refuses edges that would close a cycle.
//
// The zero value is ready to use.
type DependencyBase struct {
	contexts []*Context
	parents  []*DependencyBase
	children []*DependencyBase
}

// Dep returns the base itself so that embedding types satisfy Dependency.
func (d *DependencyBase) Dep() *DependencyBase { return d }

// Contexts returns the contexts currently resolving to this value.
func (d *DependencyBase) Contexts() []*Context {
	return slices.Clone(d.contexts)
}

// Parents returns the dependencies that directly contain this one.
func (d *DependencyBase) Parents() []*DependencyBase {
	return slices.Clone(d.parents)
}

// Link records that parent contains child, so child's changes reach every
// context of parent. A nil child is ignored.
func Link(parent, child Dependency) error {
	if isNil(parent) || isNil(child) {
		return nil
	}
	p, c := parent.Dep(), child.Dep()
	if slices.Contains(p.children, c) {
		return nil
	}
	if p == c || c.reaches(p) {
		return &errors.InternalError{Op: "trait.Link", Reason: "dependency cycle"}
	}
	p.children = append(p.children, c)
	c.parents = append(c.parents, p)
	return nil
}

// Unlink removes an edge created by Link.
func Unlink(parent, child Dependency) {
	if isNil(parent) || isNil(child) {
		return
	}
	p, c := parent.Dep(), child.Dep()
	p.children = slices.DeleteFunc(p.children, func(x *DependencyBase) bool { return x == c })
	c.parents = slices.DeleteFunc(c.parents, func(x *DependencyBase) bool { return x == p })
}

// Relink replaces the child old of parent with next. It is the helper
// setters of composite values use.
func Relink(parent Dependency, old, next Dependency) error {
	if isNil(old) {
		old = nil
	}
	if isNil(next) {
		next = nil
	}
	if err := Link(parent, next); err != nil {
		return err
	}
	if old != nil && (next == nil || old.Dep() != next.Dep()) {
		Unlink(parent, old)
	}
	return nil
}

// reaches reports whether target is d or one of its descendants.
func (d *DependencyBase) reaches(target *DependencyBase) bool {
	stack := []*DependencyBase{d}
	seen := map[*DependencyBase]bool{}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == target {
			return true
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		stack = append(stack, n.children...)
	}
	return false
}

// Changed notifies every context that reaches this value, directly or
// through containing dependencies. Callbacks run even though the contexts
// still hold the same value instance.
func (d *DependencyBase) Changed() {
	var targets []*Context
	seenCtx := map[*Context]bool{}
	seenDep := map[*DependencyBase]bool{}
	queue := []*DependencyBase{d}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if seenDep[n] {
			continue
		}
		seenDep[n] = true
		for _, c := range n.contexts {
			if !seenCtx[c] {
				seenCtx[c] = true
				targets = append(targets, c)
			}
		}
		queue = append(queue, n.parents...)
	}
	for _, c := range targets {
		c.refresh(true)
	}
}

func (d *DependencyBase) addContext(c *Context) {
	if !slices.Contains(d.contexts, c) {
		d.contexts = append(d.contexts, c)
	}
}

func (d *DependencyBase) removeContext(c *Context) {
	d.contexts = slices.DeleteFunc(d.contexts, func(x *Context) bool { return x == c })
}

// isNil reports whether a Dependency interface is nil or holds a nil pointer.
func isNil(d Dependency) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
