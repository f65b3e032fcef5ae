package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/trait"
	"github.com/go-drift/strata/pkg/widgets"
)

// Finder locates elements in the element tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root element.Element) []element.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []element.Element
	finder   Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() element.Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.describe()))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() element.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) element.Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.describe()))
	}
	return r.elements[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []element.Element { return r.elements }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.elements) }

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool { return len(r.elements) > 0 }

// predicateFinder matches elements satisfying a predicate.
type predicateFinder struct {
	fn   func(element.Element) bool
	desc string
}

func (f *predicateFinder) Evaluate(root element.Element) []element.Element {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string { return f.desc }

// ByPredicate returns a finder that matches elements satisfying fn.
func ByPredicate(fn func(element.Element) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByType returns a finder that matches elements of concrete type T, such
// as *widgets.Button.
func ByType[T element.Element]() Finder {
	t := reflect.TypeFor[T]()
	return &predicateFinder{
		fn:   func(e element.Element) bool { return reflect.TypeOf(e) == t },
		desc: fmt.Sprintf("ByType(%s)", t),
	}
}

// ByClass returns a finder that matches elements whose trait class is c or
// derives from it.
func ByClass(c *trait.Class) Finder {
	return &predicateFinder{
		fn:   func(e element.Element) bool { return e.TraitClass().Is(c) },
		desc: fmt.Sprintf("ByClass(%s)", c.Name()),
	}
}

// ByName returns a finder that matches the element with the given name,
// such as "Button#2".
func ByName(name string) Finder {
	return &predicateFinder{
		fn:   func(e element.Element) bool { return e.String() == name },
		desc: fmt.Sprintf("ByName(%q)", name),
	}
}

// ByText returns a finder that matches labels showing exactly text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(e element.Element) bool {
			l, ok := e.(*widgets.Label)
			return ok && l.Text() == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches labels whose text
// contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(e element.Element) bool {
			l, ok := e.(*widgets.Label)
			return ok && strings.Contains(l.Text(), substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// descendantFinder finds elements matching 'matching' that are descendants
// of elements matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root element.Element) []element.Element {
	var results []element.Element
	seen := make(map[element.Element]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range children(ancestor) {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches elements satisfying 'matching'
// that are descendants of elements matching 'of'. Use it to reach the
// label of a particular button.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds elements matching 'matching' that are ancestors
// of elements matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root element.Element) []element.Element {
	candidates := make(map[element.Element]bool)
	for _, e := range f.matching.Evaluate(root) {
		candidates[e] = true
	}
	var results []element.Element
	seen := make(map[element.Element]bool)
	for _, d := range f.of.Evaluate(root) {
		for p := parent(d); p != nil; p = parent(p) {
			if candidates[p] && !seen[p] {
				seen[p] = true
				results = append(results, p)
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches elements satisfying 'matching'
// that are ancestors of elements matching 'of'. Use it to get from a
// label to the button it names.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

func children(e element.Element) []element.Element {
	if c, ok := e.(interface{ Children() []element.Element }); ok {
		return c.Children()
	}
	return nil
}

func parent(e element.Element) element.Element {
	if p, ok := e.(interface{ Parent() element.Element }); ok {
		return p.Parent()
	}
	return nil
}

// collectMatches performs depth-first pre-order traversal, collecting
// elements that satisfy the predicate.
func collectMatches(root element.Element, predicate func(element.Element) bool) []element.Element {
	var results []element.Element
	walkTree(root, func(e element.Element) {
		if predicate(e) {
			results = append(results, e)
		}
	})
	return results
}

// walkTree performs a depth-first pre-order traversal of the element tree.
func walkTree(root element.Element, visit func(element.Element)) {
	visit(root)
	for _, ch := range children(root) {
		walkTree(ch, visit)
	}
}
