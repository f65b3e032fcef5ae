package element

import (
	"github.com/go-drift/strata/pkg/focus"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/trait"
)

// Stack lays its children out in sequence along one axis. Fill children
// share what is left after every other child got its size; spacing sits
// between adjacent children.
type Stack struct {
	Container
	axis layout.Axis
}

var _ layout.Orienter = (*Stack)(nil)

// NewStack returns an empty stack along axis.
func NewStack(tree *Tree, axis layout.Axis) *Stack {
	s := &Stack{axis: axis}
	s.InitStack(s, tree, StackClass)
	return s
}

// NewHStack returns a horizontal stack.
func NewHStack(tree *Tree) *Stack { return NewStack(tree, layout.Horizontal) }

// NewVStack returns a vertical stack.
func NewVStack(tree *Tree) *Stack { return NewStack(tree, layout.Vertical) }

// InitStack is Init for types embedding Stack.
func (s *Stack) InitStack(self Element, tree *Tree, class *trait.Class, extra ...*trait.Trait) {
	s.InitContainer(self, tree, class, append([]*trait.Trait{Spacing}, extra...)...)
}

// Axis returns the layout axis.
func (s *Stack) Axis() layout.Axis { return s.axis }

// SetAxis changes the layout axis. Pivotable sizes and positions watching
// the stack are told about the change.
func (s *Stack) SetAxis(axis layout.Axis) {
	if axis == s.axis {
		return
	}
	s.axis = axis
	Walk(s, func(e Element) {
		for _, t := range e.base().traits {
			if p, ok := e.base().Value(t).(interface{ Pivoted() }); ok {
				p.Pivoted()
			}
		}
	})
	s.enqueue(minSizeQueue)
	s.enqueue(rectQueue)
}

// SpacingSize returns the resolved spacing.
func (s *Stack) SpacingSize() layout.Size {
	v, _ := s.Value(Spacing).(layout.Size)
	return v
}

// SetSpacing assigns the spacing. Numbers become absolute gaps.
func (s *Stack) SetSpacing(v trait.Value) error { return s.Set(Spacing, v) }

func (s *Stack) minSpacing() float64 {
	sp := s.SpacingSize()
	if sp == nil {
		return 0
	}
	return max(0, sp.Get(0, 0, 0, s.axis))
}

func (s *Stack) measureChildren() ([2]float64, error) {
	var m [2]float64
	along, cross := s.axis, s.axis.Other()
	for _, ch := range s.children {
		for _, axis := range axes {
			if err := s.checkFill(ch, axis); err != nil {
				return m, err
			}
		}
		cb := ch.base()
		m[along] += cb.minSize[along]
		m[cross] = max(m[cross], cb.minSize[cross])
	}
	if n := len(s.children); n > 1 {
		m[along] += s.minSpacing() * float64(n-1)
	}
	p := s.Padding() * 2
	return [2]float64{m[0] + p, m[1] + p}, nil
}

func (s *Stack) arrange() error {
	content := s.contentRect()
	avail := [2]float64{content.W, content.H}
	origin := [2]float64{content.X, content.Y}
	along, cross := s.axis, s.axis.Other()
	n := len(s.children)
	if n == 0 {
		return nil
	}
	gaps := n - 1

	sizes := make([][2]float64, n)
	fill := make([]bool, n)
	used := 0.0
	nFill := 0
	for i, ch := range s.children {
		cb := ch.base()
		sz, err := cb.sizeOf(along)
		if err != nil {
			return err
		}
		if sz.ReliesOnMax() {
			fill[i] = true
			nFill++
			continue
		}
		r, err := cb.resolve(cb.contentMin, avail, false)
		if err != nil {
			return err
		}
		sizes[i] = r
		used += r[along]
	}
	if nFill > 0 {
		share := max(0, (avail[along]-used-s.minSpacing()*float64(gaps))/float64(nFill))
		for i, ch := range s.children {
			if !fill[i] {
				continue
			}
			cb := ch.base()
			var space [2]float64
			space[along] = share
			space[cross] = avail[cross]
			r, err := cb.resolve(cb.contentMin, space, false)
			if err != nil {
				return err
			}
			sizes[i] = r
			used += r[along]
		}
	}

	gap := layout.SpacingGap(s.SpacingSize(), avail[along]-used, gaps, along)
	cursor := origin[along]
	for i, ch := range s.children {
		cb := ch.base()
		var pos [2]float64
		pos[along] = cursor
		pos[cross] = origin[cross] + cb.positionOf(cross).Get(avail[cross], sizes[i][cross], cross)
		cb.place(graphics.Rect{X: pos[0], Y: pos[1], W: sizes[i][0], H: sizes[i][1]}, s.clip, s.Visible())
		cursor += sizes[i][along] + gap
	}
	return nil
}

// FocusChain steps through children in order for moves along the stack's
// axis and bubbles moves across it.
func (s *Stack) FocusChain(req FocusRequest) FocusResult {
	return s.chain(req, s.spatial)
}

func (s *Stack) spatial(req FocusRequest, from int) FocusResult {
	if req.Dir.Axis() != s.axis {
		return FocusResult{Action: focus.Bubble}
	}
	return s.step(from, req.Dir.Sign())
}
