package element

import "github.com/go-drift/strata/pkg/trait"

// ZStack overlays any number of children inside its padded rect. Later
// children draw above earlier ones; spatial focus moves between children
// geometrically.
type ZStack struct {
	Container
}

// NewZStack returns an empty z-stack.
func NewZStack(tree *Tree) *ZStack {
	z := &ZStack{}
	z.InitContainer(z, tree, ZStackClass)
	return z
}

// InitZStack is Init for types embedding ZStack.
func (z *ZStack) InitZStack(self Element, tree *Tree, class *trait.Class, extra ...*trait.Trait) {
	z.InitContainer(self, tree, class, extra...)
}
