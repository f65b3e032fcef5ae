package testbed

import (
	"time"

	"github.com/go-drift/strata/pkg/animation"
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/graphics"
)

// NewAnimatedBox returns a box whose width animates linearly from from to
// to over d, starting on the next tick.
func NewAnimatedBox(tree *element.Tree, d time.Duration, from, to, h float64, c graphics.Color) *LayoutBox {
	b := NewLayoutBox(tree, 0, h, c)
	_ = b.SetW(from)
	tree.Animate(animation.Linear(d), func() {
		_ = b.SetW(to)
	})
	return b
}
