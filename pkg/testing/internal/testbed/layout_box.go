// Package testbed provides small elements for exercising the testing
// framework without the full widget set.
package testbed

import (
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// LayoutBox is a fixed-size leaf filled with a solid color.
type LayoutBox struct {
	element.Leaf
	Color graphics.Color
}

// NewLayoutBox returns a w by h box of color c.
func NewLayoutBox(tree *element.Tree, w, h float64, c graphics.Color) *LayoutBox {
	b := &LayoutBox{Color: c}
	b.Init(b, tree, element.LeafClass)
	b.SetIntrinsic(w, h)
	return b
}

func (b *LayoutBox) Paint(r render.Renderer, dst render.Surface, alpha float64) {
	r.DrawRect(dst, b.BlitRect(), b.Color, alpha)
}

// NewRow returns a horizontal stack holding children, so they keep their
// own widths instead of filling the layer.
func NewRow(tree *element.Tree, children ...element.Element) *element.Stack {
	row := element.NewHStack(tree)
	for _, ch := range children {
		_ = row.Append(ch)
	}
	return row
}
