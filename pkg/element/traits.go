package element

import (
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/trait"
)

// Element classes. Widget packages derive their own classes from
// ElementClass or ContainerClass.
var (
	ElementClass   = trait.NewClass("Element", nil)
	LeafClass      = trait.NewClass("Leaf", ElementClass)
	ContainerClass = trait.NewClass("Container", ElementClass)
	StackClass     = trait.NewClass("Stack", ContainerClass)
	ZStackClass    = trait.NewClass("ZStack", ContainerClass)
	ScrollClass    = trait.NewClass("Scroll", ContainerClass)
	LayerClass     = trait.NewClass("Layer", ContainerClass)
)

// Layout traits.
var (
	W = trait.New("w", trait.Options{Load: layout.LoadSize, Lerp: layout.InterpolateSize})
	H = trait.New("h", trait.Options{Load: layout.LoadSize, Lerp: layout.InterpolateSize})
	X = trait.New("x", trait.Options{Load: layout.LoadPosition, Lerp: layout.InterpolatePosition})
	Y = trait.New("y", trait.Options{Load: layout.LoadPosition, Lerp: layout.InterpolatePosition})

	// Spacing is the gap a stack leaves between children.
	Spacing = trait.New("spacing", trait.Options{Load: layout.LoadSize, Lerp: layout.InterpolateSize})
	// Padding insets a container's content on every side.
	Padding = trait.New("padding", trait.Options{
		Default: 0.0,
		Load:    layout.LoadPixels,
		Lerp:    layout.InterpolatePixels,
	})
)

func init() {
	ElementClass.
		MustSetDefault(W, layout.Fit()).
		MustSetDefault(H, layout.Fit()).
		MustSetDefault(X, layout.Center(0)).
		MustSetDefault(Y, layout.Center(0))
	StackClass.MustSetDefault(Spacing, 0)
	LayerClass.
		MustSetDefault(W, layout.Fill()).
		MustSetDefault(H, layout.Fill())

	W.OnUpdate(sizeChanged)
	H.OnUpdate(sizeChanged)
	X.OnUpdate(positionChanged)
	Y.OnUpdate(positionChanged)
	Spacing.OnUpdate(contentChanged)
	Padding.OnUpdate(contentChanged)
}

func holderBase(c *trait.Context) *Base {
	if e, ok := c.Holder().(Element); ok {
		return e.base()
	}
	return nil
}

func sizeChanged(c *trait.Context) {
	if b := holderBase(c); b != nil {
		b.Invalidate()
	}
}

func positionChanged(c *trait.Context) {
	if b := holderBase(c); b != nil && b.parent != nil {
		b.parent.base().enqueue(rectQueue)
	}
}

func contentChanged(c *trait.Context) {
	if b := holderBase(c); b != nil {
		b.enqueue(minSizeQueue)
		b.enqueue(rectQueue)
	}
}
