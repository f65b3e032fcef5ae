// Package widgets provides the stock elements built on the element
// protocol: Box, Label, Button, Toggle, Slider and TextField.
//
// Widgets draw through a Theme. A Box cascades its theme's font and text
// color to the labels beneath it, so nested widgets pick up the styling of
// the nearest themed ancestor:
//
//	th := widgets.DefaultTheme()
//	ok := widgets.NewButton(tree, "OK", th)
//	ok.OnClick = func() { layer.Exit() }
package widgets

import (
	"fmt"
	"time"

	"github.com/go-drift/strata/pkg/animation"
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/trait"
)

// Material states shared by every Box.
const (
	StateNormal   = "normal"
	StateFocused  = "focused"
	StatePressed  = "pressed"
	StateDisabled = "disabled"
)

// Theme holds the materials, font and colors widgets draw with.
type Theme struct {
	Font render.Font
	// Text is the label color; disabled widgets draw it at half opacity.
	Text graphics.Color
	// Accent colors slider thumbs, toggle indicators and the text cursor.
	Accent graphics.Color

	Normal   render.Material
	Focused  render.Material
	Pressed  render.Material
	Disabled render.Material

	// Padding insets a box's children.
	Padding float64
	// Transition cross-fades materials on state changes; nil switches at once.
	Transition *animation.Animation
}

// DefaultTheme returns the built-in dark theme drawn with the grid font.
func DefaultTheme() *Theme {
	accent := graphics.RGB(120, 160, 255)
	return &Theme{
		Font:   render.GridFont(),
		Text:   graphics.ColorWhite,
		Accent: accent,
		Normal: render.Layered{
			render.Solid{Color: graphics.RGB(48, 52, 64)},
			render.Border{Color: graphics.RGB(90, 96, 112), Thickness: 1},
		},
		Focused: render.Layered{
			render.Solid{Color: graphics.RGB(56, 64, 86)},
			render.Border{Color: accent, Thickness: 2},
		},
		Pressed: render.Layered{
			render.Solid{Color: graphics.RGB(34, 38, 48)},
			render.Border{Color: accent, Thickness: 2},
		},
		Disabled: render.Layered{
			render.Solid{Color: graphics.RGB(40, 40, 44)},
			render.Border{Color: graphics.RGB(60, 60, 64), Thickness: 1},
		},
		Padding:    4,
		Transition: animation.Smooth(120 * time.Millisecond),
	}
}

func (th *Theme) materials() map[string]render.Material {
	return map[string]render.Material{
		StateNormal:   th.Normal,
		StateFocused:  th.Focused,
		StatePressed:  th.Pressed,
		StateDisabled: th.Disabled,
	}
}

// Text traits. Both cascade through the whole subtree of the container
// declaring them.
var (
	TextColor = trait.New("text-color", trait.Options{
		Load:         loadColor,
		Lerp:         lerpColor,
		CascadeDepth: trait.Unbounded,
	})
	TextFont = trait.New("font", trait.Options{
		Load:         loadFont,
		CascadeDepth: trait.Unbounded,
	})
)

// Widget classes.
var (
	LabelClass     = trait.NewClass("Label", element.LeafClass)
	BoxClass       = trait.NewClass("Box", element.ZStackClass)
	ButtonClass    = trait.NewClass("Button", BoxClass)
	ToggleClass    = trait.NewClass("Toggle", ButtonClass)
	SliderClass    = trait.NewClass("Slider", BoxClass)
	TextFieldClass = trait.NewClass("TextField", BoxClass)
)

// indicatorSize is the side of the toggle indicator square.
const indicatorSize = 12

func init() {
	LabelClass.
		MustSetDefault(TextColor, graphics.ColorWhite).
		MustSetDefault(TextFont, render.GridFont())
	ToggleClass.MustSetDefault(element.W, layout.Fit().Plus(indicatorSize*2))
	SliderClass.
		MustSetDefault(element.W, 120).
		MustSetDefault(element.H, 16)
	TextFieldClass.MustSetDefault(element.W, 160)

	TextFont.OnUpdate(func(c *trait.Context) {
		if l, ok := c.Holder().(*Label); ok {
			l.Invalidate()
		}
	})
}

func loadColor(v trait.Value) (trait.Value, error) {
	switch c := v.(type) {
	case graphics.Color:
		return c, nil
	case uint32:
		return graphics.Color(c), nil
	case int:
		return graphics.Color(uint32(c)), nil
	}
	return nil, fmt.Errorf("%T is not a color", v)
}

func lerpColor(from, to trait.Value, t float64) trait.Value {
	a, ok1 := from.(graphics.Color)
	b, ok2 := to.(graphics.Color)
	if !ok1 || !ok2 {
		return to
	}
	return graphics.LerpColor(a, b, t)
}

func loadFont(v trait.Value) (trait.Value, error) {
	if f, ok := v.(render.Font); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%T is not a font", v)
}
