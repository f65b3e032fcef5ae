package element

import (
	"math"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/trait"
)

var axes = [2]layout.Axis{layout.Horizontal, layout.Vertical}

func sizeTrait(axis layout.Axis) *trait.Trait {
	if axis == layout.Horizontal {
		return W
	}
	return H
}

func positionTrait(axis layout.Axis) *trait.Trait {
	if axis == layout.Horizontal {
		return X
	}
	return Y
}

// sizeOf returns the resolved size along axis, or a configuration error
// naming the element and the trait when nothing provides one.
func (b *Base) sizeOf(axis layout.Axis) (layout.Size, error) {
	t := sizeTrait(axis)
	s, ok := b.Value(t).(layout.Size)
	if !ok || s == nil {
		return nil, &errors.ConfigurationError{Element: b.name, Trait: t.Name(), Reason: "no size set and no class default"}
	}
	return s, nil
}

// positionOf returns the resolved position along axis; elements without
// one are centered.
func (b *Base) positionOf(axis layout.Axis) layout.Position {
	if p, ok := b.Value(positionTrait(axis)).(layout.Position); ok && p != nil {
		return p
	}
	return layout.Center(0)
}

// resolveOrder returns the axis to resolve first: a ratio size needs the
// other axis resolved before it.
func (b *Base) resolveOrder() (first, second layout.Axis, err error) {
	w, err := b.sizeOf(layout.Horizontal)
	if err != nil {
		return 0, 0, err
	}
	h, err := b.sizeOf(layout.Vertical)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case w.ReliesOnOther() && h.ReliesOnOther():
		return 0, 0, &errors.ConfigurationError{Element: b.name, Trait: W.Name(), Reason: "w and h both depend on each other"}
	case w.ReliesOnOther():
		return layout.Vertical, layout.Horizontal, nil
	}
	return layout.Horizontal, layout.Vertical, nil
}

// resolveAxis resolves one extent. In minimum mode there is no container
// space yet, so sizes that need it contribute at least the content minimum.
func (b *Base) resolveAxis(axis layout.Axis, cm, max, other float64, minimum bool) (float64, error) {
	s, err := b.sizeOf(axis)
	if err != nil {
		return 0, err
	}
	v := s.Get(cm, max, other, axis)
	if minimum && s.ReliesOnMax() {
		v = math.Max(v, cm)
	}
	return math.Max(v, 0), nil
}

// resolve resolves both extents against the content minimum cm and the
// space max.
func (b *Base) resolve(cm, max [2]float64, minimum bool) ([2]float64, error) {
	var out [2]float64
	first, second, err := b.resolveOrder()
	if err != nil {
		return out, err
	}
	v, err := b.resolveAxis(first, cm[first], max[first], cm[second], minimum)
	if err != nil {
		return out, err
	}
	out[first] = v
	v, err = b.resolveAxis(second, cm[second], max[second], out[first], minimum)
	if err != nil {
		return out, err
	}
	out[second] = v
	return out, nil
}
