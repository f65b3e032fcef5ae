package layout

import (
	"fmt"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/trait"
)

// LoadSize coerces numbers into absolute sizes and passes sizes through.
// It is the loader of every size trait.
func LoadSize(v trait.Value) (trait.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Size:
		return x, nil
	case int:
		return Abs(float64(x)), nil
	case float64:
		return Abs(x), nil
	case float32:
		return Abs(float64(x)), nil
	}
	return nil, &errors.ConfigurationError{Reason: fmt.Sprintf("cannot use %T as a size", v)}
}

// LoadPosition coerces numbers into absolute positions and passes
// positions through.
func LoadPosition(v trait.Value) (trait.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Position:
		return x, nil
	case int:
		return At(float64(x)), nil
	case float64:
		return At(x), nil
	case float32:
		return At(float64(x)), nil
	}
	return nil, &errors.ConfigurationError{Reason: fmt.Sprintf("cannot use %T as a position", v)}
}

// LoadPixels coerces numbers into float64 pixels.
func LoadPixels(v trait.Value) (trait.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case int:
		return float64(x), nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	}
	return nil, &errors.ConfigurationError{Reason: fmt.Sprintf("cannot use %T as pixels", v)}
}

// InterpolateSize is the lerp of size traits.
func InterpolateSize(from, to trait.Value, t float64) trait.Value {
	a, okA := from.(Size)
	b, okB := to.(Size)
	if !okA || !okB {
		return to
	}
	return &InterpolatedSize{From: a, To: b, Progress: t}
}

// InterpolatePosition is the lerp of position traits.
func InterpolatePosition(from, to trait.Value, t float64) trait.Value {
	a, okA := from.(Position)
	b, okB := to.(Position)
	if !okA || !okB {
		return to
	}
	return &InterpolatedPosition{From: a, To: b, Progress: t}
}

// InterpolatePixels is the lerp of pixel traits.
func InterpolatePixels(from, to trait.Value, t float64) trait.Value {
	a, okA := from.(float64)
	b, okB := to.(float64)
	if !okA || !okB {
		return to
	}
	return a + (b-a)*t
}
