package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/trait"
)

type holder struct{ class *trait.Class }

func (h holder) TraitClass() *trait.Class  { return h.class }
func (h holder) Animator() *trait.Animator { return nil }
func (h holder) String() string            { return "E#1" }

func TestSizeVariants(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want float64
	}{
		{"absolute", Abs(42), 42},
		{"fill", FillOf(0.5, 10), 60},
		{"fit", FitOf(1, 4), 24},
		{"ratio", Ratio(2, 0), 60},
		{"interpolated", &InterpolatedSize{From: Abs(100), To: Abs(200), Progress: 0.25}, 125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.Get(20, 100, 30, Horizontal); got != tt.want {
				t.Errorf("Get = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReliance(t *testing.T) {
	assert.False(t, Abs(1).ReliesOnMin() || Abs(1).ReliesOnMax() || Abs(1).ReliesOnOther())
	assert.True(t, Fill().ReliesOnMax())
	assert.True(t, Fit().ReliesOnMin())
	assert.True(t, Ratio(1, 0).ReliesOnOther())

	c, err := Clamp(Abs(10), Fit(), nil)
	require.NoError(t, err)
	assert.True(t, c.ReliesOnMin())
	assert.False(t, c.ReliesOnMax())
}

func TestArithmeticPreservesVariant(t *testing.T) {
	f := Fill().Times(0.5).Plus(4)
	assert.Equal(t, 0.5, f.Fraction)
	assert.Equal(t, 4.0, f.Offset)
	assert.Equal(t, 10.0, Abs(10).Plus(10).Over(2).Value())
	assert.Equal(t, 15.0, Abs(10).Over(2).Plus(10).Value())
	assert.Equal(t, 8.0, FitOf(1, 10).Minus(2).Offset)
}

func TestClampedSize(t *testing.T) {
	lo := Abs(250)
	c, err := Clamp(Abs(200), lo, nil)
	require.NoError(t, err)
	assert.Equal(t, 250.0, c.Get(0, 0, 0, Vertical))

	w := trait.New("clamped-w", trait.Options{Load: LoadSize})
	ctx := trait.NewContext(w, holder{trait.NewClass("Element", nil)})
	var seen []float64
	w.OnUpdate(func(c *trait.Context) {
		seen = append(seen, c.Value().(Size).Get(0, 0, 0, Vertical))
	})
	require.NoError(t, ctx.Set(c))

	lo.SetValue(180)
	assert.Equal(t, 200.0, ctx.Value().(Size).Get(0, 0, 0, Vertical))
	assert.Equal(t, []float64{250, 200}, seen)

	hi := Abs(150)
	require.NoError(t, c.SetMax(hi))
	// The minimum wins over the maximum.
	assert.Equal(t, 180.0, c.Get(0, 0, 0, Vertical))
	lo.SetValue(0)
	assert.Equal(t, 150.0, c.Get(0, 0, 0, Vertical))
}

func TestClampRejectsCycle(t *testing.T) {
	inner, err := Clamp(Abs(1), nil, nil)
	require.NoError(t, err)
	outer, err := Clamp(inner, nil, nil)
	require.NoError(t, err)
	err = inner.SetMin(outer)
	assert.ErrorIs(t, err, errors.ErrInternal)
	assert.Nil(t, inner.Min())
}

type orient struct{ axis Axis }

func (o *orient) Axis() Axis { return o.axis }

func TestPivotable(t *testing.T) {
	o := &orient{Horizontal}
	p := Pivot(Abs(10), Abs(20), o)
	assert.Equal(t, 10.0, p.Get(0, 0, 0, Horizontal))
	o.axis = Vertical
	assert.Equal(t, 20.0, p.Get(0, 0, 0, Horizontal))
	assert.Equal(t, 10.0, p.Invert().Get(0, 0, 0, Horizontal))
}

func TestAnchorPositions(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want float64
	}{
		{"left", Left(0), 0},
		{"left offset", Left(5), 5},
		{"center", Center(0), 40},
		{"right", Right(0), 80},
		{"right inset", Right(10), 70},
		{"padded left", Left(0).WithPadding(8), 8},
		{"padded right", Right(0).WithPadding(8), 72},
		{"absolute", At(33), 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.pos.Get(100, 20, Horizontal), 1e-9)
		})
	}
}

func TestFillSpacingGap(t *testing.T) {
	s := Spread(4)
	assert.Equal(t, 10.0, s.Gap(30, 3))
	assert.Equal(t, 4.0, s.Gap(6, 3))
	assert.Equal(t, 4.0, s.Gap(100, 0))
	assert.Equal(t, 12.0, SpacingGap(Abs(12), 100, 3, Vertical))
	assert.Zero(t, SpacingGap(nil, 100, 3, Vertical))
}

func TestLoaders(t *testing.T) {
	v, err := LoadSize(12)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v.(*AbsoluteSize).Value())

	f := Fill()
	v, err = LoadSize(f)
	require.NoError(t, err)
	assert.Same(t, f, v)

	_, err = LoadSize("wide")
	assert.ErrorIs(t, err, errors.ErrConfiguration)

	v, err = LoadPosition(7.5)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v.(*AbsolutePosition).Value())

	_, err = LoadPosition(Fill())
	assert.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestInterpolate(t *testing.T) {
	v := InterpolatePosition(At(0), At(100), 0.3).(Position)
	assert.InDelta(t, 30, v.Get(0, 0, Horizontal), 1e-9)
	assert.Equal(t, 5.0, InterpolatePixels(0.0, 10.0, 0.5))
}
