package layout

import (
	"fmt"

	"github.com/go-drift/strata/pkg/trait"
)

// FillSpacing spreads a container's leftover space evenly between its
// children, never letting a gap fall below Min. As a Size it resolves to
// Min, which is what the container's minimum is computed with.
type FillSpacing struct {
	trait.DependencyBase
	Min float64
}

// Spread returns a fill spacing with the given minimum gap.
func Spread(min float64) *FillSpacing { return &FillSpacing{Min: min} }

func (s *FillSpacing) Get(_, _, _ float64, _ Axis) float64 { return s.Min }
func (s *FillSpacing) ReliesOnMin() bool                   { return false }
func (s *FillSpacing) ReliesOnMax() bool                   { return false }
func (s *FillSpacing) ReliesOnOther() bool                 { return false }

// Gap returns the gap used between gaps+1 children when residual pixels are
// left over after every child got its size.
func (s *FillSpacing) Gap(residual float64, gaps int) float64 {
	if gaps <= 0 {
		return s.Min
	}
	return max(s.Min, residual/float64(gaps))
}

func (s *FillSpacing) Equal(other trait.Value) bool {
	o, ok := other.(*FillSpacing)
	return ok && o.Min == s.Min
}

func (s *FillSpacing) String() string { return fmt.Sprintf("Spread(%g)", s.Min) }

// SpacingGap resolves the gap a container leaves between children. Fill
// spacing needs the residual along the axis; every other size is used as an
// absolute value.
func SpacingGap(s Size, residual float64, gaps int, axis Axis) float64 {
	if s == nil {
		return 0
	}
	if fs, ok := s.(*FillSpacing); ok {
		return fs.Gap(residual, gaps)
	}
	return s.Get(0, 0, 0, axis)
}
