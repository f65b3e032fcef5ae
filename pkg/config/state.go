// Package config holds the process state a view runs under (display zoom,
// pointer position, frame timing, audio flags, asset root, joysticks) and
// the optional strata.yaml file it is initialized from.
package config

import (
	"slices"
	"time"

	"github.com/go-drift/strata/pkg/graphics"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Joystick is one connected controller.
type Joystick struct {
	ID   int
	Name string
}

// State is the state shared by everything a view drives. A View holds one;
// nothing in the core keeps it in a package variable.
type State struct {
	// Zoom is the ratio of window pixels to view pixels.
	Zoom float64
	// Mouse is the last pointer position in view coordinates.
	Mouse graphics.Offset
	// FPS is the target frame rate.
	FPS int
	// DeltaTime is the length of the current tick in seconds.
	DeltaTime float64
	// Clock, when set, measures DeltaTime instead of deriving it from FPS.
	Clock Clock

	AudioEnabled bool
	Muted        bool

	// AssetRoot is the directory font sheets and images are loaded from.
	AssetRoot string
	// IterationCap bounds the layout rounds of one tick.
	IterationCap int

	joysticks []Joystick
	last      time.Time
}

// NewState returns a state with the defaults used when no file is present.
func NewState() *State {
	s := &State{
		Zoom:         DefaultZoom,
		FPS:          DefaultFPS,
		AudioEnabled: true,
		AssetRoot:    "assets",
		IterationCap: DefaultIterationCap,
	}
	s.DeltaTime = s.FixedDelta()
	return s
}

// FixedDelta returns 1/FPS, treating FPS below one as one.
func (s *State) FixedDelta() float64 {
	return 1 / float64(max(1, s.FPS))
}

// Tick advances DeltaTime. Without a clock it is the fixed delta; with one
// it is the time since the previous Tick, never negative.
func (s *State) Tick() float64 {
	if s.Clock == nil {
		s.DeltaTime = s.FixedDelta()
		return s.DeltaTime
	}
	now := s.Clock.Now()
	if s.last.IsZero() {
		s.DeltaTime = s.FixedDelta()
	} else {
		s.DeltaTime = max(0, now.Sub(s.last).Seconds())
	}
	s.last = now
	return s.DeltaTime
}

// SoundOn reports whether audio should play.
func (s *State) SoundOn() bool { return s.AudioEnabled && !s.Muted }

// RegisterJoystick records a connected controller, replacing any entry with
// the same id.
func (s *State) RegisterJoystick(j Joystick) {
	s.RemoveJoystick(j.ID)
	s.joysticks = append(s.joysticks, j)
}

// RemoveJoystick forgets the controller with the given id.
func (s *State) RemoveJoystick(id int) bool {
	n := len(s.joysticks)
	s.joysticks = slices.DeleteFunc(s.joysticks, func(j Joystick) bool { return j.ID == id })
	return len(s.joysticks) != n
}

// Joystick returns the controller with the given id.
func (s *State) Joystick(id int) (Joystick, bool) {
	for _, j := range s.joysticks {
		if j.ID == id {
			return j, true
		}
	}
	return Joystick{}, false
}

// Joysticks returns the connected controllers in registration order.
func (s *State) Joysticks() []Joystick { return slices.Clone(s.joysticks) }

// SyncJoysticks makes the registry match ids, keeping the names of
// controllers already known.
func (s *State) SyncJoysticks(ids []int) {
	s.joysticks = slices.DeleteFunc(s.joysticks, func(j Joystick) bool { return !slices.Contains(ids, j.ID) })
	for _, id := range ids {
		if _, ok := s.Joystick(id); !ok {
			s.joysticks = append(s.joysticks, Joystick{ID: id})
		}
	}
}
