package render

import (
	"image"

	"github.com/go-drift/strata/pkg/animation"
)

// StateController selects an element's material by state name and
// cross-fades between materials when the state changes under a transition.
type StateController struct {
	states map[string]Material

	current  string
	previous string
	progress *animation.Progress

	// Transition plays state changes; nil switches at once.
	Transition *animation.Animation

	cache *Cache
	id    uint64
}

// NewStateController returns a controller in state initial.
func NewStateController(initial string, states map[string]Material) *StateController {
	s := &StateController{states: make(map[string]Material, len(states)), current: initial}
	for k, m := range states {
		s.states[k] = m
	}
	return s
}

// UseCache makes the controller draw prerenderable materials through c
// under element id.
func (s *StateController) UseCache(c *Cache, id uint64) {
	s.cache = c
	s.id = id
}

// SetMaterial assigns the material of a state.
func (s *StateController) SetMaterial(state string, m Material) {
	s.states[state] = m
	if s.cache != nil {
		s.cache.Drop(s.id)
	}
}

// Material returns the material of a state.
func (s *StateController) Material(state string) Material { return s.states[state] }

// State returns the current state.
func (s *StateController) State() string { return s.current }

// SetState switches to state and reports whether it changed. With a
// transition set, the old material fades out while the new one fades in.
func (s *StateController) SetState(state string) bool {
	if state == s.current {
		return false
	}
	s.previous = s.current
	s.current = state
	s.progress = nil
	if s.Transition != nil && s.Transition.Duration > 0 {
		s.progress = s.Transition.Start()
	}
	return true
}

// Transitioning reports whether a cross-fade is running.
func (s *StateController) Transitioning() bool { return s.progress != nil }

// Mix returns the weight of the current state's material in [0, 1].
func (s *StateController) Mix() float64 {
	if s.progress == nil {
		return 1
	}
	return s.progress.Value()
}

// Update advances the cross-fade by dt seconds and reports whether the
// output changed.
func (s *StateController) Update(dt float64) bool {
	if s.progress == nil {
		return false
	}
	if _, done := s.progress.Advance(dt); done {
		s.progress = nil
	}
	return true
}

// Draw paints the current material, blended with the outgoing one while a
// transition runs.
func (s *StateController) Draw(r Renderer, dst Surface, rect image.Rectangle, alpha float64) {
	if rect.Empty() || alpha <= 0 {
		return
	}
	mix := s.Mix()
	if mix < 1 {
		s.drawState(r, dst, s.previous, rect, alpha*(1-mix))
	}
	s.drawState(r, dst, s.current, rect, alpha*mix)
}

func (s *StateController) drawState(r Renderer, dst Surface, state string, rect image.Rectangle, alpha float64) {
	m := s.states[state]
	if m == nil || alpha <= 0 {
		return
	}
	pre, ok := m.(Prerenderer)
	if !ok || s.cache == nil {
		m.Draw(r, dst, rect, alpha)
		return
	}
	surf := s.cache.Get(s.id, state, rect.Size(), func() Surface { return pre.Render(r, rect.Size()) })
	if surf == nil {
		m.Draw(r, dst, rect, alpha)
		return
	}
	r.Blit(dst, surf, rect.Min, alpha)
}
