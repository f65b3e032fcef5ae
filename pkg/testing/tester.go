package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/strata/pkg/config"
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/view"
)

const (
	// DefaultTestWidth is the default view width.
	DefaultTestWidth = 320
	// DefaultTestHeight is the default view height.
	DefaultTestHeight = 240
	// DefaultFrame is the clock step of one Pump.
	DefaultFrame = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: view did not settle")

// Tester drives a View the way the backend's game loop does, with a fake
// clock and a recording renderer. Every Pump advances the clock by one
// frame, measures the delta through the view's state, updates and renders.
type Tester struct {
	view     *view.View
	clock    *FakeClock
	renderer *Recorder
	frame    time.Duration
}

// NewTester returns a tester with a view of the default size.
func NewTester() *Tester {
	return NewTesterSize(DefaultTestWidth, DefaultTestHeight)
}

// NewTesterSize returns a tester with a w by h view.
func NewTesterSize(w, h int) *Tester {
	clk := NewFakeClock()
	state := config.NewState()
	state.Clock = clk
	state.Tick()
	return &Tester{
		view:     view.New(state, float64(w), float64(h)),
		clock:    clk,
		renderer: NewRecorder(w, h),
		frame:    DefaultFrame,
	}
}

// NewTesterWithT returns a tester whose tree is released when t ends.
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup releases every layer.
func (t *Tester) Cleanup() {
	for _, l := range t.view.Layers() {
		if !l.IsBase() {
			_ = t.view.Remove(l)
		}
	}
	_ = element.Release(t.view.Base().Layer)
}

// View returns the view under test.
func (t *Tester) View() *view.View { return t.view }

// Tree returns the view's element tree, for constructing elements.
func (t *Tester) Tree() *element.Tree { return t.view.Tree }

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock { return t.clock }

// Renderer returns the recording renderer frames are drawn with.
func (t *Tester) Renderer() *Recorder { return t.renderer }

// SetFrame changes the clock step of Pump.
func (t *Tester) SetFrame(d time.Duration) { t.frame = d }

// Mount makes root the root of the base layer and pumps one frame.
func (t *Tester) Mount(root element.Element) error {
	if err := t.view.Base().SetRoot(root); err != nil {
		return err
	}
	return t.Pump()
}

// Push creates a layer around root, pushes it and pumps one frame.
func (t *Tester) Push(name string, root element.Element) (*view.Layer, error) {
	l := view.NewLayer(t.view, name)
	if err := l.SetRoot(root); err != nil {
		return nil, err
	}
	if err := t.view.Push(l); err != nil {
		return nil, err
	}
	return l, t.Pump()
}

// Pump runs one frame: advance the clock, update the view with the
// measured delta and render it.
func (t *Tester) Pump() error {
	t.clock.Advance(t.frame)
	if err := t.view.Update(t.view.State.Tick()); err != nil {
		return err
	}
	t.renderer.Reset()
	t.view.Render(t.renderer)
	return nil
}

// PumpFor pumps frames until d has elapsed on the clock.
func (t *Tester) PumpFor(d time.Duration) error {
	for elapsed := time.Duration(0); elapsed < d; elapsed += t.frame {
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// PumpAndSettle pumps frames until no animation, transition or queued
// input is left, or returns ErrSettleTimeout once timeout has elapsed.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		elapsed += t.frame
	}
	return ErrSettleTimeout
}

// needsWork reports whether another frame would change anything.
func (t *Tester) needsWork() bool {
	if t.view.Tree.Animator().Running() > 0 || t.view.Bus.Len() > 0 {
		return true
	}
	for _, l := range t.view.Layers() {
		if p := l.Phase(); p == view.PhaseEntering || p == view.PhaseExiting {
			return true
		}
		busy := false
		element.Walk(l.Layer, func(e element.Element) {
			if s, ok := e.(interface{ Scrolling() bool }); ok && s.Scrolling() {
				busy = true
			}
		})
		if busy {
			return true
		}
	}
	return false
}

// Find evaluates a finder against every layer, bottom to top.
func (t *Tester) Find(finder Finder) FinderResult {
	var found []element.Element
	for _, l := range t.view.Layers() {
		found = append(found, finder.Evaluate(l.Layer)...)
	}
	return FinderResult{elements: found, finder: finder}
}

// Focused returns the focused element of the top layer, or nil.
func (t *Tester) Focused() element.Element {
	if top := t.view.Top(); top != nil {
		return top.Focused()
	}
	return nil
}
