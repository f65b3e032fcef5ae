package element

import (
	"math"
	"time"

	"github.com/go-drift/strata/pkg/animation"
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/render"
)

// Scroll clips its single child to its rect and shifts the child's frame
// by the scroll offset along one axis. The offset plays toward its target
// over Duration; wheel input and dragging the bar move it.
type Scroll struct {
	Container
	axis   layout.Axis
	offset *animation.Timekeeper

	// OverscrollStart and OverscrollEnd extend the reachable range past the
	// child's extent.
	OverscrollStart float64
	OverscrollEnd   float64
	// WheelStep is the distance one wheel line scrolls.
	WheelStep float64
	// Duration and Curve shape programmatic and wheel scrolling. A zero
	// duration jumps.
	Duration time.Duration
	Curve    animation.Curve

	BarWidth   float64
	BarColor   graphics.Color
	TrackColor graphics.Color

	extent     float64
	dragging   bool
	dragAnchor float64
	dragFrom   float64
	lastPosted float64
}

var _ layout.Orienter = (*Scroll)(nil)

// NewScroll returns an empty scroll along axis.
func NewScroll(tree *Tree, axis layout.Axis) *Scroll {
	s := &Scroll{
		axis:       axis,
		offset:     animation.NewTimekeeper(0),
		WheelStep:  40,
		Duration:   150 * time.Millisecond,
		Curve:      animation.EaseOut,
		BarWidth:   8,
		BarColor:   graphics.RGBA(200, 200, 200, 0.8),
		TrackColor: graphics.RGBA(0, 0, 0, 0.25),
	}
	s.single = true
	s.InitContainer(s, tree, ScrollClass)
	return s
}

// Axis returns the scrolling axis.
func (s *Scroll) Axis() layout.Axis { return s.axis }

// SetChild replaces the scrolled content.
func (s *Scroll) SetChild(e Element) error {
	s.Clear()
	s.offset.Set(0)
	return s.Append(e)
}

// Content returns the scrolled child, or nil.
func (s *Scroll) Content() Element { return s.Child(0) }

// Offset returns the current offset.
func (s *Scroll) Offset() float64 { return s.offset.Value() }

// Target returns the offset the scroll is heading to.
func (s *Scroll) Target() float64 { return s.offset.Target() }

// Scrolling reports whether the offset is still moving.
func (s *Scroll) Scrolling() bool { return s.offset.Playing() }

// Range returns the reachable offsets, over-scroll included.
func (s *Scroll) Range() (lo, hi float64) {
	lo = -s.OverscrollStart
	hi = math.Max(0, s.extent-s.viewport()) + s.OverscrollEnd
	return lo, math.Max(lo, hi)
}

func (s *Scroll) viewport() float64 {
	c := s.contentRect()
	return s.axis.Pick(c.W, c.H)
}

func (s *Scroll) clamp(v float64) float64 {
	lo, hi := s.Range()
	return math.Max(lo, math.Min(hi, v))
}

// SetOffset jumps to v, clamped to the range.
func (s *Scroll) SetOffset(v float64) {
	s.offset.Set(s.clamp(v))
	s.enqueue(rectQueue)
}

// ScrollTo plays the offset to v, clamped to the range.
func (s *Scroll) ScrollTo(v float64) {
	v = s.clamp(v)
	if v == s.offset.Target() {
		return
	}
	s.offset.PlayTo(v, s.Duration, s.Curve)
	s.enqueue(rectQueue)
}

// ScrollBy plays the offset by d from its current target.
func (s *Scroll) ScrollBy(d float64) { s.ScrollTo(s.offset.Target() + d) }

// ScrollToShowPosition scrolls the least distance that brings the span
// [pos, pos+size) of the content, in content coordinates, into view.
func (s *Scroll) ScrollToShowPosition(pos, size float64) {
	view := s.viewport()
	target := s.offset.Target()
	switch {
	case size >= view || pos < target:
		s.ScrollTo(pos)
	case pos+size > target+view:
		s.ScrollTo(pos + size - view)
	}
}

// ScrollToElement scrolls so that e, a descendant, is fully in view.
func (s *Scroll) ScrollToElement(e Element) {
	if e == nil || !s.contains(e) {
		return
	}
	r := e.base().rect
	c := s.contentRect()
	start := s.axis.Pick(r.X, r.Y) - s.axis.Pick(c.X, c.Y) + s.offset.Value()
	errors.Logger().Debug("scroll to element", "scroll", s.name, "element", e.String(), "start", start)
	s.ScrollToShowPosition(start, s.axis.Pick(r.W, r.H))
}

func (s *Scroll) contains(e Element) bool {
	for p := e.base().parent; p != nil; p = p.base().parent {
		if p == s.self {
			return true
		}
	}
	return false
}

// Update advances the offset animation.
func (s *Scroll) Update(dt float64) {
	if s.offset.Advance(dt) {
		s.enqueue(rectQueue)
	}
}

func (s *Scroll) measureChildren() ([2]float64, error) {
	var m [2]float64
	cross := s.axis.Other()
	if ch := s.Content(); ch != nil {
		if err := s.checkFill(ch, cross); err != nil {
			return m, err
		}
		m[cross] = ch.base().minSize[cross]
	}
	p := s.Padding() * 2
	return [2]float64{m[0] + p, m[1] + p}, nil
}

func (s *Scroll) arrange() error {
	ch := s.Content()
	if ch == nil {
		s.extent = 0
		return nil
	}
	content := s.contentRect()
	avail := [2]float64{content.W, content.H}
	cb := ch.base()
	sz, err := cb.resolve(cb.contentMin, avail, false)
	if err != nil {
		return err
	}
	along, cross := s.axis, s.axis.Other()
	sz[along] = math.Max(sz[along], cb.minSize[along])
	s.extent = sz[along]
	s.offset.Clamp(s.Range())

	var pos [2]float64
	pos[along] = -s.offset.Value()
	pos[cross] = cb.positionOf(cross).Get(avail[cross], sz[cross], cross)
	cb.place(graphics.Rect{X: content.X + pos[0], Y: content.Y + pos[1], W: sz[0], H: sz[1]}, s.clip, s.Visible())

	if v := s.offset.Value(); v != s.lastPosted {
		s.lastPosted = v
		s.Post(events.ScrollMoved, v)
	}
	return nil
}

// BarRect returns the scrollbar handle, or an empty rect when the content
// fits.
func (s *Scroll) BarRect() graphics.Rect {
	lo, hi := s.Range()
	view := s.viewport()
	if hi-lo <= 0 || view <= 0 {
		return graphics.Rect{}
	}
	thumb := math.Max(s.BarWidth*2, view*view/(view+hi-lo))
	thumb = math.Min(thumb, view)
	start := (s.offset.Value() - lo) / (hi - lo) * (view - thumb)
	c := s.contentRect()
	if s.axis == layout.Vertical {
		return graphics.Rect{X: c.Right() - s.BarWidth, Y: c.Y + start, W: s.BarWidth, H: thumb}
	}
	return graphics.Rect{X: c.X + start, Y: c.Bottom() - s.BarWidth, W: thumb, H: s.BarWidth}
}

func (s *Scroll) trackRect() graphics.Rect {
	c := s.contentRect()
	if s.axis == layout.Vertical {
		return graphics.Rect{X: c.Right() - s.BarWidth, Y: c.Y, W: s.BarWidth, H: c.H}
	}
	return graphics.Rect{X: c.X, Y: c.Bottom() - s.BarWidth, W: c.W, H: s.BarWidth}
}

// HandleEvent scrolls on wheel input and drags the bar.
func (s *Scroll) HandleEvent(ev events.Event) bool {
	switch ev.Type {
	case events.PointerWheel:
		if !s.clip.Contains(ev.Pos) {
			return false
		}
		d := s.axis.Pick(ev.Wheel.X, ev.Wheel.Y)
		if d == 0 {
			return false
		}
		s.ScrollBy(-d * s.WheelStep)
		return true
	case events.PointerDown:
		bar := s.BarRect()
		if bar.IsEmpty() || !bar.Contains(ev.Pos) {
			return false
		}
		s.dragging = true
		s.dragAnchor = s.axis.Pick(ev.Pos.X, ev.Pos.Y)
		s.dragFrom = s.offset.Value()
		return true
	case events.PointerMotion:
		if !s.dragging {
			return false
		}
		lo, hi := s.Range()
		bar := s.BarRect()
		free := s.viewport() - s.axis.Pick(bar.W, bar.H)
		if free <= 0 {
			return true
		}
		moved := s.axis.Pick(ev.Pos.X, ev.Pos.Y) - s.dragAnchor
		s.SetOffset(s.dragFrom + moved/free*(hi-lo))
		return true
	case events.PointerUp:
		if !s.dragging {
			return false
		}
		s.dragging = false
		return true
	}
	return false
}

// PaintOver draws the scrollbar above the content.
func (s *Scroll) PaintOver(r render.Renderer, dst render.Surface, alpha float64) {
	bar := s.BarRect()
	if bar.IsEmpty() {
		return
	}
	r.DrawRect(dst, s.trackRect().Blit(), s.TrackColor, alpha)
	r.DrawRect(dst, bar.Blit(), s.BarColor, alpha)
}

func (s *Scroll) clipsChildren() bool { return true }

// ScrollIntoView asks every scroll above e to bring it into view.
func ScrollIntoView(e Element) {
	if e == nil {
		return
	}
	for p := e.base().parent; p != nil; p = p.base().parent {
		if s, ok := p.(interface{ ScrollToElement(Element) }); ok {
			s.ScrollToElement(e)
		}
	}
}
