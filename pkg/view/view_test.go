package view

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/strata/pkg/animation"
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/trait"
)

const dt = 1.0 / 60

// recorder collects every dispatched event type.
func recorder(v *View) *[]events.Type {
	var got []events.Type
	v.Bus.SubscribeAll(func(ev events.Event) { got = append(got, ev.Type) })
	return &got
}

// swatch fills its rect and records the input it sees.
type swatch struct {
	element.Base
	color   graphics.Color
	consume bool
	seen    []events.Type
}

func newSwatch(tree *element.Tree, c graphics.Color) *swatch {
	s := &swatch{color: c}
	s.Init(s, tree, element.LeafClass)
	return s
}

func (s *swatch) Measure() (w, h float64) { return 10, 10 }

func (s *swatch) Paint(r render.Renderer, dst render.Surface, alpha float64) {
	r.DrawRect(dst, s.BlitRect(), s.color, alpha)
}

func (s *swatch) HandleEvent(ev events.Event) bool {
	s.seen = append(s.seen, ev.Type)
	return s.consume
}

func menuLayer(t *testing.T, v *View, name string) (*Layer, []*element.Leaf) {
	t.Helper()
	l := NewLayer(v, name)
	stack, items := menu(t, v)
	require.NoError(t, l.SetRoot(stack))
	return l, items
}

func menu(t *testing.T, v *View) (*element.Stack, []*element.Leaf) {
	t.Helper()
	stack := element.NewVStack(v.Tree)
	var items []*element.Leaf
	for range 2 {
		item := element.NewLeaf(v.Tree, 50, 20)
		item.SetFocusable(true)
		require.NoError(t, stack.Append(item))
		items = append(items, item)
	}
	return stack, items
}

func escape() events.Event { return events.Event{Type: events.KeyDown, Key: events.KeyEscape} }

func TestLayerExitWithoutTransition(t *testing.T) {
	v := New(nil, 200, 100)
	l, _ := menuLayer(t, v, "menu")
	l.ListenForExit = true
	require.NoError(t, v.Push(l))
	require.NoError(t, v.Update(dt))
	got := recorder(v)

	v.Event(escape())
	require.NoError(t, v.Update(dt))

	assert.Equal(t, []events.Type{events.ViewExitStarted, events.ViewExitFinished}, *got)
	assert.Equal(t, []*Layer{v.Base()}, v.Layers())
	assert.True(t, l.Released())
	assert.Equal(t, PhaseGone, l.Phase())
}

func TestLayerExitWithTransition(t *testing.T) {
	v := New(nil, 200, 100)
	l, _ := menuLayer(t, v, "menu")
	l.ListenForExit = true
	l.TransitionOut = Fade{Anim: animation.Linear(200 * time.Millisecond)}
	require.NoError(t, v.Push(l))
	require.NoError(t, v.Update(dt))
	got := recorder(v)

	v.Event(escape())
	require.NoError(t, v.Update(0.05))
	assert.Equal(t, []events.Type{events.ViewExitStarted, events.TransitionStarted}, *got)
	assert.Len(t, v.Layers(), 2)
	assert.Equal(t, PhaseExiting, l.Phase())
	assert.InDelta(t, 0.75, l.Effect().Alpha, 1e-9)
	assert.Same(t, v.Base(), v.Top(), "an exiting layer takes no input")

	require.NoError(t, v.Update(0.2))
	assert.Equal(t, []events.Type{
		events.ViewExitStarted, events.TransitionStarted,
		events.TransitionFinished, events.ViewExitFinished,
	}, *got)
	assert.Len(t, v.Layers(), 1)
}

func TestExitCallbackRunsAfterEvent(t *testing.T) {
	v := New(nil, 200, 100)
	l, _ := menuLayer(t, v, "menu")
	var queued int
	l.OnExit = func() { queued = v.Bus.Len() }
	require.NoError(t, v.Push(l))

	assert.True(t, l.Exit())
	assert.Equal(t, 2, queued)
	assert.False(t, l.Exit(), "exit starts once")
}

func TestBaseLayerNeverExits(t *testing.T) {
	v := New(nil, 200, 100)
	v.Base().ListenForExit = true
	got := recorder(v)

	v.Event(escape())
	require.NoError(t, v.Update(dt))

	assert.Empty(t, *got)
	assert.False(t, v.Pop())
	assert.Error(t, v.Remove(v.Base()))
	assert.Len(t, v.Layers(), 1)
}

func TestEscapeWithoutListenKeepsLayer(t *testing.T) {
	v := New(nil, 200, 100)
	l, _ := menuLayer(t, v, "menu")
	require.NoError(t, v.Push(l))

	v.Event(escape())
	require.NoError(t, v.Update(dt))
	assert.Len(t, v.Layers(), 2)
}

func TestKeyNavigationMovesFocus(t *testing.T) {
	v := New(nil, 200, 100)
	l, items := menuLayer(t, v, "menu")
	require.NoError(t, v.Push(l))
	require.NoError(t, v.Update(dt))
	got := recorder(v)

	v.Event(events.Event{Type: events.KeyDown, Key: events.KeyTab})
	require.NoError(t, v.Update(dt))
	assert.True(t, items[0].HasFocus())
	assert.Equal(t, []events.Type{events.ElementFocused}, *got)

	v.Event(events.Event{Type: events.KeyDown, Key: events.KeyArrowDown})
	require.NoError(t, v.Update(dt))
	assert.True(t, items[1].HasFocus())

	v.Event(events.Event{Type: events.JoyHat, Joystick: 4, Hat: [2]int{0, 1}})
	require.NoError(t, v.Update(dt))
	assert.True(t, items[0].HasFocus())
	_, ok := v.State.Joystick(4)
	assert.True(t, ok, "joystick input registers the joystick")
}

func TestOnlyTopLayerGetsKeys(t *testing.T) {
	v := New(nil, 200, 100)
	under, baseItems := menu(t, v)
	require.NoError(t, v.Base().SetRoot(under))
	top, items := menuLayer(t, v, "menu")
	require.NoError(t, v.Push(top))

	v.Event(events.Event{Type: events.KeyDown, Key: events.KeyTab})
	require.NoError(t, v.Update(dt))
	assert.True(t, items[0].HasFocus())
	assert.False(t, baseItems[0].HasFocus())
}

func TestKeyInFirstFrameAfterRootChange(t *testing.T) {
	v := New(nil, 200, 100)
	l, _ := menuLayer(t, v, "menu")
	require.NoError(t, v.Push(l))
	require.NoError(t, v.Update(dt))

	stack, items := menu(t, v)
	require.NoError(t, l.SetRoot(stack))
	v.Event(events.Event{Type: events.KeyDown, Key: events.KeyTab})
	require.NoError(t, v.Update(dt))
	assert.True(t, items[0].HasFocus())
	assert.Equal(t, items[0], l.Focused())
}

func TestOpaqueLayerConsumesPointer(t *testing.T) {
	v := New(nil, 200, 100)
	under := newSwatch(v.Tree, graphics.ColorRed)
	require.NoError(t, v.Base().SetRoot(under))

	popup := NewLayer(v, "popup")
	popup.OpaqueToMouse = true
	require.NoError(t, popup.SetW(100.0))
	require.NoError(t, popup.SetH(50.0))
	require.NoError(t, v.Push(popup))
	require.NoError(t, v.Update(dt))
	require.Equal(t, graphics.Rect{X: 50, Y: 25, W: 100, H: 50}, popup.Rect())

	assert.True(t, v.HandleEvent(events.Event{Type: events.PointerDown, Pos: graphics.Offset{X: 100, Y: 50}}))
	assert.Empty(t, under.seen)
	assert.Equal(t, graphics.Offset{X: 100, Y: 50}, v.State.Mouse)

	assert.False(t, v.HandleEvent(events.Event{Type: events.PointerDown, Pos: graphics.Offset{X: 10, Y: 10}}))
	assert.Equal(t, []events.Type{events.PointerDown}, under.seen)
}

func TestPointerCapture(t *testing.T) {
	v := New(nil, 200, 100)
	row := element.NewHStack(v.Tree)
	a := newSwatch(v.Tree, graphics.ColorRed)
	a.consume = true
	b := newSwatch(v.Tree, graphics.ColorBlue)
	require.NoError(t, row.Append(a))
	require.NoError(t, row.Append(b))
	require.NoError(t, v.Base().SetRoot(row))
	require.NoError(t, v.Update(dt))

	at := func(e *swatch) graphics.Offset { return e.Rect().Center() }
	require.True(t, v.HandleEvent(events.Event{Type: events.PointerDown, Pos: at(a)}))
	v.HandleEvent(events.Event{Type: events.PointerMotion, Pos: at(b)})
	v.HandleEvent(events.Event{Type: events.PointerUp, Pos: at(b)})
	v.HandleEvent(events.Event{Type: events.PointerMotion, Pos: at(b)})

	assert.Equal(t, []events.Type{events.PointerDown, events.PointerMotion, events.PointerUp}, a.seen)
	assert.Equal(t, []events.Type{events.PointerMotion}, b.seen)
}

func TestSlideTransitionRender(t *testing.T) {
	v := New(nil, 100, 50)
	require.NoError(t, v.Base().SetRoot(newSwatch(v.Tree, graphics.ColorRed)))
	top := NewLayer(v, "sheet")
	require.NoError(t, top.SetRoot(newSwatch(v.Tree, graphics.ColorBlue)))
	top.TransitionIn = Slide{Anim: animation.Linear(100 * time.Millisecond), Direction: SlideFromRight}
	got := recorder(v)
	require.NoError(t, v.Push(top))

	require.NoError(t, v.Update(0.05))
	assert.Equal(t, PhaseEntering, top.Phase())
	assert.InDelta(t, 50, top.Effect().Offset.X, 1e-9)

	r := render.NewImageRenderer(100, 50)
	v.Render(r)
	img := r.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(25, 25))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(75, 25))

	require.NoError(t, v.Update(0.05))
	assert.Equal(t, PhaseShown, top.Phase())
	assert.Equal(t, Shown, top.Effect())
	assert.Equal(t, []events.Type{events.TransitionStarted, events.TransitionFinished}, *got)
}

func TestLayoutErrorNamesLayer(t *testing.T) {
	v := New(nil, 200, 100)
	bare := &bareElement{}
	bare.Init(bare, v.Tree, trait.NewClass("Bare", nil))
	z := element.NewZStack(v.Tree)
	require.NoError(t, z.Append(bare))
	broken := NewLayer(v, "broken")
	require.NoError(t, broken.SetRoot(z))
	require.NoError(t, v.Push(broken))

	err := v.Update(dt)
	require.Error(t, err)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "broken", e.Layer)
	assert.Equal(t, errors.KindConfiguration, e.Kind)
	assert.ErrorIs(t, err, errors.ErrConfiguration)
}

type bareElement struct {
	element.Base
}

type stackLog struct{ pushed, removed []string }

func (o *stackLog) DidPush(l *Layer)   { o.pushed = append(o.pushed, l.Name()) }
func (o *stackLog) DidRemove(l *Layer) { o.removed = append(o.removed, l.Name()) }

func TestPushRemoveAndObservers(t *testing.T) {
	v := New(nil, 200, 100)
	log := &stackLog{}
	v.Observers = append(v.Observers, log)

	a, _ := menuLayer(t, v, "a")
	b, _ := menuLayer(t, v, "b")
	require.NoError(t, v.Push(a))
	require.NoError(t, v.Push(b))
	assert.Error(t, v.Push(a), "pushing twice is rejected")
	assert.Same(t, b, v.Top())

	require.NoError(t, v.Remove(a))
	assert.Equal(t, []*Layer{v.Base(), b}, v.Layers())
	assert.True(t, a.Released())
	assert.Error(t, v.Remove(a))

	assert.True(t, v.Pop())
	require.NoError(t, v.Update(dt))
	assert.Equal(t, []string{"a", "b"}, log.pushed)
	assert.Equal(t, []string{"a", "b"}, log.removed)

	other := New(nil, 10, 10)
	assert.ErrorIs(t, other.Push(NewLayer(v, "stray")), errors.ErrValue)
}
