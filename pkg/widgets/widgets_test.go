package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/view"
)

const dt = 1.0 / 60

// harness is a view whose base layer holds a vertical stack of widgets.
type harness struct {
	t     *testing.T
	v     *view.View
	stack *element.Stack
	log   []events.Event
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	v := view.New(nil, 200, 100)
	h := &harness{t: t, v: v, stack: element.NewVStack(v.Tree)}
	require.NoError(t, v.Base().SetRoot(h.stack))
	v.Bus.SubscribeAll(func(ev events.Event) {
		if !ev.Type.IsInput() {
			h.log = append(h.log, ev)
		}
	})
	require.NoError(t, v.Layout())
	return h
}

// send queues events and runs one update.
func (h *harness) send(evs ...events.Event) {
	h.t.Helper()
	for _, ev := range evs {
		h.v.Event(ev)
	}
	require.NoError(h.t, h.v.Update(dt))
}

func (h *harness) types() []events.Type {
	var out []events.Type
	for _, ev := range h.log {
		if ev.Type == events.ElementFocused || ev.Type == events.ElementUnfocused {
			continue
		}
		out = append(out, ev.Type)
	}
	return out
}

func (h *harness) reset() { h.log = nil }

func key(k events.Key) events.Event   { return events.Event{Type: events.KeyDown, Key: k} }
func keyUp(k events.Key) events.Event { return events.Event{Type: events.KeyUp, Key: k} }
func char(r rune) events.Event        { return events.Event{Type: events.KeyDown, Rune: r} }
func ctrl(k events.Key) events.Event {
	return events.Event{Type: events.KeyDown, Key: k, Mods: events.ModCtrl}
}
func pointer(t events.Type, p graphics.Offset) events.Event {
	return events.Event{Type: t, Pos: p}
}

func typeText(h *harness, s string) {
	for _, r := range s {
		h.send(char(r))
	}
}

func TestLabelMeasuresText(t *testing.T) {
	tree := element.NewTree()
	l := NewLabel(tree, "abc")
	w, ht := l.Measure()
	assert.Equal(t, 21.0, w)
	assert.Equal(t, 13.0, ht)

	l.SetText("")
	w, ht = l.Measure()
	assert.Zero(t, w)
	assert.Equal(t, 13.0, ht, "an empty label keeps one line of height")
}

func TestBoxCascadesTextStyle(t *testing.T) {
	tree := element.NewTree()
	plain := NewLabel(tree, "plain")
	assert.Equal(t, graphics.ColorWhite, plain.Color())

	outer := NewBox(tree, &Theme{Text: graphics.ColorRed})
	inner := NewBox(tree, &Theme{Text: graphics.ColorBlue})
	a := NewLabel(tree, "a")
	b := NewLabel(tree, "b")
	require.NoError(t, outer.Append(a))
	require.NoError(t, outer.Append(inner))
	require.NoError(t, inner.Append(b))

	assert.Equal(t, graphics.ColorRed, a.Color())
	assert.Equal(t, graphics.ColorBlue, b.Color(), "the nearest box wins")

	inner.SetEnabled(false)
	assert.InDelta(t, 0.5, b.Color().Alpha(), 0.01)
	assert.Equal(t, graphics.ColorRed, a.Color())
}

func TestButtonKeyboardClick(t *testing.T) {
	h := newHarness(t)
	btn := NewButton(h.v.Tree, "OK", nil)
	require.NoError(t, h.stack.Append(btn))
	require.NoError(t, h.v.Layout())
	clicks := 0
	btn.OnClick = func() { clicks++ }
	btn.Focus()

	h.send(key(events.KeyEnter))
	assert.True(t, btn.Pressed())
	assert.Equal(t, StatePressed, btn.States().State())
	h.send(keyUp(events.KeyEnter))

	assert.Equal(t, []events.Type{events.ButtonDown, events.ClickedDown, events.ButtonUp, events.ClickedUp}, h.types())
	assert.Equal(t, 1, clicks)
	assert.Equal(t, StateFocused, btn.States().State())
}

func TestButtonPointerReleaseOutside(t *testing.T) {
	h := newHarness(t)
	btn := NewButton(h.v.Tree, "Cancel", nil)
	require.NoError(t, h.stack.Append(btn))
	require.NoError(t, h.v.Layout())
	clicks := 0
	btn.OnClick = func() { clicks++ }

	r := btn.Rect()
	h.send(pointer(events.PointerDown, r.Center()))
	assert.True(t, btn.HasFocus(), "a press focuses the button")
	h.send(pointer(events.PointerUp, graphics.Offset{X: r.Right() + 5, Y: r.Y}))

	assert.Equal(t, []events.Type{events.ButtonDown, events.ClickedDown, events.ButtonUp}, h.types())
	assert.Zero(t, clicks)

	h.reset()
	h.send(pointer(events.PointerDown, r.Center()), pointer(events.PointerUp, r.Center()))
	assert.Contains(t, h.types(), events.ClickedUp)
	assert.Equal(t, 1, clicks)
}

func TestDisabledButtonIgnoresInput(t *testing.T) {
	h := newHarness(t)
	btn := NewButton(h.v.Tree, "Nope", nil)
	require.NoError(t, h.stack.Append(btn))
	btn.SetEnabled(false)
	require.NoError(t, h.v.Layout())

	assert.False(t, btn.CanFocus())
	assert.Equal(t, StateDisabled, btn.States().State())
	h.send(pointer(events.PointerDown, btn.Rect().Center()))
	assert.Empty(t, h.types())
}

func TestToggleFlips(t *testing.T) {
	h := newHarness(t)
	tg := NewToggle(h.v.Tree, "Sound", nil)
	require.NoError(t, h.stack.Append(tg))
	require.NoError(t, h.v.Layout())
	var seen []bool
	tg.OnChange = func(on bool) { seen = append(seen, on) }
	tg.Focus()

	h.send(key(events.KeySpace), keyUp(events.KeySpace))
	h.send(key(events.KeySpace), keyUp(events.KeySpace))

	assert.Equal(t, []bool{true, false}, seen)
	var values []any
	for _, ev := range h.log {
		if ev.Type == events.ToggleOn || ev.Type == events.ToggleOff {
			values = append(values, ev.Value)
		}
	}
	assert.Equal(t, []any{true, false}, values)
	assert.False(t, tg.On())
}

func TestSliderKeysStopAtBounds(t *testing.T) {
	h := newHarness(t)
	s := NewSlider(h.v.Tree, 0, 10, 1, nil)
	require.NoError(t, h.stack.Append(s))
	require.NoError(t, h.v.Layout())
	s.Focus()

	assert.False(t, s.HandleEvent(key(events.KeyArrowLeft)), "left at the minimum is left to navigation")
	h.send(key(events.KeyArrowRight))
	assert.Equal(t, 1.0, s.Value())
	h.send(key(events.KeyEnd))
	assert.Equal(t, 10.0, s.Value())
	assert.False(t, s.HandleEvent(key(events.KeyArrowRight)))

	var moved []any
	for _, ev := range h.log {
		if ev.Type == events.SliderMoved {
			moved = append(moved, ev.Value)
		}
	}
	assert.Equal(t, []any{1.0, 10.0}, moved)
}

func TestSliderDrag(t *testing.T) {
	h := newHarness(t)
	s := NewSlider(h.v.Tree, 0, 100, 0, nil)
	require.NoError(t, h.stack.Append(s))
	require.NoError(t, h.v.Layout())

	r := s.Rect()
	mid := r.Center()
	h.send(pointer(events.PointerDown, mid))
	assert.InDelta(t, 50, s.Value(), 1)
	// Motion outside the slider still reaches it while the press lasts.
	h.send(pointer(events.PointerMotion, graphics.Offset{X: r.Right() + 40, Y: r.Bottom() + 40}))
	assert.Equal(t, 100.0, s.Value())
	h.send(pointer(events.PointerUp, mid))
	assert.Equal(t, StateFocused, s.States().State())
}

func TestTextFieldEditing(t *testing.T) {
	h := newHarness(t)
	tf := NewTextField(h.v.Tree, nil)
	require.NoError(t, h.stack.Append(tf))
	require.NoError(t, h.v.Layout())
	var closed string
	tf.OnClose = func(s string) { closed = s }
	tf.Focus()

	typeText(h, "hey")
	assert.Equal(t, "hey", tf.Text())
	assert.Equal(t, 3, tf.Cursor())

	h.send(key(events.KeyArrowLeft), key(events.KeyBackspace))
	assert.Equal(t, "hy", tf.Text())
	assert.Equal(t, 1, tf.Cursor())

	h.send(key(events.KeyHome), key(events.KeyDelete))
	assert.Equal(t, "y", tf.Text())
	assert.Equal(t, "y", tf.Label().Text())

	h.send(key(events.KeyEnter))
	assert.Equal(t, "y", closed)

	var modified []any
	for _, ev := range h.log {
		if ev.Type == events.TextFieldModified {
			modified = append(modified, ev.Value)
		}
	}
	assert.Equal(t, []any{"h", "he", "hey", "hy", "y"}, modified)
	assert.Equal(t, events.TextFieldClosed, h.log[len(h.log)-1].Type)
}

func TestTextFieldClipboard(t *testing.T) {
	h := newHarness(t)
	tf := NewTextField(h.v.Tree, nil)
	require.NoError(t, h.stack.Append(tf))
	require.NoError(t, h.v.Layout())
	clip := &MemoryClipboard{Text: "pasted\nignored"}
	tf.Clipboard = clip
	tf.MaxLength = 4
	tf.Focus()

	h.send(ctrl(events.KeyV))
	assert.Equal(t, "past", tf.Text())
	typeText(h, "x")
	assert.Equal(t, "past", tf.Text(), "input past the limit is dropped")

	h.send(ctrl(events.KeyX))
	assert.Equal(t, "", tf.Text())
	assert.Equal(t, "past", clip.Text)
}

func TestTextFieldLeavesVerticalKeysToNavigation(t *testing.T) {
	h := newHarness(t)
	first := NewTextField(h.v.Tree, nil)
	second := NewTextField(h.v.Tree, nil)
	require.NoError(t, h.stack.Append(first))
	require.NoError(t, h.stack.Append(second))
	require.NoError(t, h.v.Layout())
	first.Focus()

	h.send(key(events.KeyArrowDown))
	assert.True(t, second.HasFocus())
	h.send(key(events.KeyEscape))
	assert.True(t, second.HasFocus(), "escape on the base layer keeps focus")
}

func TestTextFieldScrollsToCursor(t *testing.T) {
	h := newHarness(t)
	tf := NewTextField(h.v.Tree, nil)
	require.NoError(t, h.stack.Append(tf))
	require.NoError(t, h.v.Layout())
	tf.Focus()

	typeText(h, "the quick brown fox jumps over the lazy dog")
	h.send()
	assert.Greater(t, tf.scroll.Offset(), 0.0)

	h.send(key(events.KeyHome))
	h.send()
	assert.Zero(t, tf.scroll.Offset())
}

func TestCursorBlinks(t *testing.T) {
	h := newHarness(t)
	tf := NewTextField(h.v.Tree, nil)
	require.NoError(t, h.stack.Append(tf))
	require.NoError(t, h.v.Layout())
	assert.False(t, tf.CursorVisible())

	tf.Focus()
	h.send()
	assert.True(t, tf.CursorVisible())
	for range 40 {
		h.send()
	}
	assert.False(t, tf.CursorVisible())
}

func TestBoxMaterialIsCached(t *testing.T) {
	h := newHarness(t)
	box := NewBox(h.v.Tree, nil)
	require.NoError(t, box.SetSize(40, 20))
	require.NoError(t, h.stack.Append(box))
	require.NoError(t, h.v.Layout())

	r := render.NewImageRenderer(200, 100)
	h.v.Render(r)
	h.v.Render(r)
	hits, misses := h.v.Tree.Cache().Stats()
	assert.Equal(t, 1, misses)
	assert.Equal(t, 1, hits)

	require.NoError(t, element.Release(box))
	assert.Zero(t, h.v.Tree.Cache().Len())
}
