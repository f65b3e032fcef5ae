package testing

import (
	"fmt"

	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
)

// Send queues events and pumps one frame, so they are routed in order
// before the frame's update.
func (t *Tester) Send(evs ...events.Event) error {
	for _, ev := range evs {
		t.view.Event(ev)
	}
	return t.Pump()
}

// Tap presses and releases the primary button at the center of the first
// element matched by finder.
func (t *Tester) Tap(finder Finder) error {
	center, err := t.centerOf("Tap", finder)
	if err != nil {
		return err
	}
	return t.TapAt(center)
}

// TapAt presses and releases the primary button at pos.
func (t *Tester) TapAt(pos graphics.Offset) error {
	return t.Send(
		events.Event{Type: events.PointerDown, Pos: pos},
		events.Event{Type: events.PointerUp, Pos: pos},
	)
}

// Drag drags from the center of the first element matched by finder by
// delta.
func (t *Tester) Drag(finder Finder, delta graphics.Offset) error {
	start, err := t.centerOf("Drag", finder)
	if err != nil {
		return err
	}
	return t.DragFrom(start, delta)
}

// DragFrom presses at start, moves by delta in several frames and releases.
func (t *Tester) DragFrom(start, delta graphics.Offset) error {
	if err := t.Send(events.Event{Type: events.PointerDown, Pos: start}); err != nil {
		return err
	}
	const steps = 4
	for i := 1; i <= steps; i++ {
		f := float64(i) / steps
		pos := graphics.Offset{X: start.X + delta.X*f, Y: start.Y + delta.Y*f}
		if err := t.Send(events.Event{Type: events.PointerMotion, Pos: pos}); err != nil {
			return err
		}
	}
	return t.Send(events.Event{Type: events.PointerUp, Pos: start.Add(delta)})
}

// Scroll sends a wheel event of lines over the center of the first element
// matched by finder. Positive lines scroll up.
func (t *Tester) Scroll(finder Finder, lines graphics.Offset) error {
	center, err := t.centerOf("Scroll", finder)
	if err != nil {
		return err
	}
	return t.Send(events.Event{Type: events.PointerWheel, Pos: center, Wheel: lines})
}

// Press sends a key down and up with the given modifiers.
func (t *Tester) Press(key events.Key, mods ...events.Modifiers) error {
	var m events.Modifiers
	for _, x := range mods {
		m |= x
	}
	return t.Send(
		events.Event{Type: events.KeyDown, Key: key, Mods: m},
		events.Event{Type: events.KeyUp, Key: key, Mods: m},
	)
}

// Type sends one text key press per rune of s.
func (t *Tester) Type(s string) error {
	evs := make([]events.Event, 0, len(s))
	for _, r := range s {
		evs = append(evs, events.Event{Type: events.KeyDown, Rune: r})
	}
	return t.Send(evs...)
}

// JoyButton presses and releases a joystick button.
func (t *Tester) JoyButton(joystick, button int) error {
	return t.Send(
		events.Event{Type: events.JoyButtonDown, Joystick: joystick, Button: button},
		events.Event{Type: events.JoyButtonUp, Joystick: joystick, Button: button},
	)
}

// JoyHat sends a hat motion; y is positive up.
func (t *Tester) JoyHat(joystick, x, y int) error {
	return t.Send(events.Event{Type: events.JoyHat, Joystick: joystick, Hat: [2]int{x, y}})
}

func (t *Tester) centerOf(op string, finder Finder) (graphics.Offset, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Offset{}, fmt.Errorf("%s: finder matched no elements: %s", op, finder.Description())
	}
	e := result.First()
	r, ok := e.(interface{ Rect() graphics.Rect })
	if !ok {
		return graphics.Offset{}, fmt.Errorf("%s: element has no rect: %s", op, finder.Description())
	}
	if v, ok := e.(interface{ Visible() bool }); ok && !v.Visible() {
		return graphics.Offset{}, fmt.Errorf("%s: %s is not visible", op, e)
	}
	return r.Rect().Center(), nil
}
