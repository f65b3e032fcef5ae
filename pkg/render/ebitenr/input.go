package ebitenr

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
)

var keyMap = map[ebiten.Key]events.Key{
	ebiten.KeyEscape:     events.KeyEscape,
	ebiten.KeyEnter:      events.KeyEnter,
	ebiten.KeyKPEnter:    events.KeyEnter,
	ebiten.KeyTab:        events.KeyTab,
	ebiten.KeySpace:      events.KeySpace,
	ebiten.KeyBackspace:  events.KeyBackspace,
	ebiten.KeyDelete:     events.KeyDelete,
	ebiten.KeyArrowLeft:  events.KeyArrowLeft,
	ebiten.KeyArrowRight: events.KeyArrowRight,
	ebiten.KeyArrowUp:    events.KeyArrowUp,
	ebiten.KeyArrowDown:  events.KeyArrowDown,
	ebiten.KeyHome:       events.KeyHome,
	ebiten.KeyEnd:        events.KeyEnd,
	ebiten.KeyPageUp:     events.KeyPageUp,
	ebiten.KeyPageDown:   events.KeyPageDown,
	ebiten.KeyC:          events.KeyC,
	ebiten.KeyV:          events.KeyV,
	ebiten.KeyX:          events.KeyX,
	ebiten.KeyA:          events.KeyA,
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Standard layout buttons in the order of their event button index. Index 0
// selects and 1 leaves.
var padButtons = []ebiten.StandardGamepadButton{
	ebiten.StandardGamepadButtonRightBottom,
	ebiten.StandardGamepadButtonRightRight,
	ebiten.StandardGamepadButtonRightLeft,
	ebiten.StandardGamepadButtonRightTop,
	ebiten.StandardGamepadButtonFrontTopLeft,
	ebiten.StandardGamepadButtonFrontTopRight,
	ebiten.StandardGamepadButtonCenterLeft,
	ebiten.StandardGamepadButtonCenterRight,
}

var padAxes = []ebiten.StandardGamepadAxis{
	ebiten.StandardGamepadAxisLeftStickHorizontal,
	ebiten.StandardGamepadAxisLeftStickVertical,
	ebiten.StandardGamepadAxisRightStickHorizontal,
	ebiten.StandardGamepadAxisRightStickVertical,
}

// Input turns ebiten's polled input state into events. Call Poll once per
// tick from the game's Update.
type Input struct {
	// Deadzone is the axis magnitude below which motion reads as zero.
	Deadzone float64
	// Zoom divides cursor positions so they land in view coordinates.
	Zoom float64

	cursor   graphics.Offset
	hats     map[ebiten.GamepadID][2]int
	axes     map[ebiten.GamepadID][]float64
	gamepads []ebiten.GamepadID
}

// NewInput creates an input poller.
func NewInput() *Input {
	return &Input{
		Deadzone: 0.25,
		Zoom:     1,
		cursor:   graphics.Offset{X: math.NaN(), Y: math.NaN()},
		hats:     map[ebiten.GamepadID][2]int{},
		axes:     map[ebiten.GamepadID][]float64{},
	}
}

// Poll returns the events since the previous call.
func (in *Input) Poll() []events.Event {
	var out []events.Event
	out = in.pollPointer(out)
	out = in.pollKeys(out)
	out = in.pollGamepads(out)
	return out
}

// Joysticks returns the ids of the connected gamepads.
func (in *Input) Joysticks() []int {
	ids := make([]int, 0, len(in.gamepads))
	for _, id := range in.gamepads {
		ids = append(ids, int(id))
	}
	return ids
}

func (in *Input) pollPointer(out []events.Event) []events.Event {
	x, y := ebiten.CursorPosition()
	zoom := in.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	pos := graphics.Offset{X: float64(x) / zoom, Y: float64(y) / zoom}
	mods := modifiers()

	if pos != in.cursor {
		in.cursor = pos
		out = append(out, events.Event{Type: events.PointerMotion, Pos: pos, Mods: mods})
	}
	for i, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			out = append(out, events.Event{Type: events.PointerDown, Pos: pos, Button: i, Mods: mods})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			out = append(out, events.Event{Type: events.PointerUp, Pos: pos, Button: i, Mods: mods})
		}
	}
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		out = append(out, events.Event{Type: events.PointerWheel, Pos: pos, Wheel: graphics.Offset{X: wx, Y: wy}, Mods: mods})
	}
	return out
}

func (in *Input) pollKeys(out []events.Event) []events.Event {
	mods := modifiers()
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := keyMap[k]; ok {
			out = append(out, events.Event{Type: events.KeyDown, Key: key, Mods: mods})
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if key, ok := keyMap[k]; ok {
			out = append(out, events.Event{Type: events.KeyUp, Key: key, Mods: mods})
		}
	}
	if mods.Has(events.ModCtrl) || mods.Has(events.ModMeta) {
		return out
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		out = append(out, events.Event{Type: events.KeyDown, Rune: r, Mods: mods})
	}
	return out
}

func (in *Input) pollGamepads(out []events.Event) []events.Event {
	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	for _, id := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		joy := int(id)
		for i, b := range padButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				out = append(out, events.Event{Type: events.JoyButtonDown, Joystick: joy, Button: i})
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				out = append(out, events.Event{Type: events.JoyButtonUp, Joystick: joy, Button: i})
			}
		}

		hat := [2]int{}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			hat[0]--
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			hat[0]++
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			hat[1]++
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			hat[1]--
		}
		if hat != in.hats[id] {
			in.hats[id] = hat
			out = append(out, events.Event{Type: events.JoyHat, Joystick: joy, Hat: hat})
		}

		prev := in.axes[id]
		if len(prev) != len(padAxes) {
			prev = make([]float64, len(padAxes))
			in.axes[id] = prev
		}
		for i, a := range padAxes {
			v := ebiten.StandardGamepadAxisValue(id, a)
			if math.Abs(v) < in.Deadzone {
				v = 0
			}
			if v != prev[i] {
				prev[i] = v
				out = append(out, events.Event{Type: events.JoyAxis, Joystick: joy, Axis: i, AxisValue: v})
			}
		}
	}
	for _, id := range keys(in.hats) {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(in.hats, id)
			delete(in.axes, id)
		}
	}
	return out
}

func modifiers() events.Modifiers {
	var m events.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= events.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= events.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= events.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= events.ModMeta
	}
	return m
}

func keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
