package focus

import "github.com/go-drift/strata/pkg/events"

// KeyDirection maps a navigation key to a direction: arrows move spatially,
// Tab and Shift-Tab step forward and backward, Enter selects and Escape
// leaves.
func KeyDirection(key events.Key, mods events.Modifiers) (Direction, bool) {
	switch key {
	case events.KeyArrowUp:
		return Up, true
	case events.KeyArrowDown:
		return Down, true
	case events.KeyArrowLeft:
		return Left, true
	case events.KeyArrowRight:
		return Right, true
	case events.KeyTab:
		if mods.Has(events.ModShift) {
			return Backward, true
		}
		return Forward, true
	case events.KeyEnter:
		return Select, true
	case events.KeyEscape:
		return Out, true
	}
	return 0, false
}

// HatDirection maps a joystick hat position to a spatial direction. The
// vertical component wins on diagonals.
func HatDirection(hat [2]int) (Direction, bool) {
	switch {
	case hat[1] > 0:
		return Up, true
	case hat[1] < 0:
		return Down, true
	case hat[0] < 0:
		return Left, true
	case hat[0] > 0:
		return Right, true
	}
	return 0, false
}

// ButtonDirection maps joystick buttons: 0 selects, 1 leaves.
func ButtonDirection(button int) (Direction, bool) {
	switch button {
	case 0:
		return Select, true
	case 1:
		return Out, true
	}
	return 0, false
}

// EventDirection maps any navigation input event to a direction.
func EventDirection(ev events.Event) (Direction, bool) {
	switch ev.Type {
	case events.KeyDown:
		return KeyDirection(ev.Key, ev.Mods)
	case events.JoyHat:
		return HatDirection(ev.Hat)
	case events.JoyButtonDown:
		return ButtonDirection(ev.Button)
	}
	return 0, false
}
