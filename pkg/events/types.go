// Package events defines input and synthetic event records and the bus that
// queues them between ticks.
package events

// Type determines the kind of an event. Input types come from the backend;
// the rest are synthesized by elements and layers.
type Type int

const (
	// Unknown is the zero value.
	Unknown Type = iota

	// PointerDown is a mouse button press.
	PointerDown
	// PointerUp is a mouse button release.
	PointerUp
	// PointerMotion is a mouse move.
	PointerMotion
	// PointerWheel is a wheel step; Wheel holds the delta in lines.
	PointerWheel
	// KeyDown is a key press or a typed rune.
	KeyDown
	// KeyUp is a key release.
	KeyUp
	// JoyButtonDown is a joystick button press.
	JoyButtonDown
	// JoyButtonUp is a joystick button release.
	JoyButtonUp
	// JoyAxis is a joystick axis motion.
	JoyAxis
	// JoyHat is a joystick hat change.
	JoyHat

	// ElementFocused is posted after an element gains focus.
	ElementFocused
	// ElementUnfocused is posted after an element loses focus.
	ElementUnfocused
	// ButtonDown is posted when a button becomes pressed.
	ButtonDown
	// ButtonUp is posted when a pressed button is released.
	ButtonUp
	// ClickedDown is posted when a button is pressed while focused.
	ClickedDown
	// ClickedUp is posted when a pressed button is released over itself.
	ClickedUp
	// ToggleOn is posted when a toggle switches on.
	ToggleOn
	// ToggleOff is posted when a toggle switches off.
	ToggleOff
	// SliderMoved is posted when a slider value changes; Value is the new value.
	SliderMoved
	// ScrollMoved is posted when a scroll offset changes; Value is the offset.
	ScrollMoved
	// TextFieldModified is posted after an edit; Value is the text.
	TextFieldModified
	// TextFieldClosed is posted when editing ends with Enter.
	TextFieldClosed
	// TransitionStarted is posted when a layer transition begins.
	TransitionStarted
	// TransitionFinished is posted when a layer transition completes.
	TransitionFinished
	// ViewExitStarted is posted when a layer begins leaving the view.
	ViewExitStarted
	// ViewExitFinished is posted when a layer has left; the view drops it.
	ViewExitFinished

	typeCount
)

var typeNames = [typeCount]string{
	"Unknown",
	"PointerDown", "PointerUp", "PointerMotion", "PointerWheel",
	"KeyDown", "KeyUp",
	"JoyButtonDown", "JoyButtonUp", "JoyAxis", "JoyHat",
	"ElementFocused", "ElementUnfocused",
	"ButtonDown", "ButtonUp", "ClickedDown", "ClickedUp",
	"ToggleOn", "ToggleOff",
	"SliderMoved", "ScrollMoved",
	"TextFieldModified", "TextFieldClosed",
	"TransitionStarted", "TransitionFinished",
	"ViewExitStarted", "ViewExitFinished",
}

func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "Type(?)"
	}
	return typeNames[t]
}

// IsInput reports whether t comes from the backend.
func (t Type) IsInput() bool { return t >= PointerDown && t <= JoyHat }

// IsPointer reports whether t carries a pointer position.
func (t Type) IsPointer() bool { return t >= PointerDown && t <= PointerWheel }

// Types returns every defined type in order.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := Unknown; t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}
