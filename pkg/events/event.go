package events

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/go-drift/strata/pkg/graphics"
)

// Key identifies a non-text key. Text input arrives in Event.Rune.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyC
	KeyV
	KeyX
	KeyA
)

var keyNames = map[Key]string{
	KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab", KeySpace: "Space",
	KeyBackspace: "Backspace", KeyDelete: "Delete",
	KeyArrowLeft: "Left", KeyArrowRight: "Right", KeyArrowUp: "Up", KeyArrowDown: "Down",
	KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeyC: "C", KeyV: "V", KeyX: "X", KeyA: "A",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "Unknown"
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether every modifier in m is held.
func (mods Modifiers) Has(m Modifiers) bool { return mods&m == m }

// Source is anything an event can originate from; elements and layers
// implement it.
type Source interface {
	String() string
}

// Event is one input or synthetic event. Fields beyond Type are set only
// when they apply to the type.
type Event struct {
	Type Type

	// Pos is the pointer position in view coordinates.
	Pos graphics.Offset
	// Button is the pointer or joystick button index.
	Button int
	// Wheel is the wheel delta in lines.
	Wheel graphics.Offset

	Key  Key
	Mods Modifiers
	// Rune is the text produced by a key press, or 0.
	Rune rune

	// Joystick is the instance id of the originating joystick.
	Joystick int
	// Axis and AxisValue describe a joystick axis motion.
	Axis      int
	AxisValue float64
	// Hat is the joystick hat direction, each component in -1..1 with
	// positive Y pointing up.
	Hat [2]int

	// Source is the element or layer that synthesized the event.
	Source Source
	// Layer is the id of the layer the event concerns.
	Layer uuid.UUID
	// Value carries the payload of synthetic events: the new slider value,
	// the text field contents, the scroll offset.
	Value any
}

func (e Event) String() string {
	switch {
	case e.Type.IsPointer():
		return fmt.Sprintf("%s(%.0f,%.0f)", e.Type, e.Pos.X, e.Pos.Y)
	case e.Type == KeyDown || e.Type == KeyUp:
		return fmt.Sprintf("%s(%s)", e.Type, e.Key)
	case e.Source != nil:
		return fmt.Sprintf("%s(%s)", e.Type, e.Source)
	}
	return e.Type.String()
}
