package widgets

import (
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/trait"
)

// Button is a focusable box with a label that reacts to the primary
// pointer button, Enter, Space and joystick button 0.
//
// Pressing posts ButtonDown, and also ClickedDown when the button has
// focus. Releasing posts ButtonUp; when the release happens over the
// button it also posts ClickedUp and then calls OnClick:
//
//	save := widgets.NewButton(tree, "Save", th)
//	save.OnClick = func() { store.Save() }
type Button struct {
	Box
	label *Label

	// OnClick runs after ClickedUp is posted.
	OnClick func()
	// clicked runs before OnClick; Toggle flips its state here.
	clicked func()
}

// NewButton returns a button labelled text. A nil theme uses DefaultTheme.
func NewButton(tree *element.Tree, text string, th *Theme) *Button {
	b := &Button{}
	b.initButton(b, tree, ButtonClass, text, th)
	return b
}

func (b *Button) initButton(self element.Element, tree *element.Tree, class *trait.Class, text string, th *Theme) {
	b.InitBox(self, tree, class, th)
	b.SetFocusable(true)
	b.label = NewLabel(tree, text)
	_ = b.Append(b.label)
}

// Label returns the button's label.
func (b *Button) Label() *Label { return b.label }

// Pressed reports whether the button is held down.
func (b *Button) Pressed() bool { return b.pressed }

// SetEnabled also removes a disabled button from focus traversal.
func (b *Button) SetEnabled(v bool) {
	b.Box.SetEnabled(v)
	b.SetFocusable(v)
}

func (b *Button) HandleEvent(ev events.Event) bool {
	if b.disabled {
		return false
	}
	switch ev.Type {
	case events.PointerDown:
		if ev.Button != 0 {
			return false
		}
		b.Focus()
		b.press()
		return true
	case events.PointerUp:
		if !b.pressed || ev.Button != 0 {
			return false
		}
		b.release(b.Rect().Contains(ev.Pos))
		return true
	case events.KeyDown:
		if !activates(ev.Key) {
			return false
		}
		b.press()
		return true
	case events.KeyUp:
		if !activates(ev.Key) || !b.pressed {
			return false
		}
		b.release(true)
		return true
	case events.JoyButtonDown:
		if ev.Button != 0 {
			return false
		}
		b.press()
		return true
	case events.JoyButtonUp:
		if ev.Button != 0 || !b.pressed {
			return false
		}
		b.release(true)
		return true
	}
	return false
}

func activates(k events.Key) bool { return k == events.KeyEnter || k == events.KeySpace }

func (b *Button) press() {
	if b.pressed {
		return
	}
	b.setPressed(true)
	b.Post(events.ButtonDown, nil)
	if b.HasFocus() {
		b.Post(events.ClickedDown, nil)
	}
}

func (b *Button) release(inside bool) {
	b.setPressed(false)
	b.Post(events.ButtonUp, nil)
	if !inside {
		return
	}
	b.Post(events.ClickedUp, nil)
	if b.clicked != nil {
		b.clicked()
	}
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Unfocused cancels a press held through the keyboard or joystick.
func (b *Button) Unfocused() {
	if b.pressed {
		b.release(false)
	}
	b.Box.Unfocused()
}
