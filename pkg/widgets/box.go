package widgets

import (
	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/trait"
)

// Box is an overlay container drawn with its theme's state materials. It
// cascades the theme's font and text color to every label below it.
type Box struct {
	element.ZStack

	theme    *Theme
	states   *render.StateController
	pressed  bool
	disabled bool
}

// NewBox returns an empty box. A nil theme uses DefaultTheme.
func NewBox(tree *element.Tree, th *Theme) *Box {
	b := &Box{}
	b.InitBox(b, tree, BoxClass, th)
	return b
}

// InitBox initializes a Box embedded in self. Widgets built on Box call it
// from their constructor instead of NewBox.
func (b *Box) InitBox(self element.Element, tree *element.Tree, class *trait.Class, th *Theme, extra ...*trait.Trait) {
	if th == nil {
		th = DefaultTheme()
	}
	b.InitZStack(self, tree, class, extra...)
	b.theme = th
	b.states = render.NewStateController(StateNormal, th.materials())
	b.states.Transition = th.Transition
	b.states.UseCache(tree.Cache(), element.HandleOf(self).ID())
	_ = b.SetPadding(th.Padding)
	b.cascadeText()
}

// Theme returns the box's theme.
func (b *Box) Theme() *Theme { return b.theme }

// States returns the controller selecting the box's material.
func (b *Box) States() *render.StateController { return b.states }

// SetMaterial replaces the material of one state.
func (b *Box) SetMaterial(state string, m render.Material) { b.states.SetMaterial(state, m) }

// Enabled reports whether the box reacts to input.
func (b *Box) Enabled() bool { return !b.disabled }

// SetEnabled enables or disables the box. Disabled boxes draw the disabled
// material and dim their labels.
func (b *Box) SetEnabled(v bool) {
	if b.disabled == !v {
		return
	}
	b.disabled = !v
	b.pressed = false
	b.cascadeText()
	b.refreshState()
}

func (b *Box) cascadeText() {
	c := b.theme.Text
	if b.disabled {
		c = c.ScaleAlpha(0.5)
	}
	b.Cascade(TextColor.Bind(LabelClass).MustCascade(c, trait.Unbounded))
	if b.theme.Font != nil {
		b.Cascade(TextFont.Bind(LabelClass).MustCascade(b.theme.Font, trait.Unbounded))
	}
}

// state picks the material state from the box's flags.
func (b *Box) state() string {
	switch {
	case b.disabled:
		return StateDisabled
	case b.pressed:
		return StatePressed
	case b.HasFocus():
		return StateFocused
	}
	return StateNormal
}

func (b *Box) refreshState() { b.states.SetState(b.state()) }

func (b *Box) setPressed(v bool) {
	b.pressed = v
	b.refreshState()
}

func (b *Box) Focused()   { b.refreshState() }
func (b *Box) Unfocused() { b.refreshState() }

// Update advances the material cross-fade.
func (b *Box) Update(dt float64) { b.states.Update(dt) }

func (b *Box) Paint(r render.Renderer, dst render.Surface, alpha float64) {
	b.states.Draw(r, dst, b.BlitRect(), alpha)
}
