package cmd

import (
	"fmt"
	"time"

	"github.com/go-drift/strata/pkg/element"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/view"
	"github.com/go-drift/strata/pkg/widgets"
)

// buildDemo fills v's base layer with the widget demo.
func buildDemo(v *view.View) error {
	tree := v.Tree
	th := widgets.DefaultTheme()

	root := element.NewVStack(tree)
	_ = root.SetSize(layout.Fill(), layout.Fill())
	_ = root.SetPadding(8)
	_ = root.SetSpacing(6)

	title := widgets.NewLabel(tree, "strata demo")
	status := widgets.NewLabel(tree, "ready")
	_ = status.SetW(layout.Fill())
	status.SetAlign(render.AlignLeft)

	list := element.NewVStack(tree)
	_ = list.SetSpacing(4)
	_ = list.SetW(layout.Fill())

	open := widgets.NewButton(tree, "Open dialog", th)
	open.OnClick = func() {
		if err := pushDialog(v, th); err != nil {
			status.SetText(err.Error())
		}
	}

	sound := widgets.NewToggle(tree, "Sound", th)
	sound.SetOn(v.State.SoundOn())
	sound.OnChange = func(on bool) {
		v.State.Muted = !on
		status.SetText(fmt.Sprintf("sound %v", on))
	}

	volume := widgets.NewSlider(tree, 0, 100, 5, th)
	volume.SetValue(50)
	volume.OnChange = func(x float64) { status.SetText(fmt.Sprintf("volume %.0f", x)) }

	name := widgets.NewTextField(tree, th)
	name.MaxLength = 24
	name.OnChange = func(s string) { status.SetText("name: " + s) }
	name.OnClose = func(s string) { status.SetText("hello, " + s) }

	disabled := widgets.NewButton(tree, "Disabled", th)
	disabled.SetEnabled(false)

	for _, e := range []element.Element{open, sound, volume, name, disabled} {
		if err := list.Append(e); err != nil {
			return err
		}
	}
	for i := 1; i <= 12; i++ {
		b := widgets.NewButton(tree, fmt.Sprintf("Item %d", i), th)
		label := b.Label().Text()
		b.OnClick = func() { status.SetText(label) }
		if err := list.Append(b); err != nil {
			return err
		}
	}

	scroll := element.NewScroll(tree, layout.Vertical)
	_ = scroll.SetSize(layout.Fill(), layout.Fill())
	if err := scroll.SetChild(list); err != nil {
		return err
	}

	for _, e := range []element.Element{title, scroll, status} {
		if err := root.Append(e); err != nil {
			return err
		}
	}
	if err := v.Base().SetRoot(root); err != nil {
		return err
	}

	v.Bus.Subscribe(events.ViewExitFinished, func(events.Event) { open.Focus() })
	if err := v.Layout(); err != nil {
		return err
	}
	open.Focus()
	return nil
}

// pushDialog shows a modal layer that closes on Escape or its button.
func pushDialog(v *view.View, th *widgets.Theme) error {
	tree := v.Tree
	l := view.NewLayer(v, "dialog")
	l.ListenForExit = true
	l.OpaqueToMouse = true
	l.TransitionIn = view.FadeOver(150 * time.Millisecond)
	l.TransitionOut = view.SlideOver(200*time.Millisecond, view.SlideFromBottom)

	panel := widgets.NewBox(tree, th)
	body := element.NewVStack(tree)
	_ = body.SetSpacing(8)
	closeButton := widgets.NewButton(tree, "Close", th)
	closeButton.OnClick = func() { l.Exit() }
	for _, e := range []element.Element{widgets.NewLabel(tree, "A dialog layer"), closeButton} {
		if err := body.Append(e); err != nil {
			return err
		}
	}
	if err := panel.Append(body); err != nil {
		return err
	}
	if err := l.SetRoot(panel); err != nil {
		return err
	}
	if err := v.Push(l); err != nil {
		return err
	}
	if err := v.Layout(); err != nil {
		return err
	}
	closeButton.Focus()
	return nil
}
