package ebitenr

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/render"
)

// App is what a Game drives. A view implements it.
type App interface {
	// Event queues an input event for the next Update.
	Event(ev events.Event)
	// Update advances the app by dt seconds.
	Update(dt float64) error
	// Render draws the current frame.
	Render(r render.Renderer)
	// Resize reports the logical size of the window.
	Resize(w, h int)
}

// Game adapts an App to ebiten.Game.
type Game struct {
	App      App
	Renderer *Renderer
	Input    *Input
	// Zoom is the ratio of window pixels to view pixels.
	Zoom float64

	w, h int
}

// NewGame creates a game around app.
func NewGame(app App, zoom float64) *Game {
	if zoom <= 0 {
		zoom = 1
	}
	in := NewInput()
	in.Zoom = zoom
	return &Game{App: app, Renderer: New(), Input: in, Zoom: zoom}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	for _, ev := range g.Input.Poll() {
		g.App.Event(ev)
	}
	err := errors.Guard("ebitenr.Update", func() error {
		return g.App.Update(1 / float64(ebiten.TPS()))
	})
	if err == nil {
		return nil
	}
	// Asset errors are reported and the loop keeps running.
	if errors.Is(err, errors.ErrAsset) {
		errors.Report(errors.Wrap("ebitenr.Update", err))
		return nil
	}
	return err
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Begin(screen)
	g.App.Render(g.Renderer)
}

// Layout implements ebiten.Game. The view is laid out at the window size
// divided by Zoom.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(int(float64(outsideWidth)/g.Zoom), 1)
	h := max(int(float64(outsideHeight)/g.Zoom), 1)
	if w != g.w || h != g.h {
		g.w, g.h = w, h
		g.App.Resize(w, h)
	}
	return w, h
}

// Run opens a window titled title and runs g until it closes.
func Run(g *Game, title string, w, h int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(float64(w)*g.Zoom), int(float64(h)*g.Zoom))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
