package ebitenr

import (
	"testing"

	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/render"
)

type fakeApp struct {
	sizes [][2]int
}

func (a *fakeApp) Event(events.Event) {}
func (a *fakeApp) Update(float64) error { return nil }
func (a *fakeApp) Render(render.Renderer) {}
func (a *fakeApp) Resize(w, h int) { a.sizes = append(a.sizes, [2]int{w, h}) }

func TestLayoutDividesByZoom(t *testing.T) {
	app := &fakeApp{}
	g := &Game{App: app, Zoom: 2}

	w, h := g.Layout(640, 480)
	if w != 320 || h != 240 {
		t.Fatalf("expected 320x240, got %dx%d", w, h)
	}
	g.Layout(640, 480)
	g.Layout(1, 1)
	if len(app.sizes) != 2 {
		t.Fatalf("expected a resize per size change, got %v", app.sizes)
	}
	if app.sizes[1] != [2]int{1, 1} {
		t.Errorf("expected sizes clamped to 1, got %v", app.sizes[1])
	}
}

func TestKeyMapCoversNavigation(t *testing.T) {
	seen := map[events.Key]bool{}
	for _, k := range keyMap {
		if k == events.KeyUnknown {
			t.Errorf("ebiten key mapped to KeyUnknown")
		}
		seen[k] = true
	}
	for _, k := range []events.Key{events.KeyEnter, events.KeyEscape, events.KeyTab, events.KeyArrowLeft, events.KeyArrowRight, events.KeyArrowUp, events.KeyArrowDown} {
		if !seen[k] {
			t.Errorf("%v has no ebiten key", k)
		}
	}
}
