package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// Op is one recorded drawing operation.
type Op struct {
	Op    string  `json:"op"`
	Rect  [4]int  `json:"rect"`
	Color string  `json:"color,omitempty"`
	Alpha float64 `json:"alpha"`
}

func (o Op) String() string {
	return fmt.Sprintf("%s%v %s a=%.2f", o.Op, o.Rect, o.Color, o.Alpha)
}

// Recorder is a render.Renderer that draws into an ImageRenderer and
// records every fill and blit, so tests can assert on both pixels and
// operations.
type Recorder struct {
	*render.ImageRenderer
	ops []Op
}

var (
	_ render.Renderer = (*Recorder)(nil)
	_ render.Scaler   = (*Recorder)(nil)
)

// NewRecorder returns a recorder with a w by h screen.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{ImageRenderer: render.NewImageRenderer(w, h)}
}

// Ops returns the operations recorded since the last Reset.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many recorded operations have the given name.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets the recorded operations and clears the screen.
func (r *Recorder) Reset() {
	r.ops = nil
	r.Clear(graphics.ColorTransparent)
}

func (r *Recorder) record(op string, rect image.Rectangle, c *graphics.Color, alpha float64) {
	o := Op{
		Op:    op,
		Rect:  [4]int{rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy()},
		Alpha: round2(alpha),
	}
	if c != nil {
		o.Color = serializeColor(*c)
	}
	r.ops = append(r.ops, o)
}

func (r *Recorder) DrawRect(dst render.Surface, rect image.Rectangle, c graphics.Color, alpha float64) {
	r.record("rect", rect.Intersect(dst.Bounds()), &c, alpha)
	r.ImageRenderer.DrawRect(dst, rect, c, alpha)
}

func (r *Recorder) Blit(dst, src render.Surface, at image.Point, alpha float64) {
	r.record("blit", src.Bounds().Sub(src.Bounds().Min).Add(at), nil, alpha)
	r.ImageRenderer.Blit(dst, src, at, alpha)
}

func (r *Recorder) BlitScaled(dst, src render.Surface, rect image.Rectangle, alpha float64) {
	r.record("blitScaled", rect, nil, alpha)
	r.ImageRenderer.BlitScaled(dst, src, rect, alpha)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("#%08x", uint32(c))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
