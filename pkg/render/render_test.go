package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/strata/pkg/animation"
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/graphics"
)

func at(r *ImageRenderer, x, y int) color.RGBA {
	return r.Image().RGBAAt(x, y)
}

func TestImageRendererDrawRect(t *testing.T) {
	r := NewImageRenderer(10, 10)
	r.DrawRect(r.Screen(), image.Rect(2, 2, 5, 5), graphics.ColorRed, 1)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, at(r, 3, 3))
	assert.Equal(t, color.RGBA{}, at(r, 6, 6))

	r.DrawRect(r.Screen(), image.Rect(6, 6, 8, 8), graphics.ColorWhite, 0.5)
	assert.InDelta(t, 128, int(at(r, 6, 6).A), 1)
}

func TestSubsurfaceClips(t *testing.T) {
	r := NewImageRenderer(10, 10)
	sub := r.Subsurface(r.Screen(), image.Rect(0, 0, 4, 4))
	assert.Equal(t, image.Rect(0, 0, 4, 4), sub.Bounds())
	assert.Equal(t, image.Pt(0, 0), AbsOffset(sub))

	r.DrawRect(sub, image.Rect(0, 0, 10, 10), graphics.ColorBlue, 1)
	assert.Equal(t, uint8(255), at(r, 3, 3).B)
	assert.Equal(t, uint8(0), at(r, 5, 5).B)
}

func TestBlitAndScale(t *testing.T) {
	r := NewImageRenderer(8, 8)
	src := r.NewSurface(2, 2)
	r.DrawRect(src, src.Bounds(), graphics.ColorGreen, 1)

	r.Blit(r.Screen(), src, image.Pt(1, 1), 1)
	assert.Equal(t, uint8(255), at(r, 2, 2).G)
	assert.Equal(t, uint8(0), at(r, 3, 3).G)

	r.BlitScaled(r.Screen(), src, image.Rect(4, 4, 8, 8), 1)
	assert.Equal(t, uint8(255), at(r, 7, 7).G)
}

func TestWrap(t *testing.T) {
	width := func(s string) int { return len(s) }
	tests := []struct {
		text string
		max  int
		want []string
	}{
		{"hello world", 0, []string{"hello world"}},
		{"hello world", 5, []string{"hello", "world"}},
		{"a b c d", 3, []string{"a b", "c d"}},
		{"one\ntwo", 10, []string{"one", "two"}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.text, tt.max, width), "Wrap(%q, %d)", tt.text, tt.max)
	}
}

func TestGridFont(t *testing.T) {
	f := GridFont()
	assert.Equal(t, 7*5, f.WidthOfLine("hello"))
	assert.Equal(t, 13, f.LineHeight())

	r := NewImageRenderer(1, 1)
	surfaces, lines := f.Render(r, "hi there", Variant{Color: graphics.ColorBlack}, 7*3, AlignLeft)
	require.Equal(t, []string{"hi", "the", "re"}, lines)
	require.Len(t, surfaces, 3)
	assert.Equal(t, image.Pt(21, 13), surfaces[0].Bounds().Size())

	w, h := Measure(f, "ab\nabcd", 0)
	assert.Equal(t, 28, w)
	assert.Equal(t, 26, h)
}

func TestGoRegular(t *testing.T) {
	f, err := GoRegular(16)
	require.NoError(t, err)
	assert.Greater(t, f.WidthOfLine("WWW"), f.WidthOfLine("iii"))
	assert.Positive(t, f.LineHeight())
}

func writeSheet(t *testing.T, dir string) {
	t.Helper()
	// 95 printable glyphs in a 16-column grid of 4x6 cells; every cell is
	// solid so rendered glyphs are fully covered.
	img := image.NewNRGBA(image.Rect(0, 0, 16*4, 6*6))
	for y := range img.Rect.Dy() {
		for x := range img.Rect.Dx() {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fonts"), 0o755))
	f, err := os.Create(filepath.Join(dir, "fonts", "tiny.png"))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestSheetFont(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir)
	f, err := LoadSheetFont(dir, "tiny", 4, 6)
	require.NoError(t, err)
	assert.Equal(t, 12, f.WidthOfLine("abc"))

	r := NewImageRenderer(1, 1)
	surfaces, lines := f.Render(r, "ab", Variant{Color: graphics.ColorRed}, 0, AlignLeft)
	require.Equal(t, []string{"ab"}, lines)
	img := surfaces[0].(*ImageSurface).Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(5, 3))

	f.Scale = 2
	assert.Equal(t, 12, f.LineHeight())
	surfaces, _ = f.Render(r, "a", Variant{Color: graphics.ColorRed}, 0, AlignLeft)
	assert.Equal(t, image.Pt(8, 12), surfaces[0].Bounds().Size())
}

func TestSheetFontMissing(t *testing.T) {
	_, err := LoadSheetFont(t.TempDir(), "nope", 4, 6)
	var ae *errors.AssetError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "fonts/nope", ae.Name)
	assert.Contains(t, ae.Path, filepath.Join("fonts", "nope.png"))
	assert.ErrorIs(t, err, errors.ErrAsset)
}

func TestStateControllerCrossFade(t *testing.T) {
	s := NewStateController("idle", map[string]Material{
		"idle":  Solid{Color: graphics.ColorBlack},
		"hover": Solid{Color: graphics.ColorWhite},
	})
	s.Transition = animation.Linear(100 * time.Millisecond)

	assert.False(t, s.SetState("idle"))
	assert.True(t, s.SetState("hover"))
	assert.True(t, s.Transitioning())
	assert.Equal(t, 0.0, s.Mix())

	s.Update(0.05)
	assert.InDelta(t, 0.5, s.Mix(), 1e-9)

	r := NewImageRenderer(4, 4)
	s.Draw(r, r.Screen(), image.Rect(0, 0, 4, 4), 1)
	px := at(r, 1, 1)
	assert.InDelta(t, 128, int(px.R), 2)

	s.Update(0.05)
	assert.False(t, s.Transitioning())
	assert.Equal(t, 1.0, s.Mix())
}

func TestStateControllerUsesCache(t *testing.T) {
	c := NewCache()
	s := NewStateController("idle", map[string]Material{
		"idle": Layered{Solid{Color: graphics.ColorBlue}, Border{Color: graphics.ColorWhite, Thickness: 1}},
	})
	s.UseCache(c, 7)
	r := NewImageRenderer(10, 10)

	s.Draw(r, r.Screen(), image.Rect(0, 0, 5, 5), 1)
	s.Draw(r, r.Screen(), image.Rect(2, 2, 7, 7), 1)
	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
	assert.Equal(t, uint8(255), at(r, 4, 4).B)

	s.Draw(r, r.Screen(), image.Rect(0, 0, 6, 6), 1)
	assert.Equal(t, 1, c.Len(), "a new size replaces the old entry")

	c.Drop(7)
	assert.Equal(t, 0, c.Len())
}

func TestMaterials(t *testing.T) {
	r := NewImageRenderer(10, 10)
	Inset{Material: Solid{Color: graphics.ColorRed}, Amount: 2}.Draw(r, r.Screen(), image.Rect(0, 0, 10, 10), 1)
	assert.Equal(t, uint8(0), at(r, 1, 1).R)
	assert.Equal(t, uint8(255), at(r, 2, 2).R)

	Border{Color: graphics.ColorGreen, Thickness: 1}.Draw(r, r.Screen(), image.Rect(0, 0, 10, 10), 1)
	assert.Equal(t, uint8(255), at(r, 0, 5).G)
	assert.Equal(t, uint8(0), at(r, 5, 5).G)

	pic := r.NewSurface(1, 1)
	r.DrawRect(pic, pic.Bounds(), graphics.ColorBlue, 1)
	Picture{Src: pic}.Draw(r, r.Screen(), image.Rect(4, 4, 6, 6), 1)
	assert.Equal(t, uint8(255), at(r, 5, 5).B)
}
