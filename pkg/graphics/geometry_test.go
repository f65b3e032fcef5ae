package graphics

import (
	"image"
	"testing"
)

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 100}
	b := Rect{X: 50, Y: 60, W: 100, H: 100}
	got := a.Intersect(b)
	want := Rect{X: 50, Y: 60, W: 50, H: 40}
	if !got.Approx(want) {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
	if !a.Intersect(Rect{X: 200, Y: 0, W: 10, H: 10}).IsEmpty() {
		t.Error("disjoint rects should not intersect")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		p    Offset
		want bool
	}{
		{Offset{10, 10}, true},
		{Offset{29.9, 29.9}, true},
		{Offset{30, 15}, false},
		{Offset{9, 15}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !r.ContainsRect(Rect{X: 12, Y: 12, W: 5, H: 5}) {
		t.Error("ContainsRect should accept inner rect")
	}
}

func TestRectBlit(t *testing.T) {
	r := Rect{X: 10.4, Y: 9.6, W: 20.5, H: 4.4}
	if got, want := r.Blit(), image.Rect(10, 10, 31, 14); got != want {
		t.Errorf("Blit = %v, want %v", got, want)
	}
}

func TestLerpColor(t *testing.T) {
	got := LerpColor(ColorBlack, ColorWhite, 0.5)
	if got != RGBA8(128, 128, 128, 255) {
		t.Errorf("LerpColor midpoint = %#08x", uint32(got))
	}
	if LerpColor(ColorRed, ColorBlue, 0) != ColorRed || LerpColor(ColorRed, ColorBlue, 1) != ColorBlue {
		t.Error("LerpColor endpoints should be exact")
	}
}
