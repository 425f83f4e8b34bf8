package vgpaint

import (
	"image/color"
	"testing"
)

func TestColorConstructors(t *testing.T) {
	if got := RGB(1, 0, 0); got != Red {
		t.Errorf("RGB(1,0,0) = %+v, want red", got)
	}
	if got := RGBA8(0, 255, 0, 255); !colorsEq(got, Green) {
		t.Errorf("RGBA8 green = %+v", got)
	}
	if got := RGBA8(255, 255, 255, 0); !colorsEq(got, RGBA{R: 1, G: 1, B: 1, A: 0}) {
		t.Errorf("transparent white = %+v", got)
	}
}

func TestColorStdlibRoundTrip(t *testing.T) {
	c := RGBA{R: 0.5, G: 0.25, B: 1, A: 0.5}
	back := FromColor(c.Color())
	// One trip through 8-bit channels loses at most a quantization
	// step per component.
	const tol = 2.0 / 255
	for name, pair := range map[string][2]float64{
		"R": {c.R, back.R},
		"G": {c.G, back.G},
		"B": {c.B, back.B},
		"A": {c.A, back.A},
	} {
		if d := pair[0] - pair[1]; d > tol || d < -tol {
			t.Errorf("%s: %v -> %v", name, pair[0], pair[1])
		}
	}
}

func TestColorPremul8(t *testing.T) {
	r, g, b, a := (RGBA{R: 1, G: 0.5, B: 0, A: 0.5}).premul8()
	if a != 128 {
		t.Errorf("alpha = %d, want 128", a)
	}
	if r != 128 {
		t.Errorf("premultiplied red = %d, want 128", r)
	}
	if g < 63 || g > 65 {
		t.Errorf("premultiplied green = %d, want ~64", g)
	}
	if b != 0 {
		t.Errorf("premultiplied blue = %d, want 0", b)
	}
}

func TestColorLerp(t *testing.T) {
	got := Black.Lerp(White, 0.25)
	want := RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}
	if !colorsEq(got, want) {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}
}

func TestColorWithAlpha(t *testing.T) {
	got := Red.WithAlpha(0.5)
	if !colorsEq(got, RGBA{R: 1, A: 0.5}) {
		t.Errorf("WithAlpha = %+v", got)
	}
}

func TestColorImplementsColor(t *testing.T) {
	var _ color.Color = Red.Color()
}
