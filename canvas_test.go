package vgpaint

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestNewCanvasInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -5, 10},
		{"negative height", 10, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCanvas(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewCanvas(%d,%d) error = %v, want ErrInvalidDimensions", tt.w, tt.h, err)
			}
		})
	}
}

func TestNewCanvasDefaults(t *testing.T) {
	c, err := NewCanvas(16, 8)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != 16 || c.Height() != 8 {
		t.Errorf("size = %dx%d", c.Width(), c.Height())
	}
	if c.AlphaMode() != AlphaPremultiplied {
		t.Errorf("AlphaMode = %v, want premultiplied", c.AlphaMode())
	}
	if c.RasterizerName() != RasterizerSoftware {
		t.Errorf("RasterizerName = %q, want software", c.RasterizerName())
	}
	if got := len(c.Pixels()); got != 16*8*4 {
		t.Errorf("pixel buffer length = %d, want %d", got, 16*8*4)
	}
	for i, v := range c.Pixels() {
		if v != 0 {
			t.Fatalf("pixel byte %d = %d, want 0", i, v)
		}
	}
}

func TestNewCanvasUnknownRasterizer(t *testing.T) {
	_, err := NewCanvas(10, 10, WithRasterizer("no-such-rasterizer"))
	if !errors.Is(err, ErrNoRasterizer) {
		t.Errorf("error = %v, want ErrNoRasterizer", err)
	}
}

func TestCanvasFill(t *testing.T) {
	c, err := NewCanvas(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	c.Fill(RGBA{R: 1, A: 0.5})

	pix := c.Pixels()
	// Premultiplied: half-alpha red stores r=a=128.
	if pix[0] != 128 || pix[1] != 0 || pix[2] != 0 || pix[3] != 128 {
		t.Errorf("premultiplied pixel = %v", pix[:4])
	}

	s, err := NewCanvas(4, 4, WithAlphaMode(AlphaStraight))
	if err != nil {
		t.Fatal(err)
	}
	s.Fill(RGBA{R: 1, A: 0.5})
	spix := s.Pixels()
	if spix[0] != 255 || spix[3] != 128 {
		t.Errorf("straight pixel = %v", spix[:4])
	}
}

func TestCanvasCopyRegion(t *testing.T) {
	c, err := NewCanvas(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	// Mark pixel (2,1) opaque red.
	pix := c.Pixels()
	i := (1*4 + 2) * 4
	pix[i], pix[i+3] = 255, 255

	sub, err := c.CopyRegion(2, 1, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Width() != 2 || sub.Height() != 2 {
		t.Fatalf("region size = %dx%d", sub.Width(), sub.Height())
	}
	if sub.AlphaMode() != AlphaStraight {
		t.Errorf("region AlphaMode = %v, want straight", sub.AlphaMode())
	}
	// The marked pixel lands at the region origin.
	sp := sub.Pixels()
	if sp[0] != 255 || sp[3] != 255 {
		t.Errorf("region origin pixel = %v, want red", sp[:4])
	}
	if sp[4] != 0 || sp[7] != 0 {
		t.Errorf("region pixel (1,0) = %v, want transparent", sp[4:8])
	}
}

func TestCanvasCopyRegionOutOfBounds(t *testing.T) {
	c, err := NewCanvas(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"negative origin", -1, 0, 2, 2},
		{"overflow right", 3, 0, 2, 2},
		{"overflow bottom", 0, 3, 2, 2},
		{"zero size", 0, 0, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.CopyRegion(tt.x, tt.y, tt.w, tt.h); !errors.Is(err, ErrInvalidRegion) {
				t.Errorf("CopyRegion error = %v, want ErrInvalidRegion", err)
			}
		})
	}
}

func TestCanvasCloneIndependence(t *testing.T) {
	c, err := NewCanvas(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	c.Fill(Red)
	clone := c.Clone()
	c.Clear()

	if clone.Pixels()[0] != 255 {
		t.Error("clone shares pixel memory with original")
	}
}

func TestCanvasPNGRoundTrip(t *testing.T) {
	c, err := NewCanvas(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	c.Fill(RGBA{R: 1, G: 0.5, B: 0.25, A: 1})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewCanvasFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Width() != 8 || loaded.Height() != 8 {
		t.Fatalf("loaded size = %dx%d", loaded.Width(), loaded.Height())
	}
	a := c.Pixels()
	b := loaded.Pixels()
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < -1 || d > 1 {
			t.Fatalf("byte %d: %d -> %d", i, a[i], b[i])
		}
	}
}

func TestCanvasEncodePNG(t *testing.T) {
	c, err := NewCanvas(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := NewCanvasFromData(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if back.Width() != 4 {
		t.Errorf("decoded width = %d", back.Width())
	}
}

func TestCanvasFromDataBadInput(t *testing.T) {
	if _, err := NewCanvasFromData([]byte("not an image")); err == nil {
		t.Error("expected decode error")
	}
}

func TestCanvasSinglePainter(t *testing.T) {
	c, err := NewCanvas(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	p, err := c.Painter()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Painter(); !errors.Is(err, ErrPainterActive) {
		t.Errorf("second Painter error = %v, want ErrPainterActive", err)
	}

	p.End()
	q, err := c.Painter()
	if err != nil {
		t.Errorf("Painter after End: %v", err)
	}
	q.End()

	// End is idempotent and later painters are unaffected.
	p.End()
	r, err := c.Painter()
	if err != nil {
		t.Errorf("Painter after double End: %v", err)
	}
	r.End()
}

func TestCanvasUnpremultiplyRoundTrip(t *testing.T) {
	pix := []uint8{128, 64, 0, 128}
	unpremultiplyBuffer(pix)
	if pix[0] != 255 || pix[3] != 128 {
		t.Errorf("unpremultiplied = %v", pix)
	}
	premultiplyBuffer(pix)
	if pix[0] != 128 || pix[3] != 128 {
		t.Errorf("re-premultiplied = %v", pix)
	}
}
