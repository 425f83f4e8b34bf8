package vgpaint

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFont(t *testing.T) *Font {
	t.Helper()
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestParseFontBadData(t *testing.T) {
	if _, err := ParseFont([]byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
}

func TestFontName(t *testing.T) {
	f := loadTestFont(t)
	if f.Name() == "" {
		t.Error("Name() is empty")
	}
}

func TestFontMetrics(t *testing.T) {
	f := loadTestFont(t)
	m, err := f.Metrics(16)
	if err != nil {
		t.Fatal(err)
	}
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %v, want > 0", m.Descent)
	}
	if m.LineHeight < m.Ascent+m.Descent {
		t.Errorf("LineHeight = %v, want >= ascent+descent = %v", m.LineHeight, m.Ascent+m.Descent)
	}

	// Metrics scale with size.
	m2, err := f.Metrics(32)
	if err != nil {
		t.Fatal(err)
	}
	if m2.Ascent <= m.Ascent {
		t.Errorf("ascent at 32pt (%v) not larger than at 16pt (%v)", m2.Ascent, m.Ascent)
	}
}

func TestFontMeasureText(t *testing.T) {
	f := loadTestFont(t)

	empty, err := f.MeasureText("", 16)
	if err != nil {
		t.Fatal(err)
	}
	if empty != 0 {
		t.Errorf("empty string width = %v, want 0", empty)
	}

	a, err := f.MeasureText("A", 16)
	if err != nil {
		t.Fatal(err)
	}
	v, err := f.MeasureText("V", 16)
	if err != nil {
		t.Fatal(err)
	}
	av, err := f.MeasureText("AV", 16)
	if err != nil {
		t.Fatal(err)
	}
	if a <= 0 || v <= 0 {
		t.Fatalf("advances A=%v V=%v, want > 0", a, v)
	}
	// Kerning pulls AV together, never apart.
	if av > a+v+1e-6 {
		t.Errorf("AV width %v exceeds A+V = %v", av, a+v)
	}

	wide, err := f.MeasureText("AVAVAV", 16)
	if err != nil {
		t.Fatal(err)
	}
	if wide <= av {
		t.Errorf("longer text not wider: %v <= %v", wide, av)
	}
}

func TestFontTextPath(t *testing.T) {
	f := loadTestFont(t)
	path, err := f.TextPath("Hi", 32, 10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(path.Elements()) == 0 {
		t.Fatal("text path has no elements")
	}

	m, err := f.Metrics(32)
	if err != nil {
		t.Fatal(err)
	}
	w, err := f.MeasureText("Hi", 32)
	if err != nil {
		t.Fatal(err)
	}

	bb := path.BoundingBox()
	box := NewRect(10, 20, w, m.Ascent+m.Descent)
	if bb.X < box.X-1 || bb.Y < box.Y-1 || bb.Right() > box.Right()+1 || bb.Bottom() > box.Bottom()+1 {
		t.Errorf("outline bounds %+v outside text box %+v", bb, box)
	}
}

func TestFontTextPathEmpty(t *testing.T) {
	f := loadTestFont(t)
	path, err := f.TextPath("", 16, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(path.Elements()) != 0 {
		t.Errorf("empty text produced %d elements", len(path.Elements()))
	}
}

func TestPainterDrawText(t *testing.T) {
	f := loadTestFont(t)
	c, p := newTestPainter(t, 128, 64)
	b := NewBrush()
	b.SetColor(Black)
	p.SetBrush(b)
	p.DrawText(f, "Hello", 32, 4, 4)
	p.End()

	covered := 0
	pix := c.Pixels()
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Fatal("DrawText painted nothing")
	}
	if covered > 128*64/2 {
		t.Errorf("DrawText covered %d pixels, suspiciously many", covered)
	}
}
