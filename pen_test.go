package vgpaint

import "testing"

func TestNewPenDefaults(t *testing.T) {
	p := NewPen()
	if p.Width() != 1 {
		t.Errorf("Width = %v, want 1", p.Width())
	}
	if p.Cap() != LineCapButt {
		t.Errorf("Cap = %v, want butt", p.Cap())
	}
	if p.Join() != LineJoinMiter {
		t.Errorf("Join = %v, want miter", p.Join())
	}
	if p.MiterLimit() != 4 {
		t.Errorf("MiterLimit = %v, want 4", p.MiterLimit())
	}
	if p.IsDashed() {
		t.Error("new pen reports dashed")
	}
	b := p.Brush()
	if b.Kind() != BrushSolid || b.Color() != Black {
		t.Errorf("default brush = kind %v color %v, want solid black", b.Kind(), b.Color())
	}
	if !b.Transform().IsIdentity() {
		t.Errorf("default brush transform = %+v, want identity", b.Transform())
	}
}

// Dash lengths are divided by the width in effect when they are set.
func TestPenDashNormalization(t *testing.T) {
	p := NewPen()
	p.SetWidth(4)
	p.SetDashArray([]float64{2, 2})

	got := p.DashArray()
	want := []float64{0.5, 0.5}
	if len(got) != len(want) {
		t.Fatalf("DashArray = %v, want %v", got, want)
	}
	for i := range want {
		if !approxEq(got[i], want[i]) {
			t.Errorf("DashArray[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// Changing the width afterwards must not rescale stored dash values;
// the effective pattern stretches with the new width instead.
func TestPenSetWidthKeepsDashUnits(t *testing.T) {
	p := NewPen()
	p.SetWidth(4)
	p.SetDashArray([]float64{2, 2})
	p.SetDashOffset(4)

	p.SetWidth(8)

	got := p.DashArray()
	for i, v := range got {
		if !approxEq(v, 0.5) {
			t.Errorf("DashArray[%d] = %v after SetWidth, want 0.5", i, v)
		}
	}
	if !approxEq(p.DashOffset(), 1) {
		t.Errorf("DashOffset = %v after SetWidth, want 1", p.DashOffset())
	}

	eff := p.dash.effectiveArray(p.Width())
	for i, v := range eff {
		if !approxEq(v, 4) {
			t.Errorf("effective dash[%d] = %v at width 8, want 4", i, v)
		}
	}
	if !approxEq(p.dash.effectiveOffset(p.Width()), 8) {
		t.Errorf("effective offset = %v, want 8", p.dash.effectiveOffset(p.Width()))
	}
}

// A zero-width pen stores dash values against a divisor of one.
func TestPenDashZeroWidth(t *testing.T) {
	p := NewPen()
	p.SetWidth(0)
	p.SetDashArray([]float64{3, 1})
	got := p.DashArray()
	if !approxEq(got[0], 3) || !approxEq(got[1], 1) {
		t.Errorf("DashArray = %v, want [3 1]", got)
	}
}

func TestPenDashClear(t *testing.T) {
	p := NewPen()
	p.SetDashArray([]float64{2, 2})
	if !p.IsDashed() {
		t.Fatal("pen should be dashed")
	}
	p.SetDashArray(nil)
	if p.IsDashed() {
		t.Error("pen still dashed after clearing")
	}
	if p.DashArray() != nil {
		t.Errorf("DashArray = %v, want nil", p.DashArray())
	}
}

func TestDashEffectiveArrayOddDuplicated(t *testing.T) {
	d := &Dash{Array: []float64{2, 1, 3}}
	got := d.effectiveArray(2)
	want := []float64{4, 2, 6, 4, 2, 6}
	if len(got) != len(want) {
		t.Fatalf("effectiveArray = %v, want %v", got, want)
	}
	for i := range want {
		if !approxEq(got[i], want[i]) {
			t.Errorf("effectiveArray[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !approxEq(d.PatternLength(), 12) {
		t.Errorf("PatternLength = %v, want 12", d.PatternLength())
	}
}

func TestDashEffectiveOffsetWraps(t *testing.T) {
	d := &Dash{Array: []float64{2, 2}, Offset: 5}
	// Cycle length at width 1 is 4; offset 5 wraps to 1.
	if got := d.effectiveOffset(1); !approxEq(got, 1) {
		t.Errorf("effectiveOffset = %v, want 1", got)
	}
	d.Offset = -1
	if got := d.effectiveOffset(1); !approxEq(got, 3) {
		t.Errorf("negative effectiveOffset = %v, want 3", got)
	}
}

func TestPenNegativeWidthClamped(t *testing.T) {
	p := NewPen()
	p.SetWidth(-3)
	if p.Width() != 0 {
		t.Errorf("Width = %v, want 0", p.Width())
	}
}

func TestPenSetBrushClones(t *testing.T) {
	p := NewPen()
	b := NewBrush()
	b.SetColor(Red)
	p.SetBrush(b)

	b.SetColor(Blue)
	if got := p.Brush().Color(); got != Red {
		t.Errorf("pen brush color = %v, want red (clone-on-attach)", got)
	}
}

func TestPenCloneIndependence(t *testing.T) {
	p := NewPen()
	p.SetWidth(2)
	p.SetDashArray([]float64{4, 2})

	c := p.clone()
	p.SetDashArray([]float64{8, 8})
	p.SetWidth(10)

	if got := c.Width(); got != 2 {
		t.Errorf("clone Width = %v, want 2", got)
	}
	arr := c.DashArray()
	if !approxEq(arr[0], 2) || !approxEq(arr[1], 1) {
		t.Errorf("clone DashArray = %v, want [2 1]", arr)
	}
}
