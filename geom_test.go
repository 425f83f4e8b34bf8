package vgpaint

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func pointsEq(a, b Point) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y)
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", TranslateBy(10, -5), Pt(1, 2), Pt(11, -3)},
		{"scale", ScaleBy(2, 3), Pt(4, 5), Pt(8, 15)},
		{"rotate 90", RotateBy(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate 180", RotateBy(math.Pi), Pt(1, 2), Pt(-1, -2)},
		{"shear x", ShearBy(1, 0), Pt(0, 2), Pt(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.TransformPoint(tt.in)
			if !pointsEq(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransformMultiplyOrder(t *testing.T) {
	// Multiply applies the right operand first: scale then translate.
	m := TranslateBy(100, 0).Multiply(ScaleBy(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(102, 2)
	if !pointsEq(got, want) {
		t.Errorf("translate*scale applied to (1,1) = %v, want %v", got, want)
	}
}

func TestTransformInvert(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
	}{
		{"identity", Identity()},
		{"translate", TranslateBy(7, -3)},
		{"scale", ScaleBy(2, 0.5)},
		{"rotate", RotateBy(1.2)},
		{"composite", TranslateBy(3, 4).Multiply(RotateBy(0.7)).Multiply(ScaleBy(2, 3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.tr.Invert()
			p := Pt(5, -2)
			back := inv.TransformPoint(tt.tr.TransformPoint(p))
			if !pointsEq(back, p) {
				t.Errorf("inverse round trip of %v = %v", p, back)
			}
		})
	}
}

func TestTransformInvertSingular(t *testing.T) {
	singular := ScaleBy(0, 0)
	inv := singular.Invert()
	if !inv.IsIdentity() {
		t.Errorf("Invert of singular transform = %+v, want identity", inv)
	}
}

func TestTransformScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform scale", ScaleBy(3, 3), 3},
		{"rotation preserves scale", RotateBy(0.9), 1},
		{"non-uniform averages", ScaleBy(2, 4), 3},
		{"translation has no effect", TranslateBy(100, 200), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.ScaleFactor(); !approxEq(got, tt.want) {
				t.Errorf("ScaleFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectNormalization(t *testing.T) {
	r := NewRect(10, 10, -4, -6)
	want := Rect{X: 6, Y: 4, W: 4, H: 6}
	if r != want {
		t.Errorf("NewRect with negative size = %+v, want %+v", r, want)
	}
}

func TestRectUnionIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}

	u := a.Union(b)
	if u != (Rect{X: 0, Y: 0, W: 15, H: 15}) {
		t.Errorf("Union = %+v", u)
	}

	i := a.Intersect(b)
	if i != (Rect{X: 5, Y: 5, W: 5, H: 5}) {
		t.Errorf("Intersect = %+v", i)
	}

	far := Rect{X: 100, Y: 100, W: 1, H: 1}
	if got := a.Intersect(far); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %+v, want empty", got)
	}

	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
}

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); !approxEq(got, 5) {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.Dot(Pt(2, 1)); !approxEq(got, 10) {
		t.Errorf("Dot = %v, want 10", got)
	}
	if got := Pt(1, 0).Cross(Pt(0, 1)); !approxEq(got, 1) {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 20), 0.5); !pointsEq(got, Pt(5, 10)) {
		t.Errorf("Lerp = %v", got)
	}
}
