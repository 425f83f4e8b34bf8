package stroke

import (
	"math"
	"testing"
)

// covers reports whether the outline polygons cover the point under
// the non-zero rule.
func covers(polys [][]Point, p Point) bool {
	winding := 0
	for _, poly := range polys {
		n := len(poly)
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n]
			if (a.Y <= p.Y) != (b.Y <= p.Y) {
				x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
				if x > p.X {
					if b.Y > a.Y {
						winding++
					} else {
						winding--
					}
				}
			}
		}
	}
	return winding != 0
}

func line(pts ...Point) []Subpath {
	return []Subpath{{Points: pts}}
}

func TestOutlineHorizontalLine(t *testing.T) {
	out := Outline(line(Point{0, 10}, Point{20, 10}), Style{Width: 4})
	if len(out) == 0 {
		t.Fatal("no outline produced")
	}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{10, 10}, true},
		{"inside top edge", Point{10, 8.5}, true},
		{"inside bottom edge", Point{10, 11.5}, true},
		{"above the stroke", Point{10, 7}, false},
		{"below the stroke", Point{10, 13}, false},
		{"before butt cap", Point{-1, 10}, false},
		{"past butt cap", Point{21, 10}, false},
	}
	for _, tt := range tests {
		if got := covers(out, tt.p); got != tt.want {
			t.Errorf("%s: covers(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestOutlineZeroWidth(t *testing.T) {
	if out := Outline(line(Point{0, 0}, Point{10, 0}), Style{Width: 0}); out != nil {
		t.Errorf("zero width produced %d polygons", len(out))
	}
}

func TestOutlineCaps(t *testing.T) {
	sub := line(Point{10, 10}, Point{30, 10})
	probe := Point{31.5, 10} // just past the endpoint, within half width

	if covers(Outline(sub, Style{Width: 4, Cap: LineCapButt}), probe) {
		t.Error("butt cap extends past the endpoint")
	}
	if !covers(Outline(sub, Style{Width: 4, Cap: LineCapRound}), probe) {
		t.Error("round cap missing past the endpoint")
	}
	if !covers(Outline(sub, Style{Width: 4, Cap: LineCapSquare}), probe) {
		t.Error("square cap missing past the endpoint")
	}
	// A square cap reaches exactly half the width; round falls short
	// at the corner.
	corner := Point{31.8, 11.8}
	if covers(Outline(sub, Style{Width: 4, Cap: LineCapRound}), corner) {
		t.Error("round cap covers the square corner")
	}
	if !covers(Outline(sub, Style{Width: 4, Cap: LineCapSquare}), corner) {
		t.Error("square cap misses its corner")
	}
}

func TestOutlineMiterJoin(t *testing.T) {
	// Right angle at (20,10): the miter tip extends along the
	// bisector beyond the bevel.
	sub := line(Point{0, 10}, Point{20, 10}, Point{20, 30})
	tip := Point{21.2, 8.8}

	miter := Outline(sub, Style{Width: 4, Join: LineJoinMiter, MiterLimit: 4})
	if !covers(miter, tip) {
		t.Error("miter join misses the tip")
	}

	bevel := Outline(sub, Style{Width: 4, Join: LineJoinBevel, MiterLimit: 4})
	if covers(bevel, tip) {
		t.Error("bevel join covers the miter tip")
	}

	// A tight miter limit degrades the join to a bevel.
	limited := Outline(sub, Style{Width: 4, Join: LineJoinMiter, MiterLimit: 1})
	if covers(limited, tip) {
		t.Error("miter limit did not truncate the join")
	}
}

func TestOutlineClosedSubpath(t *testing.T) {
	square := []Subpath{{
		Points: []Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}},
		Closed: true,
	}}
	out := Outline(square, Style{Width: 2, Join: LineJoinMiter, MiterLimit: 4})

	if !covers(out, Point{20, 10}) {
		t.Error("top edge not stroked")
	}
	if !covers(out, Point{10, 20}) {
		t.Error("left edge not stroked")
	}
	// The closing segment back to the start must be stroked too.
	if !covers(out, Point{20, 30}) {
		t.Error("closing edge not stroked")
	}
	if covers(out, Point{20, 20}) {
		t.Error("square interior filled by its stroke")
	}
}

func TestOutlineDashedLine(t *testing.T) {
	out := Outline(line(Point{0, 0}, Point{40, 0}), Style{
		Width: 2,
		Dash:  []float64{10, 10},
	})

	// Pattern: on for x in [0,10), off [10,20), on [20,30), off [30,40).
	if !covers(out, Point{5, 0}) {
		t.Error("first dash missing")
	}
	if covers(out, Point{15, 0}) {
		t.Error("first gap painted")
	}
	if !covers(out, Point{25, 0}) {
		t.Error("second dash missing")
	}
	if covers(out, Point{35, 0}) {
		t.Error("second gap painted")
	}
}

func TestOutlineDashOffsetShiftsPattern(t *testing.T) {
	out := Outline(line(Point{0, 0}, Point{40, 0}), Style{
		Width:      2,
		Dash:       []float64{10, 10},
		DashOffset: 10,
	})

	// Offset 10 starts inside the gap.
	if covers(out, Point{5, 0}) {
		t.Error("offset pattern paints the shifted gap")
	}
	if !covers(out, Point{15, 0}) {
		t.Error("offset pattern misses the shifted dash")
	}
}

func TestApplyDashSplitsAcrossVertices(t *testing.T) {
	// An L shape of total length 20 with a dash spanning the corner.
	runs := applyDash(
		[]Point{{0, 0}, {10, 0}, {10, 10}},
		false, []float64{15, 5}, 0)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	run := runs[0]
	end := run[len(run)-1]
	if math.Abs(end.X-10) > 1e-9 || math.Abs(end.Y-5) > 1e-9 {
		t.Errorf("dash ends at %v, want (10,5)", end)
	}
	// The corner vertex is preserved inside the run.
	foundCorner := false
	for _, p := range run {
		if p == (Point{10, 0}) {
			foundCorner = true
		}
	}
	if !foundCorner {
		t.Error("corner vertex missing from dash run")
	}
}

func TestNormalizePattern(t *testing.T) {
	if got := normalizePattern(nil); got != nil {
		t.Errorf("nil pattern = %v", got)
	}
	if got := normalizePattern([]float64{0, 0}); got != nil {
		t.Errorf("all-zero pattern = %v, want nil", got)
	}
	got := normalizePattern([]float64{3, -1})
	if len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("pattern = %v, want [3 1]", got)
	}
	odd := normalizePattern([]float64{2})
	if len(odd) != 2 || odd[0] != 2 || odd[1] != 2 {
		t.Errorf("odd pattern = %v, want [2 2]", odd)
	}
}

func TestAppendPieceOrientation(t *testing.T) {
	// A clockwise (negative-area) polygon is reversed so all pieces
	// union under the non-zero rule.
	cw := []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	out := appendPiece(nil, cw)
	if len(out) != 1 {
		t.Fatalf("got %d pieces", len(out))
	}
	if signedArea(out[0]) <= 0 {
		t.Errorf("piece area = %v, want positive", signedArea(out[0]))
	}
}
