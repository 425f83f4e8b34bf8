package vgpaint

import (
	"math"
	"sort"
)

// SpreadMode defines how gradients extend beyond their stop range.
type SpreadMode int

const (
	// SpreadPad extends edge colors beyond bounds (default).
	SpreadPad SpreadMode = iota
	// SpreadReflect mirrors the gradient pattern.
	SpreadReflect
	// SpreadRepeat repeats the gradient pattern.
	SpreadRepeat
)

// ColorStop represents a color at a position in a gradient.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// LinearGradient is a color ramp between two points.
type LinearGradient struct {
	Start, End Point
	stops      []ColorStop
	spread     SpreadMode
}

// NewLinearGradient creates a linear gradient from (x1, y1) to
// (x2, y2) with no stops and pad spread.
func NewLinearGradient(x1, y1, x2, y2 float64) *LinearGradient {
	return &LinearGradient{
		Start: Pt(x1, y1),
		End:   Pt(x2, y2),
	}
}

// AddColorStop appends a stop. The offset is clamped to [0, 1] and the
// stop list is kept sorted; equal offsets keep insertion order, so the
// later insert wins the upper side of a hard transition. Unsorted
// input is therefore accepted and resolved deterministically.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) {
	g.stops = insertStop(g.stops, ColorStop{Offset: clamp01(offset), Color: c})
}

// SetSpread sets the spread mode.
func (g *LinearGradient) SetSpread(s SpreadMode) {
	g.spread = s
}

// Stops returns a copy of the (sorted) stop list.
func (g *LinearGradient) Stops() []ColorStop {
	return append([]ColorStop(nil), g.stops...)
}

// ColorAt returns the gradient color at a point in gradient space.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	d := g.End.Sub(g.Start)
	lenSq := d.Dot(d)
	if lenSq < 1e-12 {
		return lastStopColor(g.stops)
	}
	t := Pt(x, y).Sub(g.Start).Dot(d) / lenSq
	return colorAtOffset(g.stops, t, g.spread)
}

func (g *LinearGradient) clone() *LinearGradient {
	if g == nil {
		return nil
	}
	out := *g
	out.stops = append([]ColorStop(nil), g.stops...)
	return &out
}

// RadialGradient is a color ramp between two circles: a focal circle
// (focal point + focal radius, t=0) and an outer circle (center +
// radius, t=1). Non-concentric circles produce the two-point-conical
// gradients SVG requires; collapsing the focal circle onto the center
// yields a simple radial gradient.
type RadialGradient struct {
	Center      Point
	Radius      float64
	Focal       Point
	FocalRadius float64
	stops       []ColorStop
	spread      SpreadMode
}

// NewRadialGradient creates a radial gradient with outer circle
// (cx, cy, r) and focal circle (fx, fy, fr).
func NewRadialGradient(cx, cy, r, fx, fy, fr float64) *RadialGradient {
	return &RadialGradient{
		Center:      Pt(cx, cy),
		Radius:      r,
		Focal:       Pt(fx, fy),
		FocalRadius: fr,
	}
}

// AddColorStop appends a stop; see LinearGradient.AddColorStop.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) {
	g.stops = insertStop(g.stops, ColorStop{Offset: clamp01(offset), Color: c})
}

// SetSpread sets the spread mode.
func (g *RadialGradient) SetSpread(s SpreadMode) {
	g.spread = s
}

// Stops returns a copy of the (sorted) stop list.
func (g *RadialGradient) Stops() []ColorStop {
	return append([]ColorStop(nil), g.stops...)
}

// ColorAt returns the gradient color at a point in gradient space.
//
// Solves |p - lerp(focal, center, t)| = lerp(focalRadius, radius, t)
// for the largest valid t, the standard two-point-conical evaluation.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	cd := g.Center.Sub(g.Focal)
	rd := g.Radius - g.FocalRadius
	p := Pt(x, y).Sub(g.Focal)

	a := cd.Dot(cd) - rd*rd
	b := p.Dot(cd) + g.FocalRadius*rd
	c := p.Dot(p) - g.FocalRadius*g.FocalRadius

	var t float64
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return lastStopColor(g.stops)
		}
		t = c / (2 * b)
	} else {
		disc := b*b - a*c
		if disc < 0 {
			// Point is outside the cone; pad to the outer edge.
			return colorAtOffset(g.stops, 1, g.spread)
		}
		sq := math.Sqrt(disc)
		t = (b + sq) / a
		if g.FocalRadius+t*rd < 0 {
			t = (b - sq) / a
		}
	}
	return colorAtOffset(g.stops, t, g.spread)
}

func (g *RadialGradient) clone() *RadialGradient {
	if g == nil {
		return nil
	}
	out := *g
	out.stops = append([]ColorStop(nil), g.stops...)
	return &out
}

// insertStop inserts a stop keeping the list sorted by offset.
// Insertion is stable: the new stop goes after existing stops with the
// same offset.
func insertStop(stops []ColorStop, stop ColorStop) []ColorStop {
	i := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset > stop.Offset
	})
	stops = append(stops, ColorStop{})
	copy(stops[i+1:], stops[i:])
	stops[i] = stop
	return stops
}

// applySpread normalizes t to [0, 1] according to the spread mode.
func applySpread(t float64, mode SpreadMode) float64 {
	switch mode {
	case SpreadRepeat:
		t -= math.Floor(t)
	case SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

// colorAtOffset returns the interpolated color at offset t.
// Interpolation is component-wise in un-premultiplied space.
func colorAtOffset(stops []ColorStop, t float64, mode SpreadMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = applySpread(t, mode)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1 := stops[idx-1]
	s2 := stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	local := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.Lerp(s2.Color, local)
}

func lastStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[len(stops)-1].Color
}
