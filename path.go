package vgpaint

import "math"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule (default).
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// SegmentKind identifies a path segment type.
type SegmentKind int

const (
	// SegmentMoveTo starts a new subpath.
	SegmentMoveTo SegmentKind = iota
	// SegmentLineTo draws a straight line.
	SegmentLineTo
	// SegmentCubicTo draws a cubic Bezier curve.
	SegmentCubicTo
	// SegmentClose closes the current subpath.
	SegmentClose
)

// Segment describes one path element as seen through ElementAt.
// For SegmentCubicTo, Point is the curve endpoint; the control points
// are not exposed through this view (callers needing them walk the
// path with Elements).
type Segment struct {
	Kind  SegmentKind
	Point Point
}

// PathElement represents a single element in a path.
// This is a sealed interface; only types in this package implement it.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a mutable sequence of subpaths built from move, line and
// cubic-curve segments plus a fill rule.
//
// A Path handed to a draw call is copied by the painter; drawing never
// mutates it, and mutating it afterwards only affects later draws.
// The same applies to the fill rule: each draw snapshots it.
type Path struct {
	elements []PathElement
	rule     FillRule
	start    Point
	current  Point
}

// NewPath creates a new empty path with the non-zero fill rule.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a line from the current point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bezier curve from the current point with two
// control points ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// ClosePath closes the current subpath with a line to its start point.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// SetFillRule sets the fill rule used when the path is filled.
func (p *Path) SetFillRule(rule FillRule) {
	p.rule = rule
}

// FillRule returns the path's fill rule.
func (p *Path) FillRule() FillRule {
	return p.rule
}

// ElementCount returns the number of elements in the path.
func (p *Path) ElementCount() int {
	return len(p.elements)
}

// ElementAt returns a summary of the i-th element.
// Out-of-range indices return a zero-value close segment.
func (p *Path) ElementAt(i int) Segment {
	if i < 0 || i >= len(p.elements) {
		return Segment{Kind: SegmentClose}
	}
	switch e := p.elements[i].(type) {
	case MoveTo:
		return Segment{Kind: SegmentMoveTo, Point: e.Point}
	case LineTo:
		return Segment{Kind: SegmentLineTo, Point: e.Point}
	case CubicTo:
		return Segment{Kind: SegmentCubicTo, Point: e.Point}
	default:
		return Segment{Kind: SegmentClose}
	}
}

// Elements returns the path elements. The returned slice is shared
// with the path and must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		elements: make([]PathElement, len(p.elements)),
		rule:     p.rule,
		start:    p.start,
		current:  p.current,
	}
	copy(result.elements, p.elements)
	return result
}

// TransformBy returns a new path with every point mapped through t.
func (p *Path) TransformBy(t Transform) *Path {
	result := NewPath()
	result.rule = p.rule
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := t.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := t.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			c1 := t.TransformPoint(e.Control1)
			c2 := t.TransformPoint(e.Control2)
			pt := t.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.ClosePath()
		}
	}
	return result
}

// BoundingBox returns the exact bounding box of the path.
// Cubic segments contribute their analytic extrema, not their control
// hulls. An empty path has a zero bounding box.
func (p *Path) BoundingBox() Rect {
	var current Point
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	include := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			include(e.Point)
			current = e.Point
		case LineTo:
			include(e.Point)
			current = e.Point
		case CubicTo:
			include(e.Point)
			for _, t := range cubicExtrema(current.X, e.Control1.X, e.Control2.X, e.Point.X) {
				include(Point{
					X: cubicValue(current.X, e.Control1.X, e.Control2.X, e.Point.X, t),
					Y: cubicValue(current.Y, e.Control1.Y, e.Control2.Y, e.Point.Y, t),
				})
			}
			for _, t := range cubicExtrema(current.Y, e.Control1.Y, e.Control2.Y, e.Point.Y) {
				include(Point{
					X: cubicValue(current.X, e.Control1.X, e.Control2.X, e.Point.X, t),
					Y: cubicValue(current.Y, e.Control1.Y, e.Control2.Y, e.Point.Y, t),
				})
			}
			current = e.Point
		case Close:
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// cubicValue evaluates a one-dimensional cubic Bezier at t.
func cubicValue(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// cubicExtrema returns the parameter values in (0, 1) where the
// derivative of a one-dimensional cubic Bezier vanishes.
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	// Derivative is a quadratic: 3*(a*t^2 + b*t + c).
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	var roots []float64
	add := func(t float64) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}

	if math.Abs(a) < 1e-12 {
		if math.Abs(b) > 1e-12 {
			add(-c / b)
		}
		return roots
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return roots
	}
	sq := math.Sqrt(disc)
	add((-b + sq) / (2 * a))
	add((-b - sq) / (2 * a))
	return roots
}

// AddRect appends an axis-aligned rectangle as a closed subpath.
func (p *Path) AddRect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// AddCircle appends a circle approximated with four cubic curves.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// AddEllipse appends an ellipse approximated with four cubic curves.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.ClosePath()
}
