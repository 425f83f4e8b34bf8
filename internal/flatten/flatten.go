// Package flatten converts paths with cubic curves into per-subpath
// polylines using recursive de Casteljau subdivision.
package flatten

import "math"

// Tolerance is the maximum distance between the flattened polyline and
// the true curve, in device pixels.
const Tolerance = 0.1

// Point represents a 2D point (local copy to avoid import cycles).
type Point struct {
	X, Y float64
}

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Subpath is one flattened subpath.
type Subpath struct {
	Points []Point
	Closed bool
}

// Flatten converts path elements into flattened subpaths.
// Each MoveTo starts a new subpath; Close marks the preceding subpath
// closed without duplicating the start point.
func Flatten(elements []PathElement) []Subpath {
	var subpaths []Subpath
	var cur []Point
	var current Point

	flush := func(closed bool) {
		if len(cur) >= 2 {
			subpaths = append(subpaths, Subpath{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			current = e.Point
			cur = append(cur, current)

		case LineTo:
			if len(cur) == 0 {
				cur = append(cur, current)
			}
			current = e.Point
			cur = append(cur, current)

		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, current)
			}
			flattenCubic(current, e.Control1, e.Control2, e.Point, Tolerance, &cur)
			current = e.Point

		case Close:
			if len(cur) >= 2 {
				start := cur[0]
				flush(true)
				current = start
			} else {
				cur = nil
			}
		}
	}
	flush(false)
	return subpaths
}

// flattenCubic recursively subdivides a cubic Bezier curve, appending
// points after p0 (which must already be in the output).
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	// de Casteljau split at t = 0.5.
	q0 := lerp(p0, p1)
	q1 := lerp(p1, p2)
	q2 := lerp(p2, p3)
	r0 := lerp(q0, q1)
	r1 := lerp(q1, q2)
	s := lerp(r0, r1)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

func lerp(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// distanceToLine calculates the perpendicular distance from point p to
// the line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}

	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := a.X + t*abx
	cy := a.Y + t*aby
	return math.Hypot(p.X-cx, p.Y-cy)
}
