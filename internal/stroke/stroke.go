// Package stroke converts stroked polylines into filled outline
// polygons.
//
// Instead of building one continuous outline with a forward and a
// reversed backward offset path, each segment, join and cap is emitted
// as its own convex polygon with normalized orientation. Filling the
// pieces with the non-zero rule yields their union, which is the
// stroked region. This trades a few overlapping pixels of rasterizer
// work for a construction with no reversal bookkeeping, and it behaves
// identically for open, closed and dashed subpaths.
package stroke

import "math"

// Point represents a 2D point (local copy to avoid import cycles).
type Point struct {
	X, Y float64
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Subpath is one flattened subpath to stroke.
type Subpath struct {
	Points []Point
	Closed bool
}

// Style describes a stroke in device units. Dash lengths and offset
// are the effective (already width-scaled) values.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       []float64
	DashOffset float64
}

// arcTolerance is the chord error allowed when approximating round
// caps and joins, in device pixels.
const arcTolerance = 0.1

// Outline expands stroked subpaths into outline polygons suitable for
// a non-zero fill. A non-positive width produces no geometry.
func Outline(subpaths []Subpath, style Style) [][]Point {
	if style.Width <= 0 {
		return nil
	}
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}

	var out [][]Point
	for _, sp := range subpaths {
		pts := dedupe(sp.Points)
		if len(pts) < 2 {
			continue
		}

		if len(style.Dash) > 0 {
			for _, run := range applyDash(pts, sp.Closed, style.Dash, style.DashOffset) {
				out = strokePolyline(out, run, false, style)
			}
			continue
		}
		out = strokePolyline(out, pts, sp.Closed, style)
	}
	return out
}

// strokePolyline appends the outline pieces for one polyline.
func strokePolyline(out [][]Point, pts []Point, closed bool, style Style) [][]Point {
	h := style.Width / 2
	n := len(pts)
	if n < 2 {
		return out
	}

	segEnd := n - 1
	if closed {
		segEnd = n
	}

	// Segment quads.
	for i := 0; i < segEnd; i++ {
		p := pts[i]
		q := pts[(i+1)%n]
		nx, ny, ok := leftNormal(p, q)
		if !ok {
			continue
		}
		out = appendPiece(out, []Point{
			{X: p.X + nx*h, Y: p.Y + ny*h},
			{X: q.X + nx*h, Y: q.Y + ny*h},
			{X: q.X - nx*h, Y: q.Y - ny*h},
			{X: p.X - nx*h, Y: p.Y - ny*h},
		})
	}

	// Joins at interior vertices (every vertex when closed).
	jStart, jEnd := 1, n-1
	if closed {
		jStart, jEnd = 0, n
	}
	for i := jStart; i < jEnd; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		out = appendJoin(out, prev, cur, next, h, style)
	}

	// Caps on open polylines.
	if !closed {
		out = appendCap(out, pts[1], pts[0], h, style.Cap)
		out = appendCap(out, pts[n-2], pts[n-1], h, style.Cap)
	}
	return out
}

// appendJoin emits the join piece at vertex cur.
func appendJoin(out [][]Point, prev, cur, next Point, h float64, style Style) [][]Point {
	d0x, d0y, ok0 := direction(prev, cur)
	d1x, d1y, ok1 := direction(cur, next)
	if !ok0 || !ok1 {
		return out
	}
	cross := d0x*d1y - d0y*d1x
	if math.Abs(cross) < 1e-12 {
		// Collinear; segment quads already cover the joint.
		return out
	}

	if style.Join == LineJoinRound {
		return appendPiece(out, circlePolygon(cur, h))
	}

	// Outer side sign for left normals (-dy, dx).
	s := 1.0
	if cross > 0 {
		s = -1.0
	}
	o0 := Point{X: cur.X - s*d0y*h, Y: cur.Y + s*d0x*h}
	o1 := Point{X: cur.X - s*d1y*h, Y: cur.Y + s*d1x*h}

	if style.Join == LineJoinMiter {
		// Outer unit normals and their bisector.
		ux := (o0.X - cur.X + o1.X - cur.X)
		uy := (o0.Y - cur.Y + o1.Y - cur.Y)
		ulen := math.Hypot(ux, uy)
		if ulen > 1e-12 {
			ux /= ulen
			uy /= ulen
			cosHalf := (ux*(o0.X-cur.X) + uy*(o0.Y-cur.Y)) / h
			if cosHalf > 1e-6 && 1/cosHalf <= style.MiterLimit {
				tip := Point{X: cur.X + ux*h/cosHalf, Y: cur.Y + uy*h/cosHalf}
				return appendPiece(out, []Point{cur, o0, tip, o1})
			}
		}
		// Exceeds the miter limit; fall through to bevel.
	}

	return appendPiece(out, []Point{cur, o0, o1})
}

// appendCap emits a cap at the endpoint, with from giving the stroke
// direction into the endpoint.
func appendCap(out [][]Point, from, end Point, h float64, cap LineCap) [][]Point {
	switch cap {
	case LineCapRound:
		return appendPiece(out, circlePolygon(end, h))
	case LineCapSquare:
		dx, dy, ok := direction(from, end)
		if !ok {
			return out
		}
		nx, ny := -dy, dx
		return appendPiece(out, []Point{
			{X: end.X + nx*h, Y: end.Y + ny*h},
			{X: end.X + nx*h + dx*h, Y: end.Y + ny*h + dy*h},
			{X: end.X - nx*h + dx*h, Y: end.Y - ny*h + dy*h},
			{X: end.X - nx*h, Y: end.Y - ny*h},
		})
	default:
		return out
	}
}

// circlePolygon approximates a circle with enough segments to keep the
// chord error under arcTolerance.
func circlePolygon(center Point, r float64) []Point {
	if r <= 0 {
		return nil
	}
	step := 2 * math.Acos(math.Max(0, 1-arcTolerance/r))
	segs := 8
	if step > 1e-6 {
		if n := int(math.Ceil(2 * math.Pi / step)); n > segs {
			segs = n
		}
	}
	if segs > 64 {
		segs = 64
	}
	pts := make([]Point, segs)
	for i := 0; i < segs; i++ {
		a := 2 * math.Pi * float64(i) / float64(segs)
		sin, cos := math.Sincos(a)
		pts[i] = Point{X: center.X + r*cos, Y: center.Y + r*sin}
	}
	return pts
}

// appendPiece appends a polygon with normalized (positive-area)
// orientation so that overlapping pieces union under the non-zero
// rule instead of cancelling.
func appendPiece(out [][]Point, poly []Point) [][]Point {
	if len(poly) < 3 {
		return out
	}
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return append(out, poly)
}

func signedArea(poly []Point) float64 {
	var area float64
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2
}

// applyDash splits a polyline into the "on" runs of a dash pattern.
// A closed polyline is unrolled into an open one starting at its first
// vertex; the pattern runs continuously around the loop.
func applyDash(pts []Point, closed bool, pattern []float64, offset float64) [][]Point {
	arr := normalizePattern(pattern)
	if len(arr) == 0 {
		return [][]Point{pts}
	}
	if closed {
		pts = append(append([]Point(nil), pts...), pts[0])
	}

	// Consume the phase offset.
	idx := 0
	for offset >= arr[idx] {
		offset -= arr[idx]
		idx = (idx + 1) % len(arr)
	}
	rem := arr[idx] - offset
	on := idx%2 == 0

	var runs [][]Point
	var cur []Point
	if on {
		cur = append(cur, pts[0])
	}

	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}

	for i := 0; i < len(pts)-1; i++ {
		p := pts[i]
		q := pts[i+1]
		segLen := math.Hypot(q.X-p.X, q.Y-p.Y)
		if segLen <= 0 {
			continue
		}
		pos := 0.0
		for segLen-pos > rem {
			pos += rem
			t := pos / segLen
			split := Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
			if on {
				cur = append(cur, split)
				flush()
			} else {
				cur = append(cur, split)
			}
			on = !on
			idx = (idx + 1) % len(arr)
			rem = arr[idx]
		}
		rem -= segLen - pos
		if on {
			cur = append(cur, q)
		}
	}
	flush()
	return runs
}

// normalizePattern drops non-positive entries' signs and duplicates
// odd-length patterns to an even length. A pattern whose total length
// is zero disables dashing.
func normalizePattern(pattern []float64) []float64 {
	n := len(pattern)
	if n == 0 {
		return nil
	}
	if n%2 != 0 {
		n *= 2
	}
	out := make([]float64, n)
	var total float64
	for i := range out {
		out[i] = math.Abs(pattern[i%len(pattern)])
		total += out[i]
	}
	if total <= 0 {
		return nil
	}
	return out
}

func direction(p, q Point) (dx, dy float64, ok bool) {
	dx = q.X - p.X
	dy = q.Y - p.Y
	l := math.Hypot(dx, dy)
	if l < 1e-12 {
		return 0, 0, false
	}
	return dx / l, dy / l, true
}

func leftNormal(p, q Point) (nx, ny float64, ok bool) {
	dx, dy, ok := direction(p, q)
	if !ok {
		return 0, 0, false
	}
	return -dy, dx, true
}

// dedupe removes consecutive duplicate points.
func dedupe(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if math.Abs(p.X-last.X) > 1e-12 || math.Abs(p.Y-last.Y) > 1e-12 {
			out = append(out, p)
		}
	}
	return out
}
