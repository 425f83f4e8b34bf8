package vgpaint

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect represents an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from an origin and a size.
// Negative sizes are normalized so W and H are always >= 0.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the maximum y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle is the identity element.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.Right(), other.Right())
	y1 := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the overlap of r and other, or an empty rectangle.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ExpandToInclude grows the rectangle to include the point.
func (r Rect) ExpandToInclude(p Point) Rect {
	if r.IsEmpty() {
		return Rect{X: p.X, Y: p.Y}
	}
	x0 := math.Min(r.X, p.X)
	y0 := math.Min(r.Y, p.Y)
	x1 := math.Max(r.Right(), p.X)
	y1 := math.Max(r.Bottom(), p.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Transform represents a 2D affine transformation with six coefficients.
// The coefficient layout follows the SVG/PostScript convention:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// Every backend consumes this exact layout; adapters over toolkits with
// a transposed native coefficient order must reconcile it internally.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// NewTransform creates a transform from its six coefficients.
func NewTransform(a, b, c, d, e, f float64) Transform {
	return Transform{A: a, B: b, C: c, D: d, E: e, F: f}
}

// TranslateBy creates a translation transform.
func TranslateBy(x, y float64) Transform {
	return Transform{A: 1, B: 0, C: 0, D: 1, E: x, F: y}
}

// ScaleBy creates a scaling transform.
func ScaleBy(x, y float64) Transform {
	return Transform{A: x, B: 0, C: 0, D: y, E: 0, F: 0}
}

// RotateBy creates a rotation transform (angle in radians).
func RotateBy(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{A: cos, B: sin, C: -sin, D: cos, E: 0, F: 0}
}

// ShearBy creates a shear transform.
func ShearBy(x, y float64) Transform {
	return Transform{A: 1, B: y, C: x, D: 1, E: 0, F: 0}
}

// Multiply returns t applied after other: the result maps a point p to
// t(other(p)).
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.C*other.B,
		B: t.B*other.A + t.D*other.B,
		C: t.A*other.C + t.C*other.D,
		D: t.B*other.C + t.D*other.D,
		E: t.A*other.E + t.C*other.F + t.E,
		F: t.B*other.E + t.D*other.F + t.F,
	}
}

// TransformPoint applies the transformation to a point.
func (t Transform) TransformPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// TransformVector applies only the linear part (no translation).
func (t Transform) TransformVector(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y,
		Y: t.B*p.X + t.D*p.Y,
	}
}

// Invert returns the inverse transform.
// Returns the identity transform if t is not invertible; drawing code
// relies on this fallback instead of error handling.
func (t Transform) Invert() Transform {
	det := t.A*t.D - t.B*t.C
	if math.Abs(det) < 1e-12 {
		return Identity()
	}
	inv := 1.0 / det
	return Transform{
		A: t.D * inv,
		B: -t.B * inv,
		C: -t.C * inv,
		D: t.A * inv,
		E: (t.C*t.F - t.D*t.E) * inv,
		F: (t.B*t.E - t.A*t.F) * inv,
	}
}

// ScaleFactor returns the average scale applied by the transform.
// Stroke widths are multiplied by this when geometry is mapped to
// device space.
func (t Transform) ScaleFactor() float64 {
	sx := math.Hypot(t.A, t.B)
	sy := math.Hypot(t.C, t.D)
	return (sx + sy) / 2
}

// IsIdentity reports whether t is the identity transform.
func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 && t.D == 1 && t.E == 0 && t.F == 0
}
