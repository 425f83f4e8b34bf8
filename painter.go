package vgpaint

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/vgpaint/vgpaint/internal/composite"
	"github.com/vgpaint/vgpaint/internal/flatten"
	"github.com/vgpaint/vgpaint/internal/stroke"
)

// CompositionMode selects how painted pixels combine with the canvas.
// The first twelve are the Porter-Duff operators, the rest separable
// blend modes.
type CompositionMode int

const (
	CompositionSourceOver CompositionMode = iota // default
	CompositionDestinationOver
	CompositionClear
	CompositionSource
	CompositionDestination
	CompositionSourceIn
	CompositionDestinationIn
	CompositionSourceOut
	CompositionDestinationOut
	CompositionSourceAtop
	CompositionDestinationAtop
	CompositionXor
	CompositionPlus
	CompositionMultiply
	CompositionScreen
	CompositionOverlay
	CompositionDarken
	CompositionLighten
	CompositionColorDodge
	CompositionColorBurn
	CompositionHardLight
	CompositionSoftLight
	CompositionDifference
	CompositionExclusion
)

// op maps to the internal operator. The two enums are declared in the
// same order.
func (m CompositionMode) op() composite.Op {
	return composite.Op(m)
}

// clipMask is an immutable per-pixel alpha mask. Intersecting clips
// produces a new mask, so snapshots taken by Save share masks safely.
type clipMask struct {
	pix []uint8
}

type painterState struct {
	transform Transform
	clip      *clipMask
	pen       *Pen
	brush     *Brush
	opacity   float64
	mode      CompositionMode
	antialias bool
	smooth    bool
}

// Painter draws onto a canvas. Obtain one with Canvas.Painter and
// release it with End.
//
// A painter never fails: drawing with degenerate input (empty paths,
// zero-width pens, nil arguments) is a no-op, as is any call after
// End. State setters clone attached pens and brushes, so mutating the
// originals afterwards does not affect the painter.
type Painter struct {
	canvas *Canvas
	buf    composite.Buffer
	state  painterState
	stack  []painterState
	ended  bool
}

func newPainter(c *Canvas) *Painter {
	return &Painter{
		canvas: c,
		buf: composite.Buffer{
			Pix:           c.pix,
			Width:         c.width,
			Height:        c.height,
			Premultiplied: c.alpha == AlphaPremultiplied,
		},
		state: painterState{
			transform: Identity(),
			opacity:   1,
			antialias: true,
			smooth:    true,
		},
	}
}

// End finishes the drawing session and releases the canvas for a new
// painter. Further calls on the painter are no-ops.
func (p *Painter) End() {
	if p.ended {
		return
	}
	p.ended = true
	p.canvas.painter = nil
}

// Save pushes the current painter state (transform, clip, pen, brush,
// opacity, composition mode, render hints) onto a stack.
func (p *Painter) Save() {
	if p.ended {
		return
	}
	p.stack = append(p.stack, p.state)
}

// Restore pops the most recently saved state. Without a matching Save
// it does nothing.
func (p *Painter) Restore() {
	if p.ended {
		return
	}
	if n := len(p.stack); n > 0 {
		p.state = p.stack[n-1]
		p.stack = p.stack[:n-1]
	}
}

// Translate moves the coordinate system.
func (p *Painter) Translate(dx, dy float64) {
	p.applyTransform(TranslateBy(dx, dy))
}

// Scale scales the coordinate system.
func (p *Painter) Scale(sx, sy float64) {
	p.applyTransform(ScaleBy(sx, sy))
}

// Rotate rotates the coordinate system by an angle in radians.
func (p *Painter) Rotate(angle float64) {
	p.applyTransform(RotateBy(angle))
}

// Shear shears the coordinate system.
func (p *Painter) Shear(sx, sy float64) {
	p.applyTransform(ShearBy(sx, sy))
}

func (p *Painter) applyTransform(t Transform) {
	if p.ended {
		return
	}
	p.state.transform = p.state.transform.Multiply(t)
}

// SetTransform sets the current transform. With combine the given
// transform is applied on top of the current one, in user space;
// otherwise it replaces it.
func (p *Painter) SetTransform(t Transform, combine bool) {
	if p.ended {
		return
	}
	if combine {
		p.state.transform = p.state.transform.Multiply(t)
	} else {
		p.state.transform = t
	}
}

// ResetTransform restores the identity transform.
func (p *Painter) ResetTransform() {
	if p.ended {
		return
	}
	p.state.transform = Identity()
}

// Transform returns the current transform.
func (p *Painter) Transform() Transform {
	return p.state.transform
}

// SetPen enables stroking with a clone of the pen. A nil pen disables
// stroking.
func (p *Painter) SetPen(pen *Pen) {
	if p.ended {
		return
	}
	if pen == nil {
		p.state.pen = nil
		return
	}
	p.state.pen = pen.clone()
}

// ResetPen disables stroking.
func (p *Painter) ResetPen() {
	if p.ended {
		return
	}
	p.state.pen = nil
}

// Pen returns the pen currently attached to the painter, or nil when
// stroking is disabled.
func (p *Painter) Pen() *Pen {
	return p.state.pen
}

// SetBrush enables filling with a clone of the brush. A nil brush
// disables filling.
func (p *Painter) SetBrush(b *Brush) {
	if p.ended {
		return
	}
	if b == nil {
		p.state.brush = nil
		return
	}
	p.state.brush = b.clone()
}

// ResetBrush disables filling.
func (p *Painter) ResetBrush() {
	if p.ended {
		return
	}
	p.state.brush = nil
}

// Brush returns the brush currently attached to the painter, or nil
// when filling is disabled.
func (p *Painter) Brush() *Brush {
	return p.state.brush
}

// SetOpacity sets the global opacity applied to every draw, clamped
// to [0, 1].
func (p *Painter) SetOpacity(opacity float64) {
	if p.ended {
		return
	}
	p.state.opacity = clamp01(opacity)
}

// Opacity returns the current global opacity.
func (p *Painter) Opacity() float64 {
	return p.state.opacity
}

// SetCompositionMode sets the compositing operator for subsequent
// draws.
func (p *Painter) SetCompositionMode(mode CompositionMode) {
	if p.ended {
		return
	}
	p.state.mode = mode
}

// CompositionMode returns the current compositing operator.
func (p *Painter) CompositionMode() CompositionMode {
	return p.state.mode
}

// SetAntialias toggles edge antialiasing. It is on by default.
func (p *Painter) SetAntialias(on bool) {
	if p.ended {
		return
	}
	p.state.antialias = on
}

// Antialias reports whether edge antialiasing is enabled.
func (p *Painter) Antialias() bool {
	return p.state.antialias
}

// SetSmoothImageTransform toggles smooth (bicubic) filtering for
// DrawCanvas. It is on by default; disabled, nearest-neighbor
// sampling is used.
func (p *Painter) SetSmoothImageTransform(on bool) {
	if p.ended {
		return
	}
	p.state.smooth = on
}

// SetClipRect intersects the clip region with a rectangle in user
// coordinates.
func (p *Painter) SetClipRect(x, y, w, h float64) {
	path := NewPath()
	path.AddRect(x, y, w, h)
	p.SetClipPath(path)
}

// SetClipPath intersects the clip region with a path, using the
// path's fill rule. The path is interpreted in the current transform.
func (p *Painter) SetClipPath(path *Path) {
	if p.ended || path == nil || path.ElementCount() == 0 {
		return
	}
	cov := p.canvas.rast.FillCoverage(
		fillPolys(flattenDevice(path, p.state.transform)),
		p.canvas.width, p.canvas.height, path.FillRule(), p.state.antialias)
	if cur := p.state.clip; cur != nil {
		for i, m := range cur.pix {
			cov[i] = mul255(cov[i], m)
		}
	}
	p.state.clip = &clipMask{pix: cov}
}

// ResetClip removes the clip region.
func (p *Painter) ResetClip() {
	if p.ended {
		return
	}
	p.state.clip = nil
}

// HasClip reports whether a clip region is active.
func (p *Painter) HasClip() bool {
	return p.state.clip != nil
}

// DrawPath fills the path with the current brush and strokes it with
// the current pen, in that order. With neither set the call is a
// no-op.
func (p *Painter) DrawPath(path *Path) {
	if p.ended || path == nil || path.ElementCount() == 0 {
		return
	}
	if p.state.brush == nil && p.state.pen == nil {
		return
	}
	subpaths := flattenDevice(path, p.state.transform)
	if len(subpaths) == 0 {
		return
	}

	if b := p.state.brush; b != nil {
		p.paintPolys(fillPolys(subpaths), path.FillRule(), b)
	}

	if pen := p.state.pen; pen != nil && pen.width > 0 {
		sf := p.state.transform.ScaleFactor()
		style := stroke.Style{
			Width:      pen.width * sf,
			Cap:        stroke.LineCap(pen.cap),
			Join:       stroke.LineJoin(pen.join),
			MiterLimit: pen.miterLimit,
		}
		if pen.IsDashed() {
			arr := pen.dash.effectiveArray(pen.width)
			for i := range arr {
				arr[i] *= sf
			}
			style.Dash = arr
			style.DashOffset = pen.dash.effectiveOffset(pen.width) * sf
		}
		outline := stroke.Outline(strokeSubpaths(subpaths), style)
		if len(outline) == 0 {
			return
		}
		polys := make([][]Point, len(outline))
		for i, poly := range outline {
			pts := make([]Point, len(poly))
			for j, pt := range poly {
				pts[j] = Point{X: pt.X, Y: pt.Y}
			}
			polys[i] = pts
		}
		// Stroke outlines are unions of overlapping pieces and must
		// always fill non-zero.
		p.paintPolys(polys, FillRuleNonZero, &pen.brush)
	}
}

// DrawRect fills and strokes an axis-aligned rectangle.
func (p *Painter) DrawRect(x, y, w, h float64) {
	path := NewPath()
	path.AddRect(x, y, w, h)
	p.DrawPath(path)
}

// DrawEllipse fills and strokes an axis-aligned ellipse.
func (p *Painter) DrawEllipse(cx, cy, rx, ry float64) {
	path := NewPath()
	path.AddEllipse(cx, cy, rx, ry)
	p.DrawPath(path)
}

// DrawCanvas draws another canvas with its top-left corner at (x, y)
// in user coordinates, at its natural size.
func (p *Painter) DrawCanvas(src *Canvas, x, y float64) {
	if src == nil {
		return
	}
	p.DrawCanvasRect(src, Rect{X: x, Y: y, W: float64(src.width), H: float64(src.height)})
}

// DrawCanvasRect draws another canvas scaled into the given rectangle
// in user coordinates, honoring the current transform, clip, opacity
// and composition mode. Sampling uses Catmull-Rom filtering unless
// SetSmoothImageTransform is off.
func (p *Painter) DrawCanvasRect(src *Canvas, dst Rect) {
	if p.ended || src == nil || dst.IsEmpty() {
		return
	}

	m := p.state.transform.
		Multiply(TranslateBy(dst.X, dst.Y)).
		Multiply(ScaleBy(dst.W/float64(src.width), dst.H/float64(src.height)))

	region := p.deviceBounds(dst)
	if region.Empty() {
		return
	}

	tmp := image.NewRGBA(region)
	var interp draw.Interpolator = draw.NearestNeighbor
	if p.state.smooth {
		interp = draw.CatmullRom
	}
	srcImg := src.rgbaImage()
	interp.Transform(tmp, f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}, srcImg, srcImg.Bounds(), draw.Src, nil)

	// Coverage of the mapped destination rect keeps every operator
	// bounded: pixels under the filter padding but outside the drawn
	// footprint stay untouched.
	quad := make([]Point, 4)
	for i, c := range [4]Point{
		{X: dst.X, Y: dst.Y},
		{X: dst.Right(), Y: dst.Y},
		{X: dst.Right(), Y: dst.Bottom()},
		{X: dst.X, Y: dst.Bottom()},
	} {
		quad[i] = p.state.transform.TransformPoint(c)
	}
	cov := p.canvas.rast.FillCoverage([][]Point{quad},
		p.canvas.width, p.canvas.height, FillRuleNonZero, p.state.antialias)

	composite.DrawImage(&p.buf, tmp, region.Min.X, region.Min.Y,
		cov, p.clipPix(), p.state.opacity, p.state.mode.op())
}

// DrawText converts a string to outlines with the font and fills and
// strokes them like any other path. The point (x, y) is the top-left
// corner of the text box in user coordinates. Unrenderable text is
// skipped.
func (p *Painter) DrawText(f *Font, text string, size, x, y float64) {
	if p.ended || f == nil || text == "" {
		return
	}
	path, err := f.TextPath(text, size, x, y)
	if err != nil {
		Logger().Warn("text outline failed", "error", err)
		return
	}
	p.DrawPath(path)
}

// deviceBounds maps a user-space rectangle through the current
// transform and returns its integer device bounding box clamped to
// the canvas, padded for filtering.
func (p *Painter) deviceBounds(r Rect) image.Rectangle {
	corners := [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		d := p.state.transform.TransformPoint(c)
		minX = math.Min(minX, d.X)
		minY = math.Min(minY, d.Y)
		maxX = math.Max(maxX, d.X)
		maxY = math.Max(maxY, d.Y)
	}
	const pad = 2
	bounds := image.Rect(
		int(math.Floor(minX))-pad, int(math.Floor(minY))-pad,
		int(math.Ceil(maxX))+pad, int(math.Ceil(maxY))+pad)
	return bounds.Intersect(image.Rect(0, 0, p.canvas.width, p.canvas.height))
}

// paintPolys rasterizes device-space polygons and composites them with
// the brush.
func (p *Painter) paintPolys(polys [][]Point, rule FillRule, b *Brush) {
	if len(polys) == 0 {
		return
	}
	cov := p.canvas.rast.FillCoverage(polys, p.canvas.width, p.canvas.height, rule, p.state.antialias)
	composite.Paint(&p.buf, cov, p.clipPix(), p.sourceFor(b), p.state.opacity, p.state.mode.op())
}

func (p *Painter) clipPix() []uint8 {
	if p.state.clip == nil {
		return nil
	}
	return p.state.clip.pix
}

// sourceFor builds the per-pixel shading function for a brush. Solid
// brushes shade to a constant; gradients and patterns are evaluated in
// user space by mapping each device pixel center back through the
// transform and the brush transform.
func (p *Painter) sourceFor(b *Brush) composite.SourceFunc {
	if b.Kind() == BrushSolid {
		r, g, bb, a := b.Color().premul8()
		return func(int, int) (byte, byte, byte, byte) {
			return r, g, bb, a
		}
	}
	inv := p.state.transform.Multiply(b.Transform()).Invert()
	return func(x, y int) (byte, byte, byte, byte) {
		u := inv.TransformPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
		return b.colorAt(u.X, u.Y).premul8()
	}
}

// flattenDevice transforms a path to device space and flattens its
// curves into polyline subpaths.
func flattenDevice(path *Path, t Transform) []flatten.Subpath {
	els := make([]flatten.PathElement, 0, len(path.elements))
	for _, el := range path.elements {
		switch e := el.(type) {
		case MoveTo:
			els = append(els, flatten.MoveTo{Point: devicePt(t, e.Point)})
		case LineTo:
			els = append(els, flatten.LineTo{Point: devicePt(t, e.Point)})
		case CubicTo:
			els = append(els, flatten.CubicTo{
				Control1: devicePt(t, e.Control1),
				Control2: devicePt(t, e.Control2),
				Point:    devicePt(t, e.Point),
			})
		case Close:
			els = append(els, flatten.Close{})
		}
	}
	return flatten.Flatten(els)
}

func devicePt(t Transform, p Point) flatten.Point {
	d := t.TransformPoint(p)
	return flatten.Point{X: d.X, Y: d.Y}
}

// fillPolys converts flattened subpaths to fill polygons; open
// subpaths are closed implicitly by the rasterizer.
func fillPolys(subpaths []flatten.Subpath) [][]Point {
	polys := make([][]Point, 0, len(subpaths))
	for _, sp := range subpaths {
		if len(sp.Points) < 3 {
			continue
		}
		pts := make([]Point, len(sp.Points))
		for i, fp := range sp.Points {
			pts[i] = Point{X: fp.X, Y: fp.Y}
		}
		polys = append(polys, pts)
	}
	return polys
}

func strokeSubpaths(subpaths []flatten.Subpath) []stroke.Subpath {
	out := make([]stroke.Subpath, 0, len(subpaths))
	for _, sp := range subpaths {
		pts := make([]stroke.Point, len(sp.Points))
		for i, fp := range sp.Points {
			pts[i] = stroke.Point{X: fp.X, Y: fp.Y}
		}
		out = append(out, stroke.Subpath{Points: pts, Closed: sp.Closed})
	}
	return out
}

// mul255 multiplies two coverage bytes with rounding.
func mul255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}
