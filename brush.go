package vgpaint

import "math"

// BrushKind identifies the active paint variant of a Brush.
type BrushKind int

const (
	// BrushSolid paints with a single color.
	BrushSolid BrushKind = iota
	// BrushLinearGradient paints with a linear gradient.
	BrushLinearGradient
	// BrushRadialGradient paints with a radial gradient.
	BrushRadialGradient
	// BrushPattern paints with a tiled canvas.
	BrushPattern
)

// Brush holds the fill paint configuration. Exactly one paint kind is
// active at a time: setting a color, gradient or pattern replaces
// whatever was configured before (variant semantics, not independent
// fields).
//
// Attaching a gradient or a pattern canvas always stores a deep copy,
// so the source may be destroyed or mutated afterwards without
// affecting the brush. The same discipline applies when a brush is
// attached to a Pen or a Painter.
type Brush struct {
	kind      BrushKind
	color     RGBA
	linear    *LinearGradient
	radial    *RadialGradient
	pattern   *patternData
	transform Transform
}

// patternData holds a private copy of a pattern canvas's pixels in
// straight alpha.
type patternData struct {
	w, h int
	pix  []uint8
}

// NewBrush creates a solid black brush with an identity transform.
func NewBrush() *Brush {
	return &Brush{kind: BrushSolid, color: Black, transform: Identity()}
}

// Kind returns the active paint kind.
func (b *Brush) Kind() BrushKind {
	return b.kind
}

// SetColor switches the brush to a solid color.
func (b *Brush) SetColor(c RGBA) {
	b.kind = BrushSolid
	b.color = c
	b.linear = nil
	b.radial = nil
	b.pattern = nil
}

// SetLinearGradient switches the brush to a linear gradient.
// The gradient is deep-copied. A nil gradient is ignored.
func (b *Brush) SetLinearGradient(g *LinearGradient) {
	if g == nil {
		return
	}
	b.kind = BrushLinearGradient
	b.linear = g.clone()
	b.radial = nil
	b.pattern = nil
}

// SetRadialGradient switches the brush to a radial gradient.
// The gradient is deep-copied. A nil gradient is ignored.
func (b *Brush) SetRadialGradient(g *RadialGradient) {
	if g == nil {
		return
	}
	b.kind = BrushRadialGradient
	b.radial = g.clone()
	b.linear = nil
	b.pattern = nil
}

// SetPattern switches the brush to a tiled pattern sourced from the
// canvas's current pixel content. The pixels are deep-copied in
// straight alpha; later drawing into the canvas does not change the
// pattern. A nil or empty canvas is ignored.
func (b *Brush) SetPattern(c *Canvas) {
	if c == nil || c.width <= 0 || c.height <= 0 {
		return
	}
	pix := make([]uint8, len(c.pix))
	copy(pix, c.pix)
	if c.alpha == AlphaPremultiplied {
		unpremultiplyBuffer(pix)
	}
	b.kind = BrushPattern
	b.pattern = &patternData{w: c.width, h: c.height, pix: pix}
	b.linear = nil
	b.radial = nil
}

// SetTransform sets the brush's own transform, applied on top of the
// painter's transform when the brush is resolved.
func (b *Brush) SetTransform(t Transform) {
	b.transform = t
}

// Transform returns the brush transform.
func (b *Brush) Transform() Transform {
	return b.transform
}

// Color returns the solid color; meaningful only for BrushSolid.
func (b *Brush) Color() RGBA {
	return b.color
}

// colorAt evaluates the brush at a point in brush space.
func (b *Brush) colorAt(x, y float64) RGBA {
	switch b.kind {
	case BrushLinearGradient:
		return b.linear.ColorAt(x, y)
	case BrushRadialGradient:
		return b.radial.ColorAt(x, y)
	case BrushPattern:
		return b.pattern.colorAt(x, y)
	default:
		return b.color
	}
}

// colorAt samples the pattern with tiling in both directions.
func (pd *patternData) colorAt(x, y float64) RGBA {
	px := int(math.Floor(x)) % pd.w
	if px < 0 {
		px += pd.w
	}
	py := int(math.Floor(y)) % pd.h
	if py < 0 {
		py += pd.h
	}
	i := (py*pd.w + px) * 4
	return RGBA8(pd.pix[i], pd.pix[i+1], pd.pix[i+2], pd.pix[i+3])
}

// clone creates a deep copy of the brush.
func (b *Brush) clone() *Brush {
	out := *b
	out.linear = b.linear.clone()
	out.radial = b.radial.clone()
	if b.pattern != nil {
		pix := make([]uint8, len(b.pattern.pix))
		copy(pix, b.pattern.pix)
		out.pattern = &patternData{w: b.pattern.w, h: b.pattern.h, pix: pix}
	}
	return &out
}
