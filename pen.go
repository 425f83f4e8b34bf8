package vgpaint

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

// Pen holds the stroke paint configuration: a color or brush, width,
// caps, joins, miter limit and an optional dash pattern.
//
// Dash values are width-normalized at set time (see Dash). Changing
// the width after setting dashes does not rescale the stored values;
// set the width before the dash pattern when the pattern is expressed
// in absolute units. This call-order contract is deliberate and
// matches how the stored pattern travels between backends.
type Pen struct {
	brush      Brush
	width      float64
	cap        LineCap
	join       LineJoin
	miterLimit float64
	dash       *Dash
}

// NewPen creates a pen with a solid black stroke of width 1, butt
// caps, miter joins and a miter limit of 4.
func NewPen() *Pen {
	p := &Pen{
		brush:      *NewBrush(),
		width:      1,
		cap:        LineCapButt,
		join:       LineJoinMiter,
		miterLimit: 4,
	}
	return p
}

// SetColor switches the pen to a solid color stroke.
func (p *Pen) SetColor(c RGBA) {
	p.brush.SetColor(c)
}

// SetBrush strokes with the given brush (gradient or pattern strokes).
// The brush is deep-copied; the caller may destroy or mutate the
// source afterwards without affecting the pen.
func (p *Pen) SetBrush(b *Brush) {
	if b == nil {
		return
	}
	p.brush = *b.clone()
}

// SetCap sets the line cap style.
func (p *Pen) SetCap(c LineCap) {
	p.cap = c
}

// SetJoin sets the line join style.
func (p *Pen) SetJoin(j LineJoin) {
	p.join = j
}

// SetWidth sets the stroke width.
// Already-stored dash values are left untouched: they remain in width
// units and so stretch with the new width at stroke time.
func (p *Pen) SetWidth(w float64) {
	if w < 0 {
		w = 0
	}
	p.width = w
}

// SetMiterLimit sets the miter limit for sharp joins.
func (p *Pen) SetMiterLimit(limit float64) {
	p.miterLimit = limit
}

// SetDashOffset sets the starting offset into the dash pattern.
// The raw offset is divided by the current width before storage.
func (p *Pen) SetDashOffset(offset float64) {
	if p.dash == nil {
		p.dash = &Dash{}
	}
	p.dash.Offset = offset / p.normWidth()
}

// SetDashArray sets the dash pattern from raw alternating dash/gap
// lengths. Each value is divided by the current width before storage.
// Passing an empty array clears the pattern.
func (p *Pen) SetDashArray(array []float64) {
	if len(array) == 0 {
		if p.dash != nil {
			p.dash.Array = nil
		}
		return
	}
	w := p.normWidth()
	normalized := make([]float64, len(array))
	for i, l := range array {
		normalized[i] = l / w
	}
	if p.dash == nil {
		p.dash = &Dash{}
	}
	p.dash.Array = normalized
}

// normWidth returns the divisor used for dash normalization.
// A zero width is treated as one so dash state survives degenerate
// pens.
func (p *Pen) normWidth() float64 {
	if p.width > 0 {
		return p.width
	}
	return 1
}

// Width returns the stroke width.
func (p *Pen) Width() float64 { return p.width }

// Cap returns the line cap style.
func (p *Pen) Cap() LineCap { return p.cap }

// Join returns the line join style.
func (p *Pen) Join() LineJoin { return p.join }

// MiterLimit returns the miter limit.
func (p *Pen) MiterLimit() float64 { return p.miterLimit }

// DashArray returns a copy of the stored (width-normalized) dash
// lengths, or nil if the pen is not dashed.
func (p *Pen) DashArray() []float64 {
	if p.dash == nil || len(p.dash.Array) == 0 {
		return nil
	}
	out := make([]float64, len(p.dash.Array))
	copy(out, p.dash.Array)
	return out
}

// DashOffset returns the stored (width-normalized) dash offset.
func (p *Pen) DashOffset() float64 {
	if p.dash == nil {
		return 0
	}
	return p.dash.Offset
}

// IsDashed reports whether the pen has a visible dash pattern.
func (p *Pen) IsDashed() bool {
	return p.dash.IsDashed()
}

// Brush returns the pen's stroke brush.
func (p *Pen) Brush() *Brush {
	return &p.brush
}

// clone creates a deep copy of the pen.
func (p *Pen) clone() *Pen {
	out := *p
	out.brush = *p.brush.clone()
	out.dash = p.dash.Clone()
	return &out
}
