package vgpaint

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font converts text into path outlines. Text drawn this way is
// ordinary geometry: it fills, strokes, clips and transforms like any
// other path.
//
// A Font reuses an internal parsing buffer and is not safe for
// concurrent use.
type Font struct {
	fnt *sfnt.Font
	buf sfnt.Buffer
}

// ParseFont parses a TrueType or OpenType font from memory.
func ParseFont(data []byte) (*Font, error) {
	fnt, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("vgpaint: parse font: %w", err)
	}
	return &Font{fnt: fnt}, nil
}

// LoadFont parses a TrueType or OpenType font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vgpaint: read %s: %w", path, err)
	}
	return ParseFont(data)
}

// Name returns the font family name, or an empty string if the font
// does not carry one.
func (f *Font) Name() string {
	name, err := f.fnt.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// FontMetrics holds vertical font metrics in pixels for a given size.
type FontMetrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Metrics returns the font's vertical metrics at the given pixel size.
func (f *Font) Metrics(size float64) (FontMetrics, error) {
	m, err := f.fnt.Metrics(&f.buf, toPpem(size), font.HintingNone)
	if err != nil {
		return FontMetrics{}, fmt.Errorf("vgpaint: font metrics: %w", err)
	}
	return FontMetrics{
		Ascent:     fromFixed(m.Ascent),
		Descent:    fromFixed(m.Descent),
		LineHeight: fromFixed(m.Height),
	}, nil
}

// MeasureText returns the advance width of the text at the given
// pixel size, including kerning.
func (f *Font) MeasureText(text string, size float64) (float64, error) {
	ppem := toPpem(size)
	var width fixed.Int26_6
	prev := sfnt.GlyphIndex(0)
	hasPrev := false
	for _, r := range text {
		gi, err := f.fnt.GlyphIndex(&f.buf, r)
		if err != nil {
			return 0, fmt.Errorf("vgpaint: glyph index for %q: %w", r, err)
		}
		if hasPrev {
			if kern, err := f.fnt.Kern(&f.buf, prev, gi, ppem, font.HintingNone); err == nil {
				width += kern
			}
		}
		adv, err := f.fnt.GlyphAdvance(&f.buf, gi, ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("vgpaint: glyph advance for %q: %w", r, err)
		}
		width += adv
		prev = gi
		hasPrev = true
	}
	return fromFixed(width), nil
}

// TextPath converts a string into a filled path. The point (x, y) is
// the top-left corner of the text box; the baseline sits at y plus the
// font's ascent. Glyphs with no outline (such as spaces) contribute
// only their advance. Quadratic curves in the font are elevated to the
// cubic segments paths are built from.
func (f *Font) TextPath(text string, size, x, y float64) (*Path, error) {
	ppem := toPpem(size)
	m, err := f.fnt.Metrics(&f.buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("vgpaint: font metrics: %w", err)
	}
	baseline := y + fromFixed(m.Ascent)

	path := NewPath()
	penX := x
	prev := sfnt.GlyphIndex(0)
	hasPrev := false
	for _, r := range text {
		gi, err := f.fnt.GlyphIndex(&f.buf, r)
		if err != nil {
			return nil, fmt.Errorf("vgpaint: glyph index for %q: %w", r, err)
		}
		if hasPrev {
			if kern, err := f.fnt.Kern(&f.buf, prev, gi, ppem, font.HintingNone); err == nil {
				penX += fromFixed(kern)
			}
		}

		segments, err := f.fnt.LoadGlyph(&f.buf, gi, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("vgpaint: load glyph for %q: %w", r, err)
		}
		appendGlyph(path, segments, penX, baseline)

		adv, err := f.fnt.GlyphAdvance(&f.buf, gi, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("vgpaint: glyph advance for %q: %w", r, err)
		}
		penX += fromFixed(adv)
		prev = gi
		hasPrev = true
	}
	return path, nil
}

// appendGlyph translates glyph segments to (dx, dy) and appends them
// to the path. Glyph coordinates are already y-down, so only the
// offset is applied.
func appendGlyph(path *Path, segments sfnt.Segments, dx, dy float64) {
	var cur Point
	started := false
	pt := func(p fixed.Point26_6) Point {
		return Point{X: dx + fromFixed(p.X), Y: dy + fromFixed(p.Y)}
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			// Font contours are implicitly closed.
			if started {
				path.ClosePath()
			}
			started = true
			p := pt(seg.Args[0])
			path.MoveTo(p.X, p.Y)
			cur = p
		case sfnt.SegmentOpLineTo:
			p := pt(seg.Args[0])
			path.LineTo(p.X, p.Y)
			cur = p
		case sfnt.SegmentOpQuadTo:
			q := pt(seg.Args[0])
			p := pt(seg.Args[1])
			// Elevate the quadratic to a cubic.
			c1 := cur.Add(q.Sub(cur).Mul(2.0 / 3.0))
			c2 := p.Add(q.Sub(p).Mul(2.0 / 3.0))
			path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			cur = p
		case sfnt.SegmentOpCubeTo:
			c1 := pt(seg.Args[0])
			c2 := pt(seg.Args[1])
			p := pt(seg.Args[2])
			path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			cur = p
		}
	}
	if started {
		path.ClosePath()
	}
}

func toPpem(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size*64 + 0.5)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
