// Package fogleman provides a rasterizer backend built on
// github.com/fogleman/gg.
//
// Importing the package registers it:
//
//	import _ "github.com/vgpaint/vgpaint/backend/fogleman"
//
// Polygons are filled white into a scratch gg context and the alpha
// channel is read back as coverage, so only the rasterization step of
// gg is exercised; shading and compositing stay in shared code.
package fogleman

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/vgpaint/vgpaint"
)

func init() {
	vgpaint.RegisterRasterizer(vgpaint.RasterizerFogleman, func() vgpaint.Rasterizer {
		return Rasterizer{}
	})
}

// Rasterizer rasterizes polygons with fogleman/gg.
type Rasterizer struct{}

// Name returns the registry name.
func (Rasterizer) Name() string { return vgpaint.RasterizerFogleman }

// FillCoverage rasterizes the polygons into a coverage mask.
func (Rasterizer) FillCoverage(polys [][]vgpaint.Point, width, height int, rule vgpaint.FillRule, antialias bool) []uint8 {
	dc := gg.NewContext(width, height)
	if rule == vgpaint.FillRuleEvenOdd {
		dc.SetFillRule(gg.FillRuleEvenOdd)
	} else {
		dc.SetFillRule(gg.FillRuleWinding)
	}
	dc.SetRGBA(1, 1, 1, 1)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		dc.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	}
	dc.Fill()

	img := dc.Image().(*image.RGBA)
	cov := make([]uint8, width*height)
	for i := range cov {
		cov[i] = img.Pix[i*4+3]
	}
	if !antialias {
		threshold(cov)
	}
	return cov
}

// threshold hardens an antialiased mask into binary coverage.
func threshold(cov []uint8) {
	for i, v := range cov {
		if v >= 128 {
			cov[i] = 255
		} else {
			cov[i] = 0
		}
	}
}
