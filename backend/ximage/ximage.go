// Package ximage provides a rasterizer backend built on
// golang.org/x/image/vector.
//
// Importing the package registers it:
//
//	import _ "github.com/vgpaint/vgpaint/backend/ximage"
//
// The vector rasterizer only supports the non-zero winding rule, so
// even-odd fills are delegated to the built-in scanline rasterizer.
package ximage

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/vgpaint/vgpaint"
	"github.com/vgpaint/vgpaint/internal/raster"
)

func init() {
	vgpaint.RegisterRasterizer(vgpaint.RasterizerXImage, func() vgpaint.Rasterizer {
		return Rasterizer{}
	})
}

// Rasterizer rasterizes polygons with x/image/vector.
type Rasterizer struct{}

// Name returns the registry name.
func (Rasterizer) Name() string { return vgpaint.RasterizerXImage }

// FillCoverage rasterizes the polygons into a coverage mask.
func (Rasterizer) FillCoverage(polys [][]vgpaint.Point, width, height int, rule vgpaint.FillRule, antialias bool) []uint8 {
	if rule == vgpaint.FillRuleEvenOdd {
		return evenOddFallback(polys, width, height, antialias)
	}

	r := vector.NewRasterizer(width, height)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	cov := dst.Pix
	if !antialias {
		threshold(cov)
	}
	return cov
}

func evenOddFallback(polys [][]vgpaint.Point, width, height int, antialias bool) []uint8 {
	rp := make([][]raster.Point, len(polys))
	for i, poly := range polys {
		pts := make([]raster.Point, len(poly))
		for j, p := range poly {
			pts[j] = raster.Point{X: p.X, Y: p.Y}
		}
		rp[i] = pts
	}
	return raster.Fill(rp, width, height, raster.FillRuleEvenOdd, antialias)
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
