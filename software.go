package vgpaint

import "github.com/vgpaint/vgpaint/internal/raster"

// softwareRasterizer is the built-in pure-Go scanline rasterizer.
// It has no external dependencies and is always registered.
type softwareRasterizer struct{}

func init() {
	RegisterRasterizer(RasterizerSoftware, func() Rasterizer {
		return softwareRasterizer{}
	})
}

func (softwareRasterizer) Name() string { return RasterizerSoftware }

func (softwareRasterizer) FillCoverage(polys [][]Point, width, height int, rule FillRule, antialias bool) []uint8 {
	rp := make([][]raster.Point, len(polys))
	for i, poly := range polys {
		pts := make([]raster.Point, len(poly))
		for j, p := range poly {
			pts[j] = raster.Point{X: p.X, Y: p.Y}
		}
		rp[i] = pts
	}
	rr := raster.FillRuleNonZero
	if rule == FillRuleEvenOdd {
		rr = raster.FillRuleEvenOdd
	}
	return raster.Fill(rp, width, height, rr, antialias)
}
