// Package raster implements a scanline polygon filler producing 8-bit
// coverage masks.
//
// Input geometry is flattened, device-space polygons. Anti-aliasing
// uses vertically supersampled scanlines with analytic horizontal
// coverage, which keeps the output deterministic across platforms.
package raster

import (
	"math"
	"sort"
)

// Point represents a 2D point (local copy to avoid import cycles).
type Point struct {
	X, Y float64
}

// FillRule specifies the inside test for overlapping subpaths.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// samplesAA is the number of vertical subsamples per scanline when
// anti-aliasing is enabled.
const samplesAA = 4

// edge is a non-horizontal polygon edge prepared for scanline sweeps.
type edge struct {
	yMin, yMax float64
	x          float64 // x at yMin
	dxdy       float64
	dir        int // +1 if the polygon edge points down, -1 if up
}

// crossing is one edge intersection with a sample row.
type crossing struct {
	x   float64
	dir int
}

// Fill rasterizes closed polygons into a coverage mask of
// width*height bytes (row-major, 255 = fully covered).
// Each polygon is treated as implicitly closed.
func Fill(polys [][]Point, width, height int, rule FillRule, antialias bool) []uint8 {
	coverage := make([]uint8, width*height)
	if width <= 0 || height <= 0 {
		return coverage
	}

	edges := buildEdges(polys)
	if len(edges) == 0 {
		return coverage
	}

	samples := 1
	if antialias {
		samples = samplesAA
	}
	weight := 1.0 / float64(samples)

	acc := make([]float64, width)
	crossings := make([]crossing, 0, len(edges))

	for y := 0; y < height; y++ {
		for i := range acc {
			acc[i] = 0
		}
		hit := false

		for s := 0; s < samples; s++ {
			ys := float64(y) + (float64(s)+0.5)/float64(samples)

			crossings = crossings[:0]
			for i := range edges {
				e := &edges[i]
				if ys < e.yMin || ys >= e.yMax {
					continue
				}
				crossings = append(crossings, crossing{
					x:   e.x + (ys-e.yMin)*e.dxdy,
					dir: e.dir,
				})
			}
			if len(crossings) < 2 {
				continue
			}
			sort.Slice(crossings, func(i, j int) bool {
				return crossings[i].x < crossings[j].x
			})

			winding := 0
			for i := 0; i < len(crossings); i++ {
				inside := insideBefore(winding, rule)
				winding += crossings[i].dir
				nowInside := insideBefore(winding, rule)
				if !inside && nowInside {
					// Span starts here; find where it ends.
					start := crossings[i].x
					for j := i + 1; j < len(crossings); j++ {
						winding += crossings[j].dir
						if !insideBefore(winding, rule) {
							addSpan(acc, start, crossings[j].x, weight, width)
							hit = true
							i = j
							break
						}
					}
				}
			}
		}

		if !hit {
			continue
		}
		row := coverage[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			v := acc[x]
			if v <= 0 {
				continue
			}
			if !antialias {
				if v >= 0.5 {
					row[x] = 255
				}
				continue
			}
			if v >= 1 {
				row[x] = 255
				continue
			}
			row[x] = uint8(v*255 + 0.5)
		}
	}
	return coverage
}

// insideBefore reports the inside state for a winding count.
func insideBefore(winding int, rule FillRule) bool {
	if rule == FillRuleEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// addSpan accumulates coverage for the half-open span [x0, x1) into a
// row accumulator, with analytic fractions at both ends.
func addSpan(acc []float64, x0, x1, weight float64, width int) {
	if x1 <= x0 {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float64(width) {
		x1 = float64(width)
	}
	if x1 <= x0 {
		return
	}

	i0 := int(math.Floor(x0))
	i1 := int(math.Floor(x1))
	if i1 >= width {
		i1 = width - 1
	}

	if i0 == i1 {
		acc[i0] += (x1 - x0) * weight
		return
	}

	acc[i0] += (float64(i0+1) - x0) * weight
	for i := i0 + 1; i < i1; i++ {
		acc[i] += weight
	}
	if frac := x1 - float64(i1); frac > 0 {
		acc[i1] += frac * weight
	}
}

// buildEdges converts polygons to sweep edges, dropping horizontal
// segments. The closing edge back to the first point is implicit.
func buildEdges(polys [][]Point) []edge {
	var edges []edge
	for _, poly := range polys {
		n := len(poly)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := poly[i]
			p1 := poly[(i+1)%n]
			if p0.Y == p1.Y {
				continue
			}
			dir := 1
			if p0.Y > p1.Y {
				p0, p1 = p1, p0
				dir = -1
			}
			edges = append(edges, edge{
				yMin: p0.Y,
				yMax: p1.Y,
				x:    p0.X,
				dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
				dir:  dir,
			})
		}
	}
	return edges
}
