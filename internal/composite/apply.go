package composite

import "image"

// Buffer is a destination pixel buffer in RGBA byte order.
// Premultiplied selects the alpha representation of Pix; straight
// buffers are converted per pixel around the operator and converted
// back afterwards.
type Buffer struct {
	Pix           []uint8
	Width, Height int
	Premultiplied bool
}

// SourceFunc returns the premultiplied source color for a device
// pixel. Shading (gradients, patterns) goes through this.
type SourceFunc func(x, y int) (r, g, b, a byte)

// Paint composites a shaded coverage mask onto dst.
//
// cov holds one coverage byte per pixel; clip may be nil or a mask of
// the same size. Every operator is restricted to the covered area: the
// destination pixel moves toward the operator result by the combined
// coverage, so an uncovered pixel is left untouched even for unbounded
// operators like Clear and Source. For source-over this is exactly
// source-over with the source scaled by coverage.
func Paint(dst *Buffer, cov, clip []uint8, src SourceFunc, opacity float64, op Op) {
	fn := Func(op)
	opb := opacityByte(opacity)
	if opb == 0 {
		return
	}

	for y := 0; y < dst.Height; y++ {
		row := y * dst.Width
		for x := 0; x < dst.Width; x++ {
			i := row + x
			m := cov[i]
			if clip != nil {
				m = mulDiv255(m, clip[i])
			}
			if opb != 255 {
				m = mulDiv255(m, opb)
			}
			if m == 0 {
				continue
			}
			sr, sg, sb, sa := src(x, y)
			blendPixel(dst, i*4, sr, sg, sb, sa, m, fn)
		}
	}
}

// DrawImage composites a premultiplied RGBA image onto dst with its
// top-left corner at (dx, dy). cov is the per-pixel coverage of the
// drawn footprint, sized like dst (nil means the whole image area is
// covered); clip may be nil. The same bounded-operator rule as Paint
// applies: an uncovered pixel is left untouched even when the image
// overlaps it, so filter padding around a resampled image cannot leak
// an unbounded operator.
func DrawImage(dst *Buffer, src *image.RGBA, dx, dy int, cov, clip []uint8, opacity float64, op Op) {
	fn := Func(op)
	opb := opacityByte(opacity)
	if opb == 0 {
		return
	}

	b := src.Bounds()
	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		y := dy + sy - b.Min.Y
		if y < 0 || y >= dst.Height {
			continue
		}
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			x := dx + sx - b.Min.X
			if x < 0 || x >= dst.Width {
				continue
			}
			i := y*dst.Width + x
			m := opb
			if cov != nil {
				m = mulDiv255(m, cov[i])
			}
			if clip != nil {
				m = mulDiv255(m, clip[i])
			}
			if m == 0 {
				continue
			}

			si := src.PixOffset(sx, sy)
			sr, sg, sb, sa := src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3]
			if sa == 0 && op == OpSourceOver {
				continue
			}
			blendPixel(dst, i*4, sr, sg, sb, sa, m, fn)
		}
	}
}

// blendPixel applies an operator to one destination pixel and blends
// the result in by mask m.
func blendPixel(dst *Buffer, off int, sr, sg, sb, sa, m byte, fn OpFunc) {
	dr := dst.Pix[off]
	dg := dst.Pix[off+1]
	db := dst.Pix[off+2]
	da := dst.Pix[off+3]
	if !dst.Premultiplied {
		dr = mulDiv255(dr, da)
		dg = mulDiv255(dg, da)
		db = mulDiv255(db, da)
	}

	rr, rg, rb, ra := fn(sr, sg, sb, sa, dr, dg, db, da)
	if m != 255 {
		rr = lerpByte(dr, rr, m)
		rg = lerpByte(dg, rg, m)
		rb = lerpByte(db, rb, m)
		ra = lerpByte(da, ra, m)
	}

	if !dst.Premultiplied {
		if ra == 0 {
			rr, rg, rb = 0, 0, 0
		} else if ra != 255 {
			rr = unmul(rr, ra)
			rg = unmul(rg, ra)
			rb = unmul(rb, ra)
		}
	}
	dst.Pix[off] = rr
	dst.Pix[off+1] = rg
	dst.Pix[off+2] = rb
	dst.Pix[off+3] = ra
}

// lerpByte interpolates from a to b by t/255 with rounding.
func lerpByte(a, b, t byte) byte {
	if b >= a {
		return a + mulDiv255(b-a, t)
	}
	return a - mulDiv255(a-b, t)
}

// unmul converts one premultiplied channel back to straight alpha.
func unmul(c, a byte) byte {
	v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

func opacityByte(opacity float64) byte {
	switch {
	case opacity >= 1:
		return 255
	case opacity <= 0:
		return 0
	default:
		return byte(opacity*255 + 0.5)
	}
}
