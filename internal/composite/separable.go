// Separable blend modes beyond the Porter-Duff operators, following
// the W3C Compositing and Blending Level 1 specification. Each mode
// operates on the color channels independently.
package composite

import "math"

// separable applies a per-channel blend function B with the standard
// combination formula on premultiplied pixels:
//
//	Result = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Sc, Dc)
//
// where B operates on unmultiplied channel values.
func separable(sr, sg, sb, sa, dr, dg, db, da byte, blend func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	sur := byte((uint16(sr) * 255) / uint16(sa))
	sug := byte((uint16(sg) * 255) / uint16(sa))
	sub := byte((uint16(sb) * 255) / uint16(sa))
	dur := byte((uint16(dr) * 255) / uint16(da))
	dug := byte((uint16(dg) * 255) / uint16(da))
	dub := byte((uint16(db) * 255) / uint16(da))

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	outA := addClamp(sa, mulDiv255(da, invSa))
	outR := addClamp(addClamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa)), mulDiv255(saDa, blend(sur, dur)))
	outG := addClamp(addClamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa)), mulDiv255(saDa, blend(sug, dug)))
	outB := addClamp(addClamp(mulDiv255(db, invSa), mulDiv255(sb, invDa)), mulDiv255(saDa, blend(sub, dub)))
	return outR, outG, outB, outA
}

// B(Cb, Cs) = Cb * Cs
func opMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func opScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return 255 - mulDiv255(255-s, 255-d)
	})
}

// Overlay is hard-light with the layers swapped.
func opOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return hardLightChan(d, s)
	})
}

// B(Cb, Cs) = min(Cb, Cs)
func opDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, minByte)
}

// B(Cb, Cs) = max(Cb, Cs)
func opLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, maxByte)
}

// B(Cb, Cs) = if Cs == 1: 1, else min(1, Cb / (1 - Cs))
func opColorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s == 255 {
			return 255
		}
		result := (uint16(d) * 255) / uint16(255-s)
		if result > 255 {
			return 255
		}
		return byte(result)
	})
}

// B(Cb, Cs) = if Cs == 0: 0, else 1 - min(1, (1 - Cb) / Cs)
func opColorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s == 0 {
			return 0
		}
		result := (uint16(255-d) * 255) / uint16(s)
		if result > 255 {
			return 0
		}
		return 255 - byte(result)
	})
}

func hardLightChan(s, d byte) byte {
	if s <= 128 {
		return mulDiv255(addClamp(s, s), d)
	}
	return 255 - mulDiv255(addClamp(255-s, 255-s), 255-d)
}

// B(Cb, Cs) = if Cs <= 0.5: Multiply(Cb, 2*Cs), else Screen(Cb, 2*Cs - 1)
func opHardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

func opSoftLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		sf := float64(s) / 255
		df := float64(d) / 255

		var result float64
		if sf <= 0.5 {
			result = df - (1-2*sf)*df*(1-df)
		} else {
			var dx float64
			if df <= 0.25 {
				dx = ((16*df-12)*df + 4) * df
			} else {
				dx = math.Sqrt(df)
			}
			result = df + (2*sf-1)*(dx-df)
		}

		if result < 0 {
			return 0
		}
		if result > 1 {
			return 255
		}
		return byte(result*255 + 0.5)
	})
}

// B(Cb, Cs) = |Cb - Cs|
func opDifference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}

// B(Cb, Cs) = Cb + Cs - 2 * Cb * Cs
func opExclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		sum := uint16(s) + uint16(d)
		diff := sum - 2*uint16(mulDiv255(s, d))
		if diff > 255 {
			return 255
		}
		return byte(diff)
	})
}
