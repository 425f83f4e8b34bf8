// Package composite implements Porter-Duff compositing operators and
// separable blend modes over 8-bit RGBA pixels.
//
// All operator functions work on premultiplied alpha values in the
// range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package composite

// Op identifies a compositing operator.
type Op uint8

const (
	OpSourceOver Op = iota // S + D*(1-Sa) [default]
	OpDestinationOver
	OpClear
	OpSource
	OpDestination
	OpSourceIn
	OpDestinationIn
	OpSourceOut
	OpDestinationOut
	OpSourceAtop
	OpDestinationAtop
	OpXor
	OpPlus
	OpMultiply
	OpScreen
	OpOverlay
	OpDarken
	OpLighten
	OpColorDodge
	OpColorBurn
	OpHardLight
	OpSoftLight
	OpDifference
	OpExclusion
)

// OpFunc combines a premultiplied source pixel with a premultiplied
// destination pixel.
type OpFunc func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Func returns the operator function for the given op. Unknown ops
// fall back to source-over.
func Func(op Op) OpFunc {
	switch op {
	case OpClear:
		return opClear
	case OpSource:
		return opSource
	case OpDestination:
		return opDestination
	case OpSourceOver:
		return opSourceOver
	case OpDestinationOver:
		return opDestinationOver
	case OpSourceIn:
		return opSourceIn
	case OpDestinationIn:
		return opDestinationIn
	case OpSourceOut:
		return opSourceOut
	case OpDestinationOut:
		return opDestinationOut
	case OpSourceAtop:
		return opSourceAtop
	case OpDestinationAtop:
		return opDestinationAtop
	case OpXor:
		return opXor
	case OpPlus:
		return opPlus
	case OpMultiply:
		return opMultiply
	case OpScreen:
		return opScreen
	case OpOverlay:
		return opOverlay
	case OpDarken:
		return opDarken
	case OpLighten:
		return opLighten
	case OpColorDodge:
		return opColorDodge
	case OpColorBurn:
		return opColorBurn
	case OpHardLight:
		return opHardLight
	case OpSoftLight:
		return opSoftLight
	case OpDifference:
		return opDifference
	case OpExclusion:
		return opExclusion
	default:
		return opSourceOver
	}
}

// Porter-Duff implementations (premultiplied alpha).

func opClear(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func opSource(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func opDestination(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// opSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func opSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// opDestinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func opDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

// Formula: S * Da
func opSourceIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// Formula: D * Sa
func opDestinationIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// Formula: S * (1 - Da)
func opSourceOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

// Formula: D * (1 - Sa)
func opDestinationOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// Formula: S * Da + D * (1 - Sa); destination alpha is preserved.
func opSourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// Formula: S * (1 - Da) + D * Sa; result takes source alpha.
func opDestinationAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, sa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, sa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, sa)),
		sa
}

// Formula: S * (1 - Da) + D * (1 - Sa)
func opXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// Formula: min(S + D, 255)
func opPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// Utility functions.

// mulDiv255 multiplies two byte values and divides by 255 with proper
// rounding. The +127 is equivalent to adding 0.5 before truncation.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two byte values with clamping to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
