package vgpaint

import "math"

// Dash defines a dash pattern for stroking.
//
// Lengths are stored in width-normalized units: each value is the raw
// length divided by the stroke width in effect when the pattern was
// set (a width of zero counts as one). The effective pattern at stroke
// time is the stored array multiplied by the pen's current width.
type Dash struct {
	// Array contains alternating dash/gap lengths in width units.
	Array []float64

	// Offset is the starting offset into the pattern, in width units.
	Offset float64
}

// Clone creates a deep copy of the dash pattern.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arr := make([]float64, len(d.Array))
	copy(arr, d.Array)
	return &Dash{Array: arr, Offset: d.Offset}
}

// IsDashed reports whether the pattern produces visible dashing.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// PatternLength returns the total length of one pattern cycle.
// Odd-length arrays are logically duplicated to an even length.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// effectiveArray returns the array scaled by width, duplicated if the
// stored array has an odd number of entries.
func (d *Dash) effectiveArray(width float64) []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	n := len(d.Array)
	if n%2 != 0 {
		n *= 2
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Abs(d.Array[i%len(d.Array)]) * width
	}
	return out
}

// effectiveOffset returns the stored offset scaled by width and
// wrapped into one pattern cycle.
func (d *Dash) effectiveOffset(width float64) float64 {
	if d == nil {
		return 0
	}
	patternLen := d.PatternLength() * width
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset*width, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}
