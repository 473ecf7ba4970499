package gf2

// DivRem returns v mod g, where v is the polynomial of degree <= 127 given by
// (hi, lo) — bit i of lo is the coefficient of x^i for i in [0,64), bit i of
// hi is the coefficient of x^(64+i) — and g is a width-w generator polynomial
// with its leading (degree-w) bit implicit, 1 <= w <= 64.
//
// This is plain schoolbook polynomial long division: at each set bit at
// position p >= w, the (conceptually degree-w, leading bit always 1)
// divisor is aligned so its leading bit cancels bit p, and the remaining w
// bits of g are xored in at position p-w. It backs the repeated-squaring key
// derivation in internal/keys, pkg/crc.Combine's shift-and-reduce step, and
// internal/backend's CLMUL block fold — every production reduction in the
// tree goes through this, not Reduce.
func DivRem(hi, lo uint64, w uint, g uint64) uint64 {
	bit := func(p uint) uint64 {
		if p >= 64 {
			return (hi >> (p - 64)) & 1
		}
		return (lo >> p) & 1
	}
	clearBit := func(p uint) {
		if p >= 64 {
			hi &^= uint64(1) << (p - 64)
		} else {
			lo &^= uint64(1) << p
		}
	}
	xorAt := func(pos uint, val uint64) {
		if pos >= 64 {
			hi ^= val << (pos - 64)
			return
		}
		lo ^= val << pos
		if pos > 0 {
			hi ^= val >> (64 - pos)
		}
	}

	for p := uint(127); p >= w; p-- {
		if bit(p) == 1 {
			clearBit(p)
			xorAt(p-w, g)
		}
	}
	return lo & Mask(w)
}
