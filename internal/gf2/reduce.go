package gf2

// Reduce performs the two-multiply Barrett-style reduction of a 128-bit
// value (hi, lo) to an exact width-w remainder modulo g, using the
// precomputed mu = floor(x^(2w)/g) and g itself.
//
// mu and g are stored without their implicit leading (degree-w) bit — the
// same convention DivRem uses for g, and necessary for mu because at w=64
// that bit (degree 64) does not fit a uint64. fold carries any bits at or
// above position 64 back down first, so the Barrett step proper always
// operates on a value of degree <= 2w-1.
//
// The result equals DivRem(hi, lo, w, g). No production path calls Reduce;
// internal/backend's block fold and the other reductions use DivRem.
func Reduce(hi, lo uint64, w uint, foldConst, mu, g uint64) uint64 {
	// Bring (hi, lo) under degree 2w by repeatedly folding the overflow
	// (anything at or above bit 64) down using x^64 mod g. For w == 64 this
	// loop never runs: degree <= 127 already satisfies < 2w == 128.
	for w < 64 && hi != 0 {
		h, l := CLMul(hi, foldConst)
		hi, lo = h, lo^l
	}

	var topW, botW uint64
	if w == 64 {
		topW, botW = hi, lo
	} else {
		topW, botW = lo>>w, lo&Mask(w)
	}

	ph, pl := CLMul(topW, mu)
	// mu's implicit bit at position w contributes topW*x^w, which shifted
	// right by w is topW itself.
	var t2 uint64
	if w == 64 {
		t2 = topW ^ ph
	} else {
		t2 = topW ^ ((ph << (64 - w)) | (pl >> w))
	}

	_, ql := CLMul(t2, g)
	t3 := ql & Mask(w)

	return botW ^ t3
}
