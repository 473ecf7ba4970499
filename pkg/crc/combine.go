package crc

import (
	"math/bits"

	"github.com/miretskiy/crcfold/internal/gf2"
	"github.com/miretskiy/crcfold/internal/keys"
)

// Combine merges two checksums computed over adjacent byte ranges into the
// checksum of their concatenation: given crcA = Checksum(p, A) and
// crcB = Checksum(p, B) for some B of length lenB, it returns
// Checksum(p, A++B) without touching A or B again.
//
// Algorithm (spec §4.8): strip xorout from both inputs, advance crcA's
// internal state across lenB zero bytes by multiplying by
// x^(8*lenB) mod G(x), XOR in crcB's state, and reapply xorout. crcB's
// state was computed from Init rather than from zero, so it already holds
// Init advanced across lenB bytes; crcA's state is XORed with Init before
// the multiply so that term cancels.
//
// The multiply-and-reduce step is carried out in the non-reflected
// (forward) bit order regardless of p.Reflected, because that is the
// domain internal/keys.PowMod's folding-key ladder is built against (see
// its doc comment — reflected variants are handled by generating against
// the reciprocal polynomial, not by reversing individual results, and
// PowMod only ever takes the plain polynomial). A reflected state's bits
// run the opposite direction from that ladder's advancing-multiply
// convention, so it is bit-mirrored into the forward domain with
// math/bits.Reverse64 before the multiply and mirrored back after —
// exactly the reciprocal-polynomial identity that makes CRC-32/ISO-HDLC's
// 0xEDB88320 the bit-reverse of its textbook 0x04C11DB7.
func Combine(p *Params, crcA, crcB, lenB uint64) uint64 {
	if lenB == 0 {
		return crcA
	}

	w := uint(p.Width)
	stateA := (crcA ^ p.XorOut ^ p.Init) & p.mask
	stateB := (crcB ^ p.XorOut) & p.mask

	operand := stateA
	if p.Reflected {
		operand = mirror(stateA, w)
	}

	shiftKey := keys.PowMod(p.Width, p.Poly, 8*lenB)
	hi, lo := gf2.CLMul(operand, shiftKey)
	shifted := gf2.DivRem(hi, lo, w, p.Poly&p.mask)

	if p.Reflected {
		shifted = mirror(shifted, w)
	}

	return (shifted ^ stateB) ^ p.XorOut
}

// mirror reverses the low w bits of v, leaving higher bits zero.
func mirror(v uint64, w uint) uint64 {
	return bits.Reverse64(v) >> (64 - w)
}
