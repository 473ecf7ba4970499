package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// CRC-32/ISO-HDLC's generator, 0x04C11DB7, with its degree-32 leading bit
// dropped per the package convention.
const poly32 = 0x04C11DB7

func TestDivRemBelowDegree(t *testing.T) {
	require.Equal(t, uint64(0x42), DivRem(0, 0x42, 32, poly32))
}

func TestDivRemReducesHighBit(t *testing.T) {
	// x^32 mod G(x) == G(x)'s low 32 bits, since x^32 = G(x) (mod G) by
	// definition of G having an implicit leading term at degree 32.
	got := DivRem(0, uint64(1)<<32, 32, poly32)
	require.Equal(t, uint64(poly32), got)
}

func TestDivRemIdempotentOnRemainder(t *testing.T) {
	r := DivRem(0, 0xffffffff, 32, poly32)
	again := DivRem(0, r, 32, poly32)
	require.Equal(t, r, again, "a value already below degree 32 must be its own remainder")
}

func TestDivRemWidth64(t *testing.T) {
	const poly64 = 0xad93d23594c935a9 // arbitrary width-64 generator, leading bit dropped
	got := DivRem(1, 0, 64, poly64)   // x^64 mod G
	require.Equal(t, uint64(poly64), got)
}
