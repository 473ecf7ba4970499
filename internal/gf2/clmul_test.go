package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCLMulIdentity(t *testing.T) {
	hi, lo := CLMul(0x1234, 1)
	require.Equal(t, uint64(0), hi)
	require.Equal(t, uint64(0x1234), lo)
}

func TestCLMulZero(t *testing.T) {
	hi, lo := CLMul(0xdeadbeef, 0)
	require.Equal(t, uint64(0), hi)
	require.Equal(t, uint64(0), lo)
}

func TestCLMulCommutative(t *testing.T) {
	a, b := uint64(0x1122334455667788), uint64(0x0f0f0f0f0f0f0f0f)
	h1, l1 := CLMul(a, b)
	h2, l2 := CLMul(b, a)
	require.Equal(t, h1, h2)
	require.Equal(t, l1, l2)
}

// a * x: shifting left by one bit with no carry is carry-less
// multiplication by x (0b10).
func TestCLMulShiftEquivalence(t *testing.T) {
	a := uint64(0x0102030405060708)
	hi, lo := CLMul(a, 2)
	require.Equal(t, a>>63, hi)
	require.Equal(t, a<<1, lo)
}

func TestMask(t *testing.T) {
	require.Equal(t, uint64(0), Mask(0))
	require.Equal(t, uint64(0xff), Mask(8))
	require.Equal(t, uint64(0xffffffff), Mask(32))
	require.Equal(t, ^uint64(0), Mask(64))
}
