//go:build amd64 && gc && !purego

package backend

import (
	"sync"

	"github.com/miretskiy/crcfold/internal/cpu"
	"github.com/miretskiy/crcfold/internal/gf2"
)

// clmul64x64Asm computes the carry-less product of a and b via PCLMULQDQ.
// The trampoline takes two plain uint64s and returns the 128-bit product
// split into hi and lo, matching gf2.CLMul's signature exactly so every
// caller above this file is backend-agnostic.
//
//go:noescape
func clmul64x64Asm(a, b uint64) (hi, lo uint64)

const hasHardwareCLMul = true

var (
	useAsmOnce sync.Once
	useAsm     bool
)

// clmul64x64 dispatches to the PCLMULQDQ trampoline once cpu.Detect has
// confirmed the instruction is actually present — GOARCH=amd64 spans CPUs
// back to the original Pentium 4, and PCLMULQDQ only arrived with
// Westmere. Anything lacking it falls back to the portable multiply.
func clmul64x64(a, b uint64) (hi, lo uint64) {
	useAsmOnce.Do(func() {
		switch cpu.Detect() {
		case cpu.SSEPCLMULQDQ, cpu.AVX2VPCLMULQDQ, cpu.AVX512VPCLMULQDQ:
			useAsm = true
		}
	})
	if useAsm {
		return clmul64x64Asm(a, b)
	}
	return gf2.CLMul(a, b)
}
