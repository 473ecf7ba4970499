//go:build !(amd64 && gc && !purego)

package backend

import "github.com/miretskiy/crcfold/internal/gf2"

// clmul64x64 is the portable fallback used on every architecture without a
// hand-written hardware trampoline (including arm64 — PMULL wiring is
// tracked as follow-on work, see DESIGN.md). It is gf2.CLMul under a name
// matching the amd64 trampoline's signature, so fold.go never needs to know
// which one it's calling.
func clmul64x64(a, b uint64) (hi, lo uint64) {
	return gf2.CLMul(a, b)
}

const hasHardwareCLMul = false
