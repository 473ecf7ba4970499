// Package backend implements the CRC checksum engine: a scalar Sarwate
// table for small inputs and tails, a CLMUL block fold for everything at or
// above foldThreshold, and the swappable clmul64x64 primitive the fold
// dispatches through. pkg/crc's combine step multiplies with gf2.CLMul
// directly.
package backend

import "github.com/miretskiy/crcfold/internal/cpu"

// CurrentBackendName reports which carry-less-multiply kernel this process
// resolved to, for diagnostics and logging. It reflects what clmul64x64
// dispatches to, which is also what Engine.Checksum's fold path actually
// runs on inputs at or above foldThreshold — below that threshold the
// scalar table does the same arithmetic without naming itself separately,
// and on architectures with no hardware kernel the name is "scalar" while
// the fold multiplies through gf2.CLMul.
func CurrentBackendName() string {
	if !hasHardwareCLMul {
		return cpu.Scalar.String()
	}
	return cpu.Detect().String()
}
