// Package cpu resolves, once per process, which carry-less-multiply kernel
// internal/backend should fold against. Detection is pure feature-probing
// (github.com/klauspost/cpuid/v2) — it never benchmarks and never depends on
// what the caller is about to hash.
package cpu

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Backend names one carry-less-multiply implementation. The zero value,
// Scalar, is always a valid fallback.
type Backend int

const (
	Scalar Backend = iota
	SSEPCLMULQDQ
	AVX2VPCLMULQDQ
	AVX512VPCLMULQDQ
	NEONPMULL
)

// String returns the stable, lowercase name used in diagnostics and by
// pkg/crc.CurrentBackendName. It is deliberately not the Go identifier name:
// callers comparing backend names across a fleet of heterogeneous machines
// should see a name anchored to the instruction set, not the internal enum.
func (b Backend) String() string {
	switch b {
	case SSEPCLMULQDQ:
		return "sse_pclmulqdq"
	case AVX2VPCLMULQDQ:
		return "avx2_vpclmulqdq"
	case AVX512VPCLMULQDQ:
		return "avx512_vpclmulqdq"
	case NEONPMULL:
		return "neon_pmull"
	default:
		return "scalar"
	}
}

var (
	detectOnce sync.Once
	detected   Backend
)

// Detect returns the best carry-less-multiply backend available on this
// CPU, probing lazily and caching the result for the lifetime of the
// process — capability bits don't change at runtime, so there is nothing to
// invalidate.
func Detect() Backend {
	detectOnce.Do(func() {
		detected = detect()
	})
	return detected
}

// detect checks features with individual Has calls, each gating on the
// narrowest single flag that implies the one actually needed so the feature
// list reads as an AND of plain booleans rather than depending on a
// variadic "supports all of" helper.
func detect() Backend {
	switch {
	case cpuid.CPU.Has(cpuid.AVX512F) && cpuid.CPU.Has(cpuid.VPCLMULQDQ):
		return AVX512VPCLMULQDQ
	case cpuid.CPU.Has(cpuid.AVX2) && cpuid.CPU.Has(cpuid.VPCLMULQDQ):
		return AVX2VPCLMULQDQ
	case cpuid.CPU.Has(cpuid.SSE2) && cpuid.CPU.Has(cpuid.PCLMULQDQ):
		return SSEPCLMULQDQ
	case cpuid.CPU.Has(cpuid.ASIMD) && cpuid.CPU.Has(cpuid.PMULL):
		return NEONPMULL
	default:
		return Scalar
	}
}

// reset clears the memoized result. Test-only.
func reset() {
	detectOnce = sync.Once{}
}
