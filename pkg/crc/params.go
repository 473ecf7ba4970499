// Package crc implements a generic, SIMD-capable CRC-32/CRC-64 engine for
// any checksum expressible in the Rocksoft model: width, generator
// polynomial, initial value, a single input/output reflection flag, and an
// XOR-out mask. It exposes one-shot Checksum, a streaming Digest, and
// Combine for merging two partial checksums computed in parallel.
package crc

import (
	"fmt"

	"github.com/miretskiy/crcfold/internal/backend"
	"github.com/miretskiy/crcfold/internal/gf2"
	"github.com/miretskiy/crcfold/internal/keys"
)

// AlgorithmTag identifies the width family a Params descriptor belongs to.
type AlgorithmTag int

const (
	Crc32Custom AlgorithmTag = iota
	Crc64Custom
)

func (t AlgorithmTag) String() string {
	if t == Crc64Custom {
		return "Crc64Custom"
	}
	return "Crc32Custom"
}

// Params is an immutable Rocksoft parameter descriptor plus its derived
// folding keys. Two descriptors built from equal (width, poly, reflected)
// share the same underlying key array by value — keys are small (23 uint64s)
// and copied freely, so Params is plain data, safe to share across
// goroutines without synchronization.
type Params struct {
	Name      string
	Width     int
	Poly      uint64
	Init      uint64
	Reflected bool
	XorOut    uint64
	Check     uint64

	tag    AlgorithmTag
	mask   uint64
	keys   keys.Keys
	engine *backend.Engine
}

// NewParams validates and constructs a parameter descriptor, deriving (or
// fetching from the process-wide cache) its folding keys. It is the only
// fallible operation in this package — every operation on a *Params it
// returns successfully is infallible (see DESIGN.md's error taxonomy).
func NewParams(name string, width int, poly, init uint64, reflected bool, xorout, check uint64) (*Params, error) {
	if width != 32 && width != 64 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	tag := Crc32Custom
	if width == 64 {
		tag = Crc64Custom
	}

	mask := gf2.Mask(uint(width))
	p := &Params{
		Name:      name,
		Width:     width,
		Poly:      poly & mask,
		Init:      init & mask,
		Reflected: reflected,
		XorOut:    xorout & mask,
		Check:     check & mask,
		tag:       tag,
		mask:      mask,
		keys:      keys.Cached(width, poly, reflected),
		engine:    backend.NewEngine(width, poly, reflected),
	}
	return p, nil
}

// Verify recomputes the checksum of the canonical "123456789" check string
// and reports whether it matches p.Check. It is the "verification operation
// intended for test use" the error taxonomy reserves for internal
// consistency mismatches — construction itself never fails this way.
func (p *Params) Verify() error {
	got := Checksum(p, []byte("123456789"))
	if got != p.Check {
		return fmt.Errorf("%w: %s: got %#x, want %#x", ErrCheckMismatch, p.Name, got, p.Check)
	}
	return nil
}

// Tag reports which algorithm family (Crc32Custom or Crc64Custom) p belongs
// to, matching its Width.
func (p *Params) Tag() AlgorithmTag {
	return p.tag
}

// Keys exposes the 23-slot folding-key array derived for p's
// (Width, Poly, Reflected) triple. It is mainly a test and diagnostic
// surface (spec property P7: re-generating keys for equal parameters must
// be bit-identical) — the live Checksum/Digest path derives its own
// fold constants directly in internal/backend.NewEngine rather than
// consuming this array, which is sized for a wider multi-tier folding
// schedule than the single 16-byte-block fold Engine actually runs; see
// DESIGN.md and internal/backend/fold.go.
func (p *Params) Keys() keys.Keys {
	return p.keys
}

// CurrentBackendName reports which carry-less-multiply kernel this process
// resolved to, for diagnostics. It is a process-wide property, not specific
// to any one Params — see internal/backend.CurrentBackendName.
func CurrentBackendName() string {
	return backend.CurrentBackendName()
}
