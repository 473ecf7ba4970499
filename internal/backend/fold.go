package backend

import (
	"encoding/binary"
	"math/bits"

	"github.com/miretskiy/crcfold/internal/gf2"
	"github.com/miretskiy/crcfold/internal/keys"
)

// foldThreshold is the minimum input length, in bytes, at which Checksum
// folds 16-byte blocks through clmul64x64 instead of walking the scalar
// table a byte at a time. Below it the table path wins outright: the fold
// still has to process any 1-15 remaining tail bytes through the table
// anyway, so there is nothing to amortize the setup against.
const foldThreshold = 64

// Engine is the checksum engine for one (width, poly, reflected) triple. It
// runs the CLMUL block fold above foldThreshold and the scalar Sarwate table
// below it (and for the tail end of any fold), dispatching its multiplies
// through clmul64x64 — the same swappable primitive internal/cpu.Detect
// gates — so CurrentBackendName's report and the arithmetic actually
// performed agree.
type Engine struct {
	width     uint
	reflected bool
	table     *Table // native domain: reflected tables are built against the reciprocal polynomial
	fwdTable  *Table // forward (non-reflected) domain; same as table when reflected == false

	g    uint64 // generator, leading bit implicit — also equals x^width mod g by construction
	k128 uint64 // x^128 mod g
	k64w uint64 // x^(64+width) mod g
}

// NewEngine builds the checksum engine for one (width, poly, reflected)
// triple. poly is in the conventional (non-reflected) bit order; width must
// be 32 or 64.
func NewEngine(width int, poly uint64, reflected bool) *Engine {
	w := uint(width)
	g := poly & gf2.Mask(w)

	native := NewTable(width, poly, reflected)
	fwd := native
	if reflected {
		fwd = NewTable(width, poly, false)
	}

	return &Engine{
		width:     w,
		reflected: reflected,
		table:     native,
		fwdTable:  fwd,
		g:         g,
		k128:      keys.PowMod(width, poly, 128),
		k64w:      keys.PowMod(width, poly, uint64(64+w)),
	}
}

// Checksum folds data into crc (the running CRC register, in the variant's
// own bit order) and returns the updated value. It never applies xorout or touches init —
// callers (pkg/crc) own that bookkeeping.
func (e *Engine) Checksum(crc uint64, data []byte) uint64 {
	if len(data) < foldThreshold {
		return e.table.Update(crc, data)
	}
	if !e.reflected {
		return e.foldForward(crc, data)
	}

	// The fold-and-cascade recurrence below advances state by multiplying
	// by increasing powers of x, which only agrees with the data's own bit
	// order in the non-reflected (forward) domain — the same reason
	// pkg/crc.Combine bit-mirrors before its shift-and-reduce step. Mirror
	// the state and reverse every byte's bits into that domain, run the
	// identical forward recurrence, then mirror the result back.
	state := mirror(crc, e.width)
	reversed := make([]byte, len(data))
	for i, b := range data {
		reversed[i] = bits.Reverse8(b)
	}
	state = e.foldForward(state, reversed)
	return mirror(state, e.width)
}

// foldForward advances state across data in the forward (non-reflected) bit
// domain: full 16-byte blocks through foldBlock, then any 0-15 remaining
// tail bytes through the forward-domain scalar table.
func (e *Engine) foldForward(state uint64, data []byte) uint64 {
	n := len(data) - len(data)%16
	for i := 0; i < n; i += 16 {
		blockHi := binary.BigEndian.Uint64(data[i : i+8])
		blockLo := binary.BigEndian.Uint64(data[i+8 : i+16])
		state = e.foldBlock(state, blockHi, blockLo)
	}
	return e.fwdTable.Update(state, data[n:])
}

// foldBlock advances state across one 16-byte big-endian block, computing
// state*x^128 + block*x^width mod G(x) directly — the same forward Sarwate
// recurrence a single byte follows (new = state*x^8 + b*x^width mod G),
// generalized from an 8-bit step to a 128-bit one. state's own advance and
// the block's contribution are independent GF(2)-linear terms, so they are
// computed as two carry-less products reduced through a shared DivRem call
// for the block term (its two halves are simply XORed before reducing) and
// XORed together.
func (e *Engine) foldBlock(state, blockHi, blockLo uint64) uint64 {
	sh, sl := clmul64x64(state, e.k128)
	stateAdv := gf2.DivRem(sh, sl, e.width, e.g)

	bh1, bl1 := clmul64x64(blockHi, e.k64w)
	bh2, bl2 := clmul64x64(blockLo, e.g)
	blockTerm := gf2.DivRem(bh1^bh2, bl1^bl2, e.width, e.g)

	return stateAdv ^ blockTerm
}

// mirror reverses the low w bits of v, leaving higher bits zero — the same
// reciprocal-polynomial transform pkg/crc.Combine uses, duplicated here
// because internal/backend cannot import pkg/crc.
func mirror(v uint64, w uint) uint64 {
	return bits.Reverse64(v) >> (64 - w)
}
