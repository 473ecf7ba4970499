package crc

import "errors"

// Error taxonomy (spec §7): the only fallible operation in this package is
// NewParams. Once a *Params is constructed successfully, Checksum, Digest,
// and Combine are infallible.
var (
	// ErrInvalidWidth is returned by NewParams when width is not 32 or 64.
	ErrInvalidWidth = errors.New("crc: width must be 32 or 64")

	// ErrAsymmetricReflection documents the Open Question spec.md leaves
	// open around refin != refout. This engine's Rocksoft tuple carries a
	// single Reflected bool, so asymmetric reflection is structurally
	// unrepresentable rather than merely rejected — no NewParams call can
	// ever produce it, and this error exists only so a caller translating
	// from a richer seven-tuple catalog (separate refin/refout) has a
	// named error to return before ever reaching NewParams.
	ErrAsymmetricReflection = errors.New("crc: refin and refout must match; this engine has no separate flags")

	// ErrCheckMismatch is returned only by (*Params).Verify, never by
	// construction or computation — a descriptor whose "123456789" check
	// value disagrees with its stored Check is a test-time diagnostic, not
	// a production failure mode.
	ErrCheckMismatch = errors.New("crc: computed check value does not match")
)
