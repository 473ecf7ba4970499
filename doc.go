// Package crcfold is a generic, SIMD-accelerated CRC-32/CRC-64 engine. It
// computes any Rocksoft-model CRC variant (width, polynomial, initial value,
// input/output reflection, xor-out) through a single folding algorithm based
// on carry-less multiplication, with one-shot, streaming, and combine
// operations. See pkg/crc for the public API.
package crcfold
