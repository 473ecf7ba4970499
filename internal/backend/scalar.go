package backend

import "github.com/miretskiy/crcfold/internal/gf2"

// Table is a classic Sarwate byte-at-a-time lookup table for one
// (width, poly, reflected) triple. Engine.Checksum uses it directly below
// foldThreshold, and to finish off the 0-15 byte tail of any input the
// CLMUL block fold handles above that threshold (see fold.go).
type Table struct {
	width     uint
	reflected bool
	entries   [256]uint64
	mask      uint64
}

// NewTable builds the 256-entry table for (width, poly, reflected). poly is
// given in the conventional (non-reflected) bit order, matching
// internal/keys.Generate.
func NewTable(width int, poly uint64, reflected bool) *Table {
	w := uint(width)
	mask := gf2.Mask(w)
	t := &Table{width: w, reflected: reflected, mask: mask}

	if reflected {
		rpoly := reverseBitsLocal(poly&mask, w)
		for i := 0; i < 256; i++ {
			crc := uint64(i)
			for b := 0; b < 8; b++ {
				if crc&1 != 0 {
					crc = (crc >> 1) ^ rpoly
				} else {
					crc >>= 1
				}
			}
			t.entries[i] = crc & mask
		}
		return t
	}

	top := uint64(1) << (w - 1)
	for i := 0; i < 256; i++ {
		crc := uint64(i) << (w - 8)
		for b := 0; b < 8; b++ {
			if crc&top != 0 {
				crc = ((crc << 1) ^ poly) & mask
			} else {
				crc = (crc << 1) & mask
			}
		}
		t.entries[i] = crc
	}
	return t
}

// Update folds data into crc, byte by byte.
func (t *Table) Update(crc uint64, data []byte) uint64 {
	if t.reflected {
		for _, b := range data {
			crc = (crc >> 8) ^ t.entries[byte(crc)^b]
		}
		return crc
	}
	for _, b := range data {
		idx := byte(crc>>(t.width-8)) ^ b
		crc = ((crc << 8) ^ t.entries[idx]) & t.mask
	}
	return crc
}

func reverseBitsLocal(v uint64, n uint) uint64 {
	var r uint64
	for i := uint(0); i < n; i++ {
		r <<= 1
		r |= (v >> i) & 1
	}
	return r
}
