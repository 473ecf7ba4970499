package crc

// Checksum computes the CRC of data in one call, for callers with the whole
// input in hand. It constructs a Digest, feeds data through a single Update,
// and calls Finalize.
func Checksum(p *Params, data []byte) uint64 {
	d := NewDigest(p)
	d.Update(data)
	return d.Finalize()
}
