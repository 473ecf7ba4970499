package backend

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableReflectedMatchesStdlibIEEE(t *testing.T) {
	// CRC-32/ISO-HDLC ("IEEE"): poly 0x04C11DB7, reflected, init 0xffffffff,
	// xorout 0xffffffff.
	table := NewTable(32, 0x04C11DB7, true)
	data := []byte("The quick brown fox jumps over the lazy dog")

	got := table.Update(0xffffffff, data) ^ 0xffffffff
	want := crc32.ChecksumIEEE(data)
	require.Equal(t, uint64(want), got)
}

func TestTableReflectedMatchesStdlibCastagnoli(t *testing.T) {
	table := NewTable(32, 0x1EDC6F41, true)
	data := []byte("356 a 4096-byte buffer is the usual break-even point")

	got := table.Update(0xffffffff, data) ^ 0xffffffff
	want := crc32.Checksum(data, crc32.MakeTable(crc32.Castagnoli))
	require.Equal(t, uint64(want), got)
}

func TestTableUpdateIsIncremental(t *testing.T) {
	table := NewTable(32, 0x04C11DB7, true)
	data := []byte("incremental update must match one shot")

	oneShot := table.Update(0xffffffff, data)

	crc := uint64(0xffffffff)
	for i := range data {
		crc = table.Update(crc, data[i:i+1])
	}
	require.Equal(t, oneShot, crc)
}
