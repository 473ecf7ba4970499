package crc

import "testing"

// FuzzDigestSplit checks property P3 (streaming equivalence) by feeding the
// fuzzer-chosen data through a digest in two arbitrarily-placed pieces and
// comparing against the one-shot checksum, across every seed variant.
func FuzzDigestSplit(f *testing.F) {
	f.Add([]byte("123456789"), 4)
	f.Add([]byte(""), 0)
	f.Add([]byte("a"), 1)
	f.Fuzz(func(t *testing.T, data []byte, splitAt int) {
		for _, v := range seedVariants {
			p, err := NewParams(v.name, v.width, v.poly, v.init, v.reflected, v.xorout, v.check)
			if err != nil {
				t.Fatal(err)
			}

			want := Checksum(p, data)

			n := 0
			if len(data) > 0 {
				n = ((splitAt % len(data)) + len(data)) % len(data)
			}
			d := NewDigest(p)
			d.Update(data[:n])
			d.Update(data[n:])
			if got := d.Finalize(); got != want {
				t.Fatalf("%s: split at %d: got %#x, want %#x", v.name, n, got, want)
			}
		}
	})
}

// FuzzCombine checks property P5 (combine law): combining the checksums of
// an arbitrary two-way split of data must equal the one-shot checksum of
// the whole.
func FuzzCombine(f *testing.F) {
	f.Add([]byte("1234"), []byte("56789"))
	f.Add([]byte(""), []byte("x"))
	f.Fuzz(func(t *testing.T, a, b []byte) {
		for _, v := range seedVariants {
			p, err := NewParams(v.name, v.width, v.poly, v.init, v.reflected, v.xorout, v.check)
			if err != nil {
				t.Fatal(err)
			}

			whole := append(append([]byte{}, a...), b...)
			want := Checksum(p, whole)

			got := Combine(p, Checksum(p, a), Checksum(p, b), uint64(len(b)))
			if got != want {
				t.Fatalf("%s: combine(len a=%d, len b=%d): got %#x, want %#x", v.name, len(a), len(b), got, want)
			}
		}
	})
}
