package keccak

import "encoding/binary"

// rc holds the 24 round constants for Keccak-f[1600], indexed by round. A
// reduced-round permutation (e.g. nr = 12) uses the last nr entries, so that
// round i of an nr-round permutation applies rc[24-nr+i].
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho holds the per-lane rotation offsets. The table is laid out as printed
// in FIPS 202 (row i lists the offsets for y=i, x=0..4), so callers must
// index it rho[y][x], not rho[x][y].
var rho = [5][5]uint{
	{0, 1, 62, 28, 27},
	{36, 44, 6, 55, 20},
	{3, 10, 43, 25, 39},
	{41, 45, 15, 21, 8},
	{18, 2, 61, 56, 14},
}

func rol64(x uint64, n uint) uint64 {
	if n == 0 {
		return x
	}
	return x<<n | x>>(64-n)
}

// f1600Generic applies nr rounds of Keccak-f[1600] to the state in place.
// This is the authoritative, back-end-independent reference: every other
// back-end registered in this package must produce bit-identical output.
func f1600Generic(s *[200]byte, nr int) {
	var a [5][5]uint64
	for y := range 5 {
		for x := range 5 {
			a[x][y] = binary.LittleEndian.Uint64(s[8*(5*y+x):])
		}
	}

	for round := 24 - nr; round < 24; round++ {
		// theta
		var c [5]uint64
		for x := range 5 {
			c[x] = a[x][0] ^ a[x][1] ^ a[x][2] ^ a[x][3] ^ a[x][4]
		}
		var d [5]uint64
		for x := range 5 {
			d[x] = c[(x+4)%5] ^ rol64(c[(x+1)%5], 1)
		}
		for x := range 5 {
			for y := range 5 {
				a[x][y] ^= d[x]
			}
		}

		// rho and pi combined: b[y][(2x+3y) mod 5] = rol(a[x][y], rho[y][x])
		var b [5][5]uint64
		for x := range 5 {
			for y := range 5 {
				b[y][(2*x+3*y)%5] = rol64(a[x][y], rho[y][x])
			}
		}

		// chi
		for x := range 5 {
			for y := range 5 {
				a[x][y] = b[x][y] ^ (^b[(x+1)%5][y] & b[(x+2)%5][y])
			}
		}

		// iota
		a[0][0] ^= rc[round]
	}

	for y := range 5 {
		for x := range 5 {
			binary.LittleEndian.PutUint64(s[8*(5*y+x):], a[x][y])
		}
	}
}
