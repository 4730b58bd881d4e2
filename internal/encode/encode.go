// Package encode implements the NIST SP 800-185 §2.3 length-encoding
// primitives shared by cSHAKE, KMAC, TupleHash, and ParallelHash.
package encode

// LeftEncode returns left_encode(x): n || x_bytes_BE, where x_bytes_BE is
// the minimal big-endian encoding of x (a single 0x00 byte when x == 0) and
// n is its length in bytes, as a single byte.
func LeftEncode(x uint64) []byte {
	if x == 0 {
		return []byte{1, 0}
	}

	var buf [9]byte
	i := 8
	for v := x; v > 0; v >>= 8 {
		buf[i] = byte(v)
		i--
	}
	buf[i] = byte(8 - i)
	return append([]byte(nil), buf[i:]...)
}

// RightEncode returns right_encode(x): x_bytes_BE || n, the same big-endian
// encoding as LeftEncode with the length byte moved to the end.
func RightEncode(x uint64) []byte {
	if x == 0 {
		return []byte{0, 1}
	}

	var buf [9]byte
	i := 8
	for v := x; v > 0; v >>= 8 {
		buf[i] = byte(v)
		i--
	}
	n := 8 - i
	out := make([]byte, n+1)
	copy(out, buf[i+1:9])
	out[n] = byte(n)
	return out
}

// EncodeString returns encode_string(s): left_encode(8*len(s)) || s. The
// length is encoded in bits, not bytes, per SP 800-185.
func EncodeString(s []byte) []byte {
	out := LeftEncode(uint64(len(s)) * 8)
	return append(out, s...)
}

// BytePad returns bytepad(data, w): left_encode(w) || data, zero-padded so
// the total length is a multiple of w. w must be greater than zero.
func BytePad(data []byte, w int) []byte {
	prefix := LeftEncode(uint64(w))
	out := make([]byte, 0, ((len(prefix)+len(data)+w-1)/w)*w)
	out = append(out, prefix...)
	out = append(out, data...)
	if rem := len(out) % w; rem != 0 {
		out = append(out, make([]byte, w-rem)...)
	}
	return out
}
