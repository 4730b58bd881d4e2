package encode

import (
	"bytes"
	"testing"
)

func TestLeftEncode(t *testing.T) {
	tests := []struct {
		x    uint64
		want []byte
	}{
		{0, []byte{1, 0}},
		{1, []byte{1, 1}},
		{12, []byte{1, 12}},
		{255, []byte{1, 0xff}},
		{256, []byte{2, 0x01, 0x00}},
		{65536, []byte{3, 0x01, 0x00, 0x00}},
	}
	for _, tt := range tests {
		if got := LeftEncode(tt.x); !bytes.Equal(got, tt.want) {
			t.Errorf("LeftEncode(%d) = %x, want %x", tt.x, got, tt.want)
		}
	}
}

func TestRightEncode(t *testing.T) {
	tests := []struct {
		x    uint64
		want []byte
	}{
		{0, []byte{0, 1}},
		{1, []byte{1, 1}},
		{12, []byte{12, 1}},
		{255, []byte{0xff, 1}},
		{256, []byte{0x01, 0x00, 2}},
	}
	for _, tt := range tests {
		if got := RightEncode(tt.x); !bytes.Equal(got, tt.want) {
			t.Errorf("RightEncode(%d) = %x, want %x", tt.x, got, tt.want)
		}
	}
}

func TestEncodeString(t *testing.T) {
	if got, want := EncodeString(nil), []byte{1, 0}; !bytes.Equal(got, want) {
		t.Errorf("EncodeString(nil) = %x, want %x", got, want)
	}

	if got, want := EncodeString([]byte("abc")), append([]byte{1, 24}, "abc"...); !bytes.Equal(got, want) {
		t.Errorf(`EncodeString("abc") = %x, want %x`, got, want)
	}
}

func TestBytePad(t *testing.T) {
	// bytepad(encode_string(""), 4) = left_encode(4) || left_encode(0)
	//   = [1,4] || [1,0], already a multiple of 4, so no zero padding.
	got := BytePad(EncodeString(nil), 4)
	if want := []byte{1, 4, 1, 0}; !bytes.Equal(got, want) {
		t.Errorf("BytePad(encode_string(nil), 4) = %x, want %x", got, want)
	}

	// bytepad(encode_string(""), 5) = [1,5] || [1,0] || 00, padded out to 5.
	got = BytePad(EncodeString(nil), 5)
	if want := []byte{1, 5, 1, 0, 0}; !bytes.Equal(got, want) {
		t.Errorf("BytePad(encode_string(nil), 5) = %x, want %x", got, want)
	}
}

func TestBytePadAlwaysMultipleOfW(t *testing.T) {
	for w := 1; w <= 200; w++ {
		for n := 0; n < 300; n += 37 {
			got := BytePad(make([]byte, n), w)
			if len(got)%w != 0 {
				t.Fatalf("BytePad(%d bytes, w=%d) length %d not a multiple of %d", n, w, len(got), w)
			}
		}
	}
}

func TestLeftRightEncodeAgree(t *testing.T) {
	// left_encode and right_encode must always agree on the minimal
	// big-endian byte representation, differing only in where the length
	// byte is placed.
	for _, x := range []uint64{0, 1, 127, 128, 65535, 1 << 32, 1<<64 - 1} {
		l := LeftEncode(x)
		r := RightEncode(x)
		if len(l) != len(r) {
			t.Fatalf("LeftEncode(%d) and RightEncode(%d) differ in length: %d vs %d", x, x, len(l), len(r))
		}
		if !bytes.Equal(l[1:], r[:len(r)-1]) {
			t.Errorf("LeftEncode(%d)[1:] = %x != RightEncode(%d)[:-1] = %x", x, l[1:], x, r[:len(r)-1])
		}
	}
}
