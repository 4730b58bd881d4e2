package sponge

import (
	"bytes"
	"crypto/sha3"
	"testing"
)

func oneShot(rate, nr int, dsb byte, msg []byte, outLen int) []byte {
	s := New(rate, nr, dsb)
	_, _ = s.Write(msg)
	out := make([]byte, outLen)
	_, _ = s.Read(out)
	return out
}

// TestSHA3_256Vector exercises the sponge directly at SHA3-256's
// (rate, nr, dsb) triple against the well-known empty-message test vector.
func TestSHA3_256Vector(t *testing.T) {
	got := oneShot(136, 24, 0x06, nil, 32)
	want := "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"[:64]
	if hexString(got) != want {
		t.Errorf("SHA3-256(\"\") = %s, want %s", hexString(got), want)
	}
}

func hexString(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[2*i] = digits[c>>4]
		out[2*i+1] = digits[c&0xf]
	}
	return string(out)
}

// TestAbsorbConcatenation checks that writing a message in two pieces
// equals writing it as one.
func TestAbsorbConcatenation(t *testing.T) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("sponge absorb concatenation"))
	msg := make([]byte, 500)
	_, _ = drbg.Read(msg)

	for _, split := range []int{0, 1, 135, 136, 137, 271, 499, 500} {
		a := New(136, 24, 0x06)
		_, _ = a.Write(msg)
		outA := make([]byte, 64)
		_, _ = a.Read(outA)

		b := New(136, 24, 0x06)
		_, _ = b.Write(msg[:split])
		_, _ = b.Write(msg[split:])
		outB := make([]byte, 64)
		_, _ = b.Read(outB)

		if !bytes.Equal(outA, outB) {
			t.Errorf("split=%d: absorb(a);absorb(b) != absorb(a||b)", split)
		}
	}
}

// TestSqueezeStreaming checks that squeezing in two pieces equals squeezing
// the concatenation in one call.
func TestSqueezeStreaming(t *testing.T) {
	const total = 400

	full := New(168, 24, 0x1f)
	_, _ = full.Write([]byte("squeeze streaming"))
	wantBuf := make([]byte, total)
	_, _ = full.Read(wantBuf)

	for k := 1; k < total; k++ {
		s := New(168, 24, 0x1f)
		_, _ = s.Write([]byte("squeeze streaming"))
		got := make([]byte, total)
		_, _ = s.Read(got[:k])
		_, _ = s.Read(got[k:])

		if !bytes.Equal(got, wantBuf) {
			t.Fatalf("k=%d: squeeze(k);squeeze(total-k) != squeeze(total)", k)
		}
	}
}

func TestAlreadySqueezing(t *testing.T) {
	s := New(136, 24, 0x06)
	_, _ = s.Write([]byte("abc"))
	var out [32]byte
	_, _ = s.Read(out[:])

	if _, err := s.Write([]byte("more")); err != ErrAlreadySqueezing {
		t.Errorf("Write after Read err = %v, want %v", err, ErrAlreadySqueezing)
	}
}

func TestCloneIndependence(t *testing.T) {
	s := New(136, 24, 0x06)
	_, _ = s.Write([]byte("clone me"))

	clone := s.Clone()
	_, _ = s.Write([]byte(" more"))

	var outClone, outOrig [32]byte
	_, _ = clone.Read(outClone[:])
	_, _ = s.Read(outOrig[:])

	if bytes.Equal(outClone[:], outOrig[:]) {
		t.Error("clone and original produced identical output despite diverging input")
	}

	// The clone must match a fresh sponge fed only the pre-clone input.
	ref := New(136, 24, 0x06)
	_, _ = ref.Write([]byte("clone me"))
	var outRef [32]byte
	_, _ = ref.Read(outRef[:])

	if !bytes.Equal(outClone[:], outRef[:]) {
		t.Error("clone diverged from a fresh sponge fed identical pre-clone input")
	}
}

func TestChainDivergesOnlyInDSB(t *testing.T) {
	msg := bytes.Repeat([]byte{0xab}, 300)

	refA := New(168, 12, 0x20)
	_, _ = refA.Write(msg)
	var wantA [32]byte
	_, _ = refA.Read(wantA[:])

	refB := New(168, 12, 0x21)
	_, _ = refB.Write(msg)
	var wantB [32]byte
	_, _ = refB.Read(wantB[:])

	a := New(168, 12, 0x20)
	_, _ = a.Write(msg)
	var b Sponge
	Chain(&a, &b, 0x21)

	var gotA, gotB [32]byte
	_, _ = a.Read(gotA[:])
	_, _ = b.Read(gotB[:])

	if !bytes.Equal(gotA[:], wantA[:]) {
		t.Errorf("Chain a output = %x, want %x", gotA, wantA)
	}
	if !bytes.Equal(gotB[:], wantB[:]) {
		t.Errorf("Chain b output = %x, want %x", gotB, wantB)
	}
}
