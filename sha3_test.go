package sha3_test

import (
	"bytes"
	stdsha3 "crypto/sha3"
	"fmt"
	"hash"
	"testing"

	"github.com/pablotron/sha3"
	"github.com/pablotron/sha3/internal/testdata"
)

// TestFixedLengthAgainstStdlibOracle cross-checks every fixed-length digest
// against the standard library's independent crypto/sha3 implementation.
// The back-end-equivalence tests live in hazmat/keccak; this asserts the
// public API matches a second, unrelated implementation of the same
// algorithm.
func TestFixedLengthAgainstStdlibOracle(t *testing.T) {
	drbg := testdata.New("sha3 fixed-length oracle")

	for _, n := range []int{0, 1, 3, 135, 136, 137, 200, 1000} {
		msg := drbg.Data(n)

		if got, want := sha3.Sum224(msg), stdsha3.Sum224(msg); got != want {
			t.Errorf("Sum224(len=%d) = %x, want %x", n, got, want)
		}
		if got, want := sha3.Sum256(msg), stdsha3.Sum256(msg); got != want {
			t.Errorf("Sum256(len=%d) = %x, want %x", n, got, want)
		}
		if got, want := sha3.Sum384(msg), stdsha3.Sum384(msg); got != want {
			t.Errorf("Sum384(len=%d) = %x, want %x", n, got, want)
		}
		if got, want := sha3.Sum512(msg), stdsha3.Sum512(msg); got != want {
			t.Errorf("Sum512(len=%d) = %x, want %x", n, got, want)
		}
	}
}

// TestKnownAnswers pins a handful of FIPS 202 known-answer vectors directly,
// independent of any oracle implementation.
func TestKnownAnswers(t *testing.T) {
	if got := fmt.Sprintf("%x", sha3.Sum256([]byte("abc"))); got != "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532" {
		t.Errorf("SHA3-256(\"abc\") = %s", got)
	}
	if got := fmt.Sprintf("%x", sha3.Sum256(nil)); got != "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a" {
		t.Errorf("SHA3-256(\"\") = %s", got)
	}
	if got := fmt.Sprintf("%x", sha3.ShakeSum256(nil, 32)); got != "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f" {
		t.Errorf("SHAKE256(\"\", 32) = %s", got)
	}
}

// TestHashIncrementalEquivalence checks that writing a message in two
// pieces equals the one-shot digest of the whole.
func TestHashIncrementalEquivalence(t *testing.T) {
	drbg := testdata.New("sha3 incremental equivalence")
	msg := drbg.Data(1000)

	newFns := map[string]func() hash.Hash{
		"SHA3-224": sha3.New224,
		"SHA3-256": sha3.New256,
		"SHA3-384": sha3.New384,
		"SHA3-512": sha3.New512,
	}

	for name, newFn := range newFns {
		for _, split := range []int{0, 1, 135, 136, 137, 999, 1000} {
			whole := newFn()
			_, _ = whole.Write(msg)
			want := whole.Sum(nil)

			parts := newFn()
			_, _ = parts.Write(msg[:split])
			_, _ = parts.Write(msg[split:])
			got := parts.Sum(nil)

			if !bytes.Equal(got, want) {
				t.Errorf("%s split=%d: incremental != one-shot", name, split)
			}
		}
	}
}

func TestSumMatchesHashHash(t *testing.T) {
	drbg := testdata.New("sha3 Sum vs hash.Hash")
	msg := drbg.Data(321)

	h := sha3.New256()
	_, _ = h.Write(msg)
	want := sha3.Sum256(msg)
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Errorf("New256().Sum = %x, want %x", got, want)
	}
}

func TestSumDoesNotConsumeState(t *testing.T) {
	h := sha3.New256()
	_, _ = h.Write([]byte("part one"))
	first := h.Sum(nil)
	_, _ = h.Write([]byte(" part two"))
	second := h.Sum(nil)

	want := sha3.Sum256([]byte("part one part two"))
	if !bytes.Equal(second, want[:]) {
		t.Errorf("Sum after further Write = %x, want %x", second, want)
	}
	if bytes.Equal(first, second) {
		t.Error("Sum before and after further Write produced identical output")
	}
}

func TestResetReusesDigest(t *testing.T) {
	h := sha3.New384()
	_, _ = h.Write([]byte("first message"))
	h.Reset()
	_, _ = h.Write([]byte("second message"))

	want := sha3.Sum384([]byte("second message"))
	if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
		t.Errorf("Sum after Reset = %x, want %x", got, want)
	}
}

func TestBlockSizeAndSize(t *testing.T) {
	cases := []struct {
		h                  hash.Hash
		wantRate, wantSize int
	}{
		{sha3.New224(), 144, 28},
		{sha3.New256(), 136, 32},
		{sha3.New384(), 104, 48},
		{sha3.New512(), 72, 64},
	}
	for _, tc := range cases {
		if bs := tc.h.BlockSize(); bs != tc.wantRate {
			t.Errorf("BlockSize = %d, want %d", bs, tc.wantRate)
		}
		if sz := tc.h.Size(); sz != tc.wantSize {
			t.Errorf("Size = %d, want %d", sz, tc.wantSize)
		}
	}
}
