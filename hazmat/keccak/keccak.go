// Package keccak provides the Keccak-f[1600] permutation underlying every
// construction in this module, with a pluggable back-end registry selected
// by platform build tags and runtime CPU feature detection.
//
// Every registered back-end is required to produce bit-identical output to
// the scalar reference implementation for any round count; see
// keccak_test.go and the package-level fuzz tests for the back-end
// equivalence checks this invariant depends on.
package keccak

import "errors"

// ErrUnsupportedBackend is returned by Select when asked for a backend name
// this build does not register.
var ErrUnsupportedBackend = errors.New("keccak: unsupported backend")

// Backend identifies a Keccak-f[1600] permutation implementation.
type Backend int

const (
	// Scalar is the portable 64-bit reference implementation.
	Scalar Backend = iota
	// AVX2 is reported for amd64 CPUs with AVX2 support. It runs the scalar
	// kernel; this module has no AVX2 kernel.
	AVX2
	// AVX512 is reported for amd64 CPUs with AVX-512F/VL support. It runs the
	// scalar kernel; this module has no AVX-512 kernel.
	AVX512
	// NEON is reported for arm64 CPUs with the SHA3 crypto extension. It runs
	// the scalar kernel; this module has no NEON kernel.
	NEON
)

func (b Backend) String() string {
	switch b {
	case AVX2:
		return "AVX2"
	case AVX512:
		return "AVX512"
	case NEON:
		return "NEON"
	default:
		return "Scalar"
	}
}

// Select resolves a backend name, as returned by Backend.String, to its
// Backend value. All four names resolve on every platform, and Permute does
// not take a Backend, so the result does not change which kernel runs. It
// returns ErrUnsupportedBackend for any other name.
func Select(name string) (Backend, error) {
	for _, b := range []Backend{Scalar, AVX2, AVX512, NEON} {
		if b.String() == name {
			return b, nil
		}
	}
	return Scalar, ErrUnsupportedBackend
}

// F1600 applies the full 24-round Keccak-f[1600] permutation, as used by
// SHA3-*, SHAKE*, cSHAKE*, KMAC*, TupleHash*, and ParallelHash*.
func F1600(state *[200]byte) {
	Permute(state, 24)
}

// P1600 applies the reduced, 12-round Keccak-p[1600,12] permutation, as used
// by TurboSHAKE and KangarooTwelve.
func P1600(state *[200]byte) {
	Permute(state, 12)
}

// PermuteX2 applies an nr-round permutation to two states. Back-ends may
// process the pair together; output is always identical to applying Permute
// to each state independently.
func PermuteX2(s1, s2 *[200]byte, nr int) {
	permuteX2(s1, s2, nr)
}

// PermuteX4 applies an nr-round permutation to four states. Back-ends may
// process the group together; output is always identical to applying
// Permute to each state independently.
func PermuteX4(s1, s2, s3, s4 *[200]byte, nr int) {
	permuteX4(s1, s2, s3, s4, nr)
}
