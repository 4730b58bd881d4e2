// Package turboshake implements TurboSHAKE128 and TurboSHAKE256 as
// specified in RFC 9861: eXtendable-Output Functions built on a
// reduced-round (12) Keccak-p[1600] permutation with a configurable
// domain-separation byte.
package turboshake

import (
	"errors"

	"github.com/pablotron/sha3/hazmat/sponge"
)

// Rate128 and Rate256 are the TurboSHAKE128 and TurboSHAKE256 rates, in
// bytes (200 minus twice the security strength in bytes).
const (
	Rate128 = 168
	Rate256 = 136
)

// nr is the reduced round count used by every TurboSHAKE-derived
// construction, including KangarooTwelve.
const nr = 12

// DefaultDS is the domain-separation byte used when no construction
// specifies one of its own.
const DefaultDS = 0x1F

// ErrInvalidDomainSeparation is returned when a requested domain-separation
// byte falls outside RFC 9861's permitted range 0x01..0x7F.
var ErrInvalidDomainSeparation = errors.New("turboshake: domain separation byte must be in [0x01, 0x7F]")

// Hasher is an incremental TurboSHAKE instance that implements
// io.ReadWriter. Writes absorb data into the sponge and reads squeeze
// output from it. Once Read is called, no further writes are permitted.
type Hasher struct {
	s sponge.Sponge
}

// New returns a new Hasher at the given rate (Rate128 or Rate256) with the
// given domain-separation byte. ds must be in [0x01, 0x7F].
func New(rate int, ds byte) (Hasher, error) {
	if ds < 0x01 || ds > 0x7F {
		return Hasher{}, ErrInvalidDomainSeparation
	}
	return Hasher{s: sponge.New(rate, nr, ds)}, nil
}

// Reset reinitializes the hasher with the given domain-separation byte,
// keeping its configured rate.
func (h *Hasher) Reset(ds byte) {
	h.s.Reset(ds)
}

// Write absorbs p into the sponge. It returns sponge.ErrAlreadySqueezing if
// called after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.s.Write(p)
}

// Read squeezes output from the sponge into p. On the first call it
// finalizes absorption; subsequent calls continue squeezing. Read never
// fails.
func (h *Hasher) Read(p []byte) (int, error) {
	return h.s.Read(p)
}

// Sum128 computes TurboSHAKE128(msg, ds, outLen) and returns the result.
func Sum128(msg []byte, ds byte, outLen int) ([]byte, error) {
	return sum(Rate128, msg, ds, outLen)
}

// Sum256 computes TurboSHAKE256(msg, ds, outLen) and returns the result.
func Sum256(msg []byte, ds byte, outLen int) ([]byte, error) {
	return sum(Rate256, msg, ds, outLen)
}

func sum(rate int, msg []byte, ds byte, outLen int) ([]byte, error) {
	h, err := New(rate, ds)
	if err != nil {
		return nil, err
	}
	_, _ = h.Write(msg)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out, nil
}

// Chain clones a into b, updates b with the given domain-separation byte,
// and finalizes both in a single batched permutation. After Chain returns,
// both a and b are in squeezing mode and ready for Read. hazmat/kt128 does
// not call it.
func Chain(a, b *Hasher, ds byte) {
	sponge.Chain(&a.s, &b.s, ds)
}
