// Package sponge implements the rate/capacity-parameterized Keccak sponge
// construction (absorb, pad, squeeze) shared by every construction in this
// module: FIPS-202 hashes and XOFs, the SP 800-185 derived functions, and
// TurboSHAKE/KangarooTwelve at a reduced round count.
package sponge

import (
	"errors"

	"github.com/pablotron/sha3/hazmat/keccak"
	"github.com/pablotron/sha3/internal/mem"
)

// ErrAlreadySqueezing is returned by Write once a Sponge has transitioned to
// squeezing; the transition is one-way.
var ErrAlreadySqueezing = errors.New("sponge: absorb called after squeeze")

// Sponge is a Keccak sponge over a given rate, round count, and domain
// separation byte. The zero value is not ready for use; construct one with
// New.
type Sponge struct {
	s         [200]byte
	rate      int
	nr        int
	dsb       byte
	pos       int
	squeezing bool
}

// New returns a Sponge with the given rate (in bytes), round count (12 or
// 24), and domain-separation byte.
func New(rate, nr int, dsb byte) Sponge {
	return Sponge{rate: rate, nr: nr, dsb: dsb}
}

// Rate returns the configured rate, in bytes.
func (s *Sponge) Rate() int { return s.rate }

// Reset zeros the sponge state and reinitializes it with the given
// domain-separation byte, keeping the configured rate and round count.
func (s *Sponge) Reset(dsb byte) {
	clear(s.s[:])
	s.pos = 0
	s.dsb = dsb
	s.squeezing = false
}

// Write absorbs p into the sponge. It returns ErrAlreadySqueezing, and
// absorbs nothing, if called after the first Read.
func (s *Sponge) Write(p []byte) (int, error) {
	if s.squeezing {
		return 0, ErrAlreadySqueezing
	}

	n := len(p)
	for len(p) > 0 {
		w := min(s.rate-s.pos, len(p))
		mem.XORInPlace(s.s[s.pos:s.pos+w], p[:w])
		s.pos += w
		p = p[w:]
		if s.pos == s.rate {
			keccak.Permute(&s.s, s.nr)
			s.pos = 0
		}
	}
	return n, nil
}

// Read squeezes output from the sponge into p. On the first call, it
// finalizes absorption by applying padding and permuting; subsequent calls
// continue squeezing from where the previous call left off. Read never
// fails.
func (s *Sponge) Read(p []byte) (int, error) {
	if !s.squeezing {
		s.pad()
	}

	n := len(p)
	for len(p) > 0 {
		if s.pos == s.rate {
			keccak.Permute(&s.s, s.nr)
			s.pos = 0
		}
		r := copy(p, s.s[s.pos:s.rate])
		s.pos += r
		p = p[r:]
	}
	return n, nil
}

// pad applies the construction's domain-separation byte and the trailing
// pad10*1 bit, then permutes once and transitions to squeezing.
func (s *Sponge) pad() {
	s.s[s.pos] ^= s.dsb
	s.s[s.rate-1] ^= 0x80
	keccak.Permute(&s.s, s.nr)
	s.pos = 0
	s.squeezing = true
}

// Clone returns an independent copy of the sponge.
func (s *Sponge) Clone() Sponge {
	return *s
}

// Chain finalizes a and a clone of a (call it b, already primed with ds) in
// a single batched permutation, producing two independent squeeze-ready
// sponges from a common absorbed prefix, so that two outputs derived from
// the same transcript do not require absorbing it twice. No construction in
// this module calls it.
func Chain(a, b *Sponge, ds byte) {
	if a.squeezing {
		panic("sponge: Chain called on an already-squeezing sponge")
	}

	*b = *a
	a.s[a.pos] ^= a.dsb
	a.s[a.rate-1] ^= 0x80
	b.s[b.pos] ^= ds
	b.s[b.rate-1] ^= 0x80
	keccak.PermuteX2(&a.s, &b.s, a.nr)
	a.pos, b.pos = 0, 0
	a.squeezing, b.squeezing = true, true
}
