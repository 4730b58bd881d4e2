package sha3

import (
	"hash"

	"github.com/pablotron/sha3/hazmat/sponge"
)

const fixedDS = 0x06

// digest implements hash.Hash over a sponge fixed at a given rate and
// output size; it backs the four SHA3-d constructors below.
type digest struct {
	s    sponge.Sponge
	rate int
	size int
}

func newDigest(rate, size int) *digest {
	return &digest{s: sponge.New(rate, 24, fixedDS), rate: rate, size: size}
}

func (d *digest) Write(p []byte) (int, error) { return d.s.Write(p) }

// Sum appends the hash of all data written so far to b without modifying
// the underlying state, so that Write may continue to be called afterward.
func (d *digest) Sum(b []byte) []byte {
	clone := d.s.Clone()
	out := make([]byte, d.size)
	_, _ = clone.Read(out)
	return append(b, out...)
}

func (d *digest) Reset()         { d.s.Reset(fixedDS) }
func (d *digest) Size() int      { return d.size }
func (d *digest) BlockSize() int { return d.rate }

// New224 returns a new SHA3-224 hash.Hash.
func New224() hash.Hash { return newDigest(144, 28) }

// New256 returns a new SHA3-256 hash.Hash.
func New256() hash.Hash { return newDigest(136, 32) }

// New384 returns a new SHA3-384 hash.Hash.
func New384() hash.Hash { return newDigest(104, 48) }

// New512 returns a new SHA3-512 hash.Hash.
func New512() hash.Hash { return newDigest(72, 64) }

// Sum224 returns the SHA3-224 digest of msg.
func Sum224(msg []byte) [28]byte { return sumFixed224(msg) }

// Sum256 returns the SHA3-256 digest of msg.
func Sum256(msg []byte) [32]byte { return sumFixed256(msg) }

// Sum384 returns the SHA3-384 digest of msg.
func Sum384(msg []byte) [48]byte { return sumFixed384(msg) }

// Sum512 returns the SHA3-512 digest of msg.
func Sum512(msg []byte) [64]byte { return sumFixed512(msg) }

func sumFixed224(msg []byte) (out [28]byte) {
	h := newDigest(144, 28)
	_, _ = h.Write(msg)
	copy(out[:], h.Sum(nil))
	return out
}

func sumFixed256(msg []byte) (out [32]byte) {
	h := newDigest(136, 32)
	_, _ = h.Write(msg)
	copy(out[:], h.Sum(nil))
	return out
}

func sumFixed384(msg []byte) (out [48]byte) {
	h := newDigest(104, 48)
	_, _ = h.Write(msg)
	copy(out[:], h.Sum(nil))
	return out
}

func sumFixed512(msg []byte) (out [64]byte) {
	h := newDigest(72, 64)
	_, _ = h.Write(msg)
	copy(out[:], h.Sum(nil))
	return out
}
