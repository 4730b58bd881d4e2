package sha3

import "github.com/pablotron/sha3/hazmat/sponge"

const shakeDS = 0x1F

// ShakeHash is an incremental SHAKE128/SHAKE256 instance. Write absorbs
// message bytes; Read squeezes output and, on its first call, finalizes
// absorption permanently.
type ShakeHash struct {
	s sponge.Sponge
}

func newShake(rate int) ShakeHash {
	return ShakeHash{s: sponge.New(rate, 24, shakeDS)}
}

// NewShake128 returns a new SHAKE128 instance.
func NewShake128() ShakeHash { return newShake(168) }

// NewShake256 returns a new SHAKE256 instance.
func NewShake256() ShakeHash { return newShake(136) }

func (h *ShakeHash) Write(p []byte) (int, error) { return h.s.Write(p) }
func (h *ShakeHash) Read(p []byte) (int, error)  { return h.s.Read(p) }

// Clone returns an independent copy of h.
func (h *ShakeHash) Clone() ShakeHash { return ShakeHash{s: h.s.Clone()} }

// Reset reinitializes h for reuse.
func (h *ShakeHash) Reset() { h.s.Reset(shakeDS) }

// ShakeSum128 squeezes outLen bytes of SHAKE128(msg).
func ShakeSum128(msg []byte, outLen int) []byte {
	return shakeSum(168, msg, outLen)
}

// ShakeSum256 squeezes outLen bytes of SHAKE256(msg).
func ShakeSum256(msg []byte, outLen int) []byte {
	return shakeSum(136, msg, outLen)
}

func shakeSum(rate int, msg []byte, outLen int) []byte {
	h := newShake(rate)
	_, _ = h.Write(msg)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}
