package sha3

import (
	"github.com/pablotron/sha3/hazmat/sponge"
	"github.com/pablotron/sha3/internal/encode"
)

const cshakeDS = 0x04

// CShakeParams names and customizes a cSHAKE invocation per NIST SP
// 800-185 §3.2. Name is reserved for NIST-defined function names (KMAC,
// TupleHash, ParallelHash, ...); callers building their own construction on
// top of cSHAKE should leave it empty and use Custom only.
type CShakeParams struct {
	Name   []byte
	Custom []byte
}

// CShakeHasher is an incremental cSHAKE128/cSHAKE256 instance.
type CShakeHasher struct {
	s sponge.Sponge
}

func newCShake(rate int, p CShakeParams) CShakeHasher {
	if len(p.Name) == 0 && len(p.Custom) == 0 {
		// cSHAKE(N=S=empty) degenerates to plain SHAKE, per SP 800-185 §3.2.
		return CShakeHasher{s: sponge.New(rate, 24, shakeDS)}
	}

	s := sponge.New(rate, 24, cshakeDS)
	prefix := encode.BytePad(append(encode.EncodeString(p.Name), encode.EncodeString(p.Custom)...), rate)
	_, _ = s.Write(prefix)
	return CShakeHasher{s: s}
}

// NewCShake128 returns a new cSHAKE128 instance with the given parameters.
func NewCShake128(p CShakeParams) CShakeHasher { return newCShake(168, p) }

// NewCShake256 returns a new cSHAKE256 instance with the given parameters.
func NewCShake256(p CShakeParams) CShakeHasher { return newCShake(136, p) }

func (h *CShakeHasher) Write(p []byte) (int, error) { return h.s.Write(p) }
func (h *CShakeHasher) Read(p []byte) (int, error)  { return h.s.Read(p) }

// Clone returns an independent copy of h.
func (h *CShakeHasher) Clone() CShakeHasher { return CShakeHasher{s: h.s.Clone()} }

// CShake128Sum squeezes outLen bytes of cSHAKE128(msg, N, S).
func CShake128Sum(msg []byte, p CShakeParams, outLen int) []byte {
	return cshakeSum(168, msg, p, outLen)
}

// CShake256Sum squeezes outLen bytes of cSHAKE256(msg, N, S).
func CShake256Sum(msg []byte, p CShakeParams, outLen int) []byte {
	return cshakeSum(136, msg, p, outLen)
}

func cshakeSum(rate int, msg []byte, p CShakeParams, outLen int) []byte {
	h := newCShake(rate, p)
	_, _ = h.Write(msg)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}
