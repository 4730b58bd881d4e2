package sha3

import (
	"github.com/pablotron/sha3/hazmat/sponge"
	"github.com/pablotron/sha3/internal/encode"
)

// KMACParams carries a KMAC invocation's key and customization string, per
// NIST SP 800-185 §4.
type KMACParams struct {
	Key    []byte
	Custom []byte
}

func newKMACSponge(rate int, p KMACParams) sponge.Sponge {
	cs := newCShake(rate, CShakeParams{Name: []byte("KMAC"), Custom: p.Custom})
	_, _ = cs.Write(encode.BytePad(encode.EncodeString(p.Key), rate))
	return cs.s
}

// KMAC128Sum computes the fixed-length KMAC128(K, msg, L, S) and returns
// outLen bytes. Encoding 8*outLen into the trailing right_encode ties the
// output length cryptographically into the tag, domain-separating it from
// the XOF form even at equal length.
func KMAC128Sum(p KMACParams, msg []byte, outLen int) []byte {
	return kmacSum(168, p, msg, outLen)
}

// KMAC256Sum computes the fixed-length KMAC256(K, msg, L, S).
func KMAC256Sum(p KMACParams, msg []byte, outLen int) []byte {
	return kmacSum(136, p, msg, outLen)
}

func kmacSum(rate int, p KMACParams, msg []byte, outLen int) []byte {
	s := newKMACSponge(rate, p)
	_, _ = s.Write(msg)
	_, _ = s.Write(encode.RightEncode(uint64(outLen) * 8))
	out := make([]byte, outLen)
	_, _ = s.Read(out)
	return out
}

// KMACXOFHasher is an incremental KMAC128/256 XOF instance. Unlike the
// fixed-length form, its trailing length encoding is right_encode(0),
// absorbed once on the first Read; output length is unbounded and does not
// affect the tag.
type KMACXOFHasher struct {
	s         sponge.Sponge
	finalized bool
}

// NewKMAC128XOF returns a new KMAC128 XOF instance with the given key and
// customization string.
func NewKMAC128XOF(p KMACParams) KMACXOFHasher {
	return KMACXOFHasher{s: newKMACSponge(168, p)}
}

// NewKMAC256XOF returns a new KMAC256 XOF instance.
func NewKMAC256XOF(p KMACParams) KMACXOFHasher {
	return KMACXOFHasher{s: newKMACSponge(136, p)}
}

func (x *KMACXOFHasher) Write(p []byte) (int, error) { return x.s.Write(p) }

// Read squeezes output from the XOF. On the first call it absorbs the
// trailing right_encode(0) and finalizes.
func (x *KMACXOFHasher) Read(p []byte) (int, error) {
	if !x.finalized {
		_, _ = x.s.Write(encode.RightEncode(0))
		x.finalized = true
	}
	return x.s.Read(p)
}
