package sha3

import (
	"github.com/pablotron/sha3/hazmat/sponge"
	"github.com/pablotron/sha3/internal/encode"
)

func newTupleHashSponge(rate int, custom []byte) sponge.Sponge {
	cs := newCShake(rate, CShakeParams{Name: []byte("TupleHash"), Custom: custom})
	return cs.s
}

// TupleHashParams holds the customization string for a TupleHash instance.
type TupleHashParams struct {
	Custom []byte
}

// TupleHash128Sum computes TupleHash128(strs, L, S). Each element of strs
// is absorbed as encode_string(Xi), so the concatenation is injective:
// ("ab", "c") and ("a", "bc") hash to different values.
func TupleHash128Sum(strs [][]byte, p TupleHashParams, outLen int) []byte {
	return tupleHashSum(168, strs, p.Custom, outLen)
}

// TupleHash256Sum computes TupleHash256(strs, L, S).
func TupleHash256Sum(strs [][]byte, p TupleHashParams, outLen int) []byte {
	return tupleHashSum(136, strs, p.Custom, outLen)
}

func tupleHashSum(rate int, strs [][]byte, custom []byte, outLen int) []byte {
	s := newTupleHashSponge(rate, custom)
	for _, x := range strs {
		_, _ = s.Write(encode.EncodeString(x))
	}
	_, _ = s.Write(encode.RightEncode(uint64(outLen) * 8))
	out := make([]byte, outLen)
	_, _ = s.Read(out)
	return out
}

// TupleHashXOFHasher is an incremental TupleHash128/256 XOF instance. Each
// Write call absorbs exactly one tuple element, length-prefixed; elements
// cannot be streamed in pieces, since that would break the
// concatenation-injectivity guarantee the length prefix provides.
type TupleHashXOFHasher struct {
	s         sponge.Sponge
	finalized bool
}

// NewTupleHash128XOF returns a new TupleHash128 XOF instance.
func NewTupleHash128XOF(p TupleHashParams) TupleHashXOFHasher {
	return TupleHashXOFHasher{s: newTupleHashSponge(168, p.Custom)}
}

// NewTupleHash256XOF returns a new TupleHash256 XOF instance.
func NewTupleHash256XOF(p TupleHashParams) TupleHashXOFHasher {
	return TupleHashXOFHasher{s: newTupleHashSponge(136, p.Custom)}
}

// Write absorbs x as one complete tuple element. It returns
// ErrAlreadySqueezing if called after Read.
func (t *TupleHashXOFHasher) Write(x []byte) (int, error) {
	if t.finalized {
		return 0, ErrAlreadySqueezing
	}
	_, err := t.s.Write(encode.EncodeString(x))
	if err != nil {
		return 0, err
	}
	return len(x), nil
}

// Read squeezes output from the XOF, absorbing the trailing
// right_encode(0) on the first call.
func (t *TupleHashXOFHasher) Read(p []byte) (int, error) {
	if !t.finalized {
		_, _ = t.s.Write(encode.RightEncode(0))
		t.finalized = true
	}
	return t.s.Read(p)
}
