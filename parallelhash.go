package sha3

import (
	"github.com/pablotron/sha3/hazmat/sponge"
	"github.com/pablotron/sha3/internal/encode"
)

// ParallelHashParams carries a ParallelHash invocation's leaf block length
// and customization string, per NIST SP 800-185 §5.
type ParallelHashParams struct {
	BlockLen int
	Custom   []byte
}

func newParallelHashRoot(rate int, p ParallelHashParams) (sponge.Sponge, error) {
	if p.BlockLen <= 0 {
		return sponge.Sponge{}, ErrInvalidParameter
	}
	root := newCShake(rate, CShakeParams{Name: []byte("ParallelHash"), Custom: p.Custom}).s
	_, _ = root.Write(encode.LeftEncode(uint64(p.BlockLen)))
	return root, nil
}

// ParallelHashXOFHasher is an incremental ParallelHash128/256 XOF instance.
// It buffers input into a per-leaf SHAKE sponge; once a full block length
// has been absorbed the leaf is finalized, its chaining value is absorbed
// into the root, and the leaf sponge is reinitialized.
type ParallelHashXOFHasher struct {
	root        sponge.Sponge
	leaf        sponge.Sponge
	rate        int
	blockLen    int
	leafOutSize int
	ofs         int
	numBlocks   int
	finalized   bool
}

func newParallelHashXOF(rate, leafOutSize int, p ParallelHashParams) (ParallelHashXOFHasher, error) {
	root, err := newParallelHashRoot(rate, p)
	if err != nil {
		return ParallelHashXOFHasher{}, err
	}
	return ParallelHashXOFHasher{
		root:        root,
		leaf:        sponge.New(rate, 24, shakeDS),
		rate:        rate,
		blockLen:    p.BlockLen,
		leafOutSize: leafOutSize,
	}, nil
}

// NewParallelHash128XOF returns a new ParallelHash128 XOF instance.
func NewParallelHash128XOF(p ParallelHashParams) (ParallelHashXOFHasher, error) {
	return newParallelHashXOF(168, 32, p)
}

// NewParallelHash256XOF returns a new ParallelHash256 XOF instance.
func NewParallelHash256XOF(p ParallelHashParams) (ParallelHashXOFHasher, error) {
	return newParallelHashXOF(136, 64, p)
}

// Write absorbs p into the current leaf, flushing completed leaves into the
// root as their block length is reached. It returns ErrAlreadySqueezing if
// called after Read.
func (h *ParallelHashXOFHasher) Write(p []byte) (int, error) {
	if h.finalized {
		return 0, ErrAlreadySqueezing
	}

	n := len(p)
	for len(p) > 0 {
		w := min(h.blockLen-h.ofs, len(p))
		_, _ = h.leaf.Write(p[:w])
		h.ofs += w
		p = p[w:]
		if h.ofs == h.blockLen {
			h.flushLeaf()
		}
	}
	return n, nil
}

func (h *ParallelHashXOFHasher) flushLeaf() {
	out := make([]byte, h.leafOutSize)
	_, _ = h.leaf.Read(out)
	_, _ = h.root.Write(out)
	h.numBlocks++
	h.leaf.Reset(shakeDS)
	h.ofs = 0
}

// Read squeezes output from the XOF. On the first call it finalizes any
// partial leaf, then absorbs right_encode(n) followed by right_encode(0)
// into the root.
func (h *ParallelHashXOFHasher) Read(p []byte) (int, error) {
	if !h.finalized {
		if h.ofs > 0 {
			h.flushLeaf()
		}
		_, _ = h.root.Write(encode.RightEncode(uint64(h.numBlocks)))
		_, _ = h.root.Write(encode.RightEncode(0))
		h.finalized = true
	}
	return h.root.Read(p)
}

// ParallelHash128Sum computes the fixed-length ParallelHash128(msg, B, L, S).
func ParallelHash128Sum(msg []byte, p ParallelHashParams, outLen int) ([]byte, error) {
	return parallelHashSum(168, 32, msg, p, outLen)
}

// ParallelHash256Sum computes the fixed-length ParallelHash256(msg, B, L, S).
func ParallelHash256Sum(msg []byte, p ParallelHashParams, outLen int) ([]byte, error) {
	return parallelHashSum(136, 64, msg, p, outLen)
}

func parallelHashSum(rate, leafOutSize int, msg []byte, p ParallelHashParams, outLen int) ([]byte, error) {
	root, err := newParallelHashRoot(rate, p)
	if err != nil {
		return nil, err
	}

	numBlocks := 0
	leaf := sponge.New(rate, 24, shakeDS)
	for off := 0; off < len(msg); off += p.BlockLen {
		end := min(off+p.BlockLen, len(msg))
		_, _ = leaf.Write(msg[off:end])
		out := make([]byte, leafOutSize)
		_, _ = leaf.Read(out)
		_, _ = root.Write(out)
		numBlocks++
		leaf.Reset(shakeDS)
	}

	_, _ = root.Write(encode.RightEncode(uint64(numBlocks)))
	_, _ = root.Write(encode.RightEncode(uint64(outLen) * 8))
	out := make([]byte, outLen)
	_, _ = root.Read(out)
	return out, nil
}
