package sha3

import "github.com/pablotron/sha3/hazmat/kt128"

// KT128Hasher is an incremental KangarooTwelve (KT128) instance, per RFC
// 9861. It is a thin re-export of hazmat/kt128.Hasher.
type KT128Hasher = kt128.Hasher

// NewKangarooTwelve returns a new KT128 instance with an empty
// customization string.
func NewKangarooTwelve() *KT128Hasher { return kt128.New() }

// NewKangarooTwelveCustom returns a new KT128 instance customized with c.
func NewKangarooTwelveCustom(c []byte) *KT128Hasher { return kt128.NewCustom(c) }

// KangarooTwelveSum computes KangarooTwelve(msg, custom) and squeezes
// outLen bytes.
func KangarooTwelveSum(msg, custom []byte, outLen int) []byte {
	h := kt128.NewCustom(custom)
	_, _ = h.Write(msg)
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}
