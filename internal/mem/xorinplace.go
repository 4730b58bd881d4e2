// Package mem implements small byte-slice operations shared by the sponge
// and tree-hash implementations in hazmat.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i in dst; src must be at least
// as long as dst. The sponge absorb
// step XORs message bytes directly into the rate portion of the Keccak
// state rather than buffering them first.
func XORInPlace(dst, src []byte) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}
