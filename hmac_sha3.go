package sha3

import (
	"crypto/hmac"
	"hash"
)

// NewHMAC224 returns a new HMAC-SHA3-224 hash.Hash keyed with key, per RFC
// 2104 applied to SHA3-224. The block size used for key padding is
// SHA3-224's rate (144 bytes), matching crypto/hmac's BlockSize convention.
func NewHMAC224(key []byte) hash.Hash { return hmac.New(New224, key) }

// NewHMAC256 returns a new HMAC-SHA3-256 hash.Hash keyed with key.
func NewHMAC256(key []byte) hash.Hash { return hmac.New(New256, key) }

// NewHMAC384 returns a new HMAC-SHA3-384 hash.Hash keyed with key.
func NewHMAC384(key []byte) hash.Hash { return hmac.New(New384, key) }

// NewHMAC512 returns a new HMAC-SHA3-512 hash.Hash keyed with key.
func NewHMAC512(key []byte) hash.Hash { return hmac.New(New512, key) }

// HMAC224Sum returns the HMAC-SHA3-224 tag of msg under key.
func HMAC224Sum(key, msg []byte) [28]byte {
	h := NewHMAC224(key)
	_, _ = h.Write(msg)
	var out [28]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HMAC256Sum returns the HMAC-SHA3-256 tag of msg under key.
func HMAC256Sum(key, msg []byte) [32]byte {
	h := NewHMAC256(key)
	_, _ = h.Write(msg)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HMAC384Sum returns the HMAC-SHA3-384 tag of msg under key.
func HMAC384Sum(key, msg []byte) [48]byte {
	h := NewHMAC384(key)
	_, _ = h.Write(msg)
	var out [48]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HMAC512Sum returns the HMAC-SHA3-512 tag of msg under key.
func HMAC512Sum(key, msg []byte) [64]byte {
	h := NewHMAC512(key)
	_, _ = h.Write(msg)
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// EqualHMAC224 reports whether tag is the correct HMAC-SHA3-224 tag for msg
// under key, using a constant-time comparison.
func EqualHMAC224(key, msg, tag []byte) bool {
	want := HMAC224Sum(key, msg)
	return hmac.Equal(want[:], tag)
}

// EqualHMAC256 reports whether tag is the correct HMAC-SHA3-256 tag for msg
// under key, using a constant-time comparison.
func EqualHMAC256(key, msg, tag []byte) bool {
	want := HMAC256Sum(key, msg)
	return hmac.Equal(want[:], tag)
}

// EqualHMAC384 reports whether tag is the correct HMAC-SHA3-384 tag for msg
// under key, using a constant-time comparison.
func EqualHMAC384(key, msg, tag []byte) bool {
	want := HMAC384Sum(key, msg)
	return hmac.Equal(want[:], tag)
}

// EqualHMAC512 reports whether tag is the correct HMAC-SHA3-512 tag for msg
// under key, using a constant-time comparison.
func EqualHMAC512(key, msg, tag []byte) bool {
	want := HMAC512Sum(key, msg)
	return hmac.Equal(want[:], tag)
}
