// Package sha3 implements the FIPS-202 and NIST SP 800-185 SHA-3 family,
// plus the reduced-round RFC 9861 TurboSHAKE and KangarooTwelve
// constructions, all built on a single shared Keccak-f[1600] permutation
// and sponge engine.
//
// Fixed-length hashes (SHA3-224/256/384/512) implement hash.Hash. The
// extendable-output functions (SHAKE128/256, cSHAKE128/256, KMAC128/256 in
// its XOF form, TupleHash128/256, ParallelHash128/256, TurboSHAKE128/256,
// and KangarooTwelve/KT128) implement io.ReadWriter: Write absorbs message
// bytes, and Read squeezes output, with the transition from absorbing to
// squeezing happening automatically and permanently on the first Read.
//
// HMAC-SHA3-224/256/384/512 (NewHMAC224/256/384/512, *Sum, Equal*) wrap
// crypto/hmac around the fixed-length digests above.
//
// The hazmat subpackages (hazmat/keccak, hazmat/sponge, hazmat/turboshake,
// hazmat/kt128) expose the permutation and sponge primitives directly for
// callers building new constructions on top of them; most callers should
// use this package instead.
package sha3
