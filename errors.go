package sha3

import (
	"errors"

	"github.com/pablotron/sha3/hazmat/keccak"
	"github.com/pablotron/sha3/hazmat/sponge"
)

// ErrAlreadySqueezing is returned by the incremental Write method of any
// construction in this package once squeezing has begun.
var ErrAlreadySqueezing = sponge.ErrAlreadySqueezing

// ErrInvalidParameter is returned when a construction is given an argument
// outside its valid range: a TurboSHAKE domain-separation byte outside
// 0x01..0x7F, or a non-positive ParallelHash block length.
var ErrInvalidParameter = errors.New("sha3: invalid parameter")

// ErrUnsupportedBackend is the top-level identity of
// hazmat/keccak.ErrUnsupportedBackend, returned by keccak.Select when asked
// for a name that is not one of the keccak.Backend names.
var ErrUnsupportedBackend = keccak.ErrUnsupportedBackend
