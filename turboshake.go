package sha3

import (
	"fmt"

	"github.com/pablotron/sha3/hazmat/turboshake"
)

// TurboSHAKEHasher is an incremental TurboSHAKE128/256 instance, per RFC
// 9861. It is a thin re-export of hazmat/turboshake.Hasher.
type TurboSHAKEHasher = turboshake.Hasher

// NewTurboSHAKE128 returns a new TurboSHAKE128 instance with the given
// domain-separation byte, which must be in [0x01, 0x7F].
func NewTurboSHAKE128(ds byte) (TurboSHAKEHasher, error) {
	return newTurboShake(turboshake.Rate128, ds)
}

// NewTurboSHAKE256 returns a new TurboSHAKE256 instance.
func NewTurboSHAKE256(ds byte) (TurboSHAKEHasher, error) {
	return newTurboShake(turboshake.Rate256, ds)
}

func newTurboShake(rate int, ds byte) (TurboSHAKEHasher, error) {
	h, err := turboshake.New(rate, ds)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return h, nil
}

// TurboSHAKE128Sum squeezes outLen bytes of TurboSHAKE128(msg, ds).
func TurboSHAKE128Sum(msg []byte, ds byte, outLen int) ([]byte, error) {
	out, err := turboshake.Sum128(msg, ds, outLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return out, nil
}

// TurboSHAKE256Sum squeezes outLen bytes of TurboSHAKE256(msg, ds).
func TurboSHAKE256Sum(msg []byte, ds byte, outLen int) ([]byte, error) {
	out, err := turboshake.Sum256(msg, ds, outLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return out, nil
}
