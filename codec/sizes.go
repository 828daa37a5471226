package codec

import (
	"math"

	"github.com/wippyai/base64mix/errors"
)

// MaxAlloc bounds the output size the allocating wrappers will produce.
// Inputs whose result would exceed it fail with an allocation error
// instead of exhausting memory on hostile sizes.
const MaxAlloc = 1 << 30 // 1 GB max single allocation

// EncodedLen returns the buffer length required to hold the base64
// encoding of n input bytes, excluding the NUL terminator. The value is
// always the padded length; unpadded variants write at most this much.
//
// The computation is overflow-checked: when ceil(n/3)*4 is not
// representable the result is a size overflow error, never a wrapped
// value.
func EncodedLen(n int) (int, error) {
	if n < 0 {
		return 0, errors.InvalidArgument(errors.PhaseSize, "negative input length")
	}
	blocks := n / 3
	if n%3 != 0 {
		blocks++
	}
	if blocks > math.MaxInt/4 {
		return 0, errors.Overflow(n)
	}
	return blocks * 4, nil
}

// DecodedLen returns an upper bound on the number of bytes decoded from
// n base64 symbols: floor(n*3/4). The actual output may be smaller once
// padding is stripped. Callers reserve one extra byte for the NUL
// terminator.
func DecodedLen(n int) int {
	if n < 0 {
		return 0
	}
	// Split the multiply so n*3 cannot overflow; the sum is still the
	// exact floor.
	return (n/4)*3 + (n%4)*3/4
}
