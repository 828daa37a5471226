package codec

import (
	"github.com/wippyai/base64mix/errors"
)

// DecodeTo decodes base64 text from src into dst using the given decode
// table and returns the number of bytes written, excluding the NUL
// terminator appended after them.
//
// dst must hold DecodedLen(len(src))+1 bytes. Validation follows RFC 4648:
//
//   - input length mod 4 must not be 1
//   - at most two trailing '=' symbols, and only on a multiple-of-4 input
//   - every body symbol must be in the table's alphabet
//   - unused low bits of a partial tail group must be zero
//
// Any violation fails the whole call with zero output bytes: a success
// result is exactly the bytes a conforming encoder started from.
func DecodeTo(dst, src []byte, dec *Decoding) (int, error) {
	if dec == nil {
		return 0, errors.InvalidArgument(errors.PhaseDecode, "nil decoding")
	}
	if len(src)%4 == 1 {
		return 0, errors.FormatError("input length %d mod 4 is 1", len(src))
	}

	// +1 keeps room for the NUL terminator.
	if need := DecodedLen(len(src)) + 1; len(dst) < need {
		return 0, errors.Capacity(errors.PhaseDecode, need, len(dst))
	}

	if len(src) == 0 {
		dst[0] = 0
		return 0, nil
	}

	// Strip trailing padding on variants that accept it. More than two
	// pads can never come from a conforming encoder, and any pad at all
	// implies a full final group. The URL-safe variant leaves '=' in the
	// body, where the table lookup rejects it.
	body := src
	if dec.padOK {
		npad := 0
		for len(body) > 0 && body[len(body)-1] == PadChar {
			body = body[:len(body)-1]
			npad++
			if npad > 2 {
				return 0, errors.FormatError("more than two padding characters")
			}
		}
		if npad > 0 && len(src)%4 != 0 {
			return 0, errors.FormatError("padded input length %d is not a multiple of 4", len(src))
		}
	}

	tbl := &dec.values
	w := 0
	i := 0

	// Complete 4-symbol groups become 3 bytes.
	for n := len(body) / 4 * 4; i < n; i += 4 {
		d0 := tbl[body[i]]
		d1 := tbl[body[i+1]]
		d2 := tbl[body[i+2]]
		d3 := tbl[body[i+3]]
		if d0|d1|d2|d3 == invalid {
			return 0, illegalAt(tbl, body, i, i+4)
		}

		v := uint32(d0)<<18 | uint32(d1)<<12 | uint32(d2)<<6 | uint32(d3)
		dst[w] = byte(v >> 16)
		dst[w+1] = byte(v >> 8)
		dst[w+2] = byte(v)
		w += 3
	}

	// A partial tail of 3 or 2 symbols decodes to 2 or 1 bytes. The bits
	// beyond the decoded bytes must be zero, otherwise the input encodes
	// information no conforming encoder could have produced.
	switch tail := len(body) - i; tail {
	case 3:
		d0 := tbl[body[i]]
		d1 := tbl[body[i+1]]
		d2 := tbl[body[i+2]]
		if d0|d1|d2 == invalid {
			return 0, illegalAt(tbl, body, i, i+3)
		}
		if d2&0x03 != 0 {
			return 0, errors.IllegalSequence(i+2, 3)
		}

		v := uint32(d0)<<12 | uint32(d1)<<6 | uint32(d2)
		dst[w] = byte(v >> 10)
		dst[w+1] = byte(v >> 2)
		w += 2

	case 2:
		d0 := tbl[body[i]]
		d1 := tbl[body[i+1]]
		if d0|d1 == invalid {
			return 0, illegalAt(tbl, body, i, i+2)
		}
		if d1&0x0F != 0 {
			return 0, errors.IllegalSequence(i+1, 2)
		}

		dst[w] = byte(uint32(d0)<<2 | uint32(d1)>>4)
		w++

	case 1:
		// A dangling single symbol carries at most 6 bits, below one
		// byte, and is rejected like any symbol lookup failure.
		return 0, errors.IllegalChar(i, body[i])
	}

	dst[w] = 0
	return w, nil
}

// illegalAt locates the first invalid symbol in body[from:to] after a
// batched group check tripped.
func illegalAt(tbl *[256]byte, body []byte, from, to int) error {
	for i := from; i < to; i++ {
		if tbl[body[i]] == invalid {
			return errors.IllegalChar(i, body[i])
		}
	}
	// Unreachable while callers only pass failed groups.
	return errors.IllegalChar(from, body[from])
}

// Decode decodes base64 text from src with the given decode table into a
// freshly allocated buffer. On failure nothing is retained; no partial
// allocation escapes.
func Decode(src []byte, dec *Decoding) ([]byte, error) {
	if dec == nil {
		return nil, errors.InvalidArgument(errors.PhaseDecode, "nil decoding")
	}

	need := DecodedLen(len(src))
	if need > MaxAlloc {
		return nil, errors.AllocationLimit(errors.PhaseDecode, need, MaxAlloc)
	}

	buf := make([]byte, need+1)
	n, err := DecodeTo(buf, src, dec)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// DecodeStd decodes text produced with the standard alphabet.
func DecodeStd(src []byte) ([]byte, error) {
	return Decode(src, StdDecoding)
}

// DecodeURL decodes text produced with the URL-safe alphabet.
func DecodeURL(src []byte) ([]byte, error) {
	return Decode(src, URLDecoding)
}

// DecodeMix decodes text produced with either alphabet, without knowing
// which one was used.
func DecodeMix(src []byte) ([]byte, error) {
	return Decode(src, MixDecoding)
}
