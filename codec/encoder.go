package codec

import (
	"github.com/wippyai/base64mix/errors"
)

// EncodeTo encodes src into dst using the given alphabet and returns the
// number of text bytes written, excluding the NUL terminator appended
// after them.
//
// dst must hold EncodedLen(len(src))+1 bytes; anything smaller fails with
// a capacity error before a single byte is written. Standard output is
// padded to a multiple of 4 symbols, URL-safe output stops after the last
// data symbol, so the returned length may be below EncodedLen.
//
// This is the zero-allocation primitive; Encode wraps it.
func EncodeTo(dst, src []byte, enc *Encoding) (int, error) {
	if enc == nil {
		return 0, errors.InvalidArgument(errors.PhaseEncode, "nil encoding")
	}

	need, err := EncodedLen(len(src))
	if err != nil {
		return 0, err
	}
	// +1 keeps room for the NUL terminator.
	if len(dst) < need+1 {
		return 0, errors.Capacity(errors.PhaseEncode, need+1, len(dst))
	}

	if len(src) == 0 {
		dst[0] = 0
		return 0, nil
	}

	tbl := &enc.symbols
	w := 0
	i := 0

	// Complete 3-byte groups become 4 symbols.
	for n := len(src) / 3 * 3; i < n; i += 3 {
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		dst[w] = tbl[v>>18&0x3F]
		dst[w+1] = tbl[v>>12&0x3F]
		dst[w+2] = tbl[v>>6&0x3F]
		dst[w+3] = tbl[v&0x3F]
		w += 4
	}

	// A 1- or 2-byte remainder becomes 2 or 3 symbols; missing input
	// bytes contribute zero bits.
	if remain := len(src) - i; remain > 0 {
		v := uint32(src[i]) << 16
		if remain == 2 {
			v |= uint32(src[i+1]) << 8
		}

		dst[w] = tbl[v>>18&0x3F]
		dst[w+1] = tbl[v>>12&0x3F]
		w += 2

		if remain == 2 {
			dst[w] = tbl[v>>6&0x3F]
			w++
			if enc.padded {
				dst[w] = PadChar
				w++
			}
		} else if enc.padded {
			dst[w] = PadChar
			dst[w+1] = PadChar
			w += 2
		}
	}

	dst[w] = 0
	return w, nil
}

// Encode encodes src with the given alphabet into a freshly allocated
// buffer and returns exactly the encoded text. On failure nothing is
// retained; no partial allocation escapes.
func Encode(src []byte, enc *Encoding) ([]byte, error) {
	if enc == nil {
		return nil, errors.InvalidArgument(errors.PhaseEncode, "nil encoding")
	}

	need, err := EncodedLen(len(src))
	if err != nil {
		return nil, err
	}
	if need > MaxAlloc {
		return nil, errors.AllocationLimit(errors.PhaseEncode, need, MaxAlloc)
	}

	buf := make([]byte, need+1)
	n, err := EncodeTo(buf, src, enc)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// EncodeStd encodes src with the standard alphabet, padded.
func EncodeStd(src []byte) ([]byte, error) {
	return Encode(src, StdEncoding)
}

// EncodeURL encodes src with the URL-safe alphabet, unpadded.
func EncodeURL(src []byte) ([]byte, error) {
	return Encode(src, URLEncoding)
}
