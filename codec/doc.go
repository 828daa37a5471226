// Package codec provides the base64mix encoding and decoding engine.
//
// The engine implements RFC 4648 base64 in three variants:
//
//	Variant   Alphabet tail   Padding   Direction
//	─────────────────────────────────────────────
//	std       '+' '/'         yes       encode + decode
//	url       '-' '_'         no        encode + decode
//	mix       both            yes       decode only
//
// # Key Functions
//
//	EncodeTo / DecodeTo    - zero-allocation primitives over caller buffers
//	Encode / Decode        - allocating wrappers
//	EncodedLen/DecodedLen  - overflow-checked buffer sizing
//	EncodeStd, EncodeURL   - the five variant operations
//	DecodeStd, DecodeURL,
//	DecodeMix
//
// # Buffer Contract
//
// The primitives write only into the caller's buffer and append a NUL
// terminator after the reported length for safe interop with C-string
// consumers; the terminator is excluded from lengths. A destination
// shorter than the required size (data + terminator) fails with a
// capacity error before anything is written.
//
// # Validation
//
// Decoding rejects rather than guesses: inputs with length mod 4 == 1,
// malformed or excessive padding, symbols outside the selected alphabet,
// and partial tail groups whose unused low bits are non-zero all fail the
// whole call with zero output bytes. A successful decode returns exactly
// the bytes a conforming encoder of the matching variant started from,
// so decode(encode(b)) == b for every input.
//
// # Concurrency
//
// All state is immutable lookup tables initialized at package load.
// Every function is reentrant and safe for concurrent use as long as
// callers do not share destination buffers.
package codec
