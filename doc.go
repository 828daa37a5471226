// Package base64mix provides reversible, lossless base64 mapping between
// raw bytes and printable ASCII text, in the standard and URL-safe
// RFC 4648 variants plus a mixed decode mode that accepts either alphabet
// without foreknowledge of which produced the input.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct
// responsibilities:
//
//	base64mix/     Root package with the guest Memory interface
//	├── codec/     Alphabet tables, size calculation, encoder, decoder
//	├── errors/    Structured error types (phase + kind taxonomy)
//	├── host/      wazero host module exposing the codec to wasm guests
//	└── cmd/b64mix CLI with one-shot and interactive modes
//
// # Quick Start
//
// Encode and decode with the allocating convenience API:
//
//	text, err := codec.EncodeStd([]byte("hello world"))
//	// "aGVsbG8gd29ybGQ="
//
//	data, err := codec.DecodeMix(text)
//	// "hello world", whichever alphabet produced text
//
// Or run zero-allocation over caller buffers:
//
//	need, err := codec.EncodedLen(len(src))
//	dst := make([]byte, need+1) // +1 for the NUL terminator
//	n, err := codec.EncodeTo(dst, src, codec.URLEncoding)
//
// # Validation
//
// Decoding rejects malformed input instead of emitting garbage bytes:
// bad lengths and padding fail with a format error, symbols outside the
// selected alphabet with an illegal character error, and structurally
// valid tails whose unused bits are non-zero with a distinct illegal
// sequence error. A decode failure never returns partial output.
//
// # Thread Safety
//
// All lookup tables are immutable and initialized at load. Every
// operation is synchronous, reentrant, and free of shared mutable state;
// concurrent calls need no coordination as long as destination buffers
// are not shared.
package base64mix
