// Package host exposes the base64mix codec to WebAssembly guests as a
// wazero host module.
//
// Guests import five functions from the "base64mix" namespace:
//
//	encode-std (src_ptr: i32, src_len: i32, dst_ptr: i32, dst_cap: i32) -> i64
//	encode-url  same signature
//	decode-std  same signature
//	decode-url  same signature
//	decode-mix  same signature
//
// The guest owns both buffers. A non-negative return is the produced
// length; the host additionally writes a NUL terminator after it, so
// dst_cap must cover the computed size plus one byte. A negative return
// is -code for one of the Code values; the full structured error is
// logged through this package's logger, never surfaced to the guest.
//
// Inputs above MaxInput are refused before any work happens so a guest
// cannot force oversized host allocations.
package host
