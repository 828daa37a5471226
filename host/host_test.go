package host

import (
	"bytes"
	"fmt"
	"testing"

	base64mix "github.com/wippyai/base64mix"
	"github.com/wippyai/base64mix/codec"
	"github.com/wippyai/base64mix/errors"
)

// fakeMemory is a flat guest memory for exercising the host functions
// without a wasm instance.
type fakeMemory struct {
	buf []byte
}

func newFakeMemory(size int) *fakeMemory {
	return &fakeMemory{buf: make([]byte, size)}
}

func (m *fakeMemory) Read(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(m.buf)) {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return m.buf[offset:end], nil
}

func (m *fakeMemory) Write(offset uint32, data []byte) error {
	end := uint64(offset) + uint64(len(data))
	if end > uint64(len(m.buf)) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	copy(m.buf[offset:end], data)
	return nil
}

// place writes data into guest memory and returns its pointer.
func (m *fakeMemory) place(offset uint32, data []byte) uint32 {
	copy(m.buf[offset:], data)
	return offset
}

func TestEncodeStd_Host(t *testing.T) {
	mem := newFakeMemory(256)
	src := []byte("hello world")
	srcPtr := mem.place(0, src)
	dstPtr := uint32(128)

	n := EncodeStd(mem, srcPtr, uint32(len(src)), dstPtr, 128)
	if n < 0 {
		t.Fatalf("got code %s", Code(-n))
	}

	want := "aGVsbG8gd29ybGQ="
	if got := string(mem.buf[dstPtr : dstPtr+uint32(n)]); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if mem.buf[dstPtr+uint32(n)] != 0 {
		t.Error("missing NUL terminator in guest memory")
	}
}

func TestHost_RoundTrip(t *testing.T) {
	ops := []struct {
		enc  func(base64mix.Memory, uint32, uint32, uint32, uint32) int64
		dec  func(base64mix.Memory, uint32, uint32, uint32, uint32) int64
		name string
	}{
		{EncodeStd, DecodeStd, "std"},
		{EncodeURL, DecodeURL, "url"},
		{EncodeStd, DecodeMix, "std_via_mix"},
		{EncodeURL, DecodeMix, "url_via_mix"},
	}

	src := []byte("\x00\x01\xfe\xff guest payload")

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			mem := newFakeMemory(512)
			srcPtr := mem.place(0, src)

			textPtr := uint32(128)
			tn := op.enc(mem, srcPtr, uint32(len(src)), textPtr, 128)
			if tn < 0 {
				t.Fatalf("encode code %s", Code(-tn))
			}

			outPtr := uint32(384)
			on := op.dec(mem, textPtr, uint32(tn), outPtr, 128)
			if on < 0 {
				t.Fatalf("decode code %s", Code(-on))
			}

			if got := mem.buf[outPtr : outPtr+uint32(on)]; !bytes.Equal(got, src) {
				t.Errorf("round trip mismatch: %x != %x", got, src)
			}
		})
	}
}

func TestHost_EmptyInput(t *testing.T) {
	mem := newFakeMemory(16)
	if n := EncodeURL(mem, 0, 0, 8, 8); n != 0 {
		t.Errorf("empty encode: got %d, want 0", n)
	}
	if n := DecodeStd(mem, 0, 0, 8, 8); n != 0 {
		t.Errorf("empty decode: got %d, want 0", n)
	}
}

func TestHost_ErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		run  func(*fakeMemory) int64
		want Code
	}{
		{
			name: "source_out_of_bounds",
			run: func(mem *fakeMemory) int64 {
				return EncodeStd(mem, 250, 64, 0, 8)
			},
			want: CodeInvalidArgument,
		},
		{
			name: "dst_capacity_short",
			run: func(mem *fakeMemory) int64 {
				src := []byte("hello world")
				mem.place(0, src)
				// One short of encoded length + terminator.
				return EncodeStd(mem, 0, uint32(len(src)), 64, 16)
			},
			want: CodeCapacity,
		},
		{
			name: "decode_format",
			run: func(mem *fakeMemory) int64 {
				mem.place(0, []byte("AAAAA"))
				return DecodeStd(mem, 0, 5, 64, 32)
			},
			want: CodeFormat,
		},
		{
			name: "decode_illegal_char",
			run: func(mem *fakeMemory) int64 {
				mem.place(0, []byte("Zm9!"))
				return DecodeMix(mem, 0, 4, 64, 32)
			},
			want: CodeIllegalChar,
		},
		{
			name: "decode_illegal_seq",
			run: func(mem *fakeMemory) int64 {
				mem.place(0, []byte("Zh=="))
				return DecodeStd(mem, 0, 4, 64, 32)
			},
			want: CodeIllegalSeq,
		},
		{
			name: "input_over_limit",
			run: func(mem *fakeMemory) int64 {
				return DecodeURL(mem, 0, MaxInput+1, 64, 32)
			},
			want: CodeAllocation,
		},
		{
			name: "nil_memory",
			run: func(*fakeMemory) int64 {
				return EncodeStd(nil, 0, 4, 64, 32)
			},
			want: CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := newFakeMemory(256)
			n := tt.run(mem)
			if n >= 0 {
				t.Fatalf("got success %d, want code %s", n, tt.want)
			}
			if Code(-n) != tt.want {
				t.Errorf("got code %s, want %s", Code(-n), tt.want)
			}
		})
	}
}

// Failed decodes must leave the destination region untouched.
func TestHost_FailureWritesNothing(t *testing.T) {
	mem := newFakeMemory(256)
	mem.place(0, []byte("Zm9vYg=!"))
	for i := 64; i < 128; i++ {
		mem.buf[i] = 0xEE
	}

	n := DecodeStd(mem, 0, 8, 64, 64)
	if n >= 0 {
		t.Fatalf("want failure, got %d", n)
	}
	for i := 64; i < 128; i++ {
		if mem.buf[i] != 0xEE {
			t.Fatalf("guest memory modified at %d on failure", i)
		}
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"invalid_argument", errors.InvalidArgument(errors.PhaseHost, "x"), CodeInvalidArgument},
		{"format", errors.FormatError("x"), CodeFormat},
		{"illegal_char", errors.IllegalChar(0, '!'), CodeIllegalChar},
		{"illegal_seq", errors.IllegalSequence(0, 2), CodeIllegalSeq},
		{"capacity", errors.Capacity(errors.PhaseDecode, 2, 1), CodeCapacity},
		{"allocation", errors.AllocationLimit(errors.PhaseHost, 2, 1), CodeAllocation},
		{"overflow", errors.Overflow(1), CodeOverflow},
		{"plain_error", fmt.Errorf("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

// The codec and host agree on sizing: a destination of exactly
// EncodedLen+1 always suffices.
func TestHost_ExactCapacity(t *testing.T) {
	src := []byte("fooba")
	need, err := codec.EncodedLen(len(src))
	if err != nil {
		t.Fatal(err)
	}

	mem := newFakeMemory(64)
	mem.place(0, src)

	n := EncodeStd(mem, 0, uint32(len(src)), 32, uint32(need+1))
	if n < 0 {
		t.Fatalf("got code %s", Code(-n))
	}
	if int(n) != need {
		t.Errorf("wrote %d, want %d", n, need)
	}
}
