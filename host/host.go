package host

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	base64mix "github.com/wippyai/base64mix"
	"github.com/wippyai/base64mix/codec"
	"github.com/wippyai/base64mix/errors"
)

// ModuleName is the import namespace guests use for the codec functions.
const ModuleName = "base64mix"

// MaxInput bounds the input accepted per call to prevent hostile guests
// from exhausting host memory through a single oversized request.
const MaxInput = 1 << 26 // 64 MB

// Exported host functions, all with the same flat signature:
//
//	(src_ptr: i32, src_len: i32, dst_ptr: i32, dst_cap: i32) -> i64
//
// A non-negative result is the number of bytes produced at dst_ptr,
// excluding the NUL terminator written after them. A negative result is
// -code for one of the Code* error values. The destination must hold the
// computed size plus one terminator byte, mirroring the library API.
const (
	FuncEncodeStd = "encode-std"
	FuncEncodeURL = "encode-url"
	FuncDecodeStd = "decode-std"
	FuncDecodeURL = "decode-url"
	FuncDecodeMix = "decode-mix"
)

// Instantiate registers the base64mix host module with the runtime. The
// returned closer detaches the module.
func Instantiate(ctx context.Context, r wazero.Runtime) (api.Closer, error) {
	b := r.NewHostModuleBuilder(ModuleName)

	ops := []struct {
		name string
		fn   func(base64mix.Memory, uint32, uint32, uint32, uint32) int64
	}{
		{FuncEncodeStd, EncodeStd},
		{FuncEncodeURL, EncodeURL},
		{FuncDecodeStd, DecodeStd},
		{FuncDecodeURL, DecodeURL},
		{FuncDecodeMix, DecodeMix},
	}

	params := []api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32}
	results := []api.ValueType{api.ValueTypeI64}

	for _, op := range ops {
		fn := op.fn
		handler := api.GoModuleFunc(func(_ context.Context, mod api.Module, stack []uint64) {
			mem := wrapMemory(mod.Memory())
			stack[0] = uint64(fn(mem,
				uint32(stack[0]), uint32(stack[1]),
				uint32(stack[2]), uint32(stack[3])))
		})
		b.NewFunctionBuilder().
			WithGoModuleFunction(handler, params, results).
			Export(op.name)
	}

	return b.Instantiate(ctx)
}

// EncodeStd encodes guest bytes with the standard alphabet.
func EncodeStd(mem base64mix.Memory, srcPtr, srcLen, dstPtr, dstCap uint32) int64 {
	return encode(mem, srcPtr, srcLen, dstPtr, dstCap, codec.StdEncoding, FuncEncodeStd)
}

// EncodeURL encodes guest bytes with the URL-safe alphabet.
func EncodeURL(mem base64mix.Memory, srcPtr, srcLen, dstPtr, dstCap uint32) int64 {
	return encode(mem, srcPtr, srcLen, dstPtr, dstCap, codec.URLEncoding, FuncEncodeURL)
}

// DecodeStd decodes standard-alphabet guest text.
func DecodeStd(mem base64mix.Memory, srcPtr, srcLen, dstPtr, dstCap uint32) int64 {
	return decode(mem, srcPtr, srcLen, dstPtr, dstCap, codec.StdDecoding, FuncDecodeStd)
}

// DecodeURL decodes URL-safe-alphabet guest text.
func DecodeURL(mem base64mix.Memory, srcPtr, srcLen, dstPtr, dstCap uint32) int64 {
	return decode(mem, srcPtr, srcLen, dstPtr, dstCap, codec.URLDecoding, FuncDecodeURL)
}

// DecodeMix decodes guest text from either alphabet.
func DecodeMix(mem base64mix.Memory, srcPtr, srcLen, dstPtr, dstCap uint32) int64 {
	return decode(mem, srcPtr, srcLen, dstPtr, dstCap, codec.MixDecoding, FuncDecodeMix)
}

func encode(mem base64mix.Memory, srcPtr, srcLen, dstPtr, dstCap uint32, enc *codec.Encoding, op string) int64 {
	src, code := readSource(mem, srcPtr, srcLen, op)
	if code != 0 {
		return -int64(code)
	}

	need, err := codec.EncodedLen(len(src))
	if err != nil {
		return fail(op, err)
	}
	if uint64(need)+1 > uint64(dstCap) {
		return fail(op, errors.Capacity(errors.PhaseHost, need+1, int(dstCap)))
	}

	scratch := make([]byte, need+1)
	n, err := codec.EncodeTo(scratch, src, enc)
	if err != nil {
		return fail(op, err)
	}
	return commit(mem, dstPtr, scratch[:n+1], n, op)
}

func decode(mem base64mix.Memory, srcPtr, srcLen, dstPtr, dstCap uint32, dec *codec.Decoding, op string) int64 {
	src, code := readSource(mem, srcPtr, srcLen, op)
	if code != 0 {
		return -int64(code)
	}

	need := codec.DecodedLen(len(src))
	if uint64(need)+1 > uint64(dstCap) {
		return fail(op, errors.Capacity(errors.PhaseHost, need+1, int(dstCap)))
	}

	scratch := make([]byte, need+1)
	n, err := codec.DecodeTo(scratch, src, dec)
	if err != nil {
		return fail(op, err)
	}
	return commit(mem, dstPtr, scratch[:n+1], n, op)
}

// readSource copies the guest's input range. A bad pointer is the guest
// handing us something that is not byte data, an oversized range trips
// the resource guard.
func readSource(mem base64mix.Memory, srcPtr, srcLen uint32, op string) ([]byte, Code) {
	if mem == nil {
		logFailure(op, errors.InvalidArgument(errors.PhaseHost, "guest module has no memory"))
		return nil, CodeInvalidArgument
	}
	if srcLen > MaxInput {
		logFailure(op, errors.AllocationLimit(errors.PhaseHost, int(srcLen), MaxInput))
		return nil, CodeAllocation
	}
	src, err := mem.Read(srcPtr, srcLen)
	if err != nil {
		logFailure(op, errors.Wrap(errors.PhaseHost, errors.KindInvalidArgument, err, "source range out of bounds"))
		return nil, CodeInvalidArgument
	}
	return src, 0
}

// commit writes the result plus terminator back into guest memory.
func commit(mem base64mix.Memory, dstPtr uint32, data []byte, n int, op string) int64 {
	if err := mem.Write(dstPtr, data); err != nil {
		return fail(op, errors.Wrap(errors.PhaseHost, errors.KindCapacity, err, "destination range out of bounds"))
	}
	return int64(n)
}

func fail(op string, err error) int64 {
	logFailure(op, err)
	return -int64(CodeOf(err))
}

func logFailure(op string, err error) {
	Logger().Debug("host call failed", zap.String("func", op), zap.Error(err))
}
