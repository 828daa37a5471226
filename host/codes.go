package host

import (
	stderrors "errors"

	"github.com/wippyai/base64mix/errors"
)

// Code is the stable guest-facing error code. Host functions return
// -Code on failure; the values never change once published.
type Code uint32

const (
	CodeInvalidArgument Code = 1
	CodeFormat          Code = 2
	CodeIllegalChar     Code = 3
	CodeIllegalSeq      Code = 4
	CodeCapacity        Code = 5
	CodeAllocation      Code = 6
	CodeOverflow        Code = 7

	// CodeInternal covers errors outside the published taxonomy. It
	// should not be reachable through the exported functions.
	CodeInternal Code = 255
)

var kindCodes = map[errors.Kind]Code{
	errors.KindInvalidArgument: CodeInvalidArgument,
	errors.KindFormat:          CodeFormat,
	errors.KindIllegalChar:     CodeIllegalChar,
	errors.KindIllegalSeq:      CodeIllegalSeq,
	errors.KindCapacity:        CodeCapacity,
	errors.KindAllocation:      CodeAllocation,
	errors.KindOverflow:        CodeOverflow,
}

// CodeOf maps a library error to its guest-facing code.
func CodeOf(err error) Code {
	var cerr *errors.Error
	if stderrors.As(err, &cerr) {
		if code, ok := kindCodes[cerr.Kind]; ok {
			return code
		}
	}
	return CodeInternal
}

func (c Code) String() string {
	switch c {
	case CodeInvalidArgument:
		return "invalid_argument"
	case CodeFormat:
		return "format"
	case CodeIllegalChar:
		return "illegal_char"
	case CodeIllegalSeq:
		return "illegal_seq"
	case CodeCapacity:
		return "capacity"
	case CodeAllocation:
		return "allocation"
	case CodeOverflow:
		return "overflow"
	case CodeInternal:
		return "internal"
	}
	return "unknown"
}
