package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSize   Phase = "size"   // buffer size calculation
	PhaseEncode Phase = "encode" // bytes to text
	PhaseDecode Phase = "decode" // text to bytes
	PhaseHost   Phase = "host"   // host function binding
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument" // nil table, bad pointer
	KindFormat          Kind = "format"           // length/padding violations
	KindIllegalChar     Kind = "illegal_char"     // symbol outside the alphabet
	KindIllegalSeq      Kind = "illegal_seq"      // non-zero unused bits in a partial group
	KindCapacity        Kind = "capacity"         // destination buffer too small
	KindAllocation      Kind = "allocation"       // result exceeds the allocation limit
	KindOverflow        Kind = "overflow"         // size arithmetic exceeds the representable range
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int // byte offset into the input, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the input byte offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
		Offset: -1,
	}
}

// FormatError creates a format violation error
func FormatError(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindFormat,
		Detail: detail,
		Offset: -1,
	}
}

// IllegalChar creates an illegal character error for the byte at the given offset
func IllegalChar(offset int, c byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindIllegalChar,
		Detail: fmt.Sprintf("byte %#02x is not in the alphabet", c),
		Offset: offset,
	}
}

// IllegalSequence creates an illegal sequence error for a partial tail group
// whose unused low bits are non-zero
func IllegalSequence(offset int, tail int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindIllegalSeq,
		Detail: fmt.Sprintf("non-zero unused bits in %d-symbol tail", tail),
		Offset: offset,
	}
}

// Capacity creates a destination-too-small error
func Capacity(phase Phase, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCapacity,
		Detail: fmt.Sprintf("destination needs %d bytes, have %d", need, have),
		Offset: -1,
	}
}

// AllocationLimit creates a resource exhaustion error for inputs whose
// result would exceed the allocation limit
func AllocationLimit(phase Phase, size, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("result of %d bytes exceeds allocation limit (%d)", size, limit),
		Offset: -1,
	}
}

// Overflow creates a size overflow error
func Overflow(n int) *Error {
	return &Error{
		Phase:  PhaseSize,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("encoded length of %d-byte input is not representable", n),
		Offset: -1,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Offset: -1,
	}
}
