// Package errors provides structured error types for the base64mix library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the input byte offset where known and a
// cause chain. Ambient errno-style signaling of the classic C codecs is
// replaced by these typed results, which stay safe under concurrent calls.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindFormat).
//		Offset(12).
//		Detail("padding inside body").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IllegalChar(7, '!')
//	err := errors.Capacity(errors.PhaseEncode, 17, 16)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when Phase and Kind agree.
package errors
