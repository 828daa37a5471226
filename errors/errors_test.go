package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindIllegalChar,
				Offset: 7,
				Detail: "byte 0x21 is not in the alphabet",
			},
			contains: []string{"[decode]", "illegal_char", "offset 7", "0x21"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindCapacity,
				Offset: -1,
			},
			contains: []string{"[encode]", "capacity"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseHost,
				Kind:   KindInvalidArgument,
				Detail: "source out of range",
				Cause:  errors.New("memory read out of bounds"),
				Offset: -1,
			},
			contains: []string{"[host]", "invalid_argument", "source out of range", "caused by", "memory read out of bounds"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_OffsetOmitted(t *testing.T) {
	err := FormatError("input length %d is invalid", 5)
	if strings.Contains(err.Error(), "offset") {
		t.Errorf("error message %q should not mention an offset", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseHost, KindInvalidArgument, cause, "read source")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := IllegalChar(3, '*')
	b := &Error{Phase: PhaseDecode, Kind: KindIllegalChar, Offset: -1}
	c := &Error{Phase: PhaseDecode, Kind: KindFormat, Offset: -1}

	if !errors.Is(a, b) {
		t.Error("errors with matching phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different kinds should not match")
	}
	if errors.Is(a, errors.New("illegal_char")) {
		t.Error("plain errors should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("short read")
	err := New(PhaseDecode, KindFormat).
		Offset(4).
		Detail("padding run of %d exceeds %d", 3, 2).
		Cause(cause).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindFormat {
		t.Errorf("phase/kind: got %s/%s", err.Phase, err.Kind)
	}
	if err.Offset != 4 {
		t.Errorf("offset: got %d, want 4", err.Offset)
	}
	if err.Detail != "padding run of 3 exceeds 2" {
		t.Errorf("detail: got %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("cause not carried")
	}
}

func TestBuilder_DefaultOffset(t *testing.T) {
	err := New(PhaseEncode, KindOverflow).Build()
	if err.Offset != -1 {
		t.Errorf("default offset: got %d, want -1", err.Offset)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"invalid argument", InvalidArgument(PhaseEncode, "nil encoding"), PhaseEncode, KindInvalidArgument},
		{"format", FormatError("length mod 4"), PhaseDecode, KindFormat},
		{"illegal char", IllegalChar(0, '!'), PhaseDecode, KindIllegalChar},
		{"illegal sequence", IllegalSequence(8, 2), PhaseDecode, KindIllegalSeq},
		{"capacity", Capacity(PhaseDecode, 10, 3), PhaseDecode, KindCapacity},
		{"allocation", AllocationLimit(PhaseEncode, 1 << 40, 1 << 30), PhaseEncode, KindAllocation},
		{"overflow", Overflow(1 << 62), PhaseSize, KindOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase: got %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind: got %s, want %s", tt.err.Kind, tt.kind)
			}
		})
	}
}
