package scale

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every decode failure is one of these, optionally
// wrapped with contextual chain entries added by the composite decoder that
// was unwinding at the time (see Error.Chain).
var (
	// ErrNotEnoughData indicates the input was exhausted before a value
	// could be fully read.
	ErrNotEnoughData = errors.New("scale: not enough data to fill buffer")

	// ErrTrailingData is returned only by DecodeAll when bytes remain after
	// a complete, successful decode.
	ErrTrailingData = errors.New("scale: input buffer has still data left after decoding")

	// ErrInvalidDiscriminant indicates a sum-type decode read a discriminant
	// byte that names no known variant.
	ErrInvalidDiscriminant = errors.New("scale: invalid discriminant byte")

	// ErrInvalidBool indicates a bool byte was neither 0x00 nor 0x01.
	ErrInvalidBool = errors.New("scale: invalid boolean byte")

	// ErrInvalidChar indicates a decoded u32 is not a valid Unicode scalar
	// value.
	ErrInvalidChar = errors.New("scale: invalid char scalar value")

	// ErrInvalidUTF8 indicates a string's raw bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("scale: invalid UTF-8 in string")

	// ErrNonCanonicalCompact indicates a compact integer was encoded with a
	// larger mode (or a non-minimal big-integer byte count) than the
	// minimal one for its value. BitSeq decoding also returns it when
	// padding bits past the declared bit count are set.
	ErrNonCanonicalCompact = errors.New("scale: non-canonical compact integer encoding")

	// ErrDepthExceeded indicates a depth-limited decode recursed past its
	// configured bound.
	ErrDepthExceeded = errors.New("scale: maximum recursion depth reached")

	// ErrLengthMismatch indicates a value has no bytes to supply where its
	// encoding needs some; EncodeBoxed returns it for a nil Boxed.
	ErrLengthMismatch = errors.New("scale: length mismatch")

	// ErrMemoryLimitExceeded indicates a memory-tracked decode would have
	// allocated past its configured budget.
	ErrMemoryLimitExceeded = errors.New("scale: memory limit exceeded while decoding")

	// ErrShortOutput indicates a fixed-capacity Output ran out of room.
	ErrShortOutput = errors.New("scale: output buffer is too small")

	// ErrDuplicateKey indicates a map or set decode found the same key or
	// item twice.
	ErrDuplicateKey = errors.New("scale: duplicate key while decoding map")

	// ErrOverflow indicates a value outside the range a codec can
	// represent: a compact value wider than uint64 decoded into Compact, a
	// decoded length that does not fit an int, or a negative or
	// over-67-byte CompactBig. MaxEncodedLen does not check its sums for
	// overflow and never returns this error.
	ErrOverflow = errors.New("scale: value out of range for target type")

	// ErrNilIO indicates a constructor was called with a nil io.Reader or
	// io.Writer.
	ErrNilIO = errors.New("scale: NewStreamInput/NewStreamOutput called with a nil io.Reader/io.Writer")
)

// Error is a cause-chained diagnostic, modeled on the chain-or-strip design
// of a reference implementation's error type: every link just wraps a
// description around the previous one, so walking the chain costs nothing
// beyond the original fmt.Sprintf calls.
//
// Build the chain root with errors.New-style sentinels above, then Chain
// contextual descriptions onto it as the decode stack unwinds.
type Error struct {
	cause error
	desc  string
}

// Chain wraps e with an additional contextual description, the way a
// composite decoder annotates an inner field's failure with the field's
// name ("could not decode field Balance: not enough data to fill buffer").
func (e *Error) Chain(desc string) *Error {
	return &Error{cause: e, desc: desc}
}

func (e *Error) Error() string {
	if e.desc == "" {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %s", e.desc, e.cause.Error())
}

// Unwrap exposes the next link so errors.Is/errors.As see through the whole
// chain to the root sentinel.
func (e *Error) Unwrap() error {
	return e.cause
}

// chainf wraps a sentinel with a formatted top-level description. Composite
// decoders use this at each recursion boundary instead of constructing Error
// by hand.
func chainf(sentinel error, format string, args ...any) *Error {
	return &Error{cause: sentinel, desc: fmt.Sprintf(format, args...)}
}
