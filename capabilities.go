// Package scale implements SCALE (Simple Concatenated Aggregate
// Little-Endian), the non-self-describing binary codec used by Substrate-
// style blockchain runtimes. Encoders and decoders must agree on the type
// schema out-of-band: the wire format carries no type tags, no length
// header, no magic number.
package scale

// Encodable is implemented by any type that knows how to write itself to an
// Output. It plays the role the specification calls "Encode": encode_to,
// encode, size_hint, using_encoded and encoded_size are all free functions
// over this interface (EncodeToBytes, SizeHint, UsingEncoded, EncodedSize)
// rather than interface methods, because Go has no blanket-impl mechanism to
// give every Encodable those methods for free the way a default trait method
// would in the source ecosystem this format comes from.
type Encodable interface {
	// EncodeTo appends this value's SCALE encoding to out. Encoding is
	// infallible in the sense that Output.Write is assumed to accept every
	// byte; EncodeTo itself still returns an error so Outputs backed by a
	// fixed buffer (FixedOutput) can report exhaustion.
	EncodeTo(out Output) error
}

// Decodable is implemented by any type that knows how to read itself from an
// Input. DecodeFrom is always called on a pointer receiver: it overwrites
// the pointee in place, matching Go's UnmarshalBinary convention and the
// teacher's own ReadFrom-into-receiver style.
type Decodable interface {
	DecodeFrom(in Input) error
}

// Skippable is implemented by types that can advance an Input past their
// own encoding without materializing a value, the capability behind §4.9's
// skip operation. Most Decodable implementations in this package also
// implement Skippable.
type Skippable interface {
	SkipIn(in Input) error
}

// FixedSizer is implemented by types whose encoded size never varies, the
// capability behind §4.9's encoded_fixed_size. Variable-length containers
// (sequences, maps, sets, bit-sequences, strings) do not implement this.
type FixedSizer interface {
	// EncodedFixedSize returns the constant encoded size in bytes.
	EncodedFixedSize() int
}

// MaxEncodedLenner is implemented by types whose encoded size has a
// statically-known upper bound, the capability behind §4.7's MaxEncodedLen.
// Variable-length containers do not implement this; see mel.go.
type MaxEncodedLenner interface {
	MaxEncodedLen() int
}

// Sizer reports the exact encoded size of a value without encoding it. Every
// Encodable in this package except Ref implements it so size_hint-style pre-allocation
// (§4.2's Output reservation hints) can size a buffer up front.
type Sizer interface {
	EncodedSize() int
}

// EncodeToBytes encodes v into a freshly allocated byte slice, pre-sized
// when v reports its own size via Sizer.
func EncodeToBytes(v Encodable) ([]byte, error) {
	size := 0
	if s, ok := v.(Sizer); ok {
		size = s.EncodedSize()
	}
	out := NewSliceOutput(size)
	if err := v.EncodeTo(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// SizeHint returns v's best-effort encoded size, falling back to 0 (no hint)
// when v does not implement Sizer.
func SizeHint(v Encodable) int {
	if s, ok := v.(Sizer); ok {
		return s.EncodedSize()
	}
	return 0
}

// EncodedSize is an alias for SizeHint kept separate because the
// specification names them as two distinct capabilities
// (size_hint vs. encoded_size); in this implementation they coincide because
// every Sizer here computes its size exactly, never estimated. Both return 0
// for a value that does not implement Sizer, such as a Ref.
func EncodedSize(v Encodable) int { return SizeHint(v) }

// UsingEncoded calls f with v's encoding without necessarily allocating a
// standalone []byte for the caller to keep — here it just delegates to
// EncodeToBytes, since Go's GC makes the zero-copy callback trick the
// source ecosystem uses for this largely pointless.
func UsingEncoded[R any](v Encodable, f func([]byte) R) R {
	b, err := EncodeToBytes(v)
	if err != nil {
		var zero R
		return zero
	}
	return f(b)
}
