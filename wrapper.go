package scale

// Ref is a pass-through wrapper whose encoding is identical to T's own
// encoding — the Go stand-in for the source ecosystem's blanket impls of
// Encode/Decode over &T and Box<T>, which exist there only to satisfy the
// borrow checker and carry no wire-format meaning of their own. Go has
// neither borrowing nor boxing, so Ref/Owned/Boxed below all just forward.
type Ref[T Encodable] struct {
	Value T
}

func (r Ref[T]) EncodeTo(out Output) error { return r.Value.EncodeTo(out) }

// Owned is the decode-side counterpart of Ref: wrapping a value that owns
// its own storage, with no wire-format effect.
type Owned[T Decodable] struct {
	Value T
}

func (o *Owned[T]) DecodeFrom(in Input) error { return o.Value.DecodeFrom(in) }

// Boxed wraps a pointer so recursive types (an enum variant holding another
// instance of its own type) can be expressed in Go without an infinite
// struct size, the same role Box<T> plays in the source ecosystem. Encoding
// and decoding are pure pass-throughs to *T; the indirection exists purely
// so the Go compiler accepts the recursive struct definition.
type Boxed[T any] struct {
	Value *T
}

// EncodeBoxed encodes *b.Value using encode, or fails with ErrLengthMismatch
// if the box is nil — a nil Boxed has no SCALE representation of its own.
func EncodeBoxed[T any](b Boxed[T], out Output, encode func(*T, Output) error) error {
	if b.Value == nil {
		return chainf(ErrLengthMismatch, "cannot encode a nil Boxed value")
	}
	return encode(b.Value, out)
}

// DecodeBoxed wraps the *T that decode returns in a Boxed.
func DecodeBoxed[T any](in Input, decode func(Input) (*T, error)) (Boxed[T], error) {
	v, err := decode(in)
	if err != nil {
		return Boxed[T]{}, err
	}
	return Boxed[T]{Value: v}, nil
}
