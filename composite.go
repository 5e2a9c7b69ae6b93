package scale

// Option represents SCALE's Option<T>: a single discriminant byte (0x00
// for None, 0x01 for Some) followed by the payload's encoding when present.
// T has no constraint of its own: EncodeOption and DecodeOption take the
// functions that encode and decode T.
type Option[T any] struct {
	Some  bool
	Value T
}

// None returns an empty Option[T].
func None[T any]() Option[T] { return Option[T]{} }

// Some returns an Option[T] wrapping v.
func Some[T any](v T) Option[T] { return Option[T]{Some: true, Value: v} }

// EncodeOption encodes an Option[T] given a way to encode T.
func EncodeOption[T any](o Option[T], out Output, encodeValue func(T, Output) error) error {
	if !o.Some {
		return out.WriteByte(0)
	}
	if err := out.WriteByte(1); err != nil {
		return err
	}
	return encodeValue(o.Value, out)
}

// DecodeOption decodes an Option[T] given a way to decode T. It does not
// bracket decodeValue with Descend/Ascend itself; a recursive Option (one
// whose payload decode can reach back into another DecodeOption for the
// same T, e.g. through a Boxed indirection) must bracket that indirection
// on the caller's side, the same way limits_test.go's recursiveList does.
func DecodeOption[T any](in Input, decodeValue func(Input) (T, error)) (Option[T], error) {
	tag, err := in.ReadByte()
	if err != nil {
		return Option[T]{}, err
	}
	switch tag {
	case 0:
		return Option[T]{}, nil
	case 1:
		v, err := decodeValue(in)
		if err != nil {
			return Option[T]{}, err
		}
		return Option[T]{Some: true, Value: v}, nil
	default:
		return Option[T]{}, chainf(ErrInvalidDiscriminant, "Option tag 0x%02x", tag)
	}
}

// OptionBool is SCALE's specialized three-state encoding for Option<bool>:
// a single byte distinguishes None (0x00) from Some(false) (0x01) and
// Some(true) (0x02), instead of the generic two-byte discriminant+payload
// shape every other Option<T> uses.
type OptionBool struct {
	Some  bool
	Value bool
}

func (o OptionBool) EncodeTo(out Output) error {
	switch {
	case !o.Some:
		return out.WriteByte(0)
	case !o.Value:
		return out.WriteByte(1)
	default:
		return out.WriteByte(2)
	}
}

func (o *OptionBool) DecodeFrom(in Input) error {
	tag, err := in.ReadByte()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		*o = OptionBool{}
	case 1:
		*o = OptionBool{Some: true, Value: false}
	case 2:
		*o = OptionBool{Some: true, Value: true}
	default:
		return chainf(ErrInvalidDiscriminant, "Option<bool> tag 0x%02x", tag)
	}
	return nil
}

func (o OptionBool) EncodedSize() int      { return 1 }
func (o OptionBool) EncodedFixedSize() int { return 1 }
func (o OptionBool) MaxEncodedLen() int    { return 1 }

// Result represents SCALE's Result<T, E>: a discriminant byte (0x00 for Ok,
// 0x01 for Err) followed by the corresponding payload's encoding.
type Result[T, E any] struct {
	Err   bool
	Ok    T
	Error E
}

// EncodeResult encodes a Result[T, E] given encoders for each side.
func EncodeResult[T, E any](r Result[T, E], out Output, encodeOk func(T, Output) error, encodeErr func(E, Output) error) error {
	if !r.Err {
		if err := out.WriteByte(0); err != nil {
			return err
		}
		return encodeOk(r.Ok, out)
	}
	if err := out.WriteByte(1); err != nil {
		return err
	}
	return encodeErr(r.Error, out)
}

// DecodeResult decodes a Result[T, E] given decoders for each side. Like
// DecodeOption, it does not bracket either side with Descend/Ascend; a
// recursive Result must bracket its own indirection.
func DecodeResult[T, E any](in Input, decodeOk func(Input) (T, error), decodeErr func(Input) (E, error)) (Result[T, E], error) {
	tag, err := in.ReadByte()
	if err != nil {
		return Result[T, E]{}, err
	}
	switch tag {
	case 0:
		v, err := decodeOk(in)
		if err != nil {
			return Result[T, E]{}, err
		}
		return Result[T, E]{Ok: v}, nil
	case 1:
		e, err := decodeErr(in)
		if err != nil {
			return Result[T, E]{}, err
		}
		return Result[T, E]{Err: true, Error: e}, nil
	default:
		return Result[T, E]{}, chainf(ErrInvalidDiscriminant, "Result tag 0x%02x", tag)
	}
}

// Variant is implemented by sum-type payloads that carry an explicit
// discriminant index, the hand-written equivalent of #[codec(index = N)]
// named in §6. Registries of variant constructors (one per discriminant)
// are built by calling code, not by this package, since Go has no sum
// types to enumerate the constructors of.
type Variant interface {
	VariantIndex() byte
}

// EncodeSum encodes a tagged-union value: its Variant's discriminant byte
// followed by its own encoding.
func EncodeSum[T interface {
	Variant
	Encodable
}](v T, out Output) error {
	if err := out.WriteByte(v.VariantIndex()); err != nil {
		return err
	}
	return v.EncodeTo(out)
}

// SumDecoders maps each discriminant byte to a constructor for the
// corresponding variant's decoder. DecodeSum looks up the discriminant,
// invokes the matching constructor, and decodes into it.
type SumDecoders[T any] map[byte]func(Input) (T, error)

// DecodeSum reads a discriminant byte and dispatches to the matching
// decoder in decoders, the Go realization of decoding into a tagged union
// without a derive macro to generate the match arms. It does not bracket
// the dispatched decode with Descend/Ascend itself — unlike DecodeSlice,
// DecodeMap, and DecodeSet, which always recurse into a fresh element.
// A non-recursive variant set needs no bracketing at all; a recursive one
// (a variant whose payload can decode another value of the same sum type)
// must guard the recursion at its own indirection, typically a Boxed[T]
// field decoded inside the variant's own DecodeFrom, the way decodeExample
// in e2e_test.go brackets its Second variant's nested value.
func DecodeSum[T any](in Input, decoders SumDecoders[T]) (T, error) {
	tag, err := in.ReadByte()
	if err != nil {
		var zero T
		return zero, err
	}
	decode, ok := decoders[tag]
	if !ok {
		var zero T
		return zero, chainf(ErrInvalidDiscriminant, "sum type tag 0x%02x", tag)
	}
	return decode(in)
}
