package scale

// Skip advances in past a single encoded value of the shape skip describes,
// without materializing it — §4.9's skip operation. Most callers reach this
// through a type's own SkipIn method (if it implements Skippable); this
// function exists for generic code that only has a Skippable value, not a
// concrete type to call a method on directly.
func Skip(in Input, skip Skippable) error {
	return skip.SkipIn(in)
}

// SkipFixed advances in past n bytes without decoding them, the Skippable
// implementation shared by every fixed-width primitive in primitives.go.
func SkipFixed(in Input, n int) error {
	return skipN(in, n)
}

func (b Bool) SkipIn(in Input) error  { return SkipFixed(in, 1) }
func (v U8) SkipIn(in Input) error    { return SkipFixed(in, 1) }
func (v U16) SkipIn(in Input) error   { return SkipFixed(in, 2) }
func (v U32) SkipIn(in Input) error   { return SkipFixed(in, 4) }
func (v U64) SkipIn(in Input) error   { return SkipFixed(in, 8) }
func (v U128) SkipIn(in Input) error  { return SkipFixed(in, 16) }
func (v I8) SkipIn(in Input) error    { return SkipFixed(in, 1) }
func (v I16) SkipIn(in Input) error   { return SkipFixed(in, 2) }
func (v I32) SkipIn(in Input) error   { return SkipFixed(in, 4) }
func (v I64) SkipIn(in Input) error   { return SkipFixed(in, 8) }
func (v I128) SkipIn(in Input) error  { return SkipFixed(in, 16) }
func (v F32) SkipIn(in Input) error   { return SkipFixed(in, 4) }
func (v F64) SkipIn(in Input) error   { return SkipFixed(in, 8) }
func (c Char) SkipIn(in Input) error  { return SkipFixed(in, 4) }

// EncodedFixedSize reports shape's constant encoded size and whether shape
// has one at all — the Go realization of §4.9's encoded_fixed_size, which
// returns None for variable-length shapes rather than erroring.
func EncodedFixedSize(shape any) (int, bool) {
	if f, ok := shape.(FixedSizer); ok {
		return f.EncodedFixedSize(), true
	}
	return 0, false
}

// SkipCompact advances in past a single compact-encoded integer without
// materializing its value.
func SkipCompact(in Input) error {
	var c Compact[uint64]
	return c.DecodeFrom(in)
}

func (s String) SkipIn(in Input) error {
	var length Compact[uint64]
	if err := length.DecodeFrom(in); err != nil {
		return chainf(err, "string length")
	}
	return skipN(in, int(length))
}

func (s BitSeq) SkipIn(in Input) error {
	var length Compact[uint64]
	if err := length.DecodeFrom(in); err != nil {
		return chainf(err, "bit sequence length")
	}
	return skipN(in, roundup(int(length), 8)/8)
}
