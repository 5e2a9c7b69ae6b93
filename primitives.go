package scale

import (
	"math"
	"unicode/utf8"
)

// Bool is a SCALE-encoded boolean: 0x00 for false, 0x01 for true. Any other
// byte is a decode error (ErrInvalidBool) — SCALE booleans are not a
// general-purpose byte-is-truthy encoding.
type Bool bool

func (b Bool) EncodeTo(out Output) error {
	if b {
		return out.WriteByte(1)
	}
	return out.WriteByte(0)
}

func (b *Bool) DecodeFrom(in Input) error {
	v, err := in.ReadByte()
	if err != nil {
		return err
	}
	switch v {
	case 0:
		*b = false
	case 1:
		*b = true
	default:
		return chainf(ErrInvalidBool, "byte 0x%02x", v)
	}
	return nil
}

func (b Bool) EncodedSize() int       { return 1 }
func (b Bool) EncodedFixedSize() int  { return 1 }
func (b Bool) MaxEncodedLen() int     { return 1 }

// Unsigned fixed-width integers, encoded little-endian, fixed size.

type U8 uint8

func (v U8) EncodeTo(out Output) error { return out.WriteByte(byte(v)) }
func (v *U8) DecodeFrom(in Input) error {
	b, err := in.ReadByte()
	if err != nil {
		return err
	}
	*v = U8(b)
	return nil
}
func (v U8) EncodedSize() int      { return 1 }
func (v U8) EncodedFixedSize() int { return 1 }
func (v U8) MaxEncodedLen() int    { return 1 }

type U16 uint16

func (v U16) EncodeTo(out Output) error {
	_, err := out.Write([]byte{byte(v), byte(v >> 8)})
	return err
}
func (v *U16) DecodeFrom(in Input) error {
	var buf [2]byte
	if err := in.ReadExact(buf[:]); err != nil {
		return err
	}
	*v = U16(buf[0]) | U16(buf[1])<<8
	return nil
}
func (v U16) EncodedSize() int      { return 2 }
func (v U16) EncodedFixedSize() int { return 2 }
func (v U16) MaxEncodedLen() int    { return 2 }

type U32 uint32

func (v U32) EncodeTo(out Output) error {
	_, err := out.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
	return err
}
func (v *U32) DecodeFrom(in Input) error {
	var buf [4]byte
	if err := in.ReadExact(buf[:]); err != nil {
		return err
	}
	*v = U32(buf[0]) | U32(buf[1])<<8 | U32(buf[2])<<16 | U32(buf[3])<<24
	return nil
}
func (v U32) EncodedSize() int      { return 4 }
func (v U32) EncodedFixedSize() int { return 4 }
func (v U32) MaxEncodedLen() int    { return 4 }

type U64 uint64

func (v U64) EncodeTo(out Output) error {
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	_, err := out.Write(buf)
	return err
}
func (v *U64) DecodeFrom(in Input) error {
	var buf [8]byte
	if err := in.ReadExact(buf[:]); err != nil {
		return err
	}
	var r U64
	for i := 0; i < 8; i++ {
		r |= U64(buf[i]) << (8 * i)
	}
	*v = r
	return nil
}
func (v U64) EncodedSize() int      { return 8 }
func (v U64) EncodedFixedSize() int { return 8 }
func (v U64) MaxEncodedLen() int    { return 8 }

type U128 struct {
	Lo, Hi uint64
}

func (v U128) EncodeTo(out Output) error {
	if err := U64(v.Lo).EncodeTo(out); err != nil {
		return err
	}
	return U64(v.Hi).EncodeTo(out)
}
func (v *U128) DecodeFrom(in Input) error {
	var lo, hi U64
	if err := lo.DecodeFrom(in); err != nil {
		return err
	}
	if err := hi.DecodeFrom(in); err != nil {
		return err
	}
	v.Lo, v.Hi = uint64(lo), uint64(hi)
	return nil
}
func (v U128) EncodedSize() int      { return 16 }
func (v U128) EncodedFixedSize() int { return 16 }
func (v U128) MaxEncodedLen() int    { return 16 }

// Signed fixed-width integers reuse the unsigned encoders over the same bit
// pattern, matching SCALE's two's-complement-as-is approach (no zigzag,
// no sign-magnitude).

type I8 int8

func (v I8) EncodeTo(out Output) error  { return U8(v).EncodeTo(out) }
func (v *I8) DecodeFrom(in Input) error { var u U8; err := u.DecodeFrom(in); *v = I8(u); return err }
func (v I8) EncodedSize() int           { return 1 }
func (v I8) EncodedFixedSize() int      { return 1 }
func (v I8) MaxEncodedLen() int         { return 1 }

type I16 int16

func (v I16) EncodeTo(out Output) error { return U16(v).EncodeTo(out) }
func (v *I16) DecodeFrom(in Input) error {
	var u U16
	err := u.DecodeFrom(in)
	*v = I16(u)
	return err
}
func (v I16) EncodedSize() int      { return 2 }
func (v I16) EncodedFixedSize() int { return 2 }
func (v I16) MaxEncodedLen() int    { return 2 }

type I32 int32

func (v I32) EncodeTo(out Output) error { return U32(v).EncodeTo(out) }
func (v *I32) DecodeFrom(in Input) error {
	var u U32
	err := u.DecodeFrom(in)
	*v = I32(u)
	return err
}
func (v I32) EncodedSize() int      { return 4 }
func (v I32) EncodedFixedSize() int { return 4 }
func (v I32) MaxEncodedLen() int    { return 4 }

type I64 int64

func (v I64) EncodeTo(out Output) error { return U64(v).EncodeTo(out) }
func (v *I64) DecodeFrom(in Input) error {
	var u U64
	err := u.DecodeFrom(in)
	*v = I64(u)
	return err
}
func (v I64) EncodedSize() int      { return 8 }
func (v I64) EncodedFixedSize() int { return 8 }
func (v I64) MaxEncodedLen() int    { return 8 }

type I128 struct {
	Lo uint64
	Hi int64
}

func (v I128) EncodeTo(out Output) error {
	if err := U64(v.Lo).EncodeTo(out); err != nil {
		return err
	}
	return I64(v.Hi).EncodeTo(out)
}
func (v *I128) DecodeFrom(in Input) error {
	var lo U64
	var hi I64
	if err := lo.DecodeFrom(in); err != nil {
		return err
	}
	if err := hi.DecodeFrom(in); err != nil {
		return err
	}
	v.Lo, v.Hi = uint64(lo), int64(hi)
	return nil
}
func (v I128) EncodedSize() int      { return 16 }
func (v I128) EncodedFixedSize() int { return 16 }
func (v I128) MaxEncodedLen() int    { return 16 }

// Floats, IEEE-754 bit pattern, little-endian — SCALE treats them exactly
// like fixed-width unsigned integers of the same width.

type F32 float32

func (v F32) EncodeTo(out Output) error { return U32(math.Float32bits(float32(v))).EncodeTo(out) }
func (v *F32) DecodeFrom(in Input) error {
	var u U32
	if err := u.DecodeFrom(in); err != nil {
		return err
	}
	*v = F32(math.Float32frombits(uint32(u)))
	return nil
}
func (v F32) EncodedSize() int      { return 4 }
func (v F32) EncodedFixedSize() int { return 4 }
func (v F32) MaxEncodedLen() int    { return 4 }

type F64 float64

func (v F64) EncodeTo(out Output) error { return U64(math.Float64bits(float64(v))).EncodeTo(out) }
func (v *F64) DecodeFrom(in Input) error {
	var u U64
	if err := u.DecodeFrom(in); err != nil {
		return err
	}
	*v = F64(math.Float64frombits(uint64(u)))
	return nil
}
func (v F64) EncodedSize() int      { return 8 }
func (v F64) EncodedFixedSize() int { return 8 }
func (v F64) MaxEncodedLen() int    { return 8 }

// Char is a Unicode scalar value, encoded as its u32 code point. Decoding
// rejects surrogate code points and values above U+10FFFF (ErrInvalidChar),
// since those are not valid Go runes either.
type Char rune

func (c Char) EncodeTo(out Output) error { return U32(c).EncodeTo(out) }

func (c *Char) DecodeFrom(in Input) error {
	var u U32
	if err := u.DecodeFrom(in); err != nil {
		return err
	}
	r := rune(u)
	if !utf8.ValidRune(r) {
		return chainf(ErrInvalidChar, "code point U+%04X", u)
	}
	*c = Char(r)
	return nil
}
func (c Char) EncodedSize() int      { return 4 }
func (c Char) EncodedFixedSize() int { return 4 }
func (c Char) MaxEncodedLen() int    { return 4 }

// String is a UTF-8 string, encoded as a compact-length-prefixed raw byte
// sequence — there is no separate "string" wire shape, just Vec<u8> with a
// UTF-8 validity check on decode.
type String string

func (s String) EncodeTo(out Output) error {
	if err := Compact[uint64](len(s)).EncodeTo(out); err != nil {
		return err
	}
	_, err := out.Write([]byte(s))
	return err
}

func (s *String) DecodeFrom(in Input) error {
	var length Compact[uint64]
	if err := length.DecodeFrom(in); err != nil {
		return chainf(err, "string length")
	}
	n := int(length)
	if n < 0 || uint64(n) != uint64(length) {
		return chainf(ErrOverflow, "string length %d overflows int", uint64(length))
	}
	if remaining, known := in.RemainingLen(); known && uint64(n) > uint64(remaining) {
		return chainf(ErrNotEnoughData, "string length %d exceeds remaining input", n)
	}
	if err := memLimitOf(in).Reserve(int64(n)); err != nil {
		return err
	}
	buf := make([]byte, n)
	if err := in.ReadExact(buf); err != nil {
		return err
	}
	if !utf8.Valid(buf) {
		return ErrInvalidUTF8
	}
	*s = String(buf)
	return nil
}

func (s String) EncodedSize() int {
	return Compact[uint64](len(s)).EncodedSize() + len(s)
}
