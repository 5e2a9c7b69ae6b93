package scale

import (
	"encoding/binary"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// fixedSizeCache memoizes binary.Size results per reflect.Type, the same
// pattern the teacher uses to avoid re-walking a struct's fields by
// reflection on every encode/decode call. encoding/binary's little-endian
// struct layout is byte-identical to SCALE's fixed-width tuple/struct
// encoding (every field concatenated in declaration order, no padding),
// so a struct of only fixed-width numeric fields can ride directly on
// encoding/binary instead of a hand-written field-by-field codec.
var fixedSizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed wraps a struct of fixed-width fields (any mix of the
// sized integer/float types in this package's kind, or nested structs of
// the same) so it can be encoded/decoded as a single little-endian
// binary.Write/Read call, the adaptation of the teacher's Fixed[Payload]
// generic wrapper to SCALE's mandatory little-endian order (the teacher
// defaults to big-endian and exposes WithByteOrder; SCALE has no such
// option, so this type hardcodes binary.LittleEndian).
type Fixed[Payload any] struct {
	Value Payload
}

func (f Fixed[Payload]) EncodeTo(out Output) error {
	return binary.Write(out, binary.LittleEndian, f.Value)
}

func (f *Fixed[Payload]) DecodeFrom(in Input) error {
	return binary.Read(in, binary.LittleEndian, &f.Value)
}

func (f Fixed[Payload]) EncodedSize() int {
	t := reflect.TypeOf(f.Value)
	if cached, ok := fixedSizeCache.Load(t); ok {
		return cached
	}
	n := binary.Size(f.Value)
	fixedSizeCache.Store(t, n)
	return n
}

func (f Fixed[Payload]) EncodedFixedSize() int { return f.EncodedSize() }
func (f Fixed[Payload]) MaxEncodedLen() int    { return f.EncodedSize() }
