package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scale "github.com/parity-scale/go-scale-codec"
)

// TestTupleEncoding exercises the (1u8, true, "OK") scenario: a tuple's
// encoding is just its fields' encodings concatenated, no wrapper of its
// own.
func TestTupleEncoding(t *testing.T) {
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.EncodeAll(out,
		scale.U8(1),
		scale.Bool(true),
		scale.String("OK"),
	))
	// u8(1) = 0x01; bool(true) = 0x01; "OK" = compact-len(2)=0x08 + 'O' 'K'
	assert.Equal(t, []byte{0x01, 0x01, 0x08, 'O', 'K'}, out.Bytes())
}

// TestCrossWidthDecodeMismatch demonstrates why SCALE's non-self-describing
// design demands the decoder know the exact shape: the same four bytes
// decode as a single u32, or as a u16 followed by another u16, or as two
// u16s read independently — there is no tag to catch a mismatched read.
func TestCrossWidthDecodeMismatch(t *testing.T) {
	data := []byte{0x01, 0x00, 0x02, 0x00}

	var asU32 scale.U32
	require.NoError(t, asU32.DecodeFrom(scale.NewSliceInput(data)))
	assert.EqualValues(t, 0x00020001, asU32)

	in := scale.NewSliceInput(data)
	var first, second scale.U16
	require.NoError(t, first.DecodeFrom(in))
	require.NoError(t, second.DecodeFrom(in))
	assert.EqualValues(t, 1, first)
	assert.EqualValues(t, 2, second)
}

// TestSortedSetRoundTrip exercises the canonical BTreeSet shape end to end:
// encoding always sorts, and the decoded order matches the sorted order
// regardless of insertion order.
func TestSortedSetRoundTrip(t *testing.T) {
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.EncodeSet([]scale.U32{300, 100, 200}, out, func(v scale.U32, o scale.Output) error {
		return v.EncodeTo(o)
	}))

	decoded, err := scale.DecodeSet(scale.NewSliceInput(out.Bytes()),
		func(in scale.Input) (scale.U32, error) {
			var v scale.U32
			return v, v.DecodeFrom(in)
		},
		func(v scale.U32, o scale.Output) error { return v.EncodeTo(o) },
	)
	require.NoError(t, err)
	assert.Equal(t, []scale.U32{100, 200, 300}, decoded)
}

// example is the Go rendition of the recursive sum type `Example = First |
// Second(Box<Example>)` named by the depth-limit testable property: each
// Second variant boxes another Example, so decoding an arbitrarily deep
// chain of Second bytes must be rejected once it passes a configured depth.
type example struct {
	isSecond bool
	inner    *example
}

func (e example) VariantIndex() byte {
	if e.isSecond {
		return 1
	}
	return 0
}

func (e example) EncodeTo(out scale.Output) error {
	if !e.isSecond {
		return nil
	}
	return e.inner.EncodeTo(out)
}

func decodeExample(in scale.Input) (*example, error) {
	tag, err := in.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return &example{}, nil
	case 1:
		if err := in.Descend(); err != nil {
			return nil, err
		}
		defer in.Ascend()
		inner, err := decodeExample(in)
		if err != nil {
			return nil, err
		}
		return &example{isSecond: true, inner: inner}, nil
	default:
		return nil, scale.ErrInvalidDiscriminant
	}
}

func TestRecursiveSumTypeDepthLimit(t *testing.T) {
	deep := make([]byte, 0, 21)
	for i := 0; i < 20; i++ {
		deep = append(deep, 1)
	}
	deep = append(deep, 0)

	in := scale.NewDepthLimitedInput(scale.NewSliceInput(deep), 10, "example")
	_, err := decodeExample(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrDepthExceeded)

	shallow := []byte{1, 1, 1, 0}
	in2 := scale.NewDepthLimitedInput(scale.NewSliceInput(shallow), 10, "example")
	v, err := decodeExample(in2)
	require.NoError(t, err)
	assert.True(t, v.isSecond)
}

// TestUnicodeStringEncoding exercises the "SCALE♡" scenario: a non-ASCII
// UTF-8 string's byte length (not its rune count) drives the compact
// length prefix.
func TestUnicodeStringEncoding(t *testing.T) {
	s := scale.String("SCALE♡")
	out := scale.NewSliceOutput(0)
	require.NoError(t, s.EncodeTo(out))

	byteLen := len([]byte("SCALE♡"))
	require.Equal(t, 8, byteLen) // "SCALE" (5 bytes) + ♡ (3 bytes in UTF-8)
	// compact(8) = 0x20, then the 8 raw UTF-8 bytes.
	assert.Equal(t, []byte{0x20, 'S', 'C', 'A', 'L', 'E', 0xe2, 0x99, 0xa1}, out.Bytes())

	var decoded scale.String
	require.NoError(t, decoded.DecodeFrom(scale.NewSliceInput(out.Bytes())))
	assert.Equal(t, s, decoded)
}
