package scale_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scale "github.com/parity-scale/go-scale-codec"
)

func TestBoolEncoding(t *testing.T) {
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.Bool(true).EncodeTo(out))
	assert.Equal(t, []byte{0x01}, out.Bytes())

	out2 := scale.NewSliceOutput(0)
	require.NoError(t, scale.Bool(false).EncodeTo(out2))
	assert.Equal(t, []byte{0x00}, out2.Bytes())

	var b scale.Bool
	require.NoError(t, b.DecodeFrom(scale.NewSliceInput([]byte{0x01})))
	assert.True(t, bool(b))
}

func TestBoolRejectsInvalidByte(t *testing.T) {
	var b scale.Bool
	err := b.DecodeFrom(scale.NewSliceInput([]byte{0x02}))
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrInvalidBool)
}

func TestU16LittleEndian(t *testing.T) {
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.U16(0x1234).EncodeTo(out))
	assert.Equal(t, []byte{0x34, 0x12}, out.Bytes())
}

func TestU32LittleEndian(t *testing.T) {
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.U32(0xdeadbeef).EncodeTo(out))
	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, out.Bytes())
}

func TestStringRoundTrip(t *testing.T) {
	s := scale.String("SCALE♡")
	out := scale.NewSliceOutput(0)
	require.NoError(t, s.EncodeTo(out))

	var decoded scale.String
	require.NoError(t, decoded.DecodeFrom(scale.NewSliceInput(out.Bytes())))
	assert.Equal(t, s, decoded)
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	// compact length 1, then an invalid UTF-8 continuation byte on its own.
	data := []byte{0x04, 0x80}
	var decoded scale.String
	err := decoded.DecodeFrom(scale.NewSliceInput(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrInvalidUTF8)
}

func TestStringRejectsImplausibleLength(t *testing.T) {
	// compact length claims millions of bytes, but none follow.
	data := []byte{0x03, 0x00, 0x00, 0x40, 0x00}
	var decoded scale.String
	err := decoded.DecodeFrom(scale.NewSliceInput(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrNotEnoughData)
}

func TestCharRejectsSurrogateHalf(t *testing.T) {
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.U32(0xD800).EncodeTo(out))
	var c scale.Char
	err := c.DecodeFrom(scale.NewSliceInput(out.Bytes()))
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrInvalidChar)
}

func TestU32RoundTripQuick(t *testing.T) {
	f := func(v uint32) bool {
		out := scale.NewSliceOutput(0)
		if err := scale.U32(v).EncodeTo(out); err != nil {
			return false
		}
		var decoded scale.U32
		if err := decoded.DecodeFrom(scale.NewSliceInput(out.Bytes())); err != nil {
			return false
		}
		return uint32(decoded) == v
	}
	require.NoError(t, quick.Check(f, nil))
}
