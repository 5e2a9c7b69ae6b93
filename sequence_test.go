package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scale "github.com/parity-scale/go-scale-codec"
)

func TestEncodeDecodeSliceRoundTrip(t *testing.T) {
	items := []scale.U8{1, 2, 3, 4, 5}
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.EncodeSlice(items, out))

	decoded, err := scale.DecodeSlice(scale.NewSliceInput(out.Bytes()), func(in scale.Input) (scale.U8, error) {
		var v scale.U8
		return v, v.DecodeFrom(in)
	})
	require.NoError(t, err)
	assert.Equal(t, items, decoded)
}

func TestDecodeSliceRejectsImplausibleLength(t *testing.T) {
	// compact length claims millions of elements (4194304, four-byte mode),
	// but no bytes follow.
	data := []byte{0x02, 0x00, 0x00, 0x01}
	_, err := scale.DecodeSlice(scale.NewSliceInput(data), func(in scale.Input) (scale.U8, error) {
		var v scale.U8
		return v, v.DecodeFrom(in)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrNotEnoughData)
}

func TestEncodeDecodeEmptySlice(t *testing.T) {
	var items []scale.U8
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.EncodeSlice(items, out))
	assert.Equal(t, []byte{0x00}, out.Bytes())

	decoded, err := scale.DecodeSlice(scale.NewSliceInput(out.Bytes()), func(in scale.Input) (scale.U8, error) {
		var v scale.U8
		return v, v.DecodeFrom(in)
	})
	require.NoError(t, err)
	assert.Empty(t, decoded)
}
