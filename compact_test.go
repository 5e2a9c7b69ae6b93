package scale_test

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scale "github.com/parity-scale/go-scale-codec"
)

func TestCompactModeBoundaries(t *testing.T) {
	cases := []struct {
		value uint64
		bytes []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x04}},
		{63, []byte{0xfc}},
		{64, []byte{0x01, 0x01}},
		{16383, []byte{0xfd, 0xff}},
		{16384, []byte{0x02, 0x00, 0x01, 0x00}},
		{1073741823, []byte{0xfe, 0xff, 0xff, 0xff}},
		{1073741824, []byte{0x03, 0x00, 0x00, 0x00, 0x40}},
	}
	for _, c := range cases {
		out := scale.NewSliceOutput(0)
		require.NoError(t, scale.Compact[uint64](c.value).EncodeTo(out))
		assert.Equal(t, c.bytes, out.Bytes(), "encode(%d)", c.value)

		var decoded scale.Compact[uint64]
		require.NoError(t, decoded.DecodeFrom(scale.NewSliceInput(c.bytes)))
		assert.Equal(t, c.value, uint64(decoded), "decode(%x)", c.bytes)
	}
}

func TestCompactRejectsNonCanonicalEncoding(t *testing.T) {
	// 0 encoded in two-byte mode instead of single-byte mode.
	nonCanonical := []byte{0x01, 0x00}
	var decoded scale.Compact[uint64]
	err := decoded.DecodeFrom(scale.NewSliceInput(nonCanonical))
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrNonCanonicalCompact)
}

func TestCompactRejectsNonCanonicalBigInteger(t *testing.T) {
	// value 1 encoded in big-integer mode with 4 bytes, when it fits
	// single-byte mode.
	nonCanonical := []byte{0x03, 0x01, 0x00, 0x00, 0x00}
	var decoded scale.Compact[uint64]
	err := decoded.DecodeFrom(scale.NewSliceInput(nonCanonical))
	require.Error(t, err)
	assert.ErrorIs(t, err, scale.ErrNonCanonicalCompact)
}

func TestCompactRoundTripQuick(t *testing.T) {
	f := func(v uint64) bool {
		out := scale.NewSliceOutput(0)
		if err := scale.Compact[uint64](v).EncodeTo(out); err != nil {
			return false
		}
		var decoded scale.Compact[uint64]
		if err := decoded.DecodeFrom(scale.NewSliceInput(out.Bytes())); err != nil {
			return false
		}
		return uint64(decoded) == v
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestCompactBigRoundTrip(t *testing.T) {
	// 2^256 - 1, well past uint64 range, forces the big-integer mode.
	value := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.CompactBig{Int: value}.EncodeTo(out))

	var decoded scale.CompactBig
	require.NoError(t, decoded.DecodeFrom(scale.NewSliceInput(out.Bytes())))
	assert.Equal(t, 0, value.Cmp(decoded.Int))
}

func TestCompactBigSmallValueUsesSmallMode(t *testing.T) {
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.CompactBig{Int: big.NewInt(63)}.EncodeTo(out))
	assert.Equal(t, []byte{0xfc}, out.Bytes())
}
