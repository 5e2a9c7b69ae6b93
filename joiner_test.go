package scale_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scale "github.com/parity-scale/go-scale-codec"
)

func TestEncodeAllConcatenatesWithoutPrefix(t *testing.T) {
	out := scale.NewSliceOutput(0)
	require.NoError(t, scale.EncodeAll(out, scale.U8(1), scale.Bool(true), scale.U16(2)))
	assert.Equal(t, []byte{0x01, 0x01, 0x02, 0x00}, out.Bytes())
}

func TestEncodeSeq(t *testing.T) {
	seq := func(yield func(scale.U8) bool) {
		for _, v := range []scale.U8{10, 20, 30} {
			if !yield(v) {
				return
			}
		}
	}
	b, err := scale.EncodeSeq[scale.U8](iter.Seq[scale.U8](seq))
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 20, 30}, b)
}

func TestAppendOrNewBuildsUpSequence(t *testing.T) {
	var encoded []byte
	var err error
	encoded, err = scale.AppendOrNew(encoded, []scale.U8{1, 2})
	require.NoError(t, err)
	encoded, err = scale.AppendOrNew(encoded, []scale.U8{3})
	require.NoError(t, err)

	decoded, err := scale.DecodeSlice(scale.NewSliceInput(encoded), func(in scale.Input) (scale.U8, error) {
		var v scale.U8
		return v, v.DecodeFrom(in)
	})
	require.NoError(t, err)
	assert.Equal(t, []scale.U8{1, 2, 3}, decoded)
}
