package scale

// minElementSize is the smallest possible SCALE encoding of any element
// type this package knows about (a single zero-sized field still costs at
// least nothing, but a claimed element count has to cost at least one byte
// per element in the overwhelmingly common case — bools, u8, enum
// discriminants). It underlies the length-prefix DoS pre-check described by
// §4 as part of sequence decoding: before allocating a backing slice for a
// claimed element count, check that the input actually has at least that
// many bytes left, rather than trusting an attacker-chosen compact length
// outright.
const minElementSize = 1

// preallocCap bounds the up-front allocation for a decoded sequence/
// container so a claimed length that passes the remaining-bytes check
// (possible when RemainingLen is unknown, e.g. a plain io.Reader Input)
// still can't force an unbounded allocation; growth beyond this continues
// via append as elements are actually read.
const preallocCap = 4096

// EncodeSlice encodes a length-prefixed sequence: a compact length followed
// by each element's encoding in order, per §3's Vec<T> shape.
func EncodeSlice[T Encodable](items []T, out Output) error {
	if err := (Compact[uint64](len(items))).EncodeTo(out); err != nil {
		return err
	}
	for i, item := range items {
		if err := item.EncodeTo(out); err != nil {
			return chainf(err, "element %d", i)
		}
	}
	return nil
}

// DecodeSlice decodes a length-prefixed sequence of elements, each decoded
// by decodeElem. It rejects a claimed length that cannot possibly fit in
// the remaining input (the DoS pre-check) before allocating anything, and
// spends from mem (if in carries one) before growing the result slice.
func DecodeSlice[T any](in Input, decodeElem func(Input) (T, error)) ([]T, error) {
	var length Compact[uint64]
	if err := length.DecodeFrom(in); err != nil {
		return nil, chainf(err, "sequence length")
	}
	return decodeVecWithLen(in, uint64(length), decodeElem)
}

// DecodeVecWithLen decodes exactly n elements from in, each decoded by
// decodeElem, without reading any length prefix of its own — the compact
// length is assumed to have already been consumed by the caller (a
// composite type whose own wire shape interleaves a shared length with
// more than one field, for instance). Plain Vec<T> decoding goes through
// DecodeSlice instead, which reads its own length prefix first and then
// calls this helper.
func DecodeVecWithLen[T any](in Input, n uint64, decodeElem func(Input) (T, error)) ([]T, error) {
	return decodeVecWithLen(in, n, decodeElem)
}

func decodeVecWithLen[T any](in Input, n uint64, decodeElem func(Input) (T, error)) ([]T, error) {
	if remaining, known := in.RemainingLen(); known && n > uint64(remaining)/minElementSize {
		return nil, chainf(ErrNotEnoughData, "claimed %d elements exceeds remaining input", n)
	}
	if err := memLimitOf(in).Reserve(int64(n) * minElementSize); err != nil {
		return nil, err
	}

	capN := n
	if capN > preallocCap {
		capN = preallocCap
	}
	result := make([]T, 0, capN)
	for i := uint64(0); i < n; i++ {
		if err := in.Descend(); err != nil {
			return nil, err
		}
		v, err := decodeElem(in)
		in.Ascend()
		if err != nil {
			return nil, chainf(err, "element %d", i)
		}
		result = append(result, v)
	}
	return result, nil
}

// EncodedSliceSize returns the exact encoded size of a length-prefixed
// sequence whose elements report their own size via Sizer.
func EncodedSliceSize[T Encodable](items []T) int {
	size := Compact[uint64](len(items)).EncodedSize()
	for _, item := range items {
		size += SizeHint(item)
	}
	return size
}

// SkipSlice advances in past a length-prefixed sequence without decoding
// its elements, given a way to skip a single element.
func SkipSlice(in Input, skipElem func(Input) error) error {
	var length Compact[uint64]
	if err := length.DecodeFrom(in); err != nil {
		return chainf(err, "sequence length")
	}
	n := uint64(length)
	if remaining, known := in.RemainingLen(); known && n > uint64(remaining)/minElementSize {
		return chainf(ErrNotEnoughData, "claimed %d elements exceeds remaining input", n)
	}
	for i := uint64(0); i < n; i++ {
		if err := skipElem(in); err != nil {
			return chainf(err, "element %d", i)
		}
	}
	return nil
}
