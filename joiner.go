package scale

import "iter"

// EncodeAll concatenates the SCALE encodings of each value in values in
// order, with no separator and no overall length prefix — the "joiner"
// helper behind encoding a tuple or a fixed sequence of heterogeneous
// values one after another.
func EncodeAll(out Output, values ...Encodable) error {
	for i, v := range values {
		if err := v.EncodeTo(out); err != nil {
			return chainf(err, "value %d", i)
		}
	}
	return nil
}

// EncodeSeq encodes every item produced by seq back-to-back into a freshly
// allocated byte slice, with no length prefix — an iterator-driven
// alternative to EncodeSlice for callers that already have a push-style
// iter.Seq[T] instead of a materialized []T (the same relationship the
// pull-based Codec[Item] interface in the retrieval pack has to a plain
// slice codec).
func EncodeSeq[T Encodable](seq iter.Seq[T]) ([]byte, error) {
	out := NewSliceOutput(0)
	var encErr error
	seq(func(item T) bool {
		if err := item.EncodeTo(out); err != nil {
			encErr = err
			return false
		}
		return true
	})
	if encErr != nil {
		return nil, encErr
	}
	return out.Bytes(), nil
}

// DecodeAll decodes a single value of type T from data, returning
// ErrTrailingData if bytes remain afterward — the strict, whole-buffer
// decode entry point distinct from DecodeFrom's partial-consumption
// contract.
func DecodeAll[T Decodable](data []byte, v T) error {
	in := NewSliceInput(data)
	if err := v.DecodeFrom(in); err != nil {
		return err
	}
	if rem := in.Remaining(); len(rem) != 0 {
		return chainf(ErrTrailingData, "%d bytes remain", len(rem))
	}
	return nil
}

// DecodeWithDepthLimit decodes a single value of type T from data,
// rejecting inputs that recurse past limit nested Descend calls (§4.1).
func DecodeWithDepthLimit[T Decodable](limit int, data []byte, v T) error {
	in := NewDepthLimitedInput(NewSliceInput(data), limit, "DecodeWithDepthLimit")
	return v.DecodeFrom(in)
}

// DecodeAndAdvanceWithDepthLimit decodes v from an existing Input, wrapping
// it with a depth limit for the duration of this one decode call, then
// leaving the underlying cursor advanced exactly as if DecodeFrom had been
// called directly.
func DecodeAndAdvanceWithDepthLimit(limit int, in Input, v Decodable) error {
	limited := NewDepthLimitedInput(in, limit, "DecodeAndAdvanceWithDepthLimit")
	return v.DecodeFrom(limited)
}

// DecodeWithMemLimit decodes a single value of type T from data with a
// shared allocation budget (§4.10), rejecting container lengths that would
// blow the budget before allocating their backing storage.
func DecodeWithMemLimit[T Decodable](budget int64, data []byte, v T) error {
	in := NewMemLimitedInput(NewSliceInput(data), budget, "DecodeWithMemLimit")
	return v.DecodeFrom(in)
}
