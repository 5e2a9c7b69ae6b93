package scale

// AppendOrNew splices newly-encoded items onto an already-SCALE-encoded
// sequence without decoding its existing elements, matching the reference
// crate's encode_append.rs: it decodes only the compact length prefix of
// existing, rewrites a bumped length prefix, and appends items' encodings
// after the untouched element bytes. This is not a general Encode — callers
// that need the actual decoded elements must use DecodeSlice instead.
//
// If existing is empty, AppendOrNew treats it as an empty sequence (compact
// length zero) rather than erroring, so building up a sequence by repeated
// append calls can start from nil.
func AppendOrNew[T Encodable](existing []byte, items []T) ([]byte, error) {
	var oldLen uint64
	var headerSize int
	if len(existing) == 0 {
		oldLen, headerSize = 0, 0
	} else {
		in := NewSliceInput(existing)
		var length Compact[uint64]
		if err := length.DecodeFrom(in); err != nil {
			return nil, chainf(err, "existing sequence length")
		}
		oldLen = uint64(length)
		headerSize = len(existing) - len(in.Remaining())
	}

	newLen := oldLen + uint64(len(items))
	out := NewSliceOutput(0)
	if err := (Compact[uint64](newLen)).EncodeTo(out); err != nil {
		return nil, err
	}
	if len(existing) > headerSize {
		if _, err := out.Write(existing[headerSize:]); err != nil {
			return nil, err
		}
	}
	for i, item := range items {
		if err := item.EncodeTo(out); err != nil {
			return nil, chainf(err, "appended element %d", i)
		}
	}
	return out.Bytes(), nil
}
