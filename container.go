package scale

import "sort"

// MapEntry is one key/value pair of a BTreeMap-shaped container, encoded as
// a compact-length-prefixed sequence of entries sorted by encoded key, per
// §3's canonical-map requirement. Decoding does not require the input to
// already be sorted: the container re-sorts on insertion the same way a
// BTreeMap would if its entries were inserted in encoded order, so an
// unsorted-but-otherwise-valid encoding is accepted rather than rejected
// (see DESIGN.md's Open Question resolution). Duplicate keys are still
// rejected, since a map decode can't silently pick a winner between two
// values for the same key without documenting which one it keeps.
type MapEntry[K, V any] struct {
	Key   K
	Value V
}

// EncodeMap encodes entries as a canonical BTreeMap: sorted by each entry's
// own encoded key bytes (ties broken by original order, matching sort.Stable),
// then written as a length-prefixed sequence of key/value pairs.
func EncodeMap[K, V any](entries []MapEntry[K, V], out Output, encodeKey func(K, Output) error, encodeValue func(V, Output) error) error {
	sorted := make([]MapEntry[K, V], len(entries))
	copy(sorted, entries)
	keyBytes := make([][]byte, len(sorted))
	for i, e := range sorted {
		b, err := encodeToBytesWith(e.Key, encodeKey)
		if err != nil {
			return chainf(err, "map key %d", i)
		}
		keyBytes[i] = b
	}
	idx := make([]int, len(sorted))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return lessBytes(keyBytes[idx[a]], keyBytes[idx[b]])
	})

	if err := (Compact[uint64](len(sorted))).EncodeTo(out); err != nil {
		return err
	}
	for _, i := range idx {
		if _, err := out.Write(keyBytes[i]); err != nil {
			return err
		}
		if err := encodeValue(sorted[i].Value, out); err != nil {
			return chainf(err, "map value for key %d", i)
		}
	}
	return nil
}

// DecodeMap decodes a BTreeMap-shaped container. The input need not already
// be sorted by key — per §4.5, decoding re-sorts on insertion rather than
// demanding a canonical order — but a key repeated across two entries is
// rejected with ErrDuplicateKey, since there is no insertion-order tiebreak
// to silently prefer one value over the other.
func DecodeMap[K, V any](in Input, decodeKey func(Input) (K, error), encodeKeyForCompare func(K, Output) error, decodeValue func(Input) (V, error)) ([]MapEntry[K, V], error) {
	var length Compact[uint64]
	if err := length.DecodeFrom(in); err != nil {
		return nil, chainf(err, "map length")
	}
	n := uint64(length)
	if remaining, known := in.RemainingLen(); known && n > uint64(remaining)/minElementSize {
		return nil, chainf(ErrNotEnoughData, "claimed %d entries exceeds remaining input", n)
	}
	if err := memLimitOf(in).Reserve(int64(n) * minElementSize); err != nil {
		return nil, err
	}

	capN := n
	if capN > preallocCap {
		capN = preallocCap
	}
	entries := make([]MapEntry[K, V], 0, capN)
	keyBytes := make([][]byte, 0, capN)
	for i := uint64(0); i < n; i++ {
		if err := in.Descend(); err != nil {
			return nil, err
		}
		k, err := decodeKey(in)
		var v V
		if err == nil {
			v, err = decodeValue(in)
		}
		in.Ascend()
		if err != nil {
			return nil, chainf(err, "map entry %d", i)
		}

		kb, err := encodeToBytesWith(k, encodeKeyForCompare)
		if err != nil {
			return nil, chainf(err, "map key %d", i)
		}
		entries = append(entries, MapEntry[K, V]{Key: k, Value: v})
		keyBytes = append(keyBytes, kb)
	}

	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return lessBytes(keyBytes[idx[a]], keyBytes[idx[b]])
	})

	sorted := make([]MapEntry[K, V], len(entries))
	for pos, i := range idx {
		if pos > 0 && equalBytes(keyBytes[i], keyBytes[idx[pos-1]]) {
			return nil, chainf(ErrDuplicateKey, "map key repeated at entries %d and %d", idx[pos-1], i)
		}
		sorted[pos] = entries[i]
	}
	return sorted, nil
}

// EncodeSet encodes items as a canonical BTreeSet: sorted by encoded bytes,
// duplicates removed, then written as a length-prefixed sequence.
func EncodeSet[T any](items []T, out Output, encode func(T, Output) error) error {
	itemBytes := make([][]byte, len(items))
	for i, item := range items {
		b, err := encodeToBytesWith(item, encode)
		if err != nil {
			return chainf(err, "set item %d", i)
		}
		itemBytes[i] = b
	}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return lessBytes(itemBytes[idx[a]], itemBytes[idx[b]])
	})

	deduped := idx[:0:0]
	var prev []byte
	for _, i := range idx {
		if prev != nil && equalBytes(itemBytes[i], prev) {
			continue
		}
		deduped = append(deduped, i)
		prev = itemBytes[i]
	}

	if err := (Compact[uint64](len(deduped))).EncodeTo(out); err != nil {
		return err
	}
	for _, i := range deduped {
		if _, err := out.Write(itemBytes[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSet decodes a BTreeSet-shaped container. As with DecodeMap, the
// input need not already be sorted — decoding re-sorts on insertion — but
// a value repeated across two entries is rejected with ErrDuplicateKey
// rather than silently deduplicated, since a set decode can't tell whether
// a repeat is the encoder's bug or the caller's.
func DecodeSet[T any](in Input, decode func(Input) (T, error), encodeForCompare func(T, Output) error) ([]T, error) {
	var length Compact[uint64]
	if err := length.DecodeFrom(in); err != nil {
		return nil, chainf(err, "set length")
	}
	n := uint64(length)
	if remaining, known := in.RemainingLen(); known && n > uint64(remaining)/minElementSize {
		return nil, chainf(ErrNotEnoughData, "claimed %d items exceeds remaining input", n)
	}
	if err := memLimitOf(in).Reserve(int64(n) * minElementSize); err != nil {
		return nil, err
	}

	capN := n
	if capN > preallocCap {
		capN = preallocCap
	}
	items := make([]T, 0, capN)
	itemBytes := make([][]byte, 0, capN)
	for i := uint64(0); i < n; i++ {
		if err := in.Descend(); err != nil {
			return nil, err
		}
		v, err := decode(in)
		in.Ascend()
		if err != nil {
			return nil, chainf(err, "set item %d", i)
		}

		vb, err := encodeToBytesWith(v, encodeForCompare)
		if err != nil {
			return nil, chainf(err, "set item %d", i)
		}
		items = append(items, v)
		itemBytes = append(itemBytes, vb)
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return lessBytes(itemBytes[idx[a]], itemBytes[idx[b]])
	})

	sorted := make([]T, len(items))
	for pos, i := range idx {
		if pos > 0 && equalBytes(itemBytes[i], itemBytes[idx[pos-1]]) {
			return nil, chainf(ErrDuplicateKey, "set item repeated at positions %d and %d", idx[pos-1], i)
		}
		sorted[pos] = items[i]
	}
	return sorted, nil
}

func encodeToBytesWith[T any](v T, encode func(T, Output) error) ([]byte, error) {
	out := NewSliceOutput(0)
	if err := encode(v, out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func lessBytes(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
