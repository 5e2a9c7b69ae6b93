package scale

// BitSeq is a SCALE-encoded bit sequence: a compact bit count followed by
// ceil(count/8) bytes, bits packed LSB-first within each byte — the shape
// named by §3's bit-vector type. Bits beyond the declared count in the
// final byte must be zero on decode.
type BitSeq struct {
	Len  int
	Bits []byte // packed LSB-first, len(Bits) == roundup(Len, 8) / 8
}

// NewBitSeq packs bits (one bool per bit, in order) into a BitSeq.
func NewBitSeq(bits []bool) BitSeq {
	n := len(bits)
	packed := make([]byte, roundup(n, 8)/8)
	for i, b := range bits {
		if b {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	return BitSeq{Len: n, Bits: packed}
}

// Unpack returns the individual bits as a []bool.
func (s BitSeq) Unpack() []bool {
	out := make([]bool, s.Len)
	for i := range out {
		out[i] = s.Bits[i/8]&(1<<(i%8)) != 0
	}
	return out
}

func (s BitSeq) EncodeTo(out Output) error {
	if err := (Compact[uint64](s.Len)).EncodeTo(out); err != nil {
		return err
	}
	_, err := out.Write(s.Bits)
	return err
}

func (s *BitSeq) DecodeFrom(in Input) error {
	var length Compact[uint64]
	if err := length.DecodeFrom(in); err != nil {
		return chainf(err, "bit sequence length")
	}
	n := int(length)
	if n < 0 || uint64(n) != uint64(length) {
		return chainf(ErrOverflow, "bit sequence length %d overflows int", uint64(length))
	}
	nBytes := roundup(n, 8) / 8
	if remaining, known := in.RemainingLen(); known && uint64(nBytes) > uint64(remaining) {
		return chainf(ErrNotEnoughData, "bit sequence of %d bytes exceeds remaining input", nBytes)
	}
	if err := memLimitOf(in).Reserve(int64(nBytes)); err != nil {
		return err
	}
	buf := make([]byte, nBytes)
	if err := in.ReadExact(buf); err != nil {
		return err
	}
	if nBytes > 0 {
		usedBitsInLastByte := n % 8
		if usedBitsInLastByte != 0 {
			mask := byte(0xFF) << usedBitsInLastByte
			if buf[nBytes-1]&mask != 0 {
				return chainf(ErrNonCanonicalCompact, "bit sequence has set padding bits past declared length %d", n)
			}
		}
	}
	s.Len = n
	s.Bits = buf
	return nil
}

func (s BitSeq) EncodedSize() int {
	return Compact[uint64](s.Len).EncodedSize() + len(s.Bits)
}
