package scale

// BinaryBridge adapts a stdlib encoding.BinaryMarshaler/BinaryUnmarshaler
// pair onto this package's Encodable/Decodable interfaces, the same role
// the teacher's generic.go adapter plays for arbitrary types that already
// know how to marshal themselves to bytes but were never written against
// this package's Output/Input abstraction. The bridged type's own
// MarshalBinary/UnmarshalBinary output is written as a raw, unprefixed
// byte run — callers that need a length prefix should wrap the result in a
// String or a []byte field using the ordinary sequence codec instead.
type BinaryBridge struct {
	MarshalBinary   func() ([]byte, error)
	UnmarshalBinary func([]byte) error
	// Size is the bridged value's encoded size if constant, or 0 if the
	// bridge should fall back to marshaling eagerly to learn the size.
	Size int
}

func (b BinaryBridge) EncodeTo(out Output) error {
	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// EncodedSize returns Size when it is non-zero, and otherwise the length of
// MarshalBinary's output (0 if MarshalBinary fails).
func (b BinaryBridge) EncodedSize() int {
	if b.Size != 0 {
		return b.Size
	}
	data, err := b.MarshalBinary()
	if err != nil {
		return 0
	}
	return len(data)
}

// DecodeFromN decodes exactly n raw bytes and hands them to
// UnmarshalBinary. Unlike DecodeFrom, this takes the byte count as an extra
// argument because a BinaryBridge has no way to know its own encoded length without
// a convention from the caller (a fixed-size bridged type, or a
// caller-supplied length read some other way).
func (b *BinaryBridge) DecodeFromN(in Input, n int) error {
	buf := make([]byte, n)
	if err := in.ReadExact(buf); err != nil {
		return err
	}
	return b.UnmarshalBinary(buf)
}

// BridgeBinaryMarshaler wraps any type implementing the stdlib
// encoding.BinaryMarshaler/BinaryUnmarshaler pair as a BinaryBridge of
// fixed size.
func BridgeBinaryMarshaler(v interface {
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
}, fixedSize int) BinaryBridge {
	return BinaryBridge{
		MarshalBinary:   v.MarshalBinary,
		UnmarshalBinary: v.UnmarshalBinary,
		Size:            fixedSize,
	}
}
