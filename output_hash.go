package scale

import (
	"hash"

	"github.com/zeebo/blake3"
)

// HashOutput is an Output that feeds every written byte into a running
// hash instead of buffering them, the "hash accumulator" Output variant
// named alongside the plain buffer and stream variants: encoding a value
// straight into a hasher lets callers compute a content hash of a type's
// SCALE encoding without ever materializing the encoded bytes.
type HashOutput struct {
	h hash.Hash
}

// NewHashOutput returns a HashOutput backed by a fresh BLAKE3 hasher.
func NewHashOutput() *HashOutput {
	return &HashOutput{h: blake3.New()}
}

func (h *HashOutput) Write(p []byte) (int, error) { return h.h.Write(p) }

func (h *HashOutput) WriteByte(b byte) error {
	_, err := h.h.Write([]byte{b})
	return err
}

// Sum returns the accumulated hash, appending it to b the way hash.Hash.Sum
// does.
func (h *HashOutput) Sum(b []byte) []byte { return h.h.Sum(b) }

// Reset clears the accumulator so the same HashOutput can hash another
// value's encoding.
func (h *HashOutput) Reset() { h.h.Reset() }

// HashEncoded encodes v directly into a BLAKE3 hasher and returns the
// 32-byte digest, without ever allocating the intermediate encoded bytes.
func HashEncoded(v Encodable) ([]byte, error) {
	h := NewHashOutput()
	if err := v.EncodeTo(h); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
