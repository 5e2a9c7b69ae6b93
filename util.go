package scale

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// bufferSize bounds the size of the chunk buffer discard reads into at a
// time, mirroring the teacher's BUFFER_SIZE padding buffer. The buffer
// itself is stack-local to each call rather than a shared package-level
// array, since a shared buffer would race across concurrent decodes.
const bufferSize = 4096

// discard advances in by exactly n bytes without materializing them, the
// streaming building block behind Skip (§4.9) and skipN for Inputs that
// read through Input.ReadExact rather than exposing a backing slice
// directly.
func discard(in Input, n int) error {
	if n == 0 {
		return nil
	}
	if n < 0 {
		return fmt.Errorf("scale: cannot discard negative byte count %d", n)
	}
	var buf [bufferSize]byte
	remaining := n
	for remaining > 0 {
		chunk := remaining
		if chunk > bufferSize {
			chunk = bufferSize
		}
		if err := in.ReadExact(buf[:chunk]); err != nil {
			return err
		}
		remaining -= chunk
	}
	return nil
}

// roundup rounds n up to the nearest multiple of align, which must be a
// power of two for the bit mask to be correct. Used by the
// bit-sequence codec to compute ceil(n/8) byte counts.
func roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }
