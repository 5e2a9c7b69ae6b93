package scale

// MemTracked is an empty marker mixin types embed to declare themselves
// memory-tracked decoders: embedding it gives a type the IsMemTracked tag
// method without writing any real method, mirroring the
// blanket marker-trait implementation the reference crate gives every
// tuple type in mem_tracking.rs (there, the trait has no methods either —
// it exists purely so DecodeWithMemTracking's bound can select types that
// opt in).
type MemTracked struct{}

// IsMemTracked is the tag method itself and does nothing. A type has it by
// embedding MemTracked or by declaring the method directly.
func (MemTracked) IsMemTracked() {}

// DecodeWithMemTrackingCapable is implemented by any type embedding
// MemTracked (or otherwise tagging itself memory-tracked).
type DecodeWithMemTrackingCapable interface {
	IsMemTracked()
}

// DecodeWithMemTracking decodes v from data under a memory budget,
// requiring v to be tagged DecodeWithMemTrackingCapable — the compile-time
// gate matching the reference crate's blanket-impl-for-tuples restriction,
// expressed in Go as a type constraint rather than a trait bound.
func DecodeWithMemTracking[T interface {
	Decodable
	DecodeWithMemTrackingCapable
}](budget int64, data []byte, v T) error {
	return DecodeWithMemLimit(budget, data, v)
}
