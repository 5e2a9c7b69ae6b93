package scale

import (
	"github.com/rs/zerolog"
)

// limitLogger is the package-wide diagnostic sink for safety-limit trips.
// It defaults to a disabled logger so importing this package costs nothing
// unless a consumer opts in with SetLimitLogger, matching the teacher's
// habit of leaving instrumentation off by default.
var limitLogger = zerolog.Nop()

// SetLimitLogger installs l as the logger used to report depth-limit and
// memory-limit trips. Pass zerolog.Nop() (the default) to silence these
// diagnostics again.
func SetLimitLogger(l zerolog.Logger) { limitLogger = l }

// DepthLimitedInput decorates an Input with a recursion bound, the Go
// realization of §4.1's descend_ref/ascend_ref bookkeeping. It embeds the
// wrapped Input so Read/ReadByte/ReadExact/RemainingLen are promoted
// unchanged, then shadows Descend/Ascend to do the counting — the same
// decorator shape the teacher uses to wrap a Reader with a byte budget.
type DepthLimitedInput struct {
	Input
	limit   int
	depth   int
	context string
}

// NewDepthLimitedInput wraps in with a maximum recursion depth of limit.
// context is included in the diagnostic log line emitted if the limit
// trips, so an operator can tell which decode call site it came from.
func NewDepthLimitedInput(in Input, limit int, context string) *DepthLimitedInput {
	return &DepthLimitedInput{Input: in, limit: limit, context: context}
}

func (d *DepthLimitedInput) Descend() error {
	if d.depth >= d.limit {
		limitLogger.Warn().
			Str("context", d.context).
			Int("limit", d.limit).
			Msg("scale: depth limit exceeded while decoding")
		return chainf(ErrDepthExceeded, "depth %d exceeds limit %d", d.depth+1, d.limit)
	}
	d.depth++
	return nil
}

func (d *DepthLimitedInput) Ascend() {
	if d.depth > 0 {
		d.depth--
	}
}

// MemLimit tracks a remaining allocation budget shared across a single
// decode call tree. Container decoders call Reserve before allocating a
// backing array/slice/map so an attacker-controlled length prefix cannot
// force an unbounded allocation before any of the claimed elements have
// actually been read from the input — see §4.10.
type MemLimit struct {
	remaining int64
	context   string
}

// NewMemLimit returns a MemLimit with budget bytes to spend.
func NewMemLimit(budget int64, context string) *MemLimit {
	return &MemLimit{remaining: budget, context: context}
}

// Reserve deducts n bytes from the budget, returning ErrMemoryLimitExceeded
// (and logging a diagnostic) if doing so would go negative. n may be
// computed as elementCount * elementSize before the elements themselves are
// allocated.
func (m *MemLimit) Reserve(n int64) error {
	if m == nil {
		return nil
	}
	if n > m.remaining {
		limitLogger.Warn().
			Str("context", m.context).
			Int64("requested", n).
			Int64("remaining", m.remaining).
			Msg("scale: memory limit exceeded while decoding")
		return chainf(ErrMemoryLimitExceeded, "requested %d bytes, %d remaining", n, m.remaining)
	}
	m.remaining -= n
	return nil
}

// MemLimitedInput pairs an Input with a MemLimit so container decoders can
// reach both through a single value threaded down the decode call tree.
type MemLimitedInput struct {
	Input
	Mem *MemLimit
}

// NewMemLimitedInput wraps in with a fresh MemLimit of budget bytes.
func NewMemLimitedInput(in Input, budget int64, context string) *MemLimitedInput {
	return &MemLimitedInput{Input: in, Mem: NewMemLimit(budget, context)}
}

// memLimitOf extracts a MemLimit from in if it (or an Input it embeds)
// carries one, otherwise returns nil — Reserve on a nil *MemLimit is a
// no-op, so callers can always call memLimitOf(in).Reserve(n) unconditionally.
// in may be wrapped in more than one decorator (a DepthLimitedInput around a
// MemLimitedInput, or vice versa); this unwraps each known decorator layer so
// the budget is found regardless of wrapping order.
func memLimitOf(in Input) *MemLimit {
	for {
		switch v := in.(type) {
		case *MemLimitedInput:
			return v.Mem
		case *DepthLimitedInput:
			in = v.Input
		default:
			return nil
		}
	}
}
