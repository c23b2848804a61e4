// Package latency provides a bounded circular sample store and
// nearest-rank percentile statistics for characterizing decode cost.
package latency

import "fmt"

// DefaultCapacity holds about one million samples, enough for a full
// benchmark batch before the buffer starts overwriting.
const DefaultCapacity = 1_000_000

// Sampler is a fixed-capacity circular store of nanosecond durations.
// The write index is the total sample counter modulo capacity, so once
// the counter exceeds capacity new samples overwrite the oldest.
//
// Not safe for concurrent writers: exactly one goroutine (the one
// running decode) may call Record. Use one Sampler per consumer.
type Sampler struct {
	buf     []uint64
	counter uint64
}

// NewSampler creates a sampler holding up to capacity samples.
func NewSampler(capacity int) (*Sampler, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("latency: capacity must be positive, got %d", capacity)
	}
	return &Sampler{buf: make([]uint64, capacity)}, nil
}

// Record stores one duration, overwriting the oldest sample when the
// buffer has wrapped.
func (s *Sampler) Record(v uint64) {
	s.buf[s.counter%uint64(len(s.buf))] = v
	s.counter++
}

// Count reports the total number of samples ever recorded. It is never
// reset and may exceed capacity.
func (s *Sampler) Count() uint64 {
	return s.counter
}

// Last returns the most recently recorded sample, ok=false when empty.
func (s *Sampler) Last() (uint64, bool) {
	if s.counter == 0 {
		return 0, false
	}
	return s.buf[(s.counter-1)%uint64(len(s.buf))], true
}

// Capacity reports the size of the underlying buffer.
func (s *Sampler) Capacity() int {
	return len(s.buf)
}

// Snapshot copies out the currently held samples: all of them before
// the first wrap, the most recent Capacity() afterwards. Order is the
// raw buffer order, which Analyze does not depend on.
func (s *Sampler) Snapshot() []uint64 {
	n := s.counter
	if n > uint64(len(s.buf)) {
		n = uint64(len(s.buf))
	}
	out := make([]uint64, n)
	copy(out, s.buf[:n])
	return out
}

// Stats analyzes the current snapshot. ok is false when nothing has
// been recorded yet.
func (s *Sampler) Stats() (Stats, bool) {
	return Analyze(s.Snapshot())
}
