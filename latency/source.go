package latency

import "time"

// Source yields monotonic nanosecond readings. It abstracts the
// platform clock so tests can substitute a deterministic sequence.
type Source interface {
	Now() uint64
}

type monotonicSource struct {
	base time.Time
}

func (s monotonicSource) Now() uint64 {
	return uint64(time.Since(s.base))
}

// Monotonic is the default source, backed by the runtime monotonic
// clock. Readings are nanoseconds since process-local initialization;
// only differences between readings are meaningful.
var Monotonic Source = monotonicSource{base: time.Now()}
