// Package ring implements a bounded lock-free single-producer/
// single-consumer queue.
//
// Contract: exactly one goroutine calls Push and exactly one calls
// Pop. The contract is not validated; violating it is undefined.
// Failed Push (full) and failed Pop (empty) are normal steady-state
// backpressure signals, not errors; callers poll or back off.
package ring

import (
	"errors"
	"sync/atomic"
)

// ErrCapacity rejects construction with an unusable capacity. This is
// a configuration error, never coerced to the nearest valid size.
var ErrCapacity = errors.New("ring: capacity must be a power of two and at least 2")

// Buffer is a fixed-capacity SPSC ring. One slot stays structurally
// empty so full and empty states are distinguishable from the two
// cursors alone: a buffer of capacity C queues at most C−1 items.
//
// The cursors live on separate cache lines so producer and consumer
// cores don't invalidate each other's line on every operation. Atomic
// store on a cursor publishes the slot it guards; atomic load on the
// other side acquires it.
type Buffer[T any] struct {
	mask uint64
	buf  []T

	_    [64]byte
	prod atomic.Uint64 // next write position, owned by the producer
	_    [64]byte
	cons atomic.Uint64 // next read position, owned by the consumer
	_    [64]byte
}

// New allocates a ring with the given capacity, which must be a power
// of two and at least 2.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		return nil, ErrCapacity
	}
	return &Buffer[T]{
		mask: uint64(capacity - 1),
		buf:  make([]T, capacity),
	}, nil
}

// Push enqueues item, returning false without touching any state when
// the ring is full. Never blocks.
func (b *Buffer[T]) Push(item T) bool {
	p := b.prod.Load()
	next := (p + 1) & b.mask
	if next == b.cons.Load() {
		return false
	}
	b.buf[p] = item
	b.prod.Store(next) // publishes buf[p] to the consumer
	return true
}

// Pop dequeues the oldest item, returning ok=false when the ring is
// empty. The vacated slot is zeroed so the ring drops any references
// the value held. Never blocks.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	c := b.cons.Load()
	if c == b.prod.Load() {
		return zero, false
	}
	item := b.buf[c]
	b.buf[c] = zero
	b.cons.Store((c + 1) & b.mask) // releases the slot to the producer
	return item, true
}

// Len reports the number of queued items. From the non-owning side the
// value is advisory and may be stale; it is never a correctness gate.
func (b *Buffer[T]) Len() int {
	return int((b.prod.Load() - b.cons.Load()) & b.mask)
}

// Cap reports the usable slot count, one less than the allocated size.
func (b *Buffer[T]) Cap() int {
	return len(b.buf) - 1
}

// Empty reports whether the ring holds no items. Advisory from the
// producer side.
func (b *Buffer[T]) Empty() bool {
	return b.prod.Load() == b.cons.Load()
}

// Full reports whether a Push would fail. Advisory from the consumer
// side.
func (b *Buffer[T]) Full() bool {
	return b.Len() == b.Cap()
}
