// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMC is a CAS-based multi-producer multi-consumer bounded ring queue.
//
// Producers and consumers claim slots by compare-and-swapping monotonically
// increasing tickets (tail for enqueue, head for dequeue). The ticket CAS
// guarantees each slot is written by exactly one producer and read by exactly
// one consumer; a naive load-write-store scheme would let two producers claim
// the same slot and silently drop an item.
//
// Per-slot sequence numbers decouple ticket advancement from slot-fill
// completion: a producer publishes its write by storing seq = ticket+1 with
// release ordering, and the consumer for that ticket loads seq with acquire
// ordering before touching the data. The sequence also provides ABA safety
// across ring wrap-around.
//
// One slot is a permanent sentinel, so a queue constructed with capacity n
// holds at most n-1 items. The sentinel disambiguates full from empty using
// only the two tickets, without a shared length counter.
//
// Memory: n slots for capacity n (16+ bytes per slot)
type MPMC[T any] struct {
	_        pad
	tail     atomix.Uint64 // Producer ticket
	_        pad
	head     atomix.Uint64 // Consumer ticket
	_        pad
	buffer   []mpmcSlot[T]
	capacity uint64 // Physical slot count n; usable capacity is n-1
}

type mpmcSlot[T any] struct {
	seq  atomix.Uint64 // Ticket this slot is armed for
	data T
	_    padShort // Pad to cache line
}

// NewMPMC creates a new MPMC ring queue with exactly capacity slots,
// of which capacity-1 are usable (one slot is the full/empty sentinel).
// The capacity is not rounded; any value >= 2 is valid.
// Panics if capacity < 2.
func NewMPMC[T any](capacity int) *MPMC[T] {
	if capacity < 2 {
		panic("ringq: capacity must be >= 2")
	}

	n := uint64(capacity)
	q := &MPMC[T]{
		buffer:   make([]mpmcSlot[T], n),
		capacity: n,
	}

	// Slot i is armed for ticket i on the first lap.
	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full.
//
// Safe for concurrent use by any number of producers.
func (q *MPMC[T]) Enqueue(elem *T) error {
	sw := spin.Wait{}
	for {
		// head is loaded before tail so the loaded views satisfy
		// head <= tail and the gap below cannot wrap.
		head := q.head.LoadAcquire()
		tail := q.tail.LoadAcquire()

		// Sentinel full check. The loaded gap overestimates the in-flight
		// count, so the check is conservative: it may report full
		// spuriously under contention but never admits an item into the
		// sentinel slot.
		if tail-head >= q.capacity-1 {
			return ErrWouldBlock
		}

		slot := &q.buffer[tail%q.capacity]
		if slot.seq.LoadAcquire() != tail {
			// Slot not re-armed yet: either the tail view is stale or the
			// previous lap's consumer is still reading. Retry with a fresh view.
			sw.Once()
			continue
		}

		if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
			// Ticket claimed: this goroutine is the unique writer of the slot.
			slot.data = *elem
			slot.seq.StoreRelease(tail + 1)
			return nil
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// Safe for concurrent use by any number of consumers.
func (q *MPMC[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		tail := q.tail.LoadAcquire()
		if head == tail {
			var zero T
			return zero, ErrWouldBlock
		}

		slot := &q.buffer[head%q.capacity]
		if slot.seq.LoadAcquire() != head+1 {
			// A producer owns the ticket but has not published the slot yet.
			// The acquire load of seq is the ready flag the consumer spins on.
			sw.Once()
			continue
		}

		if q.head.CompareAndSwapAcqRel(head, head+1) {
			elem := slot.data
			var zero T
			slot.data = zero
			// Re-arm the slot for the enqueuer one lap ahead.
			slot.seq.StoreRelease(head + q.capacity)
			return elem, nil
		}
		sw.Once()
	}
}

// Cap returns the usable queue capacity (one below the physical slot
// count; the remaining slot is the full/empty sentinel).
func (q *MPMC[T]) Cap() int {
	return int(q.capacity - 1)
}
