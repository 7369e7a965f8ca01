// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"code.hybscloud.com/atomix"
)

// SPSC is a single-producer single-consumer bounded ring queue.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's dequeue ticket, and vice versa,
// reducing cross-core cache line traffic.
//
// SPSC shares the sentinel-slot contract of MPMC: capacity n allocates
// n slots of which n-1 are usable. It needs no per-slot sequences because
// each side has exactly one writer; the ticket stores alone carry the
// release/acquire publication.
//
// Memory: O(capacity) with no per-slot overhead
type SPSC[T any] struct {
	_          pad
	head       atomix.Uint64 // Consumer reads from here
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Producer writes here
	_          pad
	cachedHead uint64 // Producer's cached view of head
	_          pad
	buffer     []T
	capacity   uint64 // Physical slot count n; usable capacity is n-1
}

// NewSPSC creates a new SPSC ring queue with exactly capacity slots,
// of which capacity-1 are usable. The capacity is not rounded.
// Panics if capacity < 2.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 2 {
		panic("ringq: capacity must be >= 2")
	}

	n := uint64(capacity)
	return &SPSC[T]{
		buffer:   make([]T, n),
		capacity: n,
	}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSC[T]) Enqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead >= q.capacity-1 {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead >= q.capacity-1 {
			return ErrWouldBlock
		}
	}

	q.buffer[tail%q.capacity] = *elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := q.buffer[head%q.capacity]
	var zero T
	q.buffer[head%q.capacity] = zero
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Cap returns the usable queue capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.capacity - 1)
}
