// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Queue is the combined producer-consumer interface for a FIFO queue.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Both operations
// return ErrWouldBlock when they cannot proceed (queue full or empty).
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Cap returns the usable capacity: one below the physical slot count,
	// since one slot is the sentinel that distinguishes full from empty.
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The queue
// stores a copy of the pointed-to value, so the original can be modified
// after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full.
	//
	// Thread safety depends on queue type:
	//   - SPSC: single producer only
	//   - MPMC: multiple producers safe
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value (copied from the queue's internal buffer).
// The original slot is cleared to allow garbage collection of referenced
// objects.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	//
	// Thread safety depends on queue type:
	//   - SPSC: single consumer only
	//   - MPMC: multiple consumers safe
	Dequeue() (T, error)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
