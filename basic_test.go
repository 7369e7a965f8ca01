// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/ringq"
)

// =============================================================================
// Basic Operations
// =============================================================================

// TestMPMCBasic covers the sentinel capacity contract on a small ring:
// capacity 4 allocates 4 slots of which 3 are usable, the fourth enqueue
// fails, and draining restores the empty state.
func TestMPMCBasic(t *testing.T) {
	q := ringq.NewMPMC[int](4)

	if q.Cap() != 3 {
		t.Fatalf("Cap: got %d, want 3", q.Cap())
	}

	// Enqueue to usable capacity
	for i := range 3 {
		v := i + 100
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	// The sentinel slot never admits an item
	v := 999
	if err := q.Enqueue(&v); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Enqueue on full: got %v, want ErrWouldBlock", err)
	}

	// Dequeue in FIFO order
	for i := range 3 {
		val, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if val != i+100 {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i+100)
		}
	}

	// Empty queue returns ErrWouldBlock
	if _, err := q.Dequeue(); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestMPMCSequentialFIFO checks strict order on a single-threaded run:
// capacity 8, values 1..5 in, the same sequence out, queue empty after.
func TestMPMCSequentialFIFO(t *testing.T) {
	q := ringq.NewMPMC[int](8)

	for i := 1; i <= 5; i++ {
		v := i
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	for i := 1; i <= 5; i++ {
		val, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if val != i {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i)
		}
	}

	if _, err := q.Dequeue(); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Dequeue after drain: got %v, want ErrWouldBlock", err)
	}
}

// TestMPMCExactCapacity verifies that capacity is taken as given, without
// power-of-two rounding, and that the usable bound is always one below it.
func TestMPMCExactCapacity(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 7, 8, 100, 1000} {
		q := ringq.NewMPMC[int](n)
		if q.Cap() != n-1 {
			t.Fatalf("NewMPMC(%d).Cap(): got %d, want %d", n, q.Cap(), n-1)
		}

		accepted := 0
		for i := range n {
			v := i
			if q.Enqueue(&v) == nil {
				accepted++
			}
		}
		if accepted != n-1 {
			t.Fatalf("capacity %d: accepted %d items, want %d", n, accepted, n-1)
		}
	}
}

// TestMPMCFullLeavesStateUnchanged checks that a failed enqueue mutates
// nothing: the queue still drains exactly the items it accepted, in order.
func TestMPMCFullLeavesStateUnchanged(t *testing.T) {
	q := ringq.NewMPMC[int](3)

	for i := range 2 {
		v := i + 1
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	// Repeated failed enqueues must not disturb head, tail, or contents.
	for range 5 {
		v := 999
		if err := q.Enqueue(&v); !errors.Is(err, ringq.ErrWouldBlock) {
			t.Fatalf("Enqueue on full: got %v, want ErrWouldBlock", err)
		}
	}

	for i := range 2 {
		val, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if val != i+1 {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i+1)
		}
	}
	if _, err := q.Dequeue(); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestMPMCWrapAround pushes a small ring through many laps so the per-slot
// sequences re-arm across wrap-around.
func TestMPMCWrapAround(t *testing.T) {
	q := ringq.NewMPMC[int](3)

	for lap := range 1000 {
		for i := range 2 {
			v := lap*2 + i
			if err := q.Enqueue(&v); err != nil {
				t.Fatalf("lap %d: Enqueue(%d): %v", lap, i, err)
			}
		}
		for i := range 2 {
			val, err := q.Dequeue()
			if err != nil {
				t.Fatalf("lap %d: Dequeue(%d): %v", lap, i, err)
			}
			if val != lap*2+i {
				t.Fatalf("lap %d: Dequeue(%d): got %d, want %d", lap, i, val, lap*2+i)
			}
		}
	}
}

// TestSPSCBasic mirrors TestMPMCBasic for the Lamport variant.
func TestSPSCBasic(t *testing.T) {
	q := ringq.NewSPSC[int](4)

	if q.Cap() != 3 {
		t.Fatalf("Cap: got %d, want 3", q.Cap())
	}

	for i := range 3 {
		v := i + 100
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	v := 999
	if err := q.Enqueue(&v); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Enqueue on full: got %v, want ErrWouldBlock", err)
	}

	for i := range 3 {
		val, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if val != i+100 {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i+100)
		}
	}

	if _, err := q.Dequeue(); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestCapacityPanics verifies the constructors reject capacities below the
// two-slot minimum (one usable slot plus the sentinel).
func TestCapacityPanics(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewMPMC(%d): expected panic", n)
				}
			}()
			ringq.NewMPMC[int](n)
		}()

		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSPSC(%d): expected panic", n)
				}
			}()
			ringq.NewSPSC[int](n)
		}()
	}
}

// TestQueueInterface ensures both variants satisfy the combined interface.
func TestQueueInterface(t *testing.T) {
	var _ ringq.Queue[int] = ringq.NewMPMC[int](4)
	var _ ringq.Queue[int] = ringq.NewSPSC[int](4)
}

// TestIsWouldBlock checks the semantic error classification helpers.
func TestIsWouldBlock(t *testing.T) {
	q := ringq.NewMPMC[int](2)

	_, err := q.Dequeue()
	if !ringq.IsWouldBlock(err) {
		t.Fatalf("IsWouldBlock(%v): got false, want true", err)
	}
	if !ringq.IsSemantic(err) {
		t.Fatalf("IsSemantic(%v): got false, want true", err)
	}
	if !ringq.IsNonFailure(err) {
		t.Fatalf("IsNonFailure(%v): got false, want true", err)
	}
	if ringq.IsWouldBlock(nil) {
		t.Fatal("IsWouldBlock(nil): got true, want false")
	}
}
