// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides bounded FIFO ring queues and a producer/consumer
// throughput harness that validates delivery correctness.
//
// Two queue variants cover the supported access patterns:
//
//   - MPMC: Multi-Producer Multi-Consumer (CAS ticket claim + per-slot sequences)
//   - SPSC: Single-Producer Single-Consumer (Lamport ring with cached indices)
//
// # Quick Start
//
//	q := ringq.NewMPMC[int64](1024)
//
//	// Enqueue (non-blocking)
//	v := int64(42)
//	if err := q.Enqueue(&v); ringq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	elem, err := q.Dequeue()
//	if ringq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Capacity and the Sentinel Slot
//
// A queue constructed with capacity n allocates exactly n slots and holds at
// most n-1 items. The unused slot is a sentinel: with it, two ticket counters
// fully disambiguate "full" from "empty", and no shared length counter is
// needed. Capacity is taken exactly as given (no power-of-two rounding), so
// Cap() always returns n-1. Minimum capacity is 2; the constructors panic
// below that.
//
// # Delivery Guarantees
//
// Every successfully enqueued item is dequeued exactly once: the ticket CAS
// makes slot claims exclusive, and per-slot sequences order slot-fill
// completion against ticket advancement with release/acquire semantics.
// Strict FIFO holds for single-producer single-consumer use of either
// variant; under multiple producers or consumers, delivery is exactly-once
// but not globally ordered.
//
// # Error Handling
//
// Queues return [ErrWouldBlock] when operations cannot proceed. This error
// is sourced from [code.hybscloud.com/iox] for ecosystem consistency and is
// a control flow signal, not a failure:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&item) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Benchmark Harness
//
// The internal/bench package spawns P producers and C consumers over one
// shared MPMC queue, folds consumed values into a shared atomic accumulator,
// and checks the final total against a closed-form expected sum. Any
// mismatch indicates lost or duplicated items, not a benchmark artifact.
// The cmd/ringq-bench binary runs that harness and prints a fixed-order
// report.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships established
// through atomic acquire/release orderings on separate variables, so
// concurrent tests of the generic queues report false positives. Those tests
// are gated on [RaceEnabled]. For lock-free correctness verification, rely
// on the stress tests without the race detector.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package ringq
