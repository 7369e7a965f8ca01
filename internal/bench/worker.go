// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringq"
)

// value is the deterministic item for producer p's j-th enqueue.
// Across all producers the values enumerate 1..producers*itemsPerProducer
// exactly once, so the delivered multiset is checkable from the sum alone.
func value(p, itemsPerProducer, j int) int64 {
	return int64(p)*int64(itemsPerProducer) + int64(j) + 1
}

// expectedTotal is the closed form of sum(value(p, i, j)) over all p and j:
// the values are a permutation of 1..t for t = producers*itemsPerProducer.
func expectedTotal(producers, itemsPerProducer int) int64 {
	t := int64(producers) * int64(itemsPerProducer)
	return t * (t + 1) / 2
}

// workerTask is the immutable per-goroutine configuration. It is created by
// the harness before spawning and only read for the worker's lifetime; the
// queue and accumulator are shared by reference across all workers.
type workerTask struct {
	id    int
	items int
	queue *ringq.MPMC[int64]
	total *atomix.Int64
}

// produce enqueues the task's assigned values in sequence. A full queue is
// transient backpressure, retried with spin-then-yield backoff; there is no
// timeout, so a stalled consumer side stalls the producer too.
func (w workerTask) produce() error {
	backoff := iox.Backoff{}
	for j := 0; j < w.items; j++ {
		v := value(w.id, w.items, j)
		for w.queue.Enqueue(&v) != nil {
			backoff.Wait()
		}
		backoff.Reset()
	}
	return nil
}

// consume dequeues the task's assigned item count, folding each value into
// the shared accumulator with an atomic add. An empty queue is retried the
// same way a full one is on the producer side.
//
// maxValue bounds the legal value range; anything outside it means the
// queue handed over a torn or duplicated slot and the run is aborted.
func (w workerTask) consume(maxValue int64) error {
	backoff := iox.Backoff{}
	for i := 0; i < w.items; i++ {
		var v int64
		for {
			elem, err := w.queue.Dequeue()
			if err == nil {
				v = elem
				break
			}
			backoff.Wait()
		}
		backoff.Reset()
		if v < 1 || v > maxValue {
			return fmt.Errorf("bench: consumer %d dequeued out-of-range value %d", w.id, v)
		}
		w.total.Add(v)
	}
	return nil
}
