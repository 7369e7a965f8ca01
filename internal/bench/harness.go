// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench runs producer/consumer workloads over a shared MPMC ring
// queue and validates delivery, not just speed.
//
// P producers enqueue deterministic values, C consumers fold dequeued values
// into one shared atomic accumulator, and the harness compares the final
// total against a closed-form expected sum after all workers have joined.
// A mismatch means the queue lost or duplicated an item under interleaving;
// it cannot be produced by scheduling alone.
package bench

import (
	"errors"
	"time"

	"code.hybscloud.com/atomix"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/ringq"
)

// Result holds the measurements and the correctness cross-check of one run.
type Result struct {
	Config  Config
	Elapsed time.Duration
	// Ops counts one enqueue and one dequeue per delivered item.
	Ops int64
	// Total is the accumulator value after all consumers joined.
	Total int64
	// Expected is the closed-form sum the accumulator must reach.
	Expected int64
}

// ThroughputM returns throughput in millions of operations per second.
func (r *Result) ThroughputM() float64 {
	return float64(r.Ops) / r.Elapsed.Seconds() / 1e6
}

// OK reports whether the delivered total matches the expected total.
func (r *Result) OK() bool {
	return r.Total == r.Expected
}

// Run executes one harness run: construct the shared queue and accumulator,
// start consumers then producers, join both sides, and read the clock around
// the whole spawn-to-join region.
//
// Workers have no timeout (matching the measured protocol), so Run only
// terminates because Validate guarantees assigned consumption equals
// assigned production. The returned error covers invalid configuration or a
// consumer observing an out-of-range value; a plain total mismatch is
// reported through Result, not as an error.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	queue := ringq.NewMPMC[int64](cfg.Capacity)
	var total atomix.Int64
	maxValue := int64(cfg.TotalItems())

	var producers, consumers errgroup.Group
	start := time.Now()

	// Consumers first: the queue tolerates waiting on either side, and
	// starting the draining side early keeps the ring from filling during
	// producer spawn.
	for c := range cfg.Consumers {
		task := workerTask{
			id:    c,
			items: cfg.ItemsPerConsumer(),
			queue: queue,
			total: &total,
		}
		consumers.Go(func() error { return task.consume(maxValue) })
	}

	for p := range cfg.Producers {
		task := workerTask{
			id:    p,
			items: cfg.ItemsPerProducer,
			queue: queue,
			total: &total,
		}
		producers.Go(task.produce)
	}

	perr := producers.Wait()
	cerr := consumers.Wait()
	elapsed := time.Since(start)

	if err := errors.Join(perr, cerr); err != nil {
		return nil, err
	}

	return &Result{
		Config:   cfg,
		Elapsed:  elapsed,
		Ops:      2 * int64(cfg.TotalItems()),
		Total:    total.Load(),
		Expected: expectedTotal(cfg.Producers, cfg.ItemsPerProducer),
	}, nil
}
