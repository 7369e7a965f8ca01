// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ringq-bench measures MPMC ring queue throughput and cross-checks
// delivery against a closed-form expected total.
//
// Usage:
//
//	go run ./cmd/ringq-bench
//	go run ./cmd/ringq-bench -producers 4 -consumers 4 -items 100000
//
// All flags have defaults; no arguments are required. The report is printed
// to stdout in fixed line order; configuration errors go to stderr with a
// non-zero exit status.
package main

import (
	"flag"
	"fmt"
	"os"

	"code.hybscloud.com/ringq/internal/arch"
	"code.hybscloud.com/ringq/internal/bench"
)

func main() {
	def := bench.DefaultConfig()
	producers := flag.Int("producers", def.Producers, "number of producer goroutines")
	consumers := flag.Int("consumers", def.Consumers, "number of consumer goroutines")
	items := flag.Int("items", def.ItemsPerProducer, "items enqueued per producer")
	capacity := flag.Int("capacity", def.Capacity, "queue slot count (usable capacity is one less)")
	flag.Parse()

	cfg := bench.Config{
		Producers:        *producers,
		Consumers:        *consumers,
		ItemsPerProducer: *items,
		Capacity:         *capacity,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "ringq-bench:", err)
		os.Exit(1)
	}

	fmt.Printf("CPU Architecture: %s\n", arch.Label())
	if arch.FastAtomics {
		fmt.Printf("Fast Atomics: %s\n", arch.AtomicsLabel)
	} else {
		fmt.Printf("Fast Atomics: not available (%s)\n", arch.AtomicsLabel)
	}

	fmt.Printf("\nBenchmarking lock-free queue with %d producers and %d consumers...\n",
		cfg.Producers, cfg.Consumers)
	fmt.Printf("Each producer will enqueue %d items\n", cfg.ItemsPerProducer)
	fmt.Printf("Each consumer will dequeue %d items\n", cfg.ItemsPerConsumer())

	res, err := bench.Run(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ringq-bench:", err)
		os.Exit(1)
	}

	fmt.Printf("Total time: %.6f seconds\n", res.Elapsed.Seconds())
	fmt.Printf("Operations per second: %.2f million\n", res.ThroughputM())
	fmt.Printf("Final total: %d\n", res.Total)
	fmt.Printf("Expected total: %d\n", res.Expected)
}
