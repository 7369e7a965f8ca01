// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import "fmt"

// Config describes one harness run. The zero value is not usable;
// start from DefaultConfig and override.
type Config struct {
	// Producers is the number of producer goroutines.
	Producers int
	// Consumers is the number of consumer goroutines.
	Consumers int
	// ItemsPerProducer is the number of items each producer enqueues.
	ItemsPerProducer int
	// Capacity is the physical slot count of the shared queue
	// (usable capacity is one less).
	Capacity int
}

// DefaultConfig mirrors the reference workload: two producers and two
// consumers pushing one million items each through a one-million-slot ring.
func DefaultConfig() Config {
	return Config{
		Producers:        2,
		Consumers:        2,
		ItemsPerProducer: 1_000_000,
		Capacity:         1_000_000,
	}
}

// TotalItems returns the number of items produced across all producers.
func (c Config) TotalItems() int {
	return c.Producers * c.ItemsPerProducer
}

// ItemsPerConsumer returns the number of items each consumer dequeues.
// Only meaningful for a validated config.
func (c Config) ItemsPerConsumer() int {
	return c.TotalItems() / c.Consumers
}

// Validate checks the configuration for a deterministic, terminating run.
//
// The produced total must divide evenly across consumers: each worker runs
// to a fixed assigned count with no cancellation, so an uneven split would
// leave one consumer spinning forever on an empty queue.
func (c Config) Validate() error {
	if c.Producers < 1 {
		return fmt.Errorf("bench: producers must be >= 1, got %d", c.Producers)
	}
	if c.Consumers < 1 {
		return fmt.Errorf("bench: consumers must be >= 1, got %d", c.Consumers)
	}
	if c.ItemsPerProducer < 1 {
		return fmt.Errorf("bench: items per producer must be >= 1, got %d", c.ItemsPerProducer)
	}
	if c.Capacity < 2 {
		return fmt.Errorf("bench: queue capacity must be >= 2, got %d", c.Capacity)
	}
	if c.TotalItems()%c.Consumers != 0 {
		return fmt.Errorf("bench: %d produced items do not divide evenly across %d consumers",
			c.TotalItems(), c.Consumers)
	}
	return nil
}
