// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package arch reports compile-time atomic capabilities of the target.
//
// The probe is informational: queue and harness logic never branch on it.
// It exists so benchmark output records whether the build target has a
// single-instruction atomic read-modify-write path or falls back to a
// load-linked/store-conditional loop, which materially changes measured
// fetch-add throughput under contention.
//
// Capability selection happens once at build configuration time via one
// file per architecture, instead of scattering build-tag branches through
// calling code.
package arch

import "runtime"

// Label returns a human-readable identifier for the build target.
func Label() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
