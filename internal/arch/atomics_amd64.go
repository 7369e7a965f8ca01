// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package arch

// FastAtomics reports whether atomic read-modify-write compiles to a single
// hardware instruction on this target.
//
// amd64 has LOCK-prefixed XADD/CMPXCHG in the base ISA.
const FastAtomics = true

// AtomicsLabel names the atomic mechanism the target compiles to.
const AtomicsLabel = "LOCK-prefixed RMW"
