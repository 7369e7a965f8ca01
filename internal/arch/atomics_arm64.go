// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package arch

// FastAtomics reports whether atomic read-modify-write compiles to a single
// hardware instruction on this target.
//
// arm64 builds carry LSE (LDADD, CAS) encodings; the runtime selects them
// over the LDXR/STXR fallback when the CPU supports them.
const FastAtomics = true

// AtomicsLabel names the atomic mechanism the target compiles to.
const AtomicsLabel = "LSE"
