// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package arch

// FastAtomics is false on targets without a known single-instruction
// atomic read-modify-write path.
const FastAtomics = false

// AtomicsLabel names the atomic mechanism the target compiles to.
const AtomicsLabel = "LL/SC or unknown"
