// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "math/bits"

// Swap16 returns x with its two bytes reversed.
//
// The swap primitives are unconditional: they do not consult the target byte
// order. All conversion functions are defined on top of these, so their
// correctness never depends on which order the target actually uses. The
// math/bits implementations are portable shift/mask code that the compiler
// lowers to a byte-swap instruction where the target has one.
func Swap16(x uint16) uint16 { return bits.ReverseBytes16(x) }

// Swap32 returns x with its four bytes reversed.
func Swap32(x uint32) uint32 { return bits.ReverseBytes32(x) }

// Swap64 returns x with its eight bytes reversed.
func Swap64(x uint64) uint64 { return bits.ReverseBytes64(x) }
