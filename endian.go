// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package endian converts fixed-width unsigned integers between the CPU's
// native byte order and a named (little or big) byte order.
//
// Semantics and design:
//   - Compile-time resolution: the target byte order is a per-GOARCH constant
//     selected by build tags (byteorder_le.go / byteorder_be.go). On a target
//     whose order is not known, the build fails with a diagnostic naming the
//     cpulittleendian / cpubigendian override tags; the package never guesses.
//     Only little and big endian exist; mixed (PDP) orderings are unbuildable
//     by construction.
//   - Self-inverse conversions: converting CPU→order and order→CPU are the
//     same byte reversal, so each <Order><Width>ToCPU function is an alias of
//     its CPUTo<Order><Width> counterpart rather than a second code path.
//   - Pure value functions: the conversions have no error returns, no side
//     effects, and no allocation. Every bit pattern is a valid input. They are
//     safe to call from any number of goroutines without coordination.
//   - Non-blocking first: the stream codec (Reader, Writer, Transcoder)
//     surfaces iox.ErrWouldBlock and iox.ErrMore as control-flow signals,
//     re-exposed as endian.ErrWouldBlock / endian.ErrMore.
//
// Network byte order is big-endian; the Htons/Htonl/Htonll family is provided
// as thin aliases of the CPUToBE conversions.
package endian

import "encoding/binary"

// IsLittleEndian reports whether the target CPU stores integers least
// significant byte first. Exactly one of IsLittleEndian and IsBigEndian is
// true for any given build.
func IsLittleEndian() bool { return nativeIsLittle }

// IsBigEndian reports whether the target CPU stores integers most significant
// byte first.
func IsBigEndian() bool { return !nativeIsLittle }

// Native returns the target CPU's byte order as a binary.ByteOrder.
func Native() binary.ByteOrder {
	if nativeIsLittle {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Network returns network byte order (big-endian) as a binary.ByteOrder.
func Network() binary.ByteOrder { return binary.BigEndian }

// CPUToLE16 converts a 16-bit value from CPU byte order to little-endian.
func CPUToLE16(x uint16) uint16 {
	if nativeIsLittle {
		return x
	}
	return Swap16(x)
}

// CPUToLE32 converts a 32-bit value from CPU byte order to little-endian.
func CPUToLE32(x uint32) uint32 {
	if nativeIsLittle {
		return x
	}
	return Swap32(x)
}

// CPUToLE64 converts a 64-bit value from CPU byte order to little-endian.
func CPUToLE64(x uint64) uint64 {
	if nativeIsLittle {
		return x
	}
	return Swap64(x)
}

// CPUToBE16 converts a 16-bit value from CPU byte order to big-endian.
func CPUToBE16(x uint16) uint16 {
	if nativeIsLittle {
		return Swap16(x)
	}
	return x
}

// CPUToBE32 converts a 32-bit value from CPU byte order to big-endian.
func CPUToBE32(x uint32) uint32 {
	if nativeIsLittle {
		return Swap32(x)
	}
	return x
}

// CPUToBE64 converts a 64-bit value from CPU byte order to big-endian.
func CPUToBE64(x uint64) uint64 {
	if nativeIsLittle {
		return Swap64(x)
	}
	return x
}

// LE16ToCPU converts a 16-bit value from little-endian to CPU byte order.
// The conversion is its own inverse, so this is CPUToLE16.
func LE16ToCPU(x uint16) uint16 { return CPUToLE16(x) }

// LE32ToCPU converts a 32-bit value from little-endian to CPU byte order.
func LE32ToCPU(x uint32) uint32 { return CPUToLE32(x) }

// LE64ToCPU converts a 64-bit value from little-endian to CPU byte order.
func LE64ToCPU(x uint64) uint64 { return CPUToLE64(x) }

// BE16ToCPU converts a 16-bit value from big-endian to CPU byte order.
// The conversion is its own inverse, so this is CPUToBE16.
func BE16ToCPU(x uint16) uint16 { return CPUToBE16(x) }

// BE32ToCPU converts a 32-bit value from big-endian to CPU byte order.
func BE32ToCPU(x uint32) uint32 { return CPUToBE32(x) }

// BE64ToCPU converts a 64-bit value from big-endian to CPU byte order.
func BE64ToCPU(x uint64) uint64 { return CPUToBE64(x) }
