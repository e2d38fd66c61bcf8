// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// Network byte order helpers in the traditional htons/ntohs spelling.
// Network byte order is big-endian, so these are aliases of the CPUToBE /
// BEToCPU conversions.

// Htons converts a 16-bit value from host to network byte order.
func Htons(x uint16) uint16 { return CPUToBE16(x) }

// Htonl converts a 32-bit value from host to network byte order.
func Htonl(x uint32) uint32 { return CPUToBE32(x) }

// Htonll converts a 64-bit value from host to network byte order.
func Htonll(x uint64) uint64 { return CPUToBE64(x) }

// Ntohs converts a 16-bit value from network to host byte order.
func Ntohs(x uint16) uint16 { return BE16ToCPU(x) }

// Ntohl converts a 32-bit value from network to host byte order.
func Ntohl(x uint32) uint32 { return BE32ToCPU(x) }

// Ntohll converts a 64-bit value from network to host byte order.
func Ntohll(x uint64) uint64 { return BE64ToCPU(x) }
