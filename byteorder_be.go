//go:build cpubigendian || (!cpulittleendian && (s390x || ppc64 || mips || mips64))

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// nativeIsLittle is the resolved target byte order for common big-endian
// Go ports, or for an explicit cpubigendian build-tag override.
const nativeIsLittle = false
