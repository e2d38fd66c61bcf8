//go:build cpulittleendian || (!cpubigendian && (amd64 || arm64 || 386 || riscv64 || ppc64le || mips64le || mipsle || loong64 || wasm || arm))

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// nativeIsLittle is the resolved target byte order for common little-endian
// Go ports, or for an explicit cpulittleendian build-tag override.
const nativeIsLittle = true
