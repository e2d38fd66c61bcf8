//go:build !cpulittleendian && !cpubigendian && !amd64 && !arm64 && !386 && !riscv64 && !ppc64le && !mips64le && !mipsle && !loong64 && !wasm && !arm && !s390x && !ppc64 && !mips && !mips64

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// This file compiles only when the target GOARCH is not in either known byte
// order list. Guessing an order here would corrupt data silently, so the
// build is stopped with a deliberate compile error instead. State the order
// explicitly with -tags cpulittleendian or -tags cpubigendian.
var _ = "unable to resolve the target CPU byte order from GOARCH; build with -tags cpulittleendian or -tags cpubigendian" + 1
