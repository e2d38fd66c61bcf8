//go:build cpulittleendian && cpubigendian

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// Exactly one byte order override may be set per build.
var _ = "conflicting byte order overrides: cpulittleendian and cpubigendian are mutually exclusive" + 1
