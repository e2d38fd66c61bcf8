// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian_test

import (
	"math/rand"
	"testing"

	"code.hybscloud.com/endian"
)

func TestSwapExactBytes(t *testing.T) {
	if got := endian.Swap16(0x0102); got != 0x0201 {
		t.Fatalf("Swap16(0x0102) = %#04x, want 0x0201", got)
	}
	if got := endian.Swap32(0x01020304); got != 0x04030201 {
		t.Fatalf("Swap32(0x01020304) = %#08x, want 0x04030201", got)
	}
	if got := endian.Swap64(0x0102030405060708); got != 0x0807060504030201 {
		t.Fatalf("Swap64(0x0102030405060708) = %#016x, want 0x0807060504030201", got)
	}
}

func TestSwapSelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x16 := uint16(rng.Uint32())
		if got := endian.Swap16(endian.Swap16(x16)); got != x16 {
			t.Fatalf("Swap16(Swap16(%#04x)) = %#04x", x16, got)
		}
		x32 := rng.Uint32()
		if got := endian.Swap32(endian.Swap32(x32)); got != x32 {
			t.Fatalf("Swap32(Swap32(%#08x)) = %#08x", x32, got)
		}
		x64 := rng.Uint64()
		if got := endian.Swap64(endian.Swap64(x64)); got != x64 {
			t.Fatalf("Swap64(Swap64(%#016x)) = %#016x", x64, got)
		}
	}
}

func TestSwapBoundaryValues(t *testing.T) {
	if endian.Swap16(0x0000) != 0x0000 || endian.Swap16(0xFFFF) != 0xFFFF {
		t.Fatal("16-bit boundary patterns not invariant under swap")
	}
	if endian.Swap32(0x00000000) != 0x00000000 || endian.Swap32(0xFFFFFFFF) != 0xFFFFFFFF {
		t.Fatal("32-bit boundary patterns not invariant under swap")
	}
	if endian.Swap64(0) != 0 || endian.Swap64(0xFFFFFFFFFFFFFFFF) != 0xFFFFFFFFFFFFFFFF {
		t.Fatal("64-bit boundary patterns not invariant under swap")
	}
}
