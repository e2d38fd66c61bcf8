// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

// SwapBytes16 reverses the bytes of each 16-bit word in p, in place.
// It fails with ErrInvalidArgument when len(p) is not a multiple of 2.
func SwapBytes16(p []byte) error {
	if len(p)%2 != 0 {
		return ErrInvalidArgument
	}
	for i := 0; i < len(p); i += 2 {
		p[i], p[i+1] = p[i+1], p[i]
	}
	return nil
}

// SwapBytes32 reverses the bytes of each 32-bit word in p, in place.
// It fails with ErrInvalidArgument when len(p) is not a multiple of 4.
func SwapBytes32(p []byte) error {
	if len(p)%4 != 0 {
		return ErrInvalidArgument
	}
	for i := 0; i < len(p); i += 4 {
		p[i], p[i+3] = p[i+3], p[i]
		p[i+1], p[i+2] = p[i+2], p[i+1]
	}
	return nil
}

// SwapBytes64 reverses the bytes of each 64-bit word in p, in place.
// It fails with ErrInvalidArgument when len(p) is not a multiple of 8.
func SwapBytes64(p []byte) error {
	if len(p)%8 != 0 {
		return ErrInvalidArgument
	}
	for i := 0; i < len(p); i += 8 {
		p[i], p[i+7] = p[i+7], p[i]
		p[i+1], p[i+6] = p[i+6], p[i+1]
		p[i+2], p[i+5] = p[i+5], p[i+2]
		p[i+3], p[i+4] = p[i+4], p[i+3]
	}
	return nil
}
