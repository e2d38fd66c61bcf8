// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"errors"

	"code.hybscloud.com/iox"
)

var (
	// ErrInvalidArgument reports an invalid configuration, a nil
	// reader/writer, or a misaligned buffer length.
	ErrInvalidArgument = errors.New("endian: invalid argument")
)

// These are provided as package-level aliases so callers can reference the
// semantic control-flow errors without importing iox directly.
var (
	// ErrWouldBlock means “no further progress without waiting”.
	//
	// It is an expected, non-failure control-flow signal for non-blocking I/O.
	// Partial progress on a fixed-width value is retained; retry the same call
	// on the same Reader/Writer/Transcoder to complete it, or configure
	// RetryDelay to emulate cooperative blocking on top of a non-blocking
	// transport.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means “this completion is usable and more completions will follow”.
	//
	// It is not io.EOF and not “try later”. The operation remains active and
	// additional data is expected from the same ongoing operation.
	ErrMore = iox.ErrMore
)
