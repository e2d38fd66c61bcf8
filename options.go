// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"encoding/binary"
	"time"
)

// Options configures the stream codec (Reader, Writer, Transcoder).
type Options struct {
	// ReadByteOrder is the byte order values are decoded with.
	ReadByteOrder binary.ByteOrder
	// WriteByteOrder is the byte order values are encoded with.
	WriteByteOrder binary.ByteOrder

	// RetryDelay controls how the codec handles iox.ErrWouldBlock from the underlying transport:
	//   - negative: nonblock, return ErrWouldBlock immediately
	//   - zero: yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	RetryDelay time.Duration
}

var defaultOptions = Options{
	ReadByteOrder:  Native(),
	WriteByteOrder: Native(),
	RetryDelay:     -1, // default: nonblock
}

type Option func(*Options)

func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) {
		o.ReadByteOrder = order
		o.WriteByteOrder = order
	}
}

func WithReadByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) { o.ReadByteOrder = order }
}

func WithWriteByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) { o.WriteByteOrder = order }
}

// WithNetworkByteOrder sets both directions to network byte order (big-endian).
// This is the order to use on the wire.
func WithNetworkByteOrder() Option {
	return func(o *Options) {
		o.ReadByteOrder = Network()
		o.WriteByteOrder = Network()
	}
}

// WithNativeByteOrder sets both directions to the target CPU's byte order.
// This is the order to use for local, same-machine data.
func WithNativeByteOrder() Option {
	return func(o *Options) {
		o.ReadByteOrder = Native()
		o.WriteByteOrder = Native()
	}
}

// WithRetryDelay sets the retry/wait policy used when the underlying transport returns iox.ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on iox.ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior (return iox.ErrWouldBlock immediately).
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}
