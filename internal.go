// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"encoding/binary"
	"io"
	"runtime"
	"time"
)

type codec struct {
	rd  io.Reader
	rbo binary.ByteOrder
	wr  io.Writer
	wbo binary.ByteOrder

	retryDelay time.Duration

	// read state: partially read fixed-width value
	rbuf [8]byte
	roff int

	// write state: partially written fixed-width value
	wbuf [8]byte
	woff int
	wlen int
}

func newCodec(r io.Reader, w io.Writer, opts ...Option) *codec {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	return &codec{
		rd:         r,
		wr:         w,
		rbo:        o.ReadByteOrder,
		wbo:        o.WriteByteOrder,
		retryDelay: o.RetryDelay,
	}
}

func (c *codec) waitOnceOnWouldBlock() bool {
	// returns whether the caller should retry
	if c.retryDelay < 0 {
		return false
	}
	if c.retryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(c.retryDelay)
	return true
}

func (c *codec) readOnce(p []byte) (n int, err error) {
	for {
		n, err = c.rd.Read(p)
		// Guard against broken Readers that violate the io.Reader contract by
		// returning (0, nil) on a non-empty buffer. Without this, a value read
		// can spin indefinitely.
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrNoProgress
		}
		if n > 0 {
			return n, err
		}
		if err != ErrWouldBlock {
			return n, err
		}
		if !c.waitOnceOnWouldBlock() {
			return n, err
		}
	}
}

func (c *codec) writeOnce(p []byte) (n int, err error) {
	for {
		n, err = c.wr.Write(p)
		// Guard against broken Writers that violate the io.Writer contract by
		// returning (0, nil) on a non-empty buffer. Without this, a value
		// write can spin indefinitely.
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrShortWrite
		}
		if n > 0 {
			return n, err
		}
		if err != ErrWouldBlock {
			return n, err
		}
		if !c.waitOnceOnWouldBlock() {
			return n, err
		}
	}
}

// readValue reads exactly width bytes into the read scratch buffer.
//
// Value read contract:
// In Nonblock mode, partial progress may be returned with iox.ErrWouldBlock.
// The partial bytes are retained; the caller must retry on the same codec to
// complete the in-flight value. io.EOF is returned only at a value boundary;
// truncation mid-value is io.ErrUnexpectedEOF.
func (c *codec) readValue(width int) ([]byte, error) {
	if c.rd == nil {
		return nil, ErrInvalidArgument
	}
	for c.roff < width {
		n, err := c.readOnce(c.rbuf[c.roff:width])
		c.roff += n
		if err != nil {
			if err == io.EOF {
				if c.roff == 0 {
					// Clean EOF at value boundary.
					return nil, io.EOF
				}
				if c.roff < width {
					// Partial value read; stream truncated.
					return nil, io.ErrUnexpectedEOF
				}
				break
			}
			// Preserve semantic control-flow errors.
			return nil, err
		}
	}
	c.roff = 0
	return c.rbuf[:width], nil
}

// writeValue encodes v at the given width and writes it out.
//
// The encoded bytes are staged once per value; on ErrWouldBlock the unwritten
// tail is retained and the caller must retry with the same value on the same
// codec to finish it.
func (c *codec) writeValue(width int, v uint64) error {
	if c.wr == nil {
		return ErrInvalidArgument
	}
	if c.woff == 0 {
		switch width {
		case 2:
			c.wbo.PutUint16(c.wbuf[:2], uint16(v))
		case 4:
			c.wbo.PutUint32(c.wbuf[:4], uint32(v))
		case 8:
			c.wbo.PutUint64(c.wbuf[:8], v)
		default:
			return ErrInvalidArgument
		}
		c.wlen = width
	} else if c.wlen != width {
		// The caller switched widths mid-value.
		return io.ErrShortWrite
	}

	for c.woff < c.wlen {
		n, err := c.writeOnce(c.wbuf[c.woff:c.wlen])
		c.woff += n
		if err != nil {
			return err
		}
	}

	c.woff, c.wlen = 0, 0
	return nil
}

func (c *codec) read(p []byte) (n int, err error) {
	if c.rd == nil {
		return 0, ErrInvalidArgument
	}
	if c.roff != 0 {
		// A fixed-width value is in flight; raw reads would corrupt it.
		return 0, ErrInvalidArgument
	}
	return c.readOnce(p)
}

func (c *codec) write(p []byte) (n int, err error) {
	if c.wr == nil {
		return 0, ErrInvalidArgument
	}
	if c.woff != 0 {
		// A fixed-width value is in flight; raw writes would corrupt it.
		return 0, ErrInvalidArgument
	}
	return c.writeOnce(p)
}
