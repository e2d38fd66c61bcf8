// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "io"

// Width is the size of the fixed-width values a Transcoder relays.
type Width uint8

const (
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

func (w Width) valid() bool {
	switch w {
	case Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

// Transcoder relays a stream of fixed-width values from a source to a
// destination, converting byte order in flight (for example a little-endian
// file to a big-endian wire).
//
// Semantics:
//   - One call to TranscodeOnce processes at most one value.
//   - Two-phase state machine per value:
//     1) Read a whole value from src in the read byte order (non-blocking;
//     may return early with ErrWouldBlock or ErrMore and retained partial
//     progress).
//     2) Write that value to dst in the write byte order (non-blocking; may
//     return early with ErrWouldBlock or ErrMore).
//   - Returns nil when a whole value has been relayed to dst.
//
// Retry rule:
//   - On ErrWouldBlock or ErrMore, the caller must retry TranscodeOnce on the
//     SAME Transcoder instance to complete the in-flight value. Do not reuse a
//     different instance because the in-flight state (read/write progress) is
//     maintained internally.
type Transcoder struct {
	// Read and write codecs (directional state).
	rc *codec // read-side state (uses rc.rd, rc.rbo)
	wc *codec // write-side state (uses wc.wr, wc.wbo)

	width Width

	// Per-value state.
	v     uint64
	state uint8 // 0: read value, 1: write value
}

// NewTranscoder constructs a Transcoder that relays width-sized values from
// src to dst. Options apply per direction (read/write) following the same
// rules as Reader/Writer; set differing byte orders with WithReadByteOrder
// and WithWriteByteOrder.
func NewTranscoder(dst io.Writer, src io.Reader, width Width, opts ...Option) *Transcoder {
	return &Transcoder{
		rc:    newCodec(src, nil, opts...),
		wc:    newCodec(nil, dst, opts...),
		width: width,
	}
}

// TranscodeOnce relays at most one value. See Transcoder docs for semantics.
// It returns io.EOF when the source is exhausted at a value boundary and
// io.ErrUnexpectedEOF when the source ends mid-value.
func (t *Transcoder) TranscodeOnce() error {
	if !t.width.valid() {
		return ErrInvalidArgument
	}

	// Phase 0: read one value from the source in the read byte order.
	if t.state == 0 {
		b, err := t.rc.readValue(int(t.width))
		if err != nil {
			return err
		}
		switch t.width {
		case Width16:
			t.v = uint64(t.rc.rbo.Uint16(b))
		case Width32:
			t.v = uint64(t.rc.rbo.Uint32(b))
		case Width64:
			t.v = t.rc.rbo.Uint64(b)
		}
		t.state = 1
	}

	// Phase 1: write the value to the destination in the write byte order.
	if err := t.wc.writeValue(int(t.width), t.v); err != nil {
		return err
	}
	t.state = 0
	return nil
}

// Transcode relays values until the source is exhausted and returns the
// number of whole values relayed. A clean io.EOF at a value boundary is not
// an error; truncation mid-value is io.ErrUnexpectedEOF. Semantic
// control-flow errors (ErrWouldBlock, ErrMore) are returned with the progress
// so far; retry Transcode on the same instance to continue.
func (t *Transcoder) Transcode() (n int64, err error) {
	for {
		err = t.TranscodeOnce()
		if err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
		n++
	}
}
