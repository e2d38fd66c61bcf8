// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import "io"

// NewReader returns a Reader that decodes fixed-width values from r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{c: newCodec(r, nil, opts...)}
}

// NewWriter returns a Writer that encodes fixed-width values to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{c: newCodec(nil, w, opts...)}
}

// NewReadWriter returns a ReadWriter that decodes from r and encodes to w
// with a shared configuration.
func NewReadWriter(r io.Reader, w io.Writer, opts ...Option) *ReadWriter {
	c := newCodec(r, w, opts...)
	return &ReadWriter{Reader: &Reader{c: c}, Writer: &Writer{c: c}}
}

// Reader decodes fixed-width unsigned values from an io.Reader in the
// configured byte order (native by default).
//
// Non-blocking semantics: if the underlying reader returns iox.ErrWouldBlock
// or iox.ErrMore, the value read returns immediately with the same semantic
// error. Bytes already consumed for the in-flight value are retained; retry
// the same call on the same Reader to complete it.
type Reader struct{ c *codec }

// ReadUint16 reads one 16-bit value.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.c.readValue(2)
	if err != nil {
		return 0, err
	}
	return r.c.rbo.Uint16(b), nil
}

// ReadUint32 reads one 32-bit value.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.c.readValue(4)
	if err != nil {
		return 0, err
	}
	return r.c.rbo.Uint32(b), nil
}

// ReadUint64 reads one 64-bit value.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.c.readValue(8)
	if err != nil {
		return 0, err
	}
	return r.c.rbo.Uint64(b), nil
}

// Read passes raw bytes through from the underlying reader. It fails with
// ErrInvalidArgument while a fixed-width value read is in flight.
func (r *Reader) Read(p []byte) (int, error) { return r.c.read(p) }

// Writer encodes fixed-width unsigned values to an io.Writer in the
// configured byte order (native by default).
//
// Non-blocking semantics: if the underlying writer returns iox.ErrWouldBlock
// or iox.ErrMore, the value write returns immediately with the same semantic
// error. The unwritten tail of the in-flight value is retained; retry the
// same call with the same value on the same Writer to complete it.
type Writer struct{ c *codec }

// WriteUint16 writes one 16-bit value.
func (w *Writer) WriteUint16(v uint16) error { return w.c.writeValue(2, uint64(v)) }

// WriteUint32 writes one 32-bit value.
func (w *Writer) WriteUint32(v uint32) error { return w.c.writeValue(4, uint64(v)) }

// WriteUint64 writes one 64-bit value.
func (w *Writer) WriteUint64(v uint64) error { return w.c.writeValue(8, v) }

// Write passes raw bytes through to the underlying writer. It fails with
// ErrInvalidArgument while a fixed-width value write is in flight.
func (w *Writer) Write(p []byte) (int, error) { return w.c.write(p) }

// ReadWriter groups Reader and Writer.
type ReadWriter struct {
	*Reader
	*Writer
}
