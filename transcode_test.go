// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"code.hybscloud.com/endian"
)

func TestTranscode_LittleToBig(t *testing.T) {
	vals := []uint32{0x01020304, 0xDEADBEEF, 0, 0xFFFFFFFF}
	var src bytes.Buffer
	for _, v := range vals {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		src.Write(b[:])
	}

	var dst bytes.Buffer
	tr := endian.NewTranscoder(&dst, &src, endian.Width32,
		endian.WithReadByteOrder(binary.LittleEndian),
		endian.WithWriteByteOrder(binary.BigEndian))

	n, err := tr.Transcode()
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	if n != int64(len(vals)) {
		t.Fatalf("Transcode n=%d, want %d", n, len(vals))
	}

	out := dst.Bytes()
	for i, v := range vals {
		if got := binary.BigEndian.Uint32(out[i*4:]); got != v {
			t.Fatalf("value[%d] = %#08x, want %#08x", i, got, v)
		}
	}
}

func TestTranscode_AllWidths(t *testing.T) {
	cases := []struct {
		width endian.Width
		in    []byte
		want  []byte
	}{
		{endian.Width16, []byte{0x01, 0x02}, []byte{0x02, 0x01}},
		{endian.Width32, []byte{0x01, 0x02, 0x03, 0x04}, []byte{0x04, 0x03, 0x02, 0x01}},
		{endian.Width64,
			[]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
			[]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
	}
	for _, tc := range cases {
		var dst bytes.Buffer
		tr := endian.NewTranscoder(&dst, bytes.NewReader(tc.in), tc.width,
			endian.WithReadByteOrder(binary.BigEndian),
			endian.WithWriteByteOrder(binary.LittleEndian))
		if n, err := tr.Transcode(); err != nil || n != 1 {
			t.Fatalf("width %d: n=%d err=%v", tc.width, n, err)
		}
		if !bytes.Equal(dst.Bytes(), tc.want) {
			t.Fatalf("width %d: out %x, want %x", tc.width, dst.Bytes(), tc.want)
		}
	}
}

func TestTranscodeOnce_EOFAtBoundary(t *testing.T) {
	var dst bytes.Buffer
	tr := endian.NewTranscoder(&dst, bytes.NewReader(nil), endian.Width16)
	if err := tr.TranscodeOnce(); err != io.EOF {
		t.Fatalf("empty source: %v, want io.EOF", err)
	}
}

func TestTranscode_TruncatedValue(t *testing.T) {
	var dst bytes.Buffer
	tr := endian.NewTranscoder(&dst, bytes.NewReader([]byte{0x01, 0x02, 0x03}), endian.Width32)
	n, err := tr.Transcode()
	if n != 0 || err != io.ErrUnexpectedEOF {
		t.Fatalf("truncated: n=%d err=%v, want 0, io.ErrUnexpectedEOF", n, err)
	}
}

func TestTranscode_InvalidWidth(t *testing.T) {
	var dst bytes.Buffer
	tr := endian.NewTranscoder(&dst, bytes.NewReader([]byte{1, 2}), endian.Width(3))
	if err := tr.TranscodeOnce(); err != endian.ErrInvalidArgument {
		t.Fatalf("invalid width: %v, want ErrInvalidArgument", err)
	}
}

func TestTranscode_WriteWouldBlock_ThenCompletesOnRetry(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03, 0x04}
	dst := &wouldBlockOnceWriter{chunk: 2}
	tr := endian.NewTranscoder(dst, bytes.NewReader(in), endian.Width32,
		endian.WithByteOrder(binary.BigEndian), endian.WithNonblock())

	if err := tr.TranscodeOnce(); err != endian.ErrWouldBlock {
		t.Fatalf("first call: %v, want ErrWouldBlock", err)
	}
	// Retry on the same instance finishes the in-flight value.
	if err := tr.TranscodeOnce(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !bytes.Equal(dst.buf.Bytes(), in) {
		t.Fatalf("out %x, want %x", dst.buf.Bytes(), in)
	}
	if err := tr.TranscodeOnce(); err != io.EOF {
		t.Fatalf("after last value: %v, want io.EOF", err)
	}
}

func TestTranscode_ReadWouldBlock_ProgressPreserved(t *testing.T) {
	var wire [2]byte
	binary.BigEndian.PutUint16(wire[:], 0xABCD)
	src := &wbOnceReader{b: wire[:], chunk: 1}
	var dst bytes.Buffer
	tr := endian.NewTranscoder(&dst, src, endian.Width16,
		endian.WithByteOrder(binary.BigEndian), endian.WithNonblock())

	if err := tr.TranscodeOnce(); err != endian.ErrWouldBlock {
		t.Fatalf("first call: %v, want ErrWouldBlock", err)
	}
	if err := tr.TranscodeOnce(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !bytes.Equal(dst.Bytes(), wire[:]) {
		t.Fatalf("out %x, want %x", dst.Bytes(), wire[:])
	}
}
