package zpacker

import (
	"io"
	"math"
)

// FixedWriter is the bounded sink: it writes into a caller-owned byte slice
// and never grows it. Primitive writes are all-or-nothing; when the value
// does not fit, the write is a silent no-op and the caller can detect the
// overflow by Count not advancing. Raw WriteBytes copies as much as fits.
//
// The FixedWriter holds a non-owning reference: the caller keeps the
// backing memory alive for the duration of use.
type FixedWriter struct {
	buf []byte
	n   int
}

var _ Sink = (*FixedWriter)(nil)

// NewFixedWriter creates a FixedWriter over p.
func NewFixedWriter(p []byte) *FixedWriter {
	return &FixedWriter{buf: p}
}

// Write implements the io.Writer interface. It copies min(len(p), Remaining())
// bytes and returns io.ErrShortWrite when p did not fit entirely.
func (w *FixedWriter) Write(p []byte) (int, error) {
	n := copy(w.buf[w.n:], p)
	w.n += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteBytes copies min(len(p), Remaining()) bytes.
func (w *FixedWriter) WriteBytes(p []byte) {
	w.n += copy(w.buf[w.n:], p)
}

// WriteByte implements the io.ByteWriter interface.
func (w *FixedWriter) WriteByte(c byte) error {
	if w.n >= len(w.buf) {
		return io.ErrShortWrite
	}
	w.buf[w.n] = c
	w.n++
	return nil
}

func (w *FixedWriter) WriteUint8(v uint8) {
	if !w.CanWrite(1) {
		return
	}
	w.buf[w.n] = v
	w.n++
}

func (w *FixedWriter) WriteUint16(v uint16) {
	if !w.CanWrite(2) {
		return
	}
	hostOrder.PutUint16(w.buf[w.n:], v)
	w.n += 2
}

func (w *FixedWriter) WriteUint32(v uint32) {
	if !w.CanWrite(4) {
		return
	}
	hostOrder.PutUint32(w.buf[w.n:], v)
	w.n += 4
}

func (w *FixedWriter) WriteUint64(v uint64) {
	if !w.CanWrite(8) {
		return
	}
	hostOrder.PutUint64(w.buf[w.n:], v)
	w.n += 8
}

func (w *FixedWriter) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

func (w *FixedWriter) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// Count returns the total bytes written.
func (w *FixedWriter) Count() int { return w.n }

// Remaining returns the space left in the backing slice.
func (w *FixedWriter) Remaining() int { return len(w.buf) - w.n }

// CanWrite reports whether n more bytes fit.
func (w *FixedWriter) CanWrite(n int) bool { return w.Remaining() >= n }

// Bytes returns a view of the written prefix of the backing slice.
func (w *FixedWriter) Bytes() []byte { return w.buf[:w.n] }

// Reset rewinds the write cursor, allowing the backing slice to be reused.
func (w *FixedWriter) Reset() { w.n = 0 }
