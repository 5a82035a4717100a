package zpacker

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type WriterTestSuite struct {
	suite.Suite
	writer *Writer
}

// SetupTest runs before each test in the suite, ensuring a clean state.
func (s *WriterTestSuite) SetupTest() {
	s.writer = NewWriter()
}

func (s *WriterTestSuite) TestBasicWrites() {
	s.writer.WriteUint8(0xAA)
	s.writer.WriteUint16(0xBBCC)
	s.writer.WriteUint32(0xDDEEFF00)
	s.writer.WriteUint64(0x0102030405060708)
	s.writer.WriteBytes([]byte{5, 6, 7})

	expected := []byte{0xAA}
	expected = hostOrder.AppendUint16(expected, 0xBBCC)
	expected = hostOrder.AppendUint32(expected, 0xDDEEFF00)
	expected = hostOrder.AppendUint64(expected, 0x0102030405060708)
	expected = append(expected, 5, 6, 7)

	s.Assert().Equal(expected, s.writer.Bytes())
	s.Assert().Equal(len(expected), s.writer.Count())
}

func (s *WriterTestSuite) TestCursorState() {
	w := NewWriterSize(16)
	s.Assert().Zero(w.Count())
	s.Assert().Equal(16, w.Remaining())
	s.Assert().True(w.CanWrite(1 << 20))

	w.WriteUint32(1)
	s.Assert().Equal(4, w.Count())
	s.Assert().Equal(12, w.Remaining())
}

func (s *WriterTestSuite) TestGrow() {
	s.writer.Grow(100)
	s.Assert().GreaterOrEqual(s.writer.Remaining(), 100)
	// Capacity is rounded to the scratch granularity.
	s.Assert().Equal(defaultScratchSize, s.writer.Remaining())
}

func (s *WriterTestSuite) TestReset() {
	s.writer.WriteUint64(42)
	s.writer.Reset()
	s.Assert().Zero(s.writer.Count())
	s.Assert().Empty(s.writer.Bytes())
}

func TestWriter(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}

func TestFixedWriterOverflow(t *testing.T) {
	buf := make([]byte, 5)
	w := NewFixedWriter(buf)

	w.WriteUint32(0x11223344)
	assert.Equal(t, 4, w.Count())

	// The next 4-byte value does not fit: silent no-op.
	w.WriteUint32(0xAABBCCDD)
	assert.Equal(t, 4, w.Count())

	// A single byte still fits.
	w.WriteUint8(0xEE)
	assert.Equal(t, 5, w.Count())
	assert.Zero(t, w.Remaining())
	assert.False(t, w.CanWrite(1))

	expected := hostOrder.AppendUint32(nil, 0x11223344)
	expected = append(expected, 0xEE)
	assert.Equal(t, expected, w.Bytes())
}

func TestFixedWriterPartialCopy(t *testing.T) {
	buf := make([]byte, 3)
	w := NewFixedWriter(buf)

	// WriteBytes copies as much as fits.
	w.WriteBytes([]byte{1, 2, 3, 4, 5})
	assert.Equal(t, 3, w.Count())
	assert.Equal(t, []byte{1, 2, 3}, w.Bytes())
}

func TestFixedWriterShortWrite(t *testing.T) {
	w := NewFixedWriter(make([]byte, 3))

	n, err := w.Write([]byte{1, 2, 3, 4, 5})
	assert.Equal(t, 3, n)
	require.ErrorIs(t, err, io.ErrShortWrite)

	err = w.WriteByte(9)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestFixedWriterReset(t *testing.T) {
	buf := make([]byte, 8)
	w := NewFixedWriter(buf)
	w.WriteUint64(7)
	assert.Zero(t, w.Remaining())

	w.Reset()
	assert.Equal(t, 8, w.Remaining())
	assert.Zero(t, w.Count())
}
