package zpacker

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ReaderTestSuite struct {
	suite.Suite
}

func (s *ReaderTestSuite) TestSuccessfulReads() {
	data := []byte{0xAA}
	data = hostOrder.AppendUint16(data, 0xBBCC)
	data = hostOrder.AppendUint32(data, 0xDDEEFF00)
	data = hostOrder.AppendUint64(data, 0x0102030405060708)
	data = append(data, 0x11, 0x22, 0x33)

	r := NewReader(data)
	s.Assert().Equal(uint8(0xAA), r.ReadUint8())
	s.Assert().Equal(uint16(0xBBCC), r.ReadUint16())
	s.Assert().Equal(uint32(0xDDEEFF00), r.ReadUint32())
	s.Assert().Equal(uint64(0x0102030405060708), r.ReadUint64())
	s.Assert().Equal([]byte{0x11, 0x22, 0x33}, r.ReadBytes(3))
	s.Assert().Zero(r.Remaining())
	s.Assert().Equal(len(data), r.Count())
}

func (s *ReaderTestSuite) TestUnderReadReturnsDefault() {
	r := NewReader([]byte{1, 2, 3})

	// Not enough bytes: zero value, cursor unmoved.
	s.Assert().Zero(r.ReadUint32())
	s.Assert().Zero(r.Count())

	// Narrower reads still succeed afterwards.
	s.Assert().Equal(uint16(hostOrder.Uint16([]byte{1, 2})), r.ReadUint16())
	s.Assert().Equal(2, r.Count())

	s.Assert().Zero(r.ReadUint16())
	s.Assert().Equal(2, r.Count())
}

func (s *ReaderTestSuite) TestReadBytesClampsToRemaining() {
	r := NewReader([]byte{1, 2, 3, 4})
	r.Skip(1)

	b := r.ReadBytes(10)
	s.Assert().Equal([]byte{2, 3, 4}, b)
	s.Assert().Zero(r.Remaining())

	s.Assert().Nil(r.ReadBytes(0))
	s.Assert().Empty(r.ReadBytes(5))
}

func (s *ReaderTestSuite) TestSkipAndSeek() {
	r := NewReader([]byte{10, 20, 30, 40})

	r.Skip(2)
	s.Assert().Equal(2, r.Count())

	// Skipping past the end is a no-op.
	r.Skip(5)
	s.Assert().Equal(2, r.Count())

	r.Seek(1)
	s.Assert().Equal(uint8(20), r.ReadUint8())

	// Seeking outside the buffer is ignored.
	r.Seek(4)
	s.Assert().Equal(2, r.Count())
	r.Seek(-1)
	s.Assert().Equal(2, r.Count())
}

func (s *ReaderTestSuite) TestReset() {
	r := NewReader([]byte{1, 2})
	r.Skip(2)
	r.Reset([]byte{7})
	s.Assert().Equal(1, r.Remaining())
	s.Assert().Equal(uint8(7), r.ReadUint8())
}

func TestReader(t *testing.T) {
	suite.Run(t, new(ReaderTestSuite))
}
