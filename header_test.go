package zpacker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataHeaderNibbles(t *testing.T) {
	var h DataHeader
	h.SetMainType(TypeSeqContainer)
	h.SetSubType(TypeByte32)

	assert.Equal(t, uint8(0x3B), h.Type)
	assert.Equal(t, TypeSeqContainer, h.MainType())
	assert.Equal(t, TypeByte32, h.SubType())

	// Re-setting one nibble leaves the other intact.
	h.SetMainType(TypeAsoContainer)
	assert.Equal(t, TypeByte32, h.SubType())
	h.SetSubType(TypePair)
	assert.Equal(t, TypeAsoContainer, h.MainType())
}

func TestDataHeaderWire(t *testing.T) {
	w := NewWriter()
	writeDataHeader(w, header(TypeTuple, TypeEmpty, 4))

	expected := []byte{uint8(TypeTuple)}
	expected = hostOrder.AppendUint32(expected, 4)
	assert.Equal(t, expected, w.Bytes())

	h, ok := readDataHeader(NewReader(w.Bytes()))
	assert.True(t, ok)
	assert.Equal(t, TypeTuple, h.MainType())
	assert.Equal(t, uint32(4), h.Length)

	// A truncated header does not move the cursor.
	r := NewReader(w.Bytes()[:3])
	_, ok = readDataHeader(r)
	assert.False(t, ok)
	assert.Zero(t, r.Count())
}

func TestParseHeader(t *testing.T) {
	w := NewWriter()
	Encode(w, []int32{1, 2, 3, 4})

	h, ok := ParseHeader(w.Bytes())
	assert.True(t, ok)
	assert.Equal(t, TypeSeqContainer, h.MainType())
	assert.Equal(t, TypeByte32, h.SubType())
	assert.Equal(t, uint32(4), h.Length)

	_, ok = ParseHeader([]byte{1, 2})
	assert.False(t, ok)
}

func TestEnvelopeVersionFields(t *testing.T) {
	assert.Equal(t, 0x0001, Version)

	var e Envelope
	e.SetVersion(Version)
	assert.Equal(t, uint8(0), e.Major())
	assert.Equal(t, uint8(1), e.Minor())

	e.SetMajorVersion(0xAB)
	assert.Equal(t, uint8(0xAB), e.Major())
	assert.Equal(t, uint8(1), e.Minor())

	e.SetMinorVersion(0xCD)
	assert.Equal(t, uint8(0xAB), e.Major())
	assert.Equal(t, uint8(0xCD), e.Minor())
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "seq_container", TypeSeqContainer.String())
	assert.Equal(t, "byte32", TypeByte32.String())
	assert.Equal(t, "custom", TypeCustom.String())
	assert.Equal(t, "datatype(14)", DataType(14).String())
}
