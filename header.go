package zpacker

import "reflect"

// Format version, stored as major<<4 | minor.
const (
	VersionMajor = 0x0
	VersionMinor = 0x1
	Version      = VersionMajor<<4 | VersionMinor
)

const (
	dataHeaderSize = 5
	envelopeSize   = 10
)

// DataHeader prefixes every compound value on the wire: one type byte
// (main category in the low nibble, element category in the high nibble)
// followed by a uint32 length in host byte order, packed to 5 bytes.
// Scalars carry no header.
//
// Length means, by main type: 2 for pairs, the alternative count for
// variants, the arity for tuples, the element count for containers, and
// the byte size for PODs.
type DataHeader struct {
	Type   uint8
	Length uint32
}

func (h *DataHeader) SetMainType(dt DataType) {
	h.Type = h.Type&0xf0 | uint8(dt)
}

func (h *DataHeader) SetSubType(dt DataType) {
	h.Type = h.Type&0x0f | uint8(dt)<<4
}

func (h DataHeader) MainType() DataType { return DataType(h.Type & 0x0f) }
func (h DataHeader) SubType() DataType  { return DataType(h.Type >> 4) }

// Compatible reports whether the header's element category can decode into
// containers of the given element type.
func (h DataHeader) Compatible(elem reflect.Type) bool {
	return subtypeCompatible(h.SubType(), elem)
}

func header(main, sub DataType, length uint32) DataHeader {
	var h DataHeader
	h.SetMainType(main)
	h.SetSubType(sub)
	h.Length = length
	return h
}

func writeDataHeader(w Sink, h DataHeader) {
	var buf [dataHeaderSize]byte
	buf[0] = h.Type
	hostOrder.PutUint32(buf[1:], h.Length)
	writeFull(w, buf[:])
}

func readDataHeader(r *Reader) (DataHeader, bool) {
	b, ok := r.take(dataHeaderSize)
	if !ok {
		return DataHeader{}, false
	}
	return DataHeader{Type: b[0], Length: hostOrder.Uint32(b[1:])}, true
}

// ParseHeader decodes a data header from the front of p. It is a
// convenience for inspection tooling; the decoder reads headers through
// its own cursor.
func ParseHeader(p []byte) (DataHeader, bool) {
	if len(p) < dataHeaderSize {
		return DataHeader{}, false
	}
	return DataHeader{Type: p[0], Length: hostOrder.Uint32(p[1:])}, true
}

// Envelope prefixes every top-level serialization: a uint16 format version,
// a uint32 checksum and the uint32 payload byte count, packed to 10 bytes
// in host byte order. Narrower checksums (CRC-8, CRC-16) occupy the low
// bits of the CRC field.
type Envelope struct {
	Version uint16
	CRC     uint32
	Length  uint32
}

func (e *Envelope) SetVersion(v uint16) { e.Version = v }

func (e *Envelope) SetMajorVersion(major uint8) {
	e.Version = e.Version&0x00ff | uint16(major)<<8
}

func (e *Envelope) SetMinorVersion(minor uint8) {
	e.Version = e.Version&0xff00 | uint16(minor)
}

func (e Envelope) Major() uint8 { return uint8(e.Version >> 8) }
func (e Envelope) Minor() uint8 { return uint8(e.Version & 0xff) }
