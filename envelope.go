package zpacker

import "reflect"

// Checksum computes a 32-bit digest over a payload. Narrower digests
// (CRC-8, CRC-16) occupy the low bits of the result. A nil Checksum is
// treated as ChecksumNone on both the write and the read side.
type Checksum func(data []byte) uint32

// Serialize encodes v and wraps the payload in an envelope carrying the
// format version, the payload checksum and the payload length.
func Serialize[T any](v T, sum Checksum) []byte {
	w := getScratch()
	defer putScratch(w)
	encodeValue(w, reflect.ValueOf(&v).Elem())
	return sealEnvelope(w.Bytes(), sum)
}

// SerializeBuffer is the bounded-sink variant of Serialize: the payload is
// encoded into the caller's buffer, so headers and scalars that do not fit
// are silently dropped, raw byte runs (string bodies, lazy-range bodies) are
// cut at the end of the buffer, and the envelope describes only what was
// written. The returned
// slice is freshly allocated; buf is scratch space.
func SerializeBuffer[T any](buf []byte, v T, sum Checksum) []byte {
	w := NewFixedWriter(buf)
	encodeValue(w, reflect.ValueOf(&v).Elem())
	return sealEnvelope(w.Bytes(), sum)
}

func sealEnvelope(payload []byte, sum Checksum) []byte {
	var e Envelope
	e.SetVersion(Version)
	if sum != nil {
		e.CRC = sum(payload)
	}
	e.Length = uint32(len(payload))

	out := make([]byte, envelopeSize, envelopeSize+len(payload))
	hostOrder.PutUint16(out[0:2], e.Version)
	hostOrder.PutUint32(out[2:6], e.CRC)
	hostOrder.PutUint32(out[6:10], e.Length)
	return append(out, payload...)
}

// Deserialize verifies the envelope of data and decodes a value of type T
// from the payload. A short envelope, a truncated payload, a version
// mismatch or a checksum mismatch all yield the zero value of T; malformed
// input never panics. Because Go slices carry their length, this covers
// both the vector-backed and the pointer+length deserialize forms.
func Deserialize[T any](data []byte, sum Checksum) T {
	var v T
	e, payload, err := Inspect(data)
	if err != nil || e.Version != Version {
		return v
	}
	var crc uint32
	if sum != nil {
		crc = sum(payload)
	}
	if crc != e.CRC {
		return v
	}
	decodeValue(NewReader(payload), reflect.ValueOf(&v).Elem())
	return v
}

// Inspect splits data into its envelope and payload without decoding the
// payload. It reports truncation through sentinel errors and is the
// building block for strict validation layered above the silent-default
// decode path.
func Inspect(data []byte) (Envelope, []byte, error) {
	if len(data) < envelopeSize {
		return Envelope{}, nil, ErrShortEnvelope
	}
	e := Envelope{
		Version: hostOrder.Uint16(data[0:2]),
		CRC:     hostOrder.Uint32(data[2:6]),
		Length:  hostOrder.Uint32(data[6:10]),
	}
	if uint64(e.Length) > uint64(len(data)-envelopeSize) {
		return e, nil, ErrTruncatedPayload
	}
	return e, data[envelopeSize : envelopeSize+int(e.Length)], nil
}

// Verify is the strict-mode check: it validates the envelope of data
// against sum and reports the first failure as a sentinel error. The
// decode entry points never report errors; callers that need hard
// validation run Verify first.
func Verify(data []byte, sum Checksum) error {
	e, payload, err := Inspect(data)
	if err != nil {
		return err
	}
	if e.Version != Version {
		return ErrVersionMismatch
	}
	var crc uint32
	if sum != nil {
		crc = sum(payload)
	}
	if crc != e.CRC {
		return ErrChecksumMismatch
	}
	return nil
}
