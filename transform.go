package zpacker

import (
	"reflect"

	"github.com/klauspost/compress/s2"
)

// Transform rewrites an encoded payload before it is sealed in an envelope
// and restores it after the envelope is verified. The checksum always
// covers the transformed bytes.
type Transform interface {
	Encode(src []byte) ([]byte, error)
	Decode(src []byte) ([]byte, error)
}

type identityTransform struct{}

func (identityTransform) Encode(src []byte) ([]byte, error) { return src, nil }
func (identityTransform) Decode(src []byte) ([]byte, error) { return src, nil }

// Identity passes the payload through unchanged.
var Identity Transform = identityTransform{}

type s2Transform struct{}

func (s2Transform) Encode(src []byte) ([]byte, error) { return s2.Encode(nil, src), nil }
func (s2Transform) Decode(src []byte) ([]byte, error) { return s2.Decode(nil, src) }

// S2 compresses the payload with the S2 block format.
var S2 Transform = s2Transform{}

// SerializeTransformed encodes v, runs the payload through tr and seals the
// result in an envelope. A nil tr behaves like Identity.
func SerializeTransformed[T any](v T, tr Transform, sum Checksum) []byte {
	w := getScratch()
	defer putScratch(w)
	encodeValue(w, reflect.ValueOf(&v).Elem())

	payload := w.Bytes()
	if tr != nil {
		transformed, err := tr.Encode(payload)
		if err != nil {
			return nil
		}
		payload = transformed
	}
	return sealEnvelope(payload, sum)
}

// DeserializeTransformed verifies the envelope of data, undoes tr on the
// payload and decodes a value of type T. Any failure, including a payload
// tr cannot restore, yields the zero value of T.
func DeserializeTransformed[T any](data []byte, tr Transform, sum Checksum) T {
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
	if tr != nil {
		restored, err := tr.Decode(payload)
		if err != nil {
			return v
		}
		payload = restored
	}
	decodeValue(NewReader(payload), reflect.ValueOf(&v).Elem())
	return v
}
