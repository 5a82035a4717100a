package zpacker

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
)

// Decode reads a value of type T from r without an envelope. Decoding is
// steered by the target's static type; the wire tags are used only for
// sanity checks and cross-container compatibility. On a structural
// mismatch or a truncated header the zero value of T is returned and the
// cursor is left wherever the failed read stopped. A container whose header
// was read keeps its declared element count: elements cut off by truncation
// decode as zero values.
func Decode[T any](r *Reader) T {
	var v T
	decodeValue(r, reflect.ValueOf(&v).Elem())
	return v
}

func decodeValue(r *Reader, dst reflect.Value) {
	t := dst.Type()
	switch dataTypeOf(t) {
	case TypeCustom:
		d, ok := dst.Addr().Interface().(Deserializer)
		if !ok {
			panic(fmt.Sprintf("zpacker: type %v must implement Deserialize(*zpacker.Reader)", t))
		}
		d.Deserialize(r)

	case TypePair:
		h, ok := readDataHeader(r)
		if !ok || h.MainType() != TypePair || h.Length != 2 {
			return
		}
		decodeValue(r, dst.Field(0))
		decodeValue(r, dst.Field(1))

	case TypeVariant:
		vv := dst.Addr().Interface().(variantValue)
		alts := vv.variantAlts()
		h, ok := readDataHeader(r)
		if !ok || int(h.Length) != len(alts) {
			return
		}
		if !r.CanRead(4) {
			return
		}
		index := r.ReadUint32()
		if index >= h.Length {
			return
		}
		av := reflect.New(alts[index]).Elem()
		decodeValue(r, av)
		vv.variantSet(int(index), av.Interface())

	case TypeTuple:
		h, ok := readDataHeader(r)
		if !ok || int(h.Length) != t.NumField() {
			return
		}
		for i := 0; i < t.NumField(); i++ {
			decodeValue(r, dst.Field(i))
		}

	case TypeSeqContainer:
		decodeSequence(r, dst)

	case TypeAsoContainer:
		decodeAssociative(r, dst)

	case TypePOD:
		size := binarySize(t)
		h, ok := readDataHeader(r)
		if !ok || int(h.Length) < size {
			return
		}
		body, ok := r.take(size)
		if !ok {
			return
		}
		_, _ = binary.Decode(body, hostOrder, dst.Addr().Interface())

	default:
		decodeScalar(r, dst)
	}
}

func decodeSequence(r *Reader, dst reflect.Value) {
	t := dst.Type()
	pt := reflect.PointerTo(t)

	switch {
	case pt.Implements(seqContainerType):
		sc := dst.Addr().Interface().(SequenceContainer)
		elem := sc.ElemType()
		h, ok := readDataHeader(r)
		if !ok || h.MainType() != TypeSeqContainer || !h.Compatible(elem) {
			return
		}
		for i := uint32(0); i < h.Length; i++ {
			sc.Append(decodeElem(r, h.SubType(), elem).Interface())
		}

	case pt.Implements(inputRangeType):
		panic(fmt.Sprintf("zpacker: lazy range %v is not a decode target", t))

	case t.Kind() == reflect.String:
		h, ok := readDataHeader(r)
		if !ok || h.MainType() != TypeSeqContainer || h.SubType() != TypeByte8 {
			return
		}
		body, ok := r.take(int(h.Length))
		if !ok {
			return
		}
		dst.SetString(string(body))

	case t.Kind() == reflect.Array:
		elem := t.Elem()
		h, ok := readDataHeader(r)
		if !ok || h.MainType() != TypeSeqContainer || !h.Compatible(elem) ||
			int(h.Length) != t.Len() {
			return
		}
		for i := 0; i < t.Len(); i++ {
			dst.Index(i).Set(decodeElem(r, h.SubType(), elem))
		}

	default: // slice
		elem := t.Elem()
		h, ok := readDataHeader(r)
		if !ok || h.MainType() != TypeSeqContainer || !h.Compatible(elem) {
			return
		}
		// Cap the preallocation by the remaining bytes so a hostile length
		// cannot force a huge allocation; every element costs at least one
		// byte on the wire.
		capacity := int(min(uint64(h.Length), uint64(r.Remaining())))
		s := reflect.MakeSlice(t, 0, capacity)
		for i := uint32(0); i < h.Length; i++ {
			s = reflect.Append(s, decodeElem(r, h.SubType(), elem))
		}
		dst.Set(s)
	}
}

func decodeAssociative(r *Reader, dst reflect.Value) {
	t := dst.Type()
	if t.Kind() == reflect.Map {
		h, ok := readDataHeader(r)
		if !ok || h.MainType() != TypeAsoContainer || h.SubType() != TypePair {
			return
		}
		m := reflect.MakeMapWithSize(t, int(min(uint64(h.Length), uint64(r.Remaining()))))
		kt, vt := t.Key(), t.Elem()
		for i := uint32(0); i < h.Length; i++ {
			ph, ok := readDataHeader(r)
			if !ok || ph.MainType() != TypePair || ph.Length != 2 {
				return
			}
			kv := reflect.New(kt).Elem()
			decodeValue(r, kv)
			vv := reflect.New(vt).Elem()
			decodeValue(r, vv)
			m.SetMapIndex(kv, vv)
		}
		dst.Set(m)
		return
	}

	ac := dst.Addr().Interface().(AssociativeContainer)
	elem := ac.ElemType()
	h, ok := readDataHeader(r)
	if !ok || h.MainType() != TypeAsoContainer || !h.Compatible(elem) {
		return
	}
	for i := uint32(0); i < h.Length; i++ {
		ac.Insert(decodeElem(r, h.SubType(), elem).Interface())
	}
}

// decodeElem decodes one container element. When the wire sub-type is a
// scalar narrower than the target element, the element is read at the wire
// width and widened numerically; otherwise the regular target-driven
// decode applies.
func decodeElem(r *Reader, sub DataType, elem reflect.Type) reflect.Value {
	ev := reflect.New(elem).Elem()
	if sub.scalar() && sub != dataTypeOf(elem) {
		decodeScalarWidened(r, sub, ev)
	} else {
		decodeValue(r, ev)
	}
	return ev
}

func decodeScalarWidened(r *Reader, sub DataType, dst reflect.Value) {
	switch sub {
	case TypeFloat32:
		dst.SetFloat(float64(r.ReadFloat32()))
		return
	case TypeFloat64:
		dst.SetFloat(r.ReadFloat64())
		return
	}

	var unsigned uint64
	var signed int64
	switch sub {
	case TypeByte8:
		b := r.ReadUint8()
		unsigned, signed = uint64(b), int64(int8(b))
	case TypeByte16:
		u := r.ReadUint16()
		unsigned, signed = uint64(u), int64(int16(u))
	case TypeByte32:
		u := r.ReadUint32()
		unsigned, signed = uint64(u), int64(int32(u))
	default:
		u := r.ReadUint64()
		unsigned, signed = u, int64(u)
	}

	switch dst.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		dst.SetInt(signed)
	default:
		dst.SetUint(unsigned)
	}
}

func decodeScalar(r *Reader, dst reflect.Value) {
	switch k := dst.Kind(); k {
	case reflect.Bool:
		dst.SetBool(r.ReadUint8() != 0)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		dst.SetInt(readScalarBits(r, int(dst.Type().Size()), true))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		dst.SetUint(uint64(readScalarBits(r, int(dst.Type().Size()), false)))
	case reflect.Float32:
		dst.SetFloat(float64(math.Float32frombits(r.ReadUint32())))
	case reflect.Float64:
		dst.SetFloat(math.Float64frombits(r.ReadUint64()))
	default:
		panic(fmt.Sprintf("zpacker: unsupported scalar kind %v", k))
	}
}

// readScalarBits reads a raw scalar of the given byte width. The result is
// sign-extended when the caller's target is signed.
func readScalarBits(r *Reader, width int, signed bool) int64 {
	switch width {
	case 1:
		b := r.ReadUint8()
		if signed {
			return int64(int8(b))
		}
		return int64(b)
	case 2:
		u := r.ReadUint16()
		if signed {
			return int64(int16(u))
		}
		return int64(u)
	case 4:
		u := r.ReadUint32()
		if signed {
			return int64(int32(u))
		}
		return int64(u)
	default:
		return int64(r.ReadUint64())
	}
}
