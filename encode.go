package zpacker

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
)

// Encode writes the binary form of v to w without an envelope. The
// dispatch is driven entirely by the static type of v; headers are
// emitted for compound shapes only.
func Encode[T any](w Sink, v T) {
	encodeValue(w, reflect.ValueOf(&v).Elem())
}

// writeFull writes p all-or-nothing: a bounded sink without room for the
// whole of p drops it silently.
func writeFull(w Sink, p []byte) {
	if !w.CanWrite(len(p)) {
		return
	}
	w.WriteBytes(p)
}

// addr returns an addressable handle on v, copying when v itself is not
// addressable, so pointer-receiver contract methods are always callable.
func addr(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	pv := reflect.New(v.Type())
	pv.Elem().Set(v)
	return pv
}

func encodeValue(w Sink, v reflect.Value) {
	t := v.Type()
	switch dataTypeOf(t) {
	case TypeCustom:
		s, ok := addr(v).Interface().(Serializer)
		if !ok {
			panic(fmt.Sprintf("zpacker: type %v must implement Serialize(zpacker.Sink)", t))
		}
		s.Serialize(w)

	case TypePair:
		writeDataHeader(w, header(TypePair, TypeEmpty, 2))
		encodeValue(w, v.Field(0))
		encodeValue(w, v.Field(1))

	case TypeVariant:
		vv := addr(v).Interface().(variantValue)
		alts := vv.variantAlts()
		index, val := vv.variantGet()
		writeDataHeader(w, header(TypeVariant, dataTypeOf(alts[index]), uint32(len(alts))))
		writeUint32(w, uint32(index))
		encodeValue(w, reflect.ValueOf(val))

	case TypeTuple:
		writeDataHeader(w, header(TypeTuple, TypeEmpty, uint32(t.NumField())))
		for i := 0; i < t.NumField(); i++ {
			encodeValue(w, v.Field(i))
		}

	case TypeSeqContainer:
		encodeSequence(w, v)

	case TypeAsoContainer:
		encodeAssociative(w, v)

	case TypePOD:
		encodePOD(w, v)

	default:
		encodeScalar(w, v)
	}
}

func encodeSequence(w Sink, v reflect.Value) {
	t := v.Type()
	pt := reflect.PointerTo(t)

	switch {
	case pt.Implements(seqContainerType):
		sc := addr(v).Interface().(SequenceContainer)
		elem := sc.ElemType()
		writeDataHeader(w, header(TypeSeqContainer, dataTypeOf(elem), uint32(sc.Len())))
		sc.Range(func(e any) bool {
			encodeValue(w, reflect.ValueOf(e))
			return true
		})

	case pt.Implements(inputRangeType):
		// Size unknown upfront: encode the elements into a scratch sink to
		// learn the count, then emit the header and splice the bytes.
		ir := addr(v).Interface().(InputRange)
		scratch := getScratch()
		defer putScratch(scratch)
		count := uint32(0)
		ir.Range(func(e any) bool {
			encodeValue(scratch, reflect.ValueOf(e))
			count++
			return true
		})
		writeDataHeader(w, header(TypeSeqContainer, dataTypeOf(ir.ElemType()), count))
		w.WriteBytes(scratch.Bytes())

	case t.Kind() == reflect.String:
		writeDataHeader(w, header(TypeSeqContainer, TypeByte8, uint32(v.Len())))
		w.WriteBytes([]byte(v.String()))

	default: // slice or array
		elem := t.Elem()
		writeDataHeader(w, header(TypeSeqContainer, dataTypeOf(elem), uint32(v.Len())))
		for i := 0; i < v.Len(); i++ {
			encodeValue(w, v.Index(i))
		}
	}
}

func encodeAssociative(w Sink, v reflect.Value) {
	t := v.Type()
	if t.Kind() == reflect.Map {
		// A map entry is a pair of key and mapped value, framed like any
		// other pair so it can round-trip through pair-typed containers.
		writeDataHeader(w, header(TypeAsoContainer, TypePair, uint32(v.Len())))
		iter := v.MapRange()
		for iter.Next() {
			writeDataHeader(w, header(TypePair, TypeEmpty, 2))
			encodeValue(w, iter.Key())
			encodeValue(w, iter.Value())
		}
		return
	}

	ac := addr(v).Interface().(AssociativeContainer)
	elem := ac.ElemType()
	writeDataHeader(w, header(TypeAsoContainer, dataTypeOf(elem), uint32(ac.Len())))
	ac.Range(func(e any) bool {
		encodeValue(w, reflect.ValueOf(e))
		return true
	})
}

func encodePOD(w Sink, v reflect.Value) {
	size := binarySize(v.Type())
	writeDataHeader(w, header(TypePOD, TypeEmpty, uint32(size)))
	body, err := binary.Append(nil, hostOrder, v.Interface())
	if err != nil {
		panic(fmt.Sprintf("zpacker: cannot encode %v as pod: %v", v.Type(), err))
	}
	writeFull(w, body)
}

func encodeScalar(w Sink, v reflect.Value) {
	var buf [8]byte
	switch k := v.Kind(); k {
	case reflect.Bool:
		if v.Bool() {
			buf[0] = 1
		}
		writeFull(w, buf[:1])
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		writeScalarBits(w, buf[:], uint64(v.Int()), int(v.Type().Size()))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		writeScalarBits(w, buf[:], v.Uint(), int(v.Type().Size()))
	case reflect.Float32:
		hostOrder.PutUint32(buf[:4], math.Float32bits(float32(v.Float())))
		writeFull(w, buf[:4])
	case reflect.Float64:
		hostOrder.PutUint64(buf[:8], math.Float64bits(v.Float()))
		writeFull(w, buf[:8])
	default:
		panic(fmt.Sprintf("zpacker: unsupported scalar kind %v", k))
	}
}

func writeScalarBits(w Sink, buf []byte, bits uint64, width int) {
	switch width {
	case 1:
		buf[0] = byte(bits)
	case 2:
		hostOrder.PutUint16(buf, uint16(bits))
	case 4:
		hostOrder.PutUint32(buf, uint32(bits))
	default:
		hostOrder.PutUint64(buf, bits)
	}
	writeFull(w, buf[:width])
}

func writeUint32(w Sink, v uint32) {
	var buf [4]byte
	hostOrder.PutUint32(buf[:], v)
	writeFull(w, buf[:])
}
