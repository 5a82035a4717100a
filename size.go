package zpacker

import (
	"fmt"
	"reflect"
)

// SizeOf returns the exact number of bytes Encode would emit for v,
// excluding the envelope. It is a pure pre-walk of the value; nothing is
// written. The walk goes through reflection and does allocate, for example
// when a non-addressable value is copied so that its Size method can be
// called. Custom types must implement Sizer.
func SizeOf[T any](v T) int {
	return sizeValue(reflect.ValueOf(&v).Elem())
}

func sizeValue(v reflect.Value) int {
	t := v.Type()
	switch dataTypeOf(t) {
	case TypeCustom:
		s, ok := addr(v).Interface().(Sizer)
		if !ok {
			panic(fmt.Sprintf("zpacker: type %v used with SizeOf must implement Size() int", t))
		}
		return s.Size()

	case TypePair:
		return dataHeaderSize + sizeValue(v.Field(0)) + sizeValue(v.Field(1))

	case TypeVariant:
		vv := addr(v).Interface().(variantValue)
		_, val := vv.variantGet()
		return dataHeaderSize + 4 + sizeValue(reflect.ValueOf(val))

	case TypeTuple:
		size := dataHeaderSize
		for i := 0; i < t.NumField(); i++ {
			size += sizeValue(v.Field(i))
		}
		return size

	case TypeSeqContainer:
		return sizeSequence(v)

	case TypeAsoContainer:
		return sizeAssociative(v)

	case TypePOD:
		return dataHeaderSize + binarySize(t)

	default:
		return int(t.Size())
	}
}

func sizeSequence(v reflect.Value) int {
	t := v.Type()
	pt := reflect.PointerTo(t)

	switch {
	case pt.Implements(seqContainerType):
		sc := addr(v).Interface().(SequenceContainer)
		elem := sc.ElemType()
		if dataTypeOf(elem).scalar() {
			return dataHeaderSize + sc.Len()*int(elem.Size())
		}
		return dataHeaderSize + sizeRange(sc)

	case pt.Implements(inputRangeType):
		return dataHeaderSize + sizeRange(addr(v).Interface().(InputRange))

	case t.Kind() == reflect.String:
		return dataHeaderSize + v.Len()

	default: // slice or array
		elem := t.Elem()
		if dataTypeOf(elem).scalar() {
			return dataHeaderSize + v.Len()*int(elem.Size())
		}
		size := dataHeaderSize
		for i := 0; i < v.Len(); i++ {
			size += sizeValue(v.Index(i))
		}
		return size
	}
}

func sizeAssociative(v reflect.Value) int {
	t := v.Type()
	if t.Kind() == reflect.Map {
		size := dataHeaderSize
		iter := v.MapRange()
		for iter.Next() {
			size += dataHeaderSize + sizeValue(iter.Key()) + sizeValue(iter.Value())
		}
		return size
	}

	ac := addr(v).Interface().(AssociativeContainer)
	elem := ac.ElemType()
	if dataTypeOf(elem).scalar() {
		return dataHeaderSize + ac.Len()*int(elem.Size())
	}
	return dataHeaderSize + sizeRange(ac)
}

func sizeRange(ir InputRange) int {
	size := 0
	ir.Range(func(e any) bool {
		size += sizeValue(reflect.ValueOf(e))
		return true
	})
	return size
}
