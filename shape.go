package zpacker

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// DataType is the wire code for a shape category. The low nibble of a data
// header carries the value's own category; the high nibble carries the
// element category for containers and variants.
type DataType uint8

const (
	TypeEmpty DataType = iota
	TypeByte8
	TypeByte16
	TypeByte32
	TypeByte64
	TypeFloat32
	TypeFloat64
	TypePOD
	TypePair
	TypeVariant
	TypeTuple
	TypeSeqContainer
	TypeAsoContainer
	TypeCustom
)

var dataTypeNames = [...]string{
	"empty", "byte8", "byte16", "byte32", "byte64", "float32", "float64",
	"pod", "pair", "variant", "tuple", "seq_container", "aso_container",
	"custom",
}

func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return fmt.Sprintf("datatype(%d)", uint8(d))
}

func (d DataType) scalar() bool  { return d >= TypeByte8 && d <= TypeFloat64 }
func (d DataType) integer() bool { return d >= TypeByte8 && d <= TypeByte64 }

var (
	serializerType   = reflect.TypeFor[Serializer]()
	deserializerType = reflect.TypeFor[Deserializer]()
	pairMarkerType   = reflect.TypeFor[pairMarker]()
	tupleMarkerType  = reflect.TypeFor[tupleMarker]()
	variantValueType = reflect.TypeFor[variantValue]()
	seqContainerType = reflect.TypeFor[SequenceContainer]()
	asoContainerType = reflect.TypeFor[AssociativeContainer]()
	inputRangeType   = reflect.TypeFor[InputRange]()
)

// shapeCache memoizes classification. Classifying a type walks its method
// set several times; a concurrent map makes the result shared and cheap.
var shapeCache = xsync.NewMap[reflect.Type, DataType]()

// dataTypeOf maps a static Go type onto its wire shape category. It panics
// for types outside the closed shape set that do not opt into the custom
// contract; that is the runtime rendering of a misuse diagnostic, not a
// data error.
func dataTypeOf(t reflect.Type) DataType {
	if dt, ok := shapeCache.Load(t); ok {
		return dt
	}
	dt := classify(t)
	shapeCache.Store(t, dt)
	return dt
}

func classify(t reflect.Type) DataType {
	pt := reflect.PointerTo(t)
	switch {
	case pt.Implements(serializerType) || pt.Implements(deserializerType):
		return TypeCustom
	case pt.Implements(pairMarkerType):
		return TypePair
	case pt.Implements(variantValueType):
		return TypeVariant
	case pt.Implements(tupleMarkerType):
		return TypeTuple
	case pt.Implements(seqContainerType):
		return TypeSeqContainer
	case pt.Implements(asoContainerType):
		return TypeAsoContainer
	case pt.Implements(inputRangeType):
		// Unsized lazy ranges still tag as sequences on the wire.
		return TypeSeqContainer
	}

	switch t.Kind() {
	case reflect.String, reflect.Slice, reflect.Array:
		return TypeSeqContainer
	case reflect.Map:
		return TypeAsoContainer
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return TypeByte8
	case reflect.Int16, reflect.Uint16:
		return TypeByte16
	case reflect.Int32, reflect.Uint32:
		return TypeByte32
	case reflect.Int64, reflect.Uint64:
		return TypeByte64
	case reflect.Float32:
		return TypeFloat32
	case reflect.Float64:
		return TypeFloat64
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		if t.Size() == 4 {
			return TypeByte32
		}
		return TypeByte64
	case reflect.Pointer:
		panic(fmt.Sprintf("zpacker: pointer type %v cannot be serialized", t))
	case reflect.Struct:
		if binarySize(t) >= 0 {
			return TypePOD
		}
	}

	panic(fmt.Sprintf(
		"zpacker: unsupported type %v: implement Serialize(zpacker.Sink) and Deserialize(*zpacker.Reader)", t))
}

// podSizeCache avoids the reflection cost of binary.Size on every call.
var podSizeCache = xsync.NewMap[reflect.Type, int]()

// binarySize returns the encoded size of a fixed-layout type, or -1 when
// the type contains variable-size fields.
func binarySize(t reflect.Type) int {
	if s, ok := podSizeCache.Load(t); ok {
		return s
	}
	s := binary.Size(reflect.New(t).Elem().Interface())
	podSizeCache.Store(t, s)
	return s
}

// subtypeCompatible reports whether a wire element category can decode into
// the given target element type. Scalars admit widening: an integer decodes
// into any integer of equal or greater width, float32 into float64. All
// other categories require an exact match.
func subtypeCompatible(sub DataType, elem reflect.Type) bool {
	dt := dataTypeOf(elem)
	if sub.scalar() && dt.scalar() {
		if sub.integer() != dt.integer() {
			return false
		}
		return sub <= dt
	}
	return sub == dt
}
