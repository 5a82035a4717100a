package zpacker

import "reflect"

// variantValue is the internal accessor surface shared by the VariantN
// types. The alternative list is static; the active value is identified by
// a zero-based index.
type variantValue interface {
	variantAlts() []reflect.Type
	variantGet() (int, any)
	variantSet(index int, v any)
}

// Variant2 is a tagged union over two alternatives. A default-constructed
// variant holds the zero value of the first alternative, mirroring the
// behavior of a freshly constructed union.
type Variant2[A, B any] struct {
	index uint32
	value any
}

func (v *Variant2[A, B]) SetA(a A) { v.index, v.value = 0, a }
func (v *Variant2[A, B]) SetB(b B) { v.index, v.value = 1, b }

// Index returns the zero-based index of the active alternative.
func (v Variant2[A, B]) Index() int { return int(v.index) }

// Value returns the active alternative's value.
func (v Variant2[A, B]) Value() any {
	if v.value == nil {
		var zero A
		return zero
	}
	return v.value
}

func (v *Variant2[A, B]) variantAlts() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

func (v *Variant2[A, B]) variantGet() (int, any) { return v.Index(), v.Value() }

func (v *Variant2[A, B]) variantSet(index int, val any) {
	v.index, v.value = uint32(index), val
}

// Variant3 is a tagged union over three alternatives.
type Variant3[A, B, C any] struct {
	index uint32
	value any
}

func (v *Variant3[A, B, C]) SetA(a A) { v.index, v.value = 0, a }
func (v *Variant3[A, B, C]) SetB(b B) { v.index, v.value = 1, b }
func (v *Variant3[A, B, C]) SetC(c C) { v.index, v.value = 2, c }

func (v Variant3[A, B, C]) Index() int { return int(v.index) }

func (v Variant3[A, B, C]) Value() any {
	if v.value == nil {
		var zero A
		return zero
	}
	return v.value
}

func (v *Variant3[A, B, C]) variantAlts() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}

func (v *Variant3[A, B, C]) variantGet() (int, any) { return v.Index(), v.Value() }

func (v *Variant3[A, B, C]) variantSet(index int, val any) {
	v.index, v.value = uint32(index), val
}

// Variant4 is a tagged union over four alternatives.
type Variant4[A, B, C, D any] struct {
	index uint32
	value any
}

func (v *Variant4[A, B, C, D]) SetA(a A) { v.index, v.value = 0, a }
func (v *Variant4[A, B, C, D]) SetB(b B) { v.index, v.value = 1, b }
func (v *Variant4[A, B, C, D]) SetC(c C) { v.index, v.value = 2, c }
func (v *Variant4[A, B, C, D]) SetD(d D) { v.index, v.value = 3, d }

func (v Variant4[A, B, C, D]) Index() int { return int(v.index) }

func (v Variant4[A, B, C, D]) Value() any {
	if v.value == nil {
		var zero A
		return zero
	}
	return v.value
}

func (v *Variant4[A, B, C, D]) variantAlts() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](),
		reflect.TypeFor[C](), reflect.TypeFor[D](),
	}
}

func (v *Variant4[A, B, C, D]) variantGet() (int, any) { return v.Index(), v.Value() }

func (v *Variant4[A, B, C, D]) variantSet(index int, val any) {
	v.index, v.value = uint32(index), val
}
